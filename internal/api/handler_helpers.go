package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/response"
)

// HandleError writes an error envelope. An *internal.AppError anywhere in the
// chain overrides status and msg with its own code and message.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")

	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		logger.Warnf("[request_id=%s] %v", requestID, err)
		c.JSON(appErr.Code, response.NewAppError(appErr.Code, appErr.Message))
		return
	}

	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 401:
		resp = response.Unauthorized(msg)
	case 404:
		resp = response.NotFound(msg)
	case 500:
		resp = response.InternalError(msg)
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}
