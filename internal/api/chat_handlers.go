package api

import (
	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal/auth"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/service"
)

func PostMessage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateChatRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		reply, err := app.Assistant().SendMessage(c.Request.Context(), auth.CurrentSessionID(c), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to answer message")
			return
		}
		HandleSuccess(c, app.Logger(), reply, nil)
	}
}

func GetMessages(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := app.Assistant().History(c.Request.Context(), auth.CurrentSessionID(c))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch messages")
			return
		}
		HandleSuccess(c, app.Logger(), msgs, map[string]any{"count": len(msgs)})
	}
}
