package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/auth"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/service"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/storage"
)

type sessionView struct {
	SessionID string                 `json:"session_id"`
	Profile   internal.UserProfile   `json:"profile"`
	Messages  []internal.ChatMessage `json:"messages"`
}

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: user_id must be a number")
			return
		}

		s, err := app.Assistant().Login(c.Request.Context(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to start session")
			return
		}
		HandleSuccess(c, app.Logger(), sessionView{SessionID: s.ID, Profile: s.Profile, Messages: s.Messages}, nil)
	}
}

func PostLogout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Assistant().Logout(c.Request.Context(), auth.CurrentSessionID(c)); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to end session")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"logged_out": true})
	}
}

func GetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := auth.CurrentSession(c)
		HandleSuccess(c, app.Logger(), sessionView{SessionID: s.ID, Profile: s.Profile, Messages: s.Messages}, nil)
	}
}

func GetUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid user id")
			return
		}
		profile, err := app.Directory().FindUserByID(c.Request.Context(), id)
		if err != nil {
			status := 500
			if errors.Is(err, storage.ErrUserNotFound) {
				status = 404
			}
			HandleError(c, app.Logger(), err, status, "User not found")
			return
		}
		HandleSuccess(c, app.Logger(), profile, nil)
	}
}
