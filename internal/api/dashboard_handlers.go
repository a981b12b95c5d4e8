package api

import (
	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal/auth"
)

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := app.Assistant().Dashboard(c.Request.Context(), auth.CurrentSessionID(c))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build dashboard")
			return
		}
		HandleSuccess(c, app.Logger(), d, nil)
	}
}

func PostMealPlan(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, err := app.Assistant().GeneratePlan(c.Request.Context(), auth.CurrentSessionID(c))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to generate meal plan")
			return
		}
		HandleSuccess(c, app.Logger(), plan, nil)
	}
}
