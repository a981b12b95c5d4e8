package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal/auth"
)

// NewRouter wires every route. Origins containing "*" allow any origin.
func NewRouter(app App, origins []string) *gin.Engine {
	r := gin.Default()
	r.Use(RequestIDMiddleware())
	r.Use(cors.New(corsConfig(origins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", PostLogin(app))
	api.GET("/users/:id", GetUser(app))

	// Session-scoped routes
	sess := api.Group("", auth.SessionMiddleware(app.Assistant(), app.Logger()))
	sess.POST("/logout", PostLogout(app))
	sess.GET("/session", GetSession(app))
	sess.GET("/dashboard", GetDashboard(app))
	sess.GET("/chat/messages", GetMessages(app))
	sess.POST("/chat/messages", PostMessage(app))
	sess.POST("/meal-plan", PostMealPlan(app))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	cfg.MaxAge = 12 * time.Hour
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
