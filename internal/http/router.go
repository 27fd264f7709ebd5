// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelrelay/internal/http/handlers"
	"travelrelay/internal/http/middleware"
	"travelrelay/internal/modules/query"
)

type RouterDeps struct {
	Queries       *query.Service
	AdminUser     string
	AdminPassword string
	Log           zerolog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(deps.Log), middleware.Recovery(deps.Log), middleware.CORS())

	chatHandler := handlers.NewChatHandler(deps.Queries, deps.Log)
	r.POST("/chat", chatHandler.Chat)

	adminHandler := handlers.NewAdminHandler(deps.Queries, deps.Log)
	admin := r.Group("/admin", middleware.BasicAuth(deps.AdminUser, deps.AdminPassword))
	admin.GET("/queries", adminHandler.Queries)
	admin.GET("/analytics", adminHandler.Analytics)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
