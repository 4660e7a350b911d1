package routes

import (
	"github.com/gin-gonic/gin"

	"inqboard/internal/interfaces/http/handlers"
	"inqboard/internal/interfaces/http/middleware"
	"inqboard/internal/shared/authorization"
)

type ServerRouteConfig struct {
	ServerHandler  *handlers.ServerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupServerRoutes configures the target-server registry routes. The
// registry stores SSH and database credentials, so everything here is
// admin-only.
func SetupServerRoutes(engine *gin.Engine, config *ServerRouteConfig) {
	servers := engine.Group("/servers")
	servers.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		servers.POST("", config.ServerHandler.Create)
		servers.GET("", config.ServerHandler.List)
		servers.GET("/:id", config.ServerHandler.Get)
		servers.PUT("/:id", config.ServerHandler.Update)
		servers.DELETE("/:id", config.ServerHandler.Delete)
	}
}
