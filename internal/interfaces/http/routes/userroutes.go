package routes

import (
	"github.com/gin-gonic/gin"

	"inqboard/internal/interfaces/http/handlers"
	"inqboard/internal/interfaces/http/middleware"
	"inqboard/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", config.UserHandler.Create)
		users.GET("", config.UserHandler.List)
		users.PUT("/:id", config.UserHandler.Update)
		users.DELETE("/:id", config.UserHandler.Delete)
	}
}
