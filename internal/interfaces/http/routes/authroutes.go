package routes

import (
	"github.com/gin-gonic/gin"

	"inqboard/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
	}
}
