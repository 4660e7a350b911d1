package routes

import (
	"github.com/gin-gonic/gin"

	"inqboard/internal/interfaces/http/handlers"
	"inqboard/internal/interfaces/http/middleware"
	"inqboard/internal/shared/authorization"
)

type InquiryRouteConfig struct {
	InquiryHandler *handlers.InquiryHandler
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupInquiryRoutes(engine *gin.Engine, config *InquiryRouteConfig) {
	inquiries := engine.Group("/inquiries")
	inquiries.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		inquiries.POST("", config.InquiryHandler.Create)
		inquiries.GET("", config.InquiryHandler.List)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		inquiries.POST("/:id/comments", config.InquiryHandler.AddComment)
		inquiries.DELETE("/:id/comments/:commentId", config.InquiryHandler.DeleteComment)
		inquiries.POST("/:id/attachments", config.UploadHandler.Upload)
		inquiries.POST("/:id/ask-ai", config.InquiryHandler.AskAI)
		inquiries.GET("/:id/process-logs", config.InquiryHandler.ListProcessLogs)
		inquiries.POST("/:id/process",
			authorization.RequireAdmin(),
			config.InquiryHandler.Process)

		// Generic parameterized routes (must come LAST)
		inquiries.GET("/:id", config.InquiryHandler.Get)
		inquiries.PUT("/:id", config.InquiryHandler.Update)
		inquiries.DELETE("/:id", config.InquiryHandler.Delete)
	}
}
