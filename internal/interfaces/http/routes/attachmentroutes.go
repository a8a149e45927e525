package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	"helpdesk/internal/interfaces/http/middleware"
)

type AttachmentRouteConfig struct {
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MutationLimiter   gin.HandlerFunc
}

func SetupAttachmentRoutes(engine *gin.Engine, config *AttachmentRouteConfig) {
	attachments := engine.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.POST("/upload-url", config.MutationLimiter, config.AttachmentHandler.RequestUpload)
		attachments.DELETE("/:id", config.MutationLimiter, config.AttachmentHandler.DeleteAttachment)
	}

	files := engine.Group("/files")
	{
		files.PUT("/upload/:ref", config.AuthMiddleware.RequireAuth(), config.MutationLimiter, config.AttachmentHandler.Upload)
		files.GET("/:ref", config.AttachmentHandler.Download)
	}
}
