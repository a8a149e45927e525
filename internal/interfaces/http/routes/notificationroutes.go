package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "helpdesk/internal/interfaces/http/handlers/notification"
	"helpdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	MutationLimiter     gin.HandlerFunc
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)

		notifications.GET("", config.NotificationHandler.ListNotifications)

		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", config.MutationLimiter, config.NotificationHandler.DeleteNotification)
	}
}
