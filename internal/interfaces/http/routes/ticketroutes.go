// Package routes registers the HTTP route tree.
package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	CommentHandler    *tickethandlers.CommentHandler
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MutationLimiter   gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.
		tickets.GET("/search", config.TicketHandler.SearchTickets)

		tickets.POST("", config.MutationLimiter, config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/:id/comments", config.MutationLimiter, config.CommentHandler.AddComment)
		tickets.GET("/:id/comments", config.CommentHandler.ListComments)

		tickets.POST("/:id/attachments", config.MutationLimiter, config.AttachmentHandler.RegisterAttachment)
		tickets.GET("/:id/attachments", config.AttachmentHandler.ListAttachments)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.MutationLimiter, config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.MutationLimiter, config.TicketHandler.DeleteTicket)
	}

	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.DELETE("/:id", config.MutationLimiter, config.CommentHandler.DeleteComment)
	}
}
