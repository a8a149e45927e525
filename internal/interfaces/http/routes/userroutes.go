package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler     *userhandlers.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
	MutationLimiter gin.HandlerFunc
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", config.UserHandler.Me)
		users.GET("/agents", middleware.RequireStaff(), config.UserHandler.ListAgents)
		users.GET("", middleware.RequireStaff(), config.UserHandler.ListUsers)

		users.POST("/invite", config.MutationLimiter, config.UserHandler.InviteUser)
		users.PATCH("/:id/role", config.MutationLimiter, config.UserHandler.SetRole)
	}
}
