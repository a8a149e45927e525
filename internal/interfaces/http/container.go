// Package http wires infrastructure, use cases, handlers, and routes
// into a runnable gin engine.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	attachmentUsecases "helpdesk/internal/application/attachment/usecases"
	notificationApp "helpdesk/internal/application/notification"
	notificationUsecases "helpdesk/internal/application/notification/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/identity"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	notificationhandlers "helpdesk/internal/interfaces/http/handlers/notification"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

const (
	mutationRateLimit  = 60
	mutationRateWindow = time.Minute
)

// Container holds the wired application graph behind the HTTP server.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS())

	// Repositories
	userRepo := repository.NewUserRepository(db, mappers.NewUserMapper(), log)
	ticketMapper := mappers.NewTicketMapper()
	ticketRepo := repository.NewTicketRepository(db, ticketMapper, log)
	commentRepo := repository.NewCommentRepository(db, ticketMapper, log)
	attachmentRepo := repository.NewAttachmentRepository(db, ticketMapper, log)
	notificationRepo := repository.NewNotificationRepository(db, mappers.NewNotificationMapper(), log)

	// Infrastructure services
	verifier := identity.NewTokenVerifier(cfg.Identity)
	blobStore, err := storage.NewLocalBlobStore(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	var inviteSender userUsecases.InviteSender
	inviteClient := identity.NewInviteClient(cfg.Identity, log)
	if inviteClient.Configured() {
		inviteSender = inviteClient
	} else {
		inviteSender = email.NewSMTPInviteSender(cfg.Email, log)
	}

	dispatcher := notificationApp.NewDispatcher(notificationRepo, userRepo, log)

	// Use cases
	resolveUserUC := userUsecases.NewResolveUserUseCase(userRepo, log)
	setRoleUC := userUsecases.NewSetUserRoleUseCase(userRepo, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)
	listAgentsUC := userUsecases.NewListAgentsUseCase(userRepo, log)
	inviteUserUC := userUsecases.NewInviteUserUseCase(inviteSender, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, attachmentRepo, notificationRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	searchTicketsUC := ticketUsecases.NewSearchTicketsUseCase(ticketRepo, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, dispatcher, log)
	listCommentsUC := ticketUsecases.NewListCommentsUseCase(commentRepo, userRepo, log)
	deleteCommentUC := ticketUsecases.NewDeleteCommentUseCase(ticketRepo, commentRepo, log)

	requestUploadUC := attachmentUsecases.NewRequestUploadUseCase(blobStore, log)
	registerAttachmentUC := attachmentUsecases.NewRegisterAttachmentUseCase(ticketRepo, attachmentRepo, userRepo, blobStore, log)
	listAttachmentsUC := attachmentUsecases.NewListAttachmentsUseCase(attachmentRepo, userRepo, log)
	deleteAttachmentUC := attachmentUsecases.NewDeleteAttachmentUseCase(ticketRepo, attachmentRepo, userRepo, log)

	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(notificationRepo, ticketRepo, userRepo, log)
	unreadCountUC := notificationUsecases.NewUnreadCountUseCase(notificationRepo, log)
	markReadUC := notificationUsecases.NewMarkReadUseCase(notificationRepo, log)
	markAllReadUC := notificationUsecases.NewMarkAllReadUseCase(notificationRepo, log)
	deleteNotificationUC := notificationUsecases.NewDeleteNotificationUseCase(notificationRepo, log)

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, deleteTicketUC, getTicketUC, listTicketsUC, searchTicketsUC)
	commentHandler := tickethandlers.NewCommentHandler(addCommentUC, listCommentsUC, deleteCommentUC)
	attachmentHandler := attachmenthandlers.NewAttachmentHandler(
		requestUploadUC, registerAttachmentUC, listAttachmentsUC, deleteAttachmentUC, blobStore)
	userHandler := userhandlers.NewUserHandler(setRoleUC, listUsersUC, listAgentsUC, inviteUserUC)
	notificationHandler := notificationhandlers.NewNotificationHandler(
		listNotificationsUC, unreadCountUC, markReadUC, markAllReadUC, deleteNotificationUC)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(verifier, resolveUserUC, log)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	mutationLimiter := middleware.RateLimit(limiter, mutationRateLimit, mutationRateWindow)

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:     ticketHandler,
		CommentHandler:    commentHandler,
		AttachmentHandler: attachmentHandler,
		AuthMiddleware:    authMiddleware,
		MutationLimiter:   mutationLimiter,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:     userHandler,
		AuthMiddleware:  authMiddleware,
		MutationLimiter: mutationLimiter,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
		MutationLimiter:     mutationLimiter,
	})
	routes.SetupAttachmentRoutes(engine, &routes.AttachmentRouteConfig{
		AttachmentHandler: attachmentHandler,
		AuthMiddleware:    authMiddleware,
		MutationLimiter:   mutationLimiter,
	})

	return &Container{
		engine: engine,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}, nil
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases container-held resources.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
