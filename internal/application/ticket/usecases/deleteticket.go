package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole string
}

type DeleteTicketResult struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and everything hanging off it.
// The cascade runs attachments, notifications, comments, then the
// ticket itself, without a wrapping transaction; a failed child cleanup
// is logged and the cascade keeps going.
type DeleteTicketUseCase struct {
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
	attachmentRepo   ticket.AttachmentRepository
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:       ticketRepo,
		commentRepo:      commentRepo,
		attachmentRepo:   attachmentRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !authorization.CanDeleteTicket(cmd.ActorRole) {
		return nil, errors.NewForbiddenError("only admins can delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to load ticket for delete", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if err := uc.attachmentRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to delete ticket attachments", "error", err, "ticket_id", cmd.TicketID)
	}

	if err := uc.notificationRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to delete ticket notifications", "error", err, "ticket_id", cmd.TicketID)
	}

	if err := uc.commentRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to delete ticket comments", "error", err, "ticket_id", cmd.TicketID)
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
