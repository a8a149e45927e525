package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	AttachmentID uint
	ActorID      uint
}

type DeleteAttachmentResult struct {
	AttachmentID uint
}

// DeleteAttachmentUseCase removes an attachment record when the actor
// is its uploader, an admin, or the agent assigned to the ticket. The
// actor is re-read from the store so a stale session cannot outlive a
// removed account.
type DeleteAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.UserRepository
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error) {
	uc.logger.Infow("executing delete attachment use case",
		"attachment_id", cmd.AttachmentID, "actor_id", cmd.ActorID)

	if cmd.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to load attachment for delete", "error", err, "attachment_id", cmd.AttachmentID)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, attachment.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load parent ticket", "error", err, "ticket_id", attachment.TicketID())
		return nil, err
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to load actor", "error", err, "user_id", cmd.ActorID)
		return nil, err
	}

	if !authorization.CanDeleteAttachment(actor.ID(), actor.Role().String(), attachment.UploadedBy(), t.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to delete this attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, cmd.AttachmentID); err != nil {
		uc.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", cmd.AttachmentID)
		return nil, err
	}

	uc.logger.Infow("attachment deleted", "attachment_id", cmd.AttachmentID)

	return &DeleteAttachmentResult{AttachmentID: cmd.AttachmentID}, nil
}
