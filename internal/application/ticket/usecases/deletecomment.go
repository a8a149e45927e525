package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	ActorID   uint
	ActorRole string
}

type DeleteCommentResult struct {
	CommentID uint
}

// DeleteCommentUseCase removes a comment when the actor is its author,
// an admin, or the agent assigned to the parent ticket.
type DeleteCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "actor_id", cmd.ActorID)

	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to load comment for delete", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, comment.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load parent ticket", "error", err, "ticket_id", comment.TicketID())
		return nil, err
	}

	if !authorization.CanDeleteComment(cmd.ActorID, cmd.ActorRole, comment.UserID(), t.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to delete this comment")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	t.Touch()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to bump ticket activity timestamp", "error", err, "ticket_id", t.ID())
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)

	return &DeleteCommentResult{CommentID: cmd.CommentID}, nil
}
