package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Comment bodies come from a rich-text editor; everything outside the
// UGC whitelist is stripped before the content reaches the domain.
var commentSanitizer = bluemonday.UGCPolicy()

type AddCommentCommand struct {
	TicketID   uint
	UserID     uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.UserRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID, "user_id", cmd.UserID, "is_internal", cmd.IsInternal)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket for comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load comment author", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	content := commentSanitizer.Sanitize(cmd.Content)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	// Comment activity counts as ticket activity.
	t.Touch()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to bump ticket activity timestamp", "error", err, "ticket_id", cmd.TicketID)
	}

	uc.dispatchCommentNotifications(ctx, t, author, cmd)

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) dispatchCommentNotifications(
	ctx context.Context,
	t *ticket.Ticket,
	author *user.User,
	cmd AddCommentCommand,
) {
	ticketID := t.ID()
	authorID := author.ID()

	if cmd.IsInternal {
		message := fmt.Sprintf("%s added an internal note to: %s", author.Name(), t.Title())
		if err := uc.notifier.NotifyStaff(ctx, &authorID, nvo.TypeInternalNoteAdded,
			"Internal Note Added", message, &ticketID, &authorID); err != nil {
			uc.logger.Warnw("internal note notification fan-out failed", "error", err, "ticket_id", ticketID)
		}
		return
	}

	// External replies notify the ticket creator unless they wrote it.
	if t.CreatorID() == authorID {
		return
	}

	message := fmt.Sprintf("%s replied to your ticket: %s", author.Name(), t.Title())
	if err := uc.notifier.Notify(ctx, t.CreatorID(), nvo.TypeCommentAdded,
		"New Reply on Your Ticket", message, &ticketID, &authorID); err != nil {
		uc.logger.Warnw("comment notification failed", "error", err, "ticket_id", ticketID)
	}
}
