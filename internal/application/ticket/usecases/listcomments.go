package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID   uint
	ViewerRole string
}

type ListCommentsResult struct {
	Comments []*dto.CommentDTO
}

// ListCommentsUseCase returns a ticket's comments oldest first, joined
// with author snapshots. Internal comments are dropped entirely for
// end-user viewers; their existence never leaks.
type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	showInternal := authorization.CanViewInternalComments(query.ViewerRole)
	cache := make(map[uint]*dto.UserSnapshot)

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		if c.IsInternal() && !showInternal {
			continue
		}

		author, ok := cache[c.UserID()]
		if !ok {
			if u, err := uc.userRepo.GetByID(ctx, c.UserID()); err == nil {
				author = userSnapshot(u)
			}
			cache[c.UserID()] = author
		}

		result = append(result, commentDTO(c, author))
	}

	return &ListCommentsResult{Comments: result}, nil
}
