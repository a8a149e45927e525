package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

// GetTicketUseCase returns a ticket joined with creator and assignee
// snapshots. A missing ticket yields (nil, nil); the transport layer
// decides how absence is surfaced.
type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	creator := uc.lookupSnapshot(ctx, t.CreatorID())

	var assignee *dto.UserSnapshot
	if t.AssigneeID() != nil {
		assignee = uc.lookupSnapshot(ctx, *t.AssigneeID())
	}

	return ticketDTO(t, creator, assignee), nil
}

// lookupSnapshot tolerates dangling user references: relationships are
// application-managed, so a deleted user leaves a nil snapshot rather
// than failing the read.
func (uc *GetTicketUseCase) lookupSnapshot(ctx context.Context, userID uint) *dto.UserSnapshot {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Debugw("referenced user not resolvable", "error", err, "user_id", userID)
		return nil
	}
	return userSnapshot(u)
}
