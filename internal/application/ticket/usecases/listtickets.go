package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	ActorID    uint
	ActorRole  string
	Status     *string
	Priority   *string
	AssigneeID *uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets    []*dto.TicketDTO
	TotalCount int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != nil {
		status := vo.TicketStatus(*query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority := vo.Priority(*query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	// End users only ever see their own tickets, whatever filters they ask for.
	if !authorization.IsStaff(query.ActorRole) {
		creatorID := query.ActorID
		filter.CreatorID = &creatorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:    uc.joinSnapshots(ctx, tickets),
		TotalCount: total,
	}, nil
}

func (uc *ListTicketsUseCase) joinSnapshots(ctx context.Context, tickets []*ticket.Ticket) []*dto.TicketDTO {
	cache := make(map[uint]*dto.UserSnapshot)

	lookup := func(userID uint) *dto.UserSnapshot {
		if snap, ok := cache[userID]; ok {
			return snap
		}
		var snap *dto.UserSnapshot
		if u, err := uc.userRepo.GetByID(ctx, userID); err == nil {
			snap = userSnapshot(u)
		}
		cache[userID] = snap
		return snap
	}

	result := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		var assignee *dto.UserSnapshot
		if t.AssigneeID() != nil {
			assignee = lookup(*t.AssigneeID())
		}
		result = append(result, ticketDTO(t, lookup(t.CreatorID()), assignee))
	}
	return result
}
