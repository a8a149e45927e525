package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type SearchTicketsQuery struct {
	ActorID   uint
	ActorRole string
	Term      string
}

type SearchTicketsResult struct {
	Tickets []*dto.TicketDTO
}

// SearchTicketsUseCase matches the term case-insensitively against
// title and description. An empty or whitespace-only term returns an
// empty result without touching the store.
type SearchTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error) {
	term := strings.TrimSpace(query.Term)
	if term == "" {
		return &SearchTicketsResult{Tickets: []*dto.TicketDTO{}}, nil
	}

	tickets, err := uc.ticketRepo.Search(ctx, term)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "error", err, "term", term)
		return nil, err
	}

	staff := authorization.IsStaff(query.ActorRole)

	result := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		if !staff && t.CreatorID() != query.ActorID {
			continue
		}
		result = append(result, ticketDTO(t, nil, nil))
	}

	return &SearchTicketsResult{Tickets: result}, nil
}
