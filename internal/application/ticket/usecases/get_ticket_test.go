package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/value_objects"
	apperrors "helpdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute_AbsentTicketIsNilNil(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockUserRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 99})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetTicketUseCase_Execute_JoinsSnapshots(t *testing.T) {
	existing := makeTicket(t, 10, 1, uintPtr(3), tvo.StatusOpen)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			switch id {
			case 1:
				return makeUser(t, 1, "alice", uvo.RoleUser), nil
			case 3:
				return makeUser(t, 3, "bob", uvo.RoleAgent), nil
			}
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, users, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 10})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ID)
	require.NotNil(t, result.Creator)
	assert.Equal(t, "alice", result.Creator.Name)
	require.NotNil(t, result.Assignee)
	assert.Equal(t, "bob", result.Assignee.Name)
}

func TestGetTicketUseCase_Execute_DanglingCreatorLeavesNilSnapshot(t *testing.T) {
	existing := makeTicket(t, 10, 1, nil, tvo.StatusOpen)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, users, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 10})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Creator)
	assert.Nil(t, result.Assignee)
}
