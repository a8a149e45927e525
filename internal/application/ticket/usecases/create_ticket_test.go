package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nvo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/value_objects"
	apperrors "helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			require.NoError(t, tkt.SetID(100))
			savedTicket = tkt
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, id, "alice", uvo.RoleUser), nil
		},
	}
	notifier := &mockNotifier{}

	useCase := NewCreateTicketUseCase(mockRepo, mockUsers, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "VPN not connecting",
		Description: "Connection times out since this morning",
		Priority:    string(tvo.PriorityHigh),
		CreatorID:   1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.TicketID)
	assert.Equal(t, tvo.StatusOpen.String(), result.Status)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, savedTicket)
	assert.Equal(t, "VPN not connecting", savedTicket.Title())
	assert.Equal(t, tvo.StatusOpen, savedTicket.Status())

	require.Len(t, notifier.NotifyStaffCalls, 1)
	call := notifier.NotifyStaffCalls[0]
	assert.Nil(t, call.Exclude)
	assert.Equal(t, nvo.TypeTicketCreated, call.Type)
	assert.Equal(t, "New Ticket Created", call.Title)
	assert.Equal(t, "alice created a new high priority ticket: VPN not connecting", call.Message)
	require.NotNil(t, call.TicketID)
	assert.Equal(t, uint(100), *call.TicketID)
	require.NotNil(t, call.FromUserID)
	assert.Equal(t, uint(1), *call.FromUserID)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "empty title",
			command: CreateTicketCommand{
				Title:       "   ",
				Description: "desc",
				Priority:    string(tvo.PriorityLow),
				CreatorID:   1,
			},
		},
		{
			name: "whitespace description",
			command: CreateTicketCommand{
				Title:       "title",
				Description: "\t\n ",
				Priority:    string(tvo.PriorityLow),
				CreatorID:   1,
			},
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Title:       "title",
				Description: "desc",
				Priority:    "critical",
				CreatorID:   1,
			},
		},
		{
			name: "missing creator",
			command: CreateTicketCommand{
				Title:       "title",
				Description: "desc",
				Priority:    string(tvo.PriorityLow),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mockNotifier{}
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, notifier, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Empty(t, notifier.NotifyStaffCalls)
		})
	}
}

func TestCreateTicketUseCase_Execute_SaveError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, id, "alice", uvo.RoleUser), nil
		},
	}
	notifier := &mockNotifier{}

	useCase := NewCreateTicketUseCase(mockRepo, mockUsers, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "title",
		Description: "desc",
		Priority:    string(tvo.PriorityMedium),
		CreatorID:   1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, notifier.NotifyStaffCalls)
}

func TestCreateTicketUseCase_Execute_NotificationFailureDoesNotFail(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(7)
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, id, "alice", uvo.RoleUser), nil
		},
	}
	notifier := &mockNotifier{
		NotifyStaffFunc: func(ctx context.Context, exclude *uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error {
			return errors.New("notification store down")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockUsers, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "title",
		Description: "desc",
		Priority:    string(tvo.PriorityLow),
		CreatorID:   1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.TicketID)
}
