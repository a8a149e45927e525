package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/value_objects"
	apperrors "helpdesk/internal/shared/errors"
)

func TestDeleteAttachmentUseCase_Execute_Authorization(t *testing.T) {
	tests := []struct {
		name      string
		actorID   uint
		actorRole uvo.Role
		allowed   bool
	}{
		{"uploader may delete", 2, uvo.RoleUser, true},
		{"admin may delete", 9, uvo.RoleAdmin, true},
		{"assigned agent may delete", 3, uvo.RoleAgent, true},
		{"unassigned agent may not", 4, uvo.RoleAgent, false},
		{"other user may not", 5, uvo.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			tickets := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return makeTicket(t, id, 1, uintPtr(3)), nil
				},
			}
			attachments := &mockAttachmentRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Attachment, error) {
					return makeAttachment(t, id, 10, 2), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}
			users := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return makeUser(t, id, tt.actorRole), nil
				},
			}

			useCase := NewDeleteAttachmentUseCase(tickets, attachments, users, &mockLogger{})
			result, err := useCase.Execute(context.Background(), DeleteAttachmentCommand{
				AttachmentID: 77,
				ActorID:      tt.actorID,
			})

			if tt.allowed {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.True(t, deleted)
			} else {
				require.Error(t, err)
				assert.True(t, apperrors.IsForbiddenError(err))
				assert.False(t, deleted)
			}
		})
	}
}

func TestDeleteAttachmentUseCase_Execute_MissingActor(t *testing.T) {
	tickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return makeTicket(t, id, 1, nil), nil
		},
	}
	attachments := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Attachment, error) {
			return makeAttachment(t, id, 10, 2), nil
		},
	}
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewDeleteAttachmentUseCase(tickets, attachments, users, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteAttachmentCommand{
		AttachmentID: 77,
		ActorID:      5,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListAttachmentsUseCase_Execute_JoinsUploader(t *testing.T) {
	attachments := &mockAttachmentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{
				makeAttachment(t, 2, ticketID, 1),
				makeAttachment(t, 1, ticketID, 1),
			}, nil
		},
	}
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, id, uvo.RoleUser), nil
		},
	}

	useCase := NewListAttachmentsUseCase(attachments, users, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListAttachmentsQuery{TicketID: 10})

	require.NoError(t, err)
	require.Len(t, result.Attachments, 2)
	assert.Equal(t, uint(2), result.Attachments[0].ID)
	require.NotNil(t, result.Attachments[0].Uploader)
	assert.Equal(t, "someone", result.Attachments[0].Uploader.Name)
}
