package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/constants"
	apperrors "helpdesk/internal/shared/errors"
)

func TestDeleteCommentUseCase_Execute_Authorization(t *testing.T) {
	tests := []struct {
		name      string
		actorID   uint
		actorRole string
		allowed   bool
	}{
		{"author may delete", 2, constants.RoleUser, true},
		{"admin may delete", 9, constants.RoleAdmin, true},
		{"assigned agent may delete", 3, constants.RoleAgent, true},
		{"unassigned agent may not", 4, constants.RoleAgent, false},
		{"other user may not", 5, constants.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := makeTicket(t, 10, 1, uintPtr(3), tvo.StatusOpen)
			deleted := false

			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}
			comments := &mockCommentRepository{
				GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
					return makeComment(t, 55, 10, 2, "some comment", false), nil
				},
				DeleteFunc: func(ctx context.Context, commentID uint) error {
					deleted = true
					return nil
				},
			}

			useCase := NewDeleteCommentUseCase(mockRepo, comments, &mockLogger{})
			result, err := useCase.Execute(context.Background(), DeleteCommentCommand{
				CommentID: 55,
				ActorID:   tt.actorID,
				ActorRole: tt.actorRole,
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

func TestDeleteCommentUseCase_Execute_CommentNotFound(t *testing.T) {
	comments := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return nil, apperrors.NewNotFoundError("comment not found")
		},
	}

	useCase := NewDeleteCommentUseCase(&mockTicketRepository{}, comments, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteCommentCommand{
		CommentID: 99,
		ActorID:   1,
		ActorRole: constants.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteCommentUseCase_Execute_ParentTicketMissing(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}
	comments := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return makeComment(t, 55, 10, 2, "orphan", false), nil
		},
	}

	useCase := NewDeleteCommentUseCase(mockRepo, comments, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteCommentCommand{
		CommentID: 55,
		ActorID:   1,
		ActorRole: constants.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
