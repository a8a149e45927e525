package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/constants"
	apperrors "helpdesk/internal/shared/errors"
)

func TestInviteUserUseCase_Execute_AdminOnly(t *testing.T) {
	sender := &mockInviteSender{}
	useCase := NewInviteUserUseCase(sender, &mockLogger{})

	result, err := useCase.Execute(context.Background(), InviteUserCommand{
		Email:     "new@example.com",
		ActorID:   1,
		ActorRole: constants.RoleAgent,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.Empty(t, sender.Calls)
}

func TestInviteUserUseCase_Execute_Success(t *testing.T) {
	sender := &mockInviteSender{}
	useCase := NewInviteUserUseCase(sender, &mockLogger{})

	result, err := useCase.Execute(context.Background(), InviteUserCommand{
		Email:     "  new@example.com ",
		Role:      constants.RoleAgent,
		ActorID:   1,
		ActorRole: constants.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", result.Email)
	assert.Equal(t, []string{"new@example.com"}, sender.Calls)
}

func TestInviteUserUseCase_Execute_InvalidEmail(t *testing.T) {
	useCase := NewInviteUserUseCase(&mockInviteSender{}, &mockLogger{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		result, err := useCase.Execute(context.Background(), InviteUserCommand{
			Email:     email,
			ActorID:   1,
			ActorRole: constants.RoleAdmin,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	}
}

func TestInviteUserUseCase_Execute_ProviderFaultIsUpstreamError(t *testing.T) {
	sender := &mockInviteSender{
		SendInviteFunc: func(ctx context.Context, email, roleHint string) error {
			return errors.New("connection refused")
		},
	}

	useCase := NewInviteUserUseCase(sender, &mockLogger{})
	result, err := useCase.Execute(context.Background(), InviteUserCommand{
		Email:     "new@example.com",
		ActorID:   1,
		ActorRole: constants.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsUpstreamError(err))
}
