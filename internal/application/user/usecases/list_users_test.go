package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/value_objects"
)

func TestListUsersUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				existingUser(t, 2, "ext_2", vo.RoleAdmin),
				existingUser(t, 1, "ext_1", vo.RoleUser),
			}, nil
		},
	}

	useCase := NewListUsersUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUsersQuery{})

	require.NoError(t, err)
	require.Len(t, result.Users, 2)
	assert.Equal(t, uint(2), result.Users[0].UserID)
}

func TestListAgentsUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		ListStaffFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				existingUser(t, 3, "ext_3", vo.RoleAgent),
				existingUser(t, 4, "ext_4", vo.RoleAdmin),
			}, nil
		},
	}

	useCase := NewListAgentsUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListAgentsQuery{})

	require.NoError(t, err)
	require.Len(t, result.Agents, 2)
	for _, a := range result.Agents {
		assert.Contains(t, []string{"agent", "admin"}, a.Role)
	}
}
