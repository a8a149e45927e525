package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct{}

type UserItem struct {
	UserID     uint
	ExternalID string
	Email      string
	Name       string
	Role       string
	CreatedAt  time.Time
}

type ListUsersResult struct {
	Users []UserItem
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, _ ListUsersQuery) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{Users: userItems(users)}, nil
}

func userItems(users []*user.User) []UserItem {
	items := make([]UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserItem{
			UserID:     u.ID(),
			ExternalID: u.ExternalID(),
			Email:      u.Email(),
			Name:       u.Name(),
			Role:       u.Role().String(),
			CreatedAt:  u.CreatedAt(),
		})
	}
	return items
}
