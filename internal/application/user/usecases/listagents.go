package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListAgentsQuery struct{}

type ListAgentsResult struct {
	Agents []UserItem
}

// ListAgentsUseCase returns every agent and admin, the population
// assignment pickers and staff fan-outs draw from.
type ListAgentsUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListAgentsUseCase(userRepo user.UserRepository, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, _ ListAgentsQuery) (*ListAgentsResult, error) {
	staff, err := uc.userRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, err
	}

	return &ListAgentsResult{Agents: userItems(staff)}, nil
}
