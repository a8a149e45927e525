package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SetUserRoleCommand struct {
	TargetUserID uint
	Role         string
	ActorID      uint
	ActorRole    string
}

type SetUserRoleResult struct {
	UserID uint
	Role   string
}

type SetUserRoleUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewSetUserRoleUseCase(userRepo user.UserRepository, logger logger.Interface) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetUserRoleUseCase) Execute(ctx context.Context, cmd SetUserRoleCommand) (*SetUserRoleResult, error) {
	uc.logger.Infow("executing set user role use case",
		"target_user_id", cmd.TargetUserID, "role", cmd.Role, "actor_id", cmd.ActorID)

	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("target user ID is required")
	}

	if !authorization.CanChangeRole(cmd.ActorRole) {
		return nil, errors.NewUnauthorizedError("only admins can change user roles")
	}

	role := vo.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for role change", "error", err, "user_id", cmd.TargetUserID)
		return nil, err
	}

	if err := target.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to persist role change", "error", err, "user_id", cmd.TargetUserID)
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", target.ID(), "role", role.String())

	return &SetUserRoleResult{
		UserID: target.ID(),
		Role:   target.Role().String(),
	}, nil
}
