package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ResolveUserCommand struct {
	ExternalID string
	Email      string
	Name       string
	Role       string
}

type ResolveUserResult struct {
	UserID     uint
	ExternalID string
	Email      string
	Name       string
	Role       string
	CreatedAt  time.Time
}

// ResolveUserUseCase maps an external identity onto the internal user
// record, creating it on first sight. Concurrent first requests race on
// the unique external id index; the loser re-reads and returns the
// winner's row.
type ResolveUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewResolveUserUseCase(userRepo user.UserRepository, logger logger.Interface) *ResolveUserUseCase {
	return &ResolveUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ResolveUserUseCase) Execute(ctx context.Context, cmd ResolveUserCommand) (*ResolveUserResult, error) {
	if cmd.ExternalID == "" {
		return nil, errors.NewValidationError("external ID is required")
	}

	existing, err := uc.userRepo.GetByExternalID(ctx, cmd.ExternalID)
	if err == nil {
		return resolveResult(existing), nil
	}
	if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up user by external ID", "error", err)
		return nil, err
	}

	role := cmd.Role
	if role == "" {
		role = constants.RoleUser
	}

	newUser, err := user.NewUser(cmd.ExternalID, cmd.Email, cmd.Name, vo.Role(role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			uc.logger.Infow("lost creation race for external identity, re-reading",
				"external_id", cmd.ExternalID)
			winner, readErr := uc.userRepo.GetByExternalID(ctx, cmd.ExternalID)
			if readErr != nil {
				return nil, readErr
			}
			return resolveResult(winner), nil
		}
		uc.logger.Errorw("failed to create user", "error", err, "external_id", cmd.ExternalID)
		return nil, err
	}

	uc.logger.Infow("user created on first sight", "user_id", newUser.ID(), "external_id", cmd.ExternalID)

	return resolveResult(newUser), nil
}

func resolveResult(u *user.User) *ResolveUserResult {
	return &ResolveUserResult{
		UserID:     u.ID(),
		ExternalID: u.ExternalID(),
		Email:      u.Email(),
		Name:       u.Name(),
		Role:       u.Role().String(),
		CreatedAt:  u.CreatedAt(),
	}
}
