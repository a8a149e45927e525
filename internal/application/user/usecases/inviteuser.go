package usecases

import (
	"context"
	"strings"

	vo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type InviteUserCommand struct {
	Email     string
	Role      string
	ActorID   uint
	ActorRole string
}

type InviteUserResult struct {
	Email string
}

// InviteUserUseCase asks the identity provider to invite a new member.
// The invited role is a hint carried in the invitation; the definitive
// role is still set on first resolve or by an admin afterwards.
type InviteUserUseCase struct {
	inviteSender InviteSender
	logger       logger.Interface
}

func NewInviteUserUseCase(inviteSender InviteSender, logger logger.Interface) *InviteUserUseCase {
	return &InviteUserUseCase{
		inviteSender: inviteSender,
		logger:       logger,
	}
}

func (uc *InviteUserUseCase) Execute(ctx context.Context, cmd InviteUserCommand) (*InviteUserResult, error) {
	uc.logger.Infow("executing invite user use case", "email", cmd.Email, "actor_id", cmd.ActorID)

	if !authorization.IsAdmin(cmd.ActorRole) {
		return nil, errors.NewUnauthorizedError("only admins can invite users")
	}

	email := strings.TrimSpace(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("a valid email address is required")
	}

	role := cmd.Role
	if role == "" {
		role = string(vo.RoleUser)
	}
	if !vo.Role(role).IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	if err := uc.inviteSender.SendInvite(ctx, email, role); err != nil {
		uc.logger.Errorw("identity provider invitation failed", "error", err, "email", email)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewUpstreamError("failed to send invitation")
	}

	uc.logger.Infow("invitation sent", "email", email, "role", role)

	return &InviteUserResult{Email: email}, nil
}
