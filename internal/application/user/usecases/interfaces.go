package usecases

import "context"

// InviteSender abstracts the identity provider's invitation API. The
// SMTP fallback implements the same interface.
type InviteSender interface {
	SendInvite(ctx context.Context, email, roleHint string) error
}

type ResolveUserExecutor interface {
	Execute(ctx context.Context, cmd ResolveUserCommand) (*ResolveUserResult, error)
}

type SetUserRoleExecutor interface {
	Execute(ctx context.Context, cmd SetUserRoleCommand) (*SetUserRoleResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error)
}

type InviteUserExecutor interface {
	Execute(ctx context.Context, cmd InviteUserCommand) (*InviteUserResult, error)
}
