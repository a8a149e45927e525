package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	nvo "helpdesk/internal/domain/notification/value_objects"
)

// Notifier dispatches notification records for ticket and comment
// events. The application notification dispatcher satisfies it.
type Notifier interface {
	Notify(ctx context.Context, recipientID uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error
	NotifyStaff(ctx context.Context, exclude *uint, ntype nvo.NotificationType, title, message string, ticketID, fromUserID *uint) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type SearchTicketsExecutor interface {
	Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error)
}
