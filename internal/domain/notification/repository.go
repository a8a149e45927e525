package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	Delete(ctx context.Context, id uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
}
