package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID uint
}

// TicketRef is the slim ticket view embedded in a notification item.
type TicketRef struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type UserRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type NotificationItem struct {
	ID         uint       `json:"id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	TicketID   *uint      `json:"ticket_id,omitempty"`
	FromUserID *uint      `json:"from_user_id,omitempty"`
	Ticket     *TicketRef `json:"ticket,omitempty"`
	FromUser   *UserRef   `json:"from_user,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []*NotificationItem
}

// ListNotificationsUseCase returns the recipient's newest notifications,
// capped, each joined with its related ticket and originating user when
// those still exist.
type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	ticketRepo       ticket.TicketRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		ticketRepo:       ticketRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	notifications, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, constants.NotificationListLimit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	ticketCache := make(map[uint]*TicketRef)
	userCache := make(map[uint]*UserRef)

	items := make([]*NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		item := &NotificationItem{
			ID:         n.ID(),
			Type:       n.Type().String(),
			Title:      n.Title(),
			Message:    n.Message(),
			Read:       n.IsRead(),
			TicketID:   n.TicketID(),
			FromUserID: n.FromUserID(),
			CreatedAt:  n.CreatedAt(),
		}

		if n.TicketID() != nil {
			item.Ticket = uc.lookupTicket(ctx, ticketCache, *n.TicketID())
		}
		if n.FromUserID() != nil {
			item.FromUser = uc.lookupUser(ctx, userCache, *n.FromUserID())
		}

		items = append(items, item)
	}

	return &ListNotificationsResult{Notifications: items}, nil
}

func (uc *ListNotificationsUseCase) lookupTicket(ctx context.Context, cache map[uint]*TicketRef, ticketID uint) *TicketRef {
	if ref, ok := cache[ticketID]; ok {
		return ref
	}
	var ref *TicketRef
	if tk, err := uc.ticketRepo.GetByID(ctx, ticketID); err == nil {
		ref = &TicketRef{ID: tk.ID(), Title: tk.Title(), Status: tk.Status().String()}
	}
	cache[ticketID] = ref
	return ref
}

func (uc *ListNotificationsUseCase) lookupUser(ctx context.Context, cache map[uint]*UserRef, userID uint) *UserRef {
	if ref, ok := cache[userID]; ok {
		return ref
	}
	var ref *UserRef
	if u, err := uc.userRepo.GetByID(ctx, userID); err == nil {
		ref = &UserRef{ID: u.ID(), Name: u.Name()}
	}
	cache[userID] = ref
	return ref
}
