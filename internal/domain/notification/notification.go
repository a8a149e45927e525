package notification

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/shared/biztime"
)

// Notification is a per-recipient record produced as a side effect of
// ticket and comment events. Read state starts false and only ever
// moves to true.
type Notification struct {
	id         uint
	userID     uint
	ntype      vo.NotificationType
	title      string
	message    string
	ticketID   *uint
	fromUserID *uint
	read       bool
	createdAt  time.Time
}

func NewNotification(
	userID uint,
	ntype vo.NotificationType,
	title string,
	message string,
	ticketID *uint,
	fromUserID *uint,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("recipient user ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		userID:     userID,
		ntype:      ntype,
		title:      title,
		message:    message,
		ticketID:   ticketID,
		fromUserID: fromUserID,
		read:       false,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	ntype vo.NotificationType,
	title string,
	message string,
	ticketID *uint,
	fromUserID *uint,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("recipient user ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}

	return &Notification{
		id:         id,
		userID:     userID,
		ntype:      ntype,
		title:      title,
		message:    message,
		ticketID:   ticketID,
		fromUserID: fromUserID,
		read:       read,
		createdAt:  createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	return n.ntype
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) TicketID() *uint {
	return n.ticketID
}

func (n *Notification) FromUserID() *uint {
	return n.fromUserID
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. Marking an already-read notification
// is a no-op success.
func (n *Notification) MarkAsRead() {
	n.read = true
}
