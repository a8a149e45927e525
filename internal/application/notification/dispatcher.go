// Package notification provides the dispatcher that turns lifecycle and
// comment events into per-recipient notification records, plus the use
// cases for reading and mutating notification state.
package notification

import (
	"context"

	domain "helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// Dispatcher inserts notification records. Notifications are advisory:
// callers that have already committed their primary write log dispatch
// failures instead of rolling back.
type Dispatcher struct {
	notificationRepo domain.NotificationRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewDispatcher(
	notificationRepo domain.NotificationRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Notify inserts a single unread notification. Repeated triggering
// events always produce additional rows; nothing is deduplicated.
func (d *Dispatcher) Notify(
	ctx context.Context,
	recipientID uint,
	ntype vo.NotificationType,
	title string,
	message string,
	ticketID *uint,
	fromUserID *uint,
) error {
	n, err := domain.NewNotification(recipientID, ntype, title, message, ticketID, fromUserID)
	if err != nil {
		return err
	}

	if err := d.notificationRepo.Create(ctx, n); err != nil {
		d.logger.Errorw("failed to create notification",
			"error", err, "recipient_id", recipientID, "type", ntype.String())
		return err
	}

	return nil
}

// NotifyStaff fans out one notification per agent/admin, skipping the
// excluded user when set. A failed insert for one recipient does not
// stop the fan-out to the rest.
func (d *Dispatcher) NotifyStaff(
	ctx context.Context,
	exclude *uint,
	ntype vo.NotificationType,
	title string,
	message string,
	ticketID *uint,
	fromUserID *uint,
) error {
	staff, err := d.userRepo.ListStaff(ctx)
	if err != nil {
		d.logger.Errorw("failed to list staff for notification fan-out", "error", err)
		return err
	}

	for _, member := range staff {
		if exclude != nil && member.ID() == *exclude {
			continue
		}
		if err := d.Notify(ctx, member.ID(), ntype, title, message, ticketID, fromUserID); err != nil {
			d.logger.Warnw("notification fan-out partially failed",
				"error", err, "recipient_id", member.ID())
		}
	}

	return nil
}
