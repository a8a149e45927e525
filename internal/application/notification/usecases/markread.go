package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkReadCommand struct {
	NotificationID uint
	ActorID        uint
}

type MarkReadResult struct {
	NotificationID uint
}

// MarkReadUseCase flips a notification to read. Marking an already-read
// notification succeeds without effect.
type MarkReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "error", err, "notification_id", cmd.NotificationID)
		return nil, err
	}

	if n.UserID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "error", err, "notification_id", cmd.NotificationID)
		return nil, err
	}

	return &MarkReadResult{NotificationID: cmd.NotificationID}, nil
}
