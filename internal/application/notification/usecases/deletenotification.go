package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteNotificationCommand struct {
	NotificationID uint
	ActorID        uint
	ActorRole      string
}

type DeleteNotificationResult struct {
	NotificationID uint
}

// DeleteNotificationUseCase removes a single notification. Deletion is
// gated to the recipient or an admin; other staff cannot clear someone
// else's inbox.
type DeleteNotificationUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) (*DeleteNotificationResult, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to load notification for delete", "error", err, "notification_id", cmd.NotificationID)
		return nil, err
	}

	if !authorization.CanDeleteNotification(cmd.ActorID, cmd.ActorRole, n.UserID()) {
		return nil, errors.NewForbiddenError("not allowed to delete this notification")
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification", "error", err, "notification_id", cmd.NotificationID)
		return nil, err
	}

	uc.logger.Infow("notification deleted", "notification_id", cmd.NotificationID)

	return &DeleteNotificationResult{NotificationID: cmd.NotificationID}, nil
}
