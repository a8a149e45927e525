package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkAllReadCommand struct {
	UserID uint
}

type MarkAllReadResult struct {
	UserID uint
}

// MarkAllReadUseCase marks every notification of the user as read.
// Running it with nothing unread is a no-op success.
type MarkAllReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) (*MarkAllReadResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	return &MarkAllReadResult{UserID: cmd.UserID}, nil
}
