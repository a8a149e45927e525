package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, mapper mappers.NotificationMapper, logger logger.Interface) notification.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper,
		logger: logger,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "error", err, "user_id", n.UserID())
		return apperrors.NewInternalError("failed to create notification", err.Error())
	}
	n.SetID(model.ID)
	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		return nil, apperrors.NewInternalError("failed to get notification", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.NotificationModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete notification", "error", err, "notification_id", id)
		return apperrors.NewInternalError("failed to delete notification", err.Error())
	}
	return nil
}

func (r *NotificationRepositoryImpl) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Delete(&models.NotificationModel{}).Error; err != nil {
		return apperrors.NewInternalError("failed to delete ticket notifications", err.Error())
	}
	return nil
}

func (r *NotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	var notificationModels []*models.NotificationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list notifications", err.Error())
	}

	notifications := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		n, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("skipping unmappable notification row", "error", err, "notification_id", model.ID)
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewInternalError("failed to count unread notifications", err.Error())
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true).Error; err != nil {
		return apperrors.NewInternalError("failed to mark notification read", err.Error())
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error; err != nil {
		return apperrors.NewInternalError("failed to mark notifications read", err.Error())
	}
	return nil
}
