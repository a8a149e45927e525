package mappers

import (
	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:         n.ID(),
		UserID:     n.UserID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		TicketID:   n.TicketID(),
		FromUserID: n.FromUserID(),
		Read:       n.IsRead(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.TicketID,
		model.FromUserID,
		model.Read,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
