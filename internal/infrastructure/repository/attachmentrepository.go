package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AttachmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewAttachmentRepository(db *gorm.DB, mapper mappers.TicketMapper, logger logger.Interface) ticket.AttachmentRepository {
	return &AttachmentRepositoryImpl{
		db:     db,
		mapper: mapper,
		logger: logger,
	}
}

func (r *AttachmentRepositoryImpl) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save attachment", "error", err, "ticket_id", a.TicketID())
		return apperrors.NewInternalError("failed to save attachment", err.Error())
	}
	a.SetID(model.ID)
	return nil
}

func (r *AttachmentRepositoryImpl) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	if err := r.db.WithContext(ctx).First(&model, attachmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("attachment not found")
		}
		return nil, apperrors.NewInternalError("failed to get attachment", err.Error())
	}
	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepositoryImpl) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []*models.AttachmentModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&attachmentModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list attachments", err.Error())
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for _, model := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(model)
		if err != nil {
			r.logger.Warnw("skipping unmappable attachment row", "error", err, "attachment_id", model.ID)
			continue
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *AttachmentRepositoryImpl) Delete(ctx context.Context, attachmentID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.AttachmentModel{}, attachmentID).Error; err != nil {
		r.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", attachmentID)
		return apperrors.NewInternalError("failed to delete attachment", err.Error())
	}
	return nil
}

func (r *AttachmentRepositoryImpl) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return apperrors.NewInternalError("failed to delete ticket attachments", err.Error())
	}
	return nil
}
