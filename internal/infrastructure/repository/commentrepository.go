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

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewCommentRepository(db *gorm.DB, mapper mappers.TicketMapper, logger logger.Interface) ticket.CommentRepository {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mapper,
		logger: logger,
	}
}

func (r *CommentRepositoryImpl) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save comment", "error", err, "ticket_id", c.TicketID())
		return apperrors.NewInternalError("failed to save comment", err.Error())
	}
	c.SetID(model.ID)
	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, apperrors.NewInternalError("failed to get comment", err.Error())
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepositoryImpl) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list comments", err.Error())
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, model := range commentModels {
		c, err := r.mapper.CommentToDomain(model)
		if err != nil {
			r.logger.Warnw("skipping unmappable comment row", "error", err, "comment_id", model.ID)
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CommentModel{}, commentID).Error; err != nil {
		r.logger.Errorw("failed to delete comment", "error", err, "comment_id", commentID)
		return apperrors.NewInternalError("failed to delete comment", err.Error())
	}
	return nil
}

func (r *CommentRepositoryImpl) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Delete(&models.CommentModel{}).Error; err != nil {
		return apperrors.NewInternalError("failed to delete ticket comments", err.Error())
	}
	return nil
}
