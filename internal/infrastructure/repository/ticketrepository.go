package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, mapper mappers.TicketMapper, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mapper,
		logger: logger,
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save ticket", "error", err, "creator_id", t.CreatorID())
		return apperrors.NewInternalError("failed to save ticket", err.Error())
	}
	t.SetID(model.ID)
	return nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	// Full-row update: partial patches clear assignee_id and cannot rely on
	// gorm's zero-value skipping.
	updates := map[string]interface{}{
		"title":       model.Title,
		"description": model.Description,
		"priority":    model.Priority,
		"status":      model.Status,
		"assignee_id": model.AssigneeID,
		"updated_at":  model.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(updates).Error; err != nil {
		r.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return apperrors.NewInternalError("failed to update ticket", err.Error())
	}
	return nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, ticketID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.TicketModel{}, ticketID).Error; err != nil {
		r.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", ticketID)
		return apperrors.NewInternalError("failed to delete ticket", err.Error())
	}
	return nil
}

func (r *TicketRepositoryImpl) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, apperrors.NewInternalError("failed to get ticket", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", filters.Priority.String())
	}
	if filters.CreatorID != nil {
		query = query.Where("creator_id = ?", *filters.CreatorID)
	}
	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to count tickets", err.Error())
	}

	if filters.Page > 0 && filters.PageSize > 0 {
		query = query.Offset((filters.Page - 1) * filters.PageSize).Limit(filters.PageSize)
	}

	var ticketModels []*models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list tickets", err.Error())
	}

	tickets, err := r.toDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepositoryImpl) Search(ctx context.Context, term string) ([]*ticket.Ticket, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var ticketModels []*models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to search tickets", err.Error())
	}
	return r.toDomainList(ticketModels)
}

func (r *TicketRepositoryImpl) toDomainList(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("skipping unmappable ticket row", "error", err, "ticket_id", model.ID)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
