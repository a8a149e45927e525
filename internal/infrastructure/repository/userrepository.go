// Package repository provides gorm-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, mapper mappers.UserMapper, logger logger.Interface) user.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper,
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists")
		}
		r.logger.Errorw("failed to create user", "error", err, "external_id", u.ExternalID())
		return apperrors.NewInternalError("failed to create user", err.Error())
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return apperrors.NewInternalError("failed to update user", err.Error())
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to get user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to get user by external id", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err.Error())
	}
	return r.toDomainList(userModels)
}

func (r *UserRepositoryImpl) ListStaff(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := r.db.WithContext(ctx).
		Where("role IN ?", []string{"agent", "admin"}).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list staff users", err.Error())
	}
	return r.toDomainList(userModels)
}

func (r *UserRepositoryImpl) toDomainList(userModels []*models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		u, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("skipping unmappable user row", "error", err, "user_id", model.ID)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
