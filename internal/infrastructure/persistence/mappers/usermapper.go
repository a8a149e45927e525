// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:         u.ID(),
		ExternalID: u.ExternalID(),
		Email:      u.Email(),
		Name:       u.Name(),
		Role:       u.Role().String(),
		CreatedAt:  u.CreatedAt().UnixMilli(),
		UpdatedAt:  u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.ExternalID,
		model.Email,
		model.Name,
		vo.Role(model.Role),
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
