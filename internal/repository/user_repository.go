package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// UserRepository reads user rows written by the identity provider. This
// service never creates or mutates them.
type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
