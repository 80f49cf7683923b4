package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.User, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "nickname=?", nickname).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
