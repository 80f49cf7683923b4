package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type UserItemRepository interface {
	CreateItem(ctx context.Context, data *entity.Item) error
	Create(ctx context.Context, data *entity.UserItem) error
	GetSelectedByType(ctx context.Context, userID string, itemType entity.ItemType) (*entity.UserItem, error)
}

type userItemRepository struct{}

func NewUserItemRepository() *userItemRepository {
	return &userItemRepository{}
}

func (r *userItemRepository) CreateItem(ctx context.Context, data *entity.Item) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userItemRepository) Create(ctx context.Context, data *entity.UserItem) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userItemRepository) GetSelectedByType(
	ctx context.Context, userID string, itemType entity.ItemType,
) (*entity.UserItem, error) {
	var result entity.UserItem
	err := xcontext.DB(ctx).
		Joins("join items on items.id=user_items.item_id").
		Where("user_items.user_id=? AND user_items.is_selected=? AND items.item_type=?",
			userID, true, itemType).
		Preload("Item").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
