package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	GetByID(ctx context.Context, id string) (*entity.Badge, error)
	GetAll(ctx context.Context) ([]entity.Badge, error)
	GetByScannerLessThanValue(ctx context.Context, scannerName string, value int) ([]entity.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	return xcontext.DB(ctx).Create(badge).Error
}

func (r *badgeRepository) GetByID(ctx context.Context, id string) (*entity.Badge, error) {
	var result entity.Badge
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *badgeRepository) GetAll(ctx context.Context) ([]entity.Badge, error) {
	var result []entity.Badge
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) GetByScannerLessThanValue(
	ctx context.Context, scannerName string, value int,
) ([]entity.Badge, error) {
	var result []entity.Badge
	err := xcontext.DB(ctx).
		Where("scanner_name=? AND value<=?", scannerName, value).
		Order("value ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
