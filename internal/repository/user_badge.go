package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserBadgeRepository interface {
	Get(ctx context.Context, userID, badgeID string) (*entity.UserBadge, error)
	GetAllByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error)
	Create(ctx context.Context, data *entity.UserBadge) error
}

type userBadgeRepository struct{}

func NewUserBadgeRepository() *userBadgeRepository {
	return &userBadgeRepository{}
}

func (r *userBadgeRepository) Get(ctx context.Context, userID, badgeID string) (*entity.UserBadge, error) {
	var result entity.UserBadge
	err := xcontext.DB(ctx).Where("user_id=? AND badge_id=?", userID, badgeID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userBadgeRepository) GetAllByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error) {
	var result []entity.UserBadge
	if err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// Create inserts the unlock row if absent. A concurrent duplicate insert is
// resolved by the primary key conflict clause, keeping the unlock idempotent.
func (r *userBadgeRepository) Create(ctx context.Context, data *entity.UserBadge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(data).Error
}
