package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.ActivityHistory) error
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.ActivityHistory, error)
	CountByType(ctx context.Context, activityType entity.ActivityType) (int64, error)
	CountByUserAndType(ctx context.Context, userID string, activityType entity.ActivityType) (int64, error)
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.ActivityHistory) error {
	return xcontext.DB(ctx).Create(activity).Error
}

func (r *activityRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entity.ActivityHistory, error) {
	var result entity.ActivityHistory
	if err := xcontext.DB(ctx).Take(&result, "idempotency_key=?", key).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *activityRepository) CountByType(ctx context.Context, activityType entity.ActivityType) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.ActivityHistory{}).
		Where("activity_type=?", activityType).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *activityRepository) CountByUserAndType(
	ctx context.Context, userID string, activityType entity.ActivityType,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.ActivityHistory{}).
		Where("user_id=? AND activity_type=?", userID, activityType).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
