package repository

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserAnimalRepository interface {
	Get(ctx context.Context, userID, animalID string) (*entity.UserAnimal, error)
	GetAllByUserID(ctx context.Context, userID string) ([]entity.UserAnimal, error)
	GetAllSelectedByUserID(ctx context.Context, userID string) ([]entity.UserAnimal, error)
	Create(ctx context.Context, data *entity.UserAnimal) error
	UpdateName(ctx context.Context, userID, animalID, name string) error
	UpdateSelected(ctx context.Context, userID, animalID string) error
	IncreaseTogether(ctx context.Context, userID string, length float64, time, trash int) error
}

type userAnimalRepository struct{}

func NewUserAnimalRepository() *userAnimalRepository {
	return &userAnimalRepository{}
}

func (r *userAnimalRepository) Get(ctx context.Context, userID, animalID string) (*entity.UserAnimal, error) {
	var result entity.UserAnimal
	err := xcontext.DB(ctx).Where("user_id=? AND animal_id=?", userID, animalID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userAnimalRepository) GetAllByUserID(ctx context.Context, userID string) ([]entity.UserAnimal, error) {
	var result []entity.UserAnimal
	if err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userAnimalRepository) GetAllSelectedByUserID(ctx context.Context, userID string) ([]entity.UserAnimal, error) {
	var result []entity.UserAnimal
	err := xcontext.DB(ctx).Find(&result, "user_id=? AND is_selected=?", userID, true).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userAnimalRepository) Create(ctx context.Context, data *entity.UserAnimal) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userAnimalRepository) UpdateName(ctx context.Context, userID, animalID, name string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserAnimal{}).
		Where("user_id=? AND animal_id=?", userID, animalID).
		Update("user_animal_name", name)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userAnimalRepository) UpdateSelected(ctx context.Context, userID, animalID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserAnimal{}).
		Where("user_id=? AND animal_id=?", userID, animalID).
		Update("is_selected", true)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// IncreaseTogether accumulates an activity onto every animal the user
// currently has on display.
func (r *userAnimalRepository) IncreaseTogether(
	ctx context.Context, userID string, length float64, time, trash int,
) error {
	return xcontext.DB(ctx).
		Model(&entity.UserAnimal{}).
		Where("user_id=? AND is_selected=?", userID, true).
		Updates(map[string]any{
			"length_together": gorm.Expr("length_together+?", length),
			"time_together":   gorm.Expr("time_together+?", time),
			"trash_together":  gorm.Expr("trash_together+?", trash),
		}).Error
}
