package repository

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	GetByID(ctx context.Context, id string) (*entity.Animal, error)
	GetAll(ctx context.Context) ([]entity.Animal, error)
	CreateMotion(ctx context.Context, motion *entity.AnimalMotion) error
	GetMotions(ctx context.Context, animalID string) ([]entity.AnimalMotion, error)
}

type animalRepository struct{}

func NewAnimalRepository() *animalRepository {
	return &animalRepository{}
}

func (r *animalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	return xcontext.DB(ctx).Create(animal).Error
}

func (r *animalRepository) GetByID(ctx context.Context, id string) (*entity.Animal, error) {
	var result entity.Animal
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *animalRepository) GetAll(ctx context.Context) ([]entity.Animal, error) {
	var result []entity.Animal
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *animalRepository) CreateMotion(ctx context.Context, motion *entity.AnimalMotion) error {
	return xcontext.DB(ctx).Create(motion).Error
}

func (r *animalRepository) GetMotions(ctx context.Context, animalID string) ([]entity.AnimalMotion, error) {
	var result []entity.AnimalMotion
	if err := xcontext.DB(ctx).Find(&result, "animal_id=?", animalID).Error; err != nil {
		return nil, err
	}

	return result, nil
}
