package domain

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/crypto"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AnimalDomain interface {
	RegisterAnimal(context.Context, *model.RegisterAnimalRequest) (*model.RegisterAnimalResponse, error)
	SelectAnimals(context.Context, *model.SelectAnimalsRequest) (*model.SelectAnimalsResponse, error)
	GetAnimalDraw(context.Context, *model.GetAnimalDrawRequest) (*model.GetAnimalDrawResponse, error)
	GetMyAnimals(context.Context, *model.GetMyAnimalsRequest) (*model.GetMyAnimalsResponse, error)
	GetAnimalDetail(context.Context, *model.GetAnimalDetailRequest) (*model.GetAnimalDetailResponse, error)
}

type animalDomain struct {
	animalRepo     repository.AnimalRepository
	userAnimalRepo repository.UserAnimalRepository
}

func NewAnimalDomain(
	animalRepo repository.AnimalRepository,
	userAnimalRepo repository.UserAnimalRepository,
) AnimalDomain {
	return &animalDomain{
		animalRepo:     animalRepo,
		userAnimalRepo: userAnimalRepo,
	}
}

// RegisterAnimal records the ownership of an animal. Registering an animal
// the user already owns only renames it.
func (d *animalDomain) RegisterAnimal(
	ctx context.Context, req *model.RegisterAnimalRequest,
) (*model.RegisterAnimalResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if _, err := d.animalRepo.GetByID(ctx, req.AnimalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found animal %s", req.AnimalID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get animal: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	_, err := d.userAnimalRepo.Get(ctx, userID, req.AnimalID)
	if err == nil {
		if err := d.userAnimalRepo.UpdateName(ctx, userID, req.AnimalID, req.UserAnimalName); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot rename animal: %v", err)
			return nil, errorx.Unknown
		}

		xcontext.WithCommitDBTransaction(ctx)
		return &model.RegisterAnimalResponse{Status: model.AnimalAlreadyOwned}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user animal: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userAnimalRepo.Create(ctx, &entity.UserAnimal{
		UserID:         userID,
		AnimalID:       req.AnimalID,
		UserAnimalName: req.UserAnimalName,
		IsSelected:     false,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user animal: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.RegisterAnimalResponse{Status: model.AnimalNewlyAcquired}, nil
}

// SelectAnimals puts the given animals on display. The operation is all or
// nothing, one unowned animal fails the whole request. Animals already on
// display stay selected.
func (d *animalDomain) SelectAnimals(
	ctx context.Context, req *model.SelectAnimalsRequest,
) (*model.SelectAnimalsResponse, error) {
	if len(req.AnimalIDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty selection")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	for _, animalID := range req.AnimalIDs {
		if err := d.userAnimalRepo.UpdateSelected(ctx, userID, animalID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotOwnedAnimal, "Not owned animal %s", animalID)
			}

			xcontext.Logger(ctx).Errorf("Cannot select animal: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SelectAnimalsResponse{}, nil
}

// GetAnimalDraw picks a uniformly random animal from the full catalog.
func (d *animalDomain) GetAnimalDraw(
	ctx context.Context, req *model.GetAnimalDrawRequest,
) (*model.GetAnimalDrawResponse, error) {
	animals, err := d.animalRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get animal catalog: %v", err)
		return nil, errorx.Unknown
	}

	if len(animals) == 0 {
		return nil, errorx.New(errorx.EmptyCatalog, "No animal to draw")
	}

	drawn := animals[crypto.RandIntn(len(animals))]

	fileURL := ""
	motions, err := d.animalRepo.GetMotions(ctx, drawn.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get animal motions: %v", err)
		return nil, errorx.Unknown
	}

	if len(motions) > 0 {
		fileURL = motions[crypto.RandIntn(len(motions))].FileURL
	}

	return &model.GetAnimalDrawResponse{
		AnimalID:   drawn.ID,
		AnimalName: drawn.Name,
		FileURL:    fileURL,
	}, nil
}

func (d *animalDomain) GetMyAnimals(
	ctx context.Context, req *model.GetMyAnimalsRequest,
) (*model.GetMyAnimalsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	userAnimals, err := d.userAnimalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user animals: %v", err)
		return nil, errorx.Unknown
	}

	animals := make([]model.UserAnimal, 0, len(userAnimals))
	for _, ua := range userAnimals {
		fileURL, err := d.firstMotionURL(ctx, ua.AnimalID)
		if err != nil {
			return nil, err
		}

		animals = append(animals, model.UserAnimal{
			AnimalID:       ua.AnimalID,
			UserAnimalName: ua.UserAnimalName,
			FileURL:        fileURL,
			IsSelected:     ua.IsSelected,
		})
	}

	return &model.GetMyAnimalsResponse{Animals: animals}, nil
}

func (d *animalDomain) GetAnimalDetail(
	ctx context.Context, req *model.GetAnimalDetailRequest,
) (*model.GetAnimalDetailResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	userAnimal, err := d.userAnimalRepo.Get(ctx, userID, req.AnimalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found animal %s of user", req.AnimalID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user animal: %v", err)
		return nil, errorx.Unknown
	}

	animal, err := d.animalRepo.GetByID(ctx, req.AnimalID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get animal: %v", err)
		return nil, errorx.Unknown
	}

	fileURL, err := d.firstMotionURL(ctx, req.AnimalID)
	if err != nil {
		return nil, err
	}

	return &model.GetAnimalDetailResponse{
		UserAnimalName: userAnimal.UserAnimalName,
		Description:    animal.Description,
		CreatedAt:      userAnimal.CreatedAt,
		TimeTogether:   userAnimal.TimeTogether,
		TrashTogether:  userAnimal.TrashTogether,
		LengthTogether: userAnimal.LengthTogether,
		FileURL:        fileURL,
	}, nil
}

func (d *animalDomain) firstMotionURL(ctx context.Context, animalID string) (string, error) {
	motions, err := d.animalRepo.GetMotions(ctx, animalID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get animal motions: %v", err)
		return "", errorx.Unknown
	}

	if len(motions) == 0 {
		return "", nil
	}

	return motions[0].FileURL, nil
}
