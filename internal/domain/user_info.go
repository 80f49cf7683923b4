package domain

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/crypto"
	"github.com/zoosum-lab/backend/pkg/dateutil"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/numberutil"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserInfoDomain interface {
	GetPlogRecord(context.Context, *model.GetPlogRecordRequest) (*model.GetPlogRecordResponse, error)
	GetBadgeList(context.Context, *model.GetBadgeListRequest) (*model.GetBadgeListResponse, error)
	GetMainInfo(context.Context, *model.GetMainInfoRequest) (*model.GetMainInfoResponse, error)
	GetMain(context.Context, *model.GetMainRequest) (*model.GetMainResponse, error)
}

type userInfoDomain struct {
	userRepo         repository.UserRepository
	userPlogInfoRepo repository.UserPlogInfoRepository
	badgeRepo        repository.BadgeRepository
	userBadgeRepo    repository.UserBadgeRepository
	userAnimalRepo   repository.UserAnimalRepository
	animalRepo       repository.AnimalRepository
	userItemRepo     repository.UserItemRepository
	activityRepo     repository.ActivityRepository
}

func NewUserInfoDomain(
	userRepo repository.UserRepository,
	userPlogInfoRepo repository.UserPlogInfoRepository,
	badgeRepo repository.BadgeRepository,
	userBadgeRepo repository.UserBadgeRepository,
	userAnimalRepo repository.UserAnimalRepository,
	animalRepo repository.AnimalRepository,
	userItemRepo repository.UserItemRepository,
	activityRepo repository.ActivityRepository,
) UserInfoDomain {
	return &userInfoDomain{
		userRepo:         userRepo,
		userPlogInfoRepo: userPlogInfoRepo,
		badgeRepo:        badgeRepo,
		userBadgeRepo:    userBadgeRepo,
		userAnimalRepo:   userAnimalRepo,
		animalRepo:       animalRepo,
		userItemRepo:     userItemRepo,
		activityRepo:     activityRepo,
	}
}

// GetPlogRecord returns the public plogging record of any user by nickname.
func (d *userInfoDomain) GetPlogRecord(
	ctx context.Context, req *model.GetPlogRecordRequest,
) (*model.GetPlogRecordResponse, error) {
	if req.Nickname == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty nickname")
	}

	user, err := d.userRepo.GetByNickname(ctx, req.Nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user %s", req.Nickname)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	info, err := d.userPlogInfoRepo.Get(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found plog record of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
		return nil, errorx.Unknown
	}

	// Distances are stored in meters but presented in kilometers.
	t := dateutil.Divide(info.SumTime)
	return &model.GetPlogRecordResponse{
		Nickname:  user.Nickname,
		PlogCount: info.PlogCount,
		SumLength: numberutil.ToKilometer(info.SumLength),
		SumTrash:  info.SumTrash,
		Hour:      t.Hour,
		Minute:    t.Minute,
		Second:    t.Second,
	}, nil
}

// GetBadgeList returns the full badge catalog with an owned flag per badge.
func (d *userInfoDomain) GetBadgeList(
	ctx context.Context, req *model.GetBadgeListRequest,
) (*model.GetBadgeListResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.Nickname != "" {
		user, err := d.userRepo.GetByNickname(ctx, req.Nickname)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found user %s", req.Nickname)
			}

			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		userID = user.ID
	}

	catalog, err := d.badgeRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get badge catalog: %v", err)
		return nil, errorx.Unknown
	}

	owned, err := d.userBadgeRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user badges: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetBadgeListResponse{Badges: convertBadgeList(catalog, owned)}, nil
}

// GetMainInfo returns the mission progress and tree campaign numbers shown
// on the landing screen.
func (d *userInfoDomain) GetMainInfo(
	ctx context.Context, req *model.GetMainInfoRequest,
) (*model.GetMainInfoResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	info, err := d.userPlogInfoRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found plog record of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
		return nil, errorx.Unknown
	}

	treeAllCount, err := d.activityRepo.CountByType(ctx, entity.ActivityTree)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count all trees: %v", err)
		return nil, errorx.Unknown
	}

	treeCount, err := d.activityRepo.CountByUserAndType(ctx, userID, entity.ActivityTree)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count user trees: %v", err)
		return nil, errorx.Unknown
	}

	t := dateutil.Divide(info.MissionTime)
	return &model.GetMainInfoResponse{
		MissionLength: numberutil.ToKilometer(info.MissionLength),
		MissionTrash:  info.MissionTrash,
		Hour:          t.Hour,
		Minute:        t.Minute,
		Second:        t.Second,
		Seed:          info.Seed,
		TreeAllCount:  treeAllCount,
		TreeCount:     treeCount,
	}, nil
}

// GetMain returns the island theme, the tree skin, and the animals on
// display, each animal with a random motion.
func (d *userInfoDomain) GetMain(
	ctx context.Context, req *model.GetMainRequest,
) (*model.GetMainResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	selected, err := d.userAnimalRepo.GetAllSelectedByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get selected animals: %v", err)
		return nil, errorx.Unknown
	}

	if len(selected) == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found animals on display")
	}

	animals := make([]model.SelectedAnimal, 0, len(selected))
	for _, ua := range selected {
		motions, err := d.animalRepo.GetMotions(ctx, ua.AnimalID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get animal motions: %v", err)
			return nil, errorx.Unknown
		}

		fileURL := ""
		if len(motions) > 0 {
			fileURL = motions[crypto.RandIntn(len(motions))].FileURL
		}

		animals = append(animals, model.SelectedAnimal{
			AnimalID: ua.AnimalID,
			FileURL:  fileURL,
		})
	}

	island, err := d.userItemRepo.GetSelectedByType(ctx, userID, entity.ItemIsland)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found selected island of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get selected island: %v", err)
		return nil, errorx.Unknown
	}

	tree, err := d.userItemRepo.GetSelectedByType(ctx, userID, entity.ItemTree)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found selected tree of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get selected tree: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMainResponse{
		IslandURL: island.Item.FileURL,
		TreeURL:   tree.Item.FileURL,
		Animals:   animals,
	}, nil
}
