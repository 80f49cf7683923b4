package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/zoosum-lab/backend/internal/domain/badge"
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/numberutil"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"github.com/zoosum-lab/backend/pkg/xredis"
	"gorm.io/gorm"
)

// ScoreFunc derives the ranking score from the cumulative sums. It must be
// pure so a replayed aggregate always produces the same score.
type ScoreFunc func(info *entity.UserPlogInfo) int

// DefaultScore weights picked trash highest, then distance, then duration.
func DefaultScore(info *entity.UserPlogInfo) int {
	km := int(numberutil.ToKilometer(info.SumLength))
	return info.SumTrash*10 + km*20 + info.SumTime/60
}

type ActivityDomain interface {
	RecordActivity(context.Context, *model.RecordActivityRequest) (*model.RecordActivityResponse, error)
	PlantTree(context.Context, *model.PlantTreeRequest) (*model.PlantTreeResponse, error)
}

type activityDomain struct {
	userPlogInfoRepo repository.UserPlogInfoRepository
	userAnimalRepo   repository.UserAnimalRepository
	activityRepo     repository.ActivityRepository
	badgeManager     *badge.Manager
	redisClient      xredis.Client
	scoreFunc        ScoreFunc
}

func NewActivityDomain(
	userPlogInfoRepo repository.UserPlogInfoRepository,
	userAnimalRepo repository.UserAnimalRepository,
	activityRepo repository.ActivityRepository,
	badgeManager *badge.Manager,
	redisClient xredis.Client,
	scoreFunc ScoreFunc,
) ActivityDomain {
	if scoreFunc == nil {
		scoreFunc = DefaultScore
	}

	return &activityDomain{
		userPlogInfoRepo: userPlogInfoRepo,
		userAnimalRepo:   userAnimalRepo,
		activityRepo:     activityRepo,
		badgeManager:     badgeManager,
		redisClient:      redisClient,
		scoreFunc:        scoreFunc,
	}
}

func (d *activityDomain) RecordActivity(
	ctx context.Context, req *model.RecordActivityRequest,
) (*model.RecordActivityResponse, error) {
	if req.Length < 0 || req.Time < 0 || req.Trash < 0 {
		return nil, errorx.New(errorx.BadRequest, "Activity numbers must not be negative")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if req.IdempotencyKey != "" {
		_, err := d.activityRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			info, err := d.userPlogInfoRepo.Get(ctx, userID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
				return nil, errorx.Unknown
			}

			resp := convertActivitySummary(info)
			return &resp, nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check idempotency key: %v", err)
			return nil, errorx.Unknown
		}
	}

	idempotencyKey := sql.NullString{}
	if req.IdempotencyKey != "" {
		idempotencyKey = sql.NullString{Valid: true, String: req.IdempotencyKey}
	}

	err := d.activityRepo.Create(ctx, &entity.ActivityHistory{
		Base:           entity.Base{ID: uuid.NewString()},
		UserID:         userID,
		ActivityType:   entity.ActivityPlog,
		Length:         req.Length,
		Time:           req.Time,
		Trash:          req.Trash,
		FileURL:        req.FileURL,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity history: %v", err)
		return nil, errorx.Unknown
	}

	seed := req.Trash*xcontext.Configs(ctx).Plog.SeedPerTrash +
		int(numberutil.ToKilometer(req.Length))*xcontext.Configs(ctx).Plog.SeedPerKilometer

	delta := repository.ActivityDelta{
		Length: req.Length,
		Time:   req.Time,
		Trash:  req.Trash,
		Seed:   seed,
	}

	if err := d.userPlogInfoRepo.ApplyActivity(ctx, userID, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found plog record of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot apply activity: %v", err)
		return nil, errorx.Unknown
	}

	info, err := d.userPlogInfoRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
		return nil, errorx.Unknown
	}

	info.Score = d.scoreFunc(info)
	if err := d.userPlogInfoRepo.UpdateScore(ctx, userID, info.Score); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update score: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userAnimalRepo.IncreaseTogether(ctx, userID, req.Length, req.Time, req.Trash)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase together counters: %v", err)
		return nil, errorx.Unknown
	}

	badgeNames := []string{badge.PlogRunnerBadgeName, badge.TrashCollectorBadgeName}
	if err := d.badgeManager.WithBadges(badgeNames...).ScanAndGive(ctx, userID); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	z := redis.Z{Score: float64(info.Score), Member: userID}
	if err := d.redisClient.ZAdd(ctx, scoreRankingKey, z); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot bump score ranking: %v", err)
	}

	resp := convertActivitySummary(info)
	return &resp, nil
}

func (d *activityDomain) PlantTree(
	ctx context.Context, req *model.PlantTreeRequest,
) (*model.PlantTreeResponse, error) {
	if req.TreeName == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty tree name")
	}

	userID := xcontext.RequestUserID(ctx)
	seedCost := xcontext.Configs(ctx).Plog.TreeSeedCost

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if _, err := d.userPlogInfoRepo.Get(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found plog record of user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userPlogInfoRepo.DecreaseSeed(ctx, userID, seedCost); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotEnoughSeed,
				"Not enough seed, this tree needs %d seeds", seedCost)
		}

		xcontext.Logger(ctx).Errorf("Cannot decrease seed: %v", err)
		return nil, errorx.Unknown
	}

	err := d.activityRepo.Create(ctx, &entity.ActivityHistory{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       userID,
		ActivityType: entity.ActivityTree,
		TreeName:     req.TreeName,
		PlanterName:  req.PlanterName,
		PlanterPhone: req.PlanterPhone,
		PlanterBirth: req.PlanterBirth,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tree history: %v", err)
		return nil, errorx.Unknown
	}

	badgeNames := []string{badge.TreePlanterBadgeName}
	if err := d.badgeManager.WithBadges(badgeNames...).ScanAndGive(ctx, userID); err != nil {
		return nil, err
	}

	info, err := d.userPlogInfoRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get plog info: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.PlantTreeResponse{Seed: info.Seed}, nil
}
