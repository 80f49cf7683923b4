package domain

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/enum"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"github.com/zoosum-lab/backend/pkg/xredis"
	"golang.org/x/exp/slices"
)

const scoreRankingKey = "ranking:score"

type RankingDomain interface {
	GetRanking(context.Context, *model.GetRankingRequest) (*model.GetRankingResponse, error)
	GetMyRank(context.Context, *model.GetMyRankRequest) (*model.GetMyRankResponse, error)
}

type rankingDomain struct {
	userPlogInfoRepo repository.UserPlogInfoRepository
	redisClient      xredis.Client
}

func NewRankingDomain(
	userPlogInfoRepo repository.UserPlogInfoRepository,
	redisClient xredis.Client,
) RankingDomain {
	return &rankingDomain{
		userPlogInfoRepo: userPlogInfoRepo,
		redisClient:      redisClient,
	}
}

func (d *rankingDomain) GetRanking(
	ctx context.Context, req *model.GetRankingRequest,
) (*model.GetRankingResponse, error) {
	var region entity.Region
	if req.Region != "" {
		var err error
		region, err = enum.ToEnum[entity.Region](req.Region)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid region: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid region %s", req.Region)
		}
	}

	if req.Limit <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum of limit")
	}

	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset must not be negative")
	}

	filter := repository.RankingFilter{
		Region: region,
		Orders: parseRankingOrders(req.SortBy),
		Offset: req.Offset,
		Limit:  req.Limit,
	}

	// Rows and total must come from the same snapshot so a paginating client
	// never sees them disagree.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	records, err := d.userPlogInfoRepo.GetRanking(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ranking: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.userPlogInfoRepo.CountRanking(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count ranking: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	ranking := make([]model.RankingRow, 0, len(records))
	for _, record := range records {
		ranking = append(ranking, convertRankingRow(record))
	}

	return &model.GetRankingResponse{Ranking: ranking, Total: total}, nil
}

// GetMyRank returns the advisory score position of the caller. It is served
// from redis and may trail the database briefly.
func (d *rankingDomain) GetMyRank(
	ctx context.Context, req *model.GetMyRankRequest,
) (*model.GetMyRankResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if err := d.loadScoreboard(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load scoreboard: %v", err)
		return nil, errorx.Unknown
	}

	rank, err := d.redisClient.ZRevRank(ctx, scoreRankingKey, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rank of user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMyRankResponse{Rank: rank + 1}, nil
}

func (d *rankingDomain) loadScoreboard(ctx context.Context) error {
	existed, err := d.redisClient.Exist(ctx, scoreRankingKey)
	if err != nil {
		return err
	}

	if existed {
		return nil
	}

	infos, err := d.userPlogInfoRepo.GetAllForScoreboard(ctx)
	if err != nil {
		return err
	}

	for _, info := range infos {
		z := redis.Z{Score: float64(info.Score), Member: info.UserID}
		if err := d.redisClient.ZAdd(ctx, scoreRankingKey, z); err != nil {
			return err
		}
	}

	return nil
}

// parseRankingOrders turns the "field:direction" comma separated sort
// expression into repository orders. Unknown directions fall back to
// descending, which is what ranking screens ask for.
func parseRankingOrders(sortBy string) []repository.RankingOrder {
	if sortBy == "" {
		return nil
	}

	var orders []repository.RankingOrder
	for _, token := range strings.Split(sortBy, ",") {
		field, direction, _ := strings.Cut(strings.TrimSpace(token), ":")
		if field == "" {
			continue
		}

		// The first occurrence of a field wins.
		duplicated := slices.ContainsFunc(orders, func(o repository.RankingOrder) bool {
			return o.Field == field
		})
		if duplicated {
			continue
		}

		orders = append(orders, repository.RankingOrder{
			Field:      field,
			Descending: !strings.EqualFold(direction, "asc"),
		})
	}

	return orders
}
