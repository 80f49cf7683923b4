package repository

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RankingOrder struct {
	Field      string
	Descending bool
}

type RankingFilter struct {
	Region entity.Region
	Orders []RankingOrder
	Offset int
	Limit  int
}

// RankingRecord is the per-row projection of the ranking read, joining the
// aggregate plog record with the owner's display attributes. It is built per
// query and never stored.
type RankingRecord struct {
	UserID    string
	Nickname  string
	Region    entity.Region
	Score     int
	PlogCount int
	SumLength float64
	SumTime   int
	SumTrash  int
}

// rankingOrderColumns is the allow-list of sortable ranking fields. Requested
// fields outside of this table are ignored.
var rankingOrderColumns = map[string]string{
	"score":      "user_plog_infos.score",
	"plog_count": "user_plog_infos.plog_count",
	"sum_length": "user_plog_infos.sum_length",
	"sum_time":   "user_plog_infos.sum_time",
	"sum_trash":  "user_plog_infos.sum_trash",
}

type ActivityDelta struct {
	Length float64
	Time   int
	Trash  int
	Seed   int
}

type UserPlogInfoRepository interface {
	Create(ctx context.Context, info *entity.UserPlogInfo) error
	Get(ctx context.Context, userID string) (*entity.UserPlogInfo, error)
	GetRanking(ctx context.Context, filter RankingFilter) ([]RankingRecord, error)
	CountRanking(ctx context.Context, filter RankingFilter) (int64, error)
	GetAllForScoreboard(ctx context.Context) ([]entity.UserPlogInfo, error)
	ApplyActivity(ctx context.Context, userID string, delta ActivityDelta) error
	UpdateScore(ctx context.Context, userID string, score int) error
	DecreaseSeed(ctx context.Context, userID string, amount int) error
}

type userPlogInfoRepository struct{}

func NewUserPlogInfoRepository() *userPlogInfoRepository {
	return &userPlogInfoRepository{}
}

func (r *userPlogInfoRepository) Create(ctx context.Context, info *entity.UserPlogInfo) error {
	return xcontext.DB(ctx).Create(info).Error
}

func (r *userPlogInfoRepository) Get(ctx context.Context, userID string) (*entity.UserPlogInfo, error) {
	var result entity.UserPlogInfo
	if err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userPlogInfoRepository) rankingQuery(ctx context.Context, filter RankingFilter) *gorm.DB {
	tx := xcontext.DB(ctx).
		Model(&entity.UserPlogInfo{}).
		Joins("join users on users.id=user_plog_infos.user_id")

	if filter.Region != "" {
		tx = tx.Where("users.region=?", filter.Region)
	}

	return tx
}

func (r *userPlogInfoRepository) GetRanking(
	ctx context.Context, filter RankingFilter,
) ([]RankingRecord, error) {
	tx := r.rankingQuery(ctx, filter).
		Select("user_plog_infos.user_id, users.nickname, users.region, " +
			"user_plog_infos.score, user_plog_infos.plog_count, " +
			"user_plog_infos.sum_length, user_plog_infos.sum_time, user_plog_infos.sum_trash").
		Offset(filter.Offset).
		Limit(filter.Limit)

	for _, order := range filter.Orders {
		column, ok := rankingOrderColumns[order.Field]
		if !ok {
			continue
		}

		direction := "ASC"
		if order.Descending {
			direction = "DESC"
		}

		tx = tx.Order(column + " " + direction)
	}

	// The nickname tie-break guarantees a deterministic order for equal sort
	// keys and for requests without any recognized sort field.
	tx = tx.Order("users.nickname ASC")

	var result []RankingRecord
	if err := tx.Scan(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userPlogInfoRepository) CountRanking(
	ctx context.Context, filter RankingFilter,
) (int64, error) {
	var result int64
	if err := r.rankingQuery(ctx, filter).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

func (r *userPlogInfoRepository) GetAllForScoreboard(ctx context.Context) ([]entity.UserPlogInfo, error) {
	var result []entity.UserPlogInfo
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// ApplyActivity increments the cumulative sums, earns seeds, and decrements
// the remaining mission targets clamped at zero, all in a single guarded
// update statement.
func (r *userPlogInfoRepository) ApplyActivity(
	ctx context.Context, userID string, delta ActivityDelta,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserPlogInfo{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"plog_count": gorm.Expr("plog_count+1"),
			"seed":       gorm.Expr("seed+?", delta.Seed),
			"sum_length": gorm.Expr("sum_length+?", delta.Length),
			"sum_time":   gorm.Expr("sum_time+?", delta.Time),
			"sum_trash":  gorm.Expr("sum_trash+?", delta.Trash),
			"mission_length": gorm.Expr(
				"CASE WHEN mission_length >= ? THEN mission_length-? ELSE 0 END",
				delta.Length, delta.Length),
			"mission_time": gorm.Expr(
				"CASE WHEN mission_time >= ? THEN mission_time-? ELSE 0 END",
				delta.Time, delta.Time),
			"mission_trash": gorm.Expr(
				"CASE WHEN mission_trash >= ? THEN mission_trash-? ELSE 0 END",
				delta.Trash, delta.Trash),
		})

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

func (r *userPlogInfoRepository) UpdateScore(ctx context.Context, userID string, score int) error {
	return xcontext.DB(ctx).
		Model(&entity.UserPlogInfo{}).
		Where("user_id=?", userID).
		Update("score", score).Error
}

// DecreaseSeed debits the balance only if it suffices. The balance check and
// the decrement happen in one statement, so concurrent debits can never drive
// the balance negative. It returns gorm.ErrRecordNotFound when the balance is
// too low.
func (r *userPlogInfoRepository) DecreaseSeed(ctx context.Context, userID string, amount int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserPlogInfo{}).
		Where("user_id=? AND seed >= ?", userID, amount).
		Update("seed", gorm.Expr("seed-?", amount))

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
