package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/testutil"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

func Test_userPlogInfoRepository_GetRanking(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := repository.NewUserPlogInfoRepository()

	t.Run("default order is nickname ascending", func(t *testing.T) {
		records, err := repo.GetRanking(ctx, repository.RankingFilter{Offset: 0, Limit: 10})
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, testutil.User2.Nickname, records[0].Nickname)
		require.Equal(t, testutil.User3.Nickname, records[1].Nickname)
		require.Equal(t, testutil.User1.Nickname, records[2].Nickname)
	})

	t.Run("equal scores fall back to nickname", func(t *testing.T) {
		records, err := repo.GetRanking(ctx, repository.RankingFilter{
			Orders: []repository.RankingOrder{{Field: "score", Descending: true}},
			Offset: 0,
			Limit:  10,
		})
		require.NoError(t, err)
		require.Len(t, records, 3)

		// user1 and user2 tie on score, arem sorts before dokko.
		require.Equal(t, testutil.User2.Nickname, records[0].Nickname)
		require.Equal(t, testutil.User1.Nickname, records[1].Nickname)
		require.Equal(t, testutil.User3.Nickname, records[2].Nickname)
	})

	t.Run("unknown sort field is ignored", func(t *testing.T) {
		records, err := repo.GetRanking(ctx, repository.RankingFilter{
			Orders: []repository.RankingOrder{{Field: "favorite_color", Descending: true}},
			Offset: 0,
			Limit:  10,
		})
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, testutil.User2.Nickname, records[0].Nickname)
	})

	t.Run("pagination slices without changing total", func(t *testing.T) {
		filter := repository.RankingFilter{
			Orders: []repository.RankingOrder{{Field: "plog_count", Descending: true}},
			Offset: 1,
			Limit:  1,
		}

		records, err := repo.GetRanking(ctx, filter)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, testutil.User1.Nickname, records[0].Nickname)

		total, err := repo.CountRanking(ctx, filter)
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
	})

	t.Run("region filter", func(t *testing.T) {
		filter := repository.RankingFilter{Region: entity.RegionBusan, Offset: 0, Limit: 10}

		records, err := repo.GetRanking(ctx, filter)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, testutil.User3.Nickname, records[0].Nickname)

		total, err := repo.CountRanking(ctx, filter)
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
	})

	t.Run("soft deleted records are excluded", func(t *testing.T) {
		err := xcontext.DB(ctx).Delete(&entity.UserPlogInfo{UserID: testutil.User3.ID}).Error
		require.NoError(t, err)

		total, err := repo.CountRanking(ctx, repository.RankingFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(2), total)

		records, err := repo.GetRanking(ctx, repository.RankingFilter{Offset: 0, Limit: 10})
		require.NoError(t, err)
		require.Len(t, records, 2)
	})
}

func Test_userPlogInfoRepository_ApplyActivity(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := repository.NewUserPlogInfoRepository()

	delta := repository.ActivityDelta{Length: 1500, Time: 900, Trash: 4, Seed: 11}
	require.NoError(t, repo.ApplyActivity(ctx, testutil.User1.ID, delta))

	info, err := repo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.PlogInfo1.PlogCount+1, info.PlogCount)
	require.Equal(t, testutil.PlogInfo1.Seed+11, info.Seed)
	require.Equal(t, testutil.PlogInfo1.SumLength+1500, info.SumLength)
	require.Equal(t, testutil.PlogInfo1.SumTime+900, info.SumTime)
	require.Equal(t, testutil.PlogInfo1.SumTrash+4, info.SumTrash)
	require.Equal(t, testutil.PlogInfo1.MissionLength-1500, info.MissionLength)
	require.Equal(t, testutil.PlogInfo1.MissionTime-900, info.MissionTime)
	require.Equal(t, testutil.PlogInfo1.MissionTrash-4, info.MissionTrash)

	// An oversized activity clamps the remaining missions at zero.
	require.NoError(t, repo.ApplyActivity(ctx, testutil.User1.ID, repository.ActivityDelta{
		Length: 100000, Time: 100000, Trash: 100000,
	}))

	info, err = repo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, float64(0), info.MissionLength)
	require.Equal(t, 0, info.MissionTime)
	require.Equal(t, 0, info.MissionTrash)

	err = repo.ApplyActivity(ctx, "unknown-user", delta)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_userPlogInfoRepository_DecreaseSeed(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := repository.NewUserPlogInfoRepository()

	// 150 seeds cover exactly one debit of 100 and one of 50.
	require.NoError(t, repo.DecreaseSeed(ctx, testutil.User1.ID, 100))
	require.NoError(t, repo.DecreaseSeed(ctx, testutil.User1.ID, 50))

	err := repo.DecreaseSeed(ctx, testutil.User1.ID, 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	info, err := repo.Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, info.Seed)
}
