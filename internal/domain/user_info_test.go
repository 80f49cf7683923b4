package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/testutil"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

func newTestUserInfoDomain() UserInfoDomain {
	return NewUserInfoDomain(
		repository.NewUserRepository(),
		repository.NewUserPlogInfoRepository(),
		repository.NewBadgeRepository(),
		repository.NewUserBadgeRepository(),
		repository.NewUserAnimalRepository(),
		repository.NewAnimalRepository(),
		repository.NewUserItemRepository(),
		repository.NewActivityRepository(),
	)
}

func Test_userInfoDomain_GetPlogRecord(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserInfoDomain()

	resp, err := domain.GetPlogRecord(ctx, &model.GetPlogRecordRequest{
		Nickname: testutil.User1.Nickname,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Nickname, resp.Nickname)
	require.Equal(t, testutil.PlogInfo1.PlogCount, resp.PlogCount)

	// 5000 stored meters come back as 5 kilometers.
	require.Equal(t, float64(5), resp.SumLength)
	require.Equal(t, 1, resp.Hour)
	require.Equal(t, 1, resp.Minute)
	require.Equal(t, 40, resp.Second)

	_, err = domain.GetPlogRecord(ctx, &model.GetPlogRecordRequest{Nickname: "nobody"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)

	_, err = domain.GetPlogRecord(ctx, &model.GetPlogRecordRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_userInfoDomain_GetBadgeList(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserInfoDomain()

	resp, err := domain.GetBadgeList(ctx, &model.GetBadgeListRequest{})
	require.NoError(t, err)

	// One entry per catalog badge, two of them unlocked.
	require.Len(t, resp.Badges, 5)

	owned := 0
	for _, b := range resp.Badges {
		if b.IsHave {
			owned++
			require.Contains(t, []string{testutil.Badge1.ID, testutil.Badge3.ID}, b.BadgeID)
		}
	}
	require.Equal(t, 2, owned)

	// User2 has not unlocked anything yet.
	resp, err = domain.GetBadgeList(ctx, &model.GetBadgeListRequest{
		Nickname: testutil.User2.Nickname,
	})
	require.NoError(t, err)
	require.Len(t, resp.Badges, 5)
	for _, b := range resp.Badges {
		require.False(t, b.IsHave)
	}
}

func Test_userInfoDomain_GetMainInfo(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserInfoDomain()

	resp, err := domain.GetMainInfo(ctx, &model.GetMainInfoRequest{})
	require.NoError(t, err)

	// The 2000 meter mission remainder is presented as 2 kilometers.
	require.Equal(t, float64(2), resp.MissionLength)
	require.Equal(t, testutil.PlogInfo1.MissionTrash, resp.MissionTrash)
	require.Equal(t, testutil.PlogInfo1.Seed, resp.Seed)

	// MissionTime 1800 decomposes into 0h 30m 0s.
	require.Equal(t, 0, resp.Hour)
	require.Equal(t, 30, resp.Minute)
	require.Equal(t, 0, resp.Second)
	require.Equal(t, int64(0), resp.TreeAllCount)
	require.Equal(t, int64(0), resp.TreeCount)
}

func Test_userInfoDomain_GetMain(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserInfoDomain()

	resp, err := domain.GetMain(ctx, &model.GetMainRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Item1.FileURL, resp.IslandURL)
	require.Equal(t, testutil.Item2.FileURL, resp.TreeURL)
	require.Len(t, resp.Animals, 1)
	require.Equal(t, testutil.Animal1.ID, resp.Animals[0].AnimalID)
	require.Equal(t, testutil.Animal1Motion.FileURL, resp.Animals[0].FileURL)

	t.Run("no animal on display", func(t *testing.T) {
		ctx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
		_, err := domain.GetMain(ctx, &model.GetMainRequest{})
		require.Error(t, err)
		require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
	})

	t.Run("no selected island", func(t *testing.T) {
		ctx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)

		userAnimalRepo := repository.NewUserAnimalRepository()
		err := userAnimalRepo.Create(ctx, &entity.UserAnimal{
			UserID:         testutil.User2.ID,
			AnimalID:       testutil.Animal1.ID,
			UserAnimalName: "pebble",
			IsSelected:     true,
		})
		require.NoError(t, err)

		_, err = domain.GetMain(ctx, &model.GetMainRequest{})
		require.Error(t, err)
		require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
	})

	t.Run("no selected tree", func(t *testing.T) {
		ctx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)

		userItemRepo := repository.NewUserItemRepository()
		err := userItemRepo.Create(ctx, &entity.UserItem{
			UserID:     testutil.User2.ID,
			ItemID:     testutil.Item1.ID,
			IsSelected: true,
		})
		require.NoError(t, err)

		_, err = domain.GetMain(ctx, &model.GetMainRequest{})
		require.Error(t, err)
		require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
	})
}
