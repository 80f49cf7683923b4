package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoosum-lab/backend/internal/domain/badge"
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/testutil"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

func newTestActivityDomain() ActivityDomain {
	badgeRepo := repository.NewBadgeRepository()
	userBadgeRepo := repository.NewUserBadgeRepository()
	userPlogInfoRepo := repository.NewUserPlogInfoRepository()
	activityRepo := repository.NewActivityRepository()

	badgeManager := badge.NewManager(
		userBadgeRepo,
		badge.NewPlogRunnerBadgeScanner(badgeRepo, userPlogInfoRepo),
		badge.NewTrashCollectorBadgeScanner(badgeRepo, userPlogInfoRepo),
		badge.NewTreePlanterBadgeScanner(badgeRepo, activityRepo),
	)

	return NewActivityDomain(
		userPlogInfoRepo,
		repository.NewUserAnimalRepository(),
		activityRepo,
		badgeManager,
		&testutil.MockRedisClient{},
		DefaultScore,
	)
}

func Test_activityDomain_RecordActivity(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	resp, err := domain.RecordActivity(ctx, &model.RecordActivityRequest{
		Length: 1500,
		Time:   900,
		Trash:  4,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.PlogInfo1.PlogCount+1, resp.PlogCount)
	require.Equal(t, testutil.PlogInfo1.SumLength+1500, resp.SumLength)
	require.Equal(t, testutil.PlogInfo1.SumTrash+4, resp.SumTrash)

	// 4 trash at 1 seed each plus 1 whole kilometer at 5 seeds.
	require.Equal(t, testutil.PlogInfo1.Seed+9, resp.Seed)

	// DefaultScore over the new sums: 24 trash, 6 km, 76 whole minutes.
	require.Equal(t, 24*10+6*20+76, resp.Score)

	// The selected otter walked along, the unselected red panda did not.
	userAnimalRepo := repository.NewUserAnimalRepository()
	together, err := userAnimalRepo.Get(ctx, testutil.User1.ID, testutil.Animal1.ID)
	require.NoError(t, err)
	require.Equal(t, float64(1500), together.LengthTogether)
	require.Equal(t, 900, together.TimeTogether)
	require.Equal(t, 4, together.TrashTogether)

	behind, err := userAnimalRepo.Get(ctx, testutil.User1.ID, testutil.Animal2.ID)
	require.NoError(t, err)
	require.Equal(t, 0, behind.TrashTogether)
}

func Test_activityDomain_RecordActivity_idempotencyKey(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	req := &model.RecordActivityRequest{
		Length:         2000,
		Time:           600,
		Trash:          2,
		IdempotencyKey: "activity-1",
	}

	first, err := domain.RecordActivity(ctx, req)
	require.NoError(t, err)

	// The retry replays the summary without counting again.
	second, err := domain.RecordActivity(ctx, req)
	require.NoError(t, err)
	require.Equal(t, first, second)

	info, err := repository.NewUserPlogInfoRepository().Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.PlogInfo1.PlogCount+1, info.PlogCount)
	require.Equal(t, testutil.PlogInfo1.SumLength+2000, info.SumLength)
}

func Test_activityDomain_RecordActivity_historyContent(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	_, err := domain.RecordActivity(ctx, &model.RecordActivityRequest{
		Length:         3000,
		Time:           900,
		Trash:          4,
		FileURL:        "https://storage.example.com/images/run1.jpg",
		IdempotencyKey: "activity-2",
	})
	require.NoError(t, err)

	// The history row keeps the recorded quantities and the snapshot.
	history, err := repository.NewActivityRepository().GetByIdempotencyKey(ctx, "activity-2")
	require.NoError(t, err)
	require.Equal(t, entity.ActivityPlog, history.ActivityType)
	require.Equal(t, float64(3000), history.Length)
	require.Equal(t, 900, history.Time)
	require.Equal(t, 4, history.Trash)
	require.Equal(t, "https://storage.example.com/images/run1.jpg", history.FileURL)
}

func Test_activityDomain_RecordActivity_unlocksBadges(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	// User2 reaches 10 pieces of trash, unlocking First Step and Clean Hands.
	_, err := domain.RecordActivity(ctx, &model.RecordActivityRequest{Trash: 1})
	require.NoError(t, err)

	owned, err := repository.NewUserBadgeRepository().GetAllByUserID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
}

func Test_activityDomain_RecordActivity_invalidRequest(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	_, err := domain.RecordActivity(ctx, &model.RecordActivityRequest{Trash: -1})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_activityDomain_PlantTree(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestActivityDomain()

	// 150 seeds cover exactly one tree.
	resp, err := domain.PlantTree(ctx, &model.PlantTreeRequest{
		TreeName:    "pine",
		PlanterName: "dokko",
	})
	require.NoError(t, err)
	require.Equal(t, 50, resp.Seed)

	treeCount, err := repository.NewActivityRepository().
		CountByUserAndType(ctx, testutil.User1.ID, entity.ActivityTree)
	require.NoError(t, err)
	require.Equal(t, int64(1), treeCount)

	// The first tree unlocks Forest Friend.
	_, err = repository.NewUserBadgeRepository().Get(ctx, testutil.User1.ID, testutil.Badge5.ID)
	require.NoError(t, err)

	// The second tree is not affordable and nothing is recorded.
	_, err = domain.PlantTree(ctx, &model.PlantTreeRequest{TreeName: "oak"})
	require.Error(t, err)
	require.Equal(t, errorx.NotEnoughSeed, err.(errorx.Error).Code)

	info, err := repository.NewUserPlogInfoRepository().Get(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 50, info.Seed)

	treeCount, err = repository.NewActivityRepository().
		CountByUserAndType(ctx, testutil.User1.ID, entity.ActivityTree)
	require.NoError(t, err)
	require.Equal(t, int64(1), treeCount)
}
