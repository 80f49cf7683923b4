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

func Test_animalDomain_RegisterAnimal(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	resp, err := domain.RegisterAnimal(ctx, &model.RegisterAnimalRequest{
		AnimalID:       testutil.Animal1.ID,
		UserAnimalName: "splash",
	})
	require.NoError(t, err)
	require.Equal(t, model.AnimalNewlyAcquired, resp.Status)

	// Registering again only renames.
	resp, err = domain.RegisterAnimal(ctx, &model.RegisterAnimalRequest{
		AnimalID:       testutil.Animal1.ID,
		UserAnimalName: "splashy",
	})
	require.NoError(t, err)
	require.Equal(t, model.AnimalAlreadyOwned, resp.Status)

	userAnimals, err := repository.NewUserAnimalRepository().
		GetAllByUserID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Len(t, userAnimals, 1)
	require.Equal(t, "splashy", userAnimals[0].UserAnimalName)
	require.False(t, userAnimals[0].IsSelected)

	_, err = domain.RegisterAnimal(ctx, &model.RegisterAnimalRequest{
		AnimalID: "no-such-animal",
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_animalDomain_SelectAnimals(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	_, err := domain.SelectAnimals(ctx, &model.SelectAnimalsRequest{
		AnimalIDs: []string{testutil.Animal2.ID},
	})
	require.NoError(t, err)

	// Selecting is additive, the otter stays on display.
	selected, err := repository.NewUserAnimalRepository().
		GetAllSelectedByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, selected, 2)
}

func Test_animalDomain_SelectAnimals_notOwned(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	// One unowned animal fails the whole selection.
	_, err := domain.SelectAnimals(ctx, &model.SelectAnimalsRequest{
		AnimalIDs: []string{testutil.Animal2.ID, "no-such-animal"},
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotOwnedAnimal, err.(errorx.Error).Code)

	selected, err := repository.NewUserAnimalRepository().
		GetAllSelectedByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	require.Equal(t, testutil.Animal1.ID, selected[0].AnimalID)
}

func Test_animalDomain_GetAnimalDraw(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	// Empty catalog cannot draw.
	_, err := domain.GetAnimalDraw(ctx, &model.GetAnimalDrawRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.EmptyCatalog, err.(errorx.Error).Code)

	// A single animal is always drawn.
	animalRepo := repository.NewAnimalRepository()
	animal := entity.Animal{Base: entity.Base{ID: "solo"}, Name: "Fennec Fox"}
	require.NoError(t, animalRepo.Create(ctx, &animal))

	resp, err := domain.GetAnimalDraw(ctx, &model.GetAnimalDrawRequest{})
	require.NoError(t, err)
	require.Equal(t, "solo", resp.AnimalID)
	require.Equal(t, "Fennec Fox", resp.AnimalName)
}

func Test_animalDomain_GetAnimalDetail(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	resp, err := domain.GetAnimalDetail(ctx, &model.GetAnimalDetailRequest{
		AnimalID: testutil.Animal1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.UserAnimal1.UserAnimalName, resp.UserAnimalName)
	require.Equal(t, testutil.Animal1.Description, resp.Description)
	require.Equal(t, testutil.Animal1Motion.FileURL, resp.FileURL)

	_, err = domain.GetAnimalDetail(ctx, &model.GetAnimalDetailRequest{
		AnimalID: "no-such-animal",
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_animalDomain_GetMyAnimals(t *testing.T) {
	ctx := xcontext.WithRequestUserID(testutil.MockContext(), testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := NewAnimalDomain(
		repository.NewAnimalRepository(),
		repository.NewUserAnimalRepository(),
	)

	resp, err := domain.GetMyAnimals(ctx, &model.GetMyAnimalsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Animals, 2)
}
