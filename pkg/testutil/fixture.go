package testutil

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/repository"
)

var (
	// Users.
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		Nickname: "dokko",
		Region:   entity.RegionSeoul,
	}
	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		Nickname: "arem",
		Region:   entity.RegionSeoul,
	}
	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Nickname: "byul",
		Region:   entity.RegionBusan,
	}

	// Plog records. User1 and User2 tie on score to exercise the nickname
	// tie-break.
	PlogInfo1 = entity.UserPlogInfo{
		UserID:        User1.ID,
		PlogCount:     3,
		Seed:          150,
		Score:         300,
		SumLength:     5000,
		SumTime:       3700,
		SumTrash:      20,
		MissionLength: 2000,
		MissionTime:   1800,
		MissionTrash:  10,
	}
	PlogInfo2 = entity.UserPlogInfo{
		UserID:    User2.ID,
		PlogCount: 5,
		Seed:      40,
		Score:     300,
		SumLength: 12000,
		SumTime:   7200,
		SumTrash:  9,
	}
	PlogInfo3 = entity.UserPlogInfo{
		UserID:    User3.ID,
		PlogCount: 1,
		Seed:      10,
		Score:     90,
		SumLength: 800,
		SumTime:   600,
		SumTrash:  3,
	}

	// Animal catalog.
	Animal1 = entity.Animal{
		Base:        entity.Base{ID: "animal1"},
		Name:        "Otter",
		Description: "A playful river otter.",
	}
	Animal2 = entity.Animal{
		Base:        entity.Base{ID: "animal2"},
		Name:        "Red Panda",
		Description: "A shy bamboo eater.",
	}
	Animal1Motion = entity.AnimalMotion{
		Base:     entity.Base{ID: "animal1_motion1"},
		AnimalID: Animal1.ID,
		FileURL:  "https://storage.example.com/motions/otter.gif",
	}

	// User1 owns both animals, only the otter is on display.
	UserAnimal1 = entity.UserAnimal{
		UserID:         User1.ID,
		AnimalID:       Animal1.ID,
		UserAnimalName: "bubbles",
		IsSelected:     true,
	}
	UserAnimal2 = entity.UserAnimal{
		UserID:         User1.ID,
		AnimalID:       Animal2.ID,
		UserAnimalName: "bamboo",
		IsSelected:     false,
	}

	// Badge catalog.
	Badge1 = entity.Badge{
		Base:        entity.Base{ID: "badge1"},
		Name:        "First Step",
		Condition:   "Complete your first plogging",
		ScannerName: "plog_runner",
		Value:       1,
	}
	Badge2 = entity.Badge{
		Base:        entity.Base{ID: "badge2"},
		Name:        "Regular Runner",
		Condition:   "Complete 10 ploggings",
		ScannerName: "plog_runner",
		Value:       10,
	}
	Badge3 = entity.Badge{
		Base:        entity.Base{ID: "badge3"},
		Name:        "Clean Hands",
		Condition:   "Pick up 10 pieces of trash",
		ScannerName: "trash_collector",
		Value:       10,
	}
	Badge4 = entity.Badge{
		Base:        entity.Base{ID: "badge4"},
		Name:        "Trash Hero",
		Condition:   "Pick up 100 pieces of trash",
		ScannerName: "trash_collector",
		Value:       100,
	}
	Badge5 = entity.Badge{
		Base:        entity.Base{ID: "badge5"},
		Name:        "Forest Friend",
		Condition:   "Plant your first tree",
		ScannerName: "tree_planter",
		Value:       1,
	}

	UserBadge1 = entity.UserBadge{UserID: User1.ID, BadgeID: Badge1.ID}
	UserBadge2 = entity.UserBadge{UserID: User1.ID, BadgeID: Badge3.ID}

	// Item catalog. User1 has an island theme and a tree skin on display.
	Item1 = entity.Item{
		Base:     entity.Base{ID: "item1"},
		ItemType: entity.ItemIsland,
		Name:     "Spring Island",
		FileURL:  "https://storage.example.com/items/spring_island.png",
	}
	Item2 = entity.Item{
		Base:     entity.Base{ID: "item2"},
		ItemType: entity.ItemTree,
		Name:     "Pine Tree",
		FileURL:  "https://storage.example.com/items/pine_tree.png",
	}

	UserItem1 = entity.UserItem{UserID: User1.ID, ItemID: Item1.ID, IsSelected: true}
	UserItem2 = entity.UserItem{UserID: User1.ID, ItemID: Item2.ID, IsSelected: true}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertPlogInfos(ctx)
	InsertAnimals(ctx)
	InsertBadges(ctx)
	InsertItems(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertPlogInfos(ctx context.Context) {
	userPlogInfoRepo := repository.NewUserPlogInfoRepository()

	for _, info := range []entity.UserPlogInfo{PlogInfo1, PlogInfo2, PlogInfo3} {
		info := info
		if err := userPlogInfoRepo.Create(ctx, &info); err != nil {
			panic(err)
		}
	}
}

func InsertAnimals(ctx context.Context) {
	animalRepo := repository.NewAnimalRepository()
	userAnimalRepo := repository.NewUserAnimalRepository()

	for _, animal := range []entity.Animal{Animal1, Animal2} {
		animal := animal
		if err := animalRepo.Create(ctx, &animal); err != nil {
			panic(err)
		}
	}

	motion := Animal1Motion
	if err := animalRepo.CreateMotion(ctx, &motion); err != nil {
		panic(err)
	}

	for _, userAnimal := range []entity.UserAnimal{UserAnimal1, UserAnimal2} {
		userAnimal := userAnimal
		if err := userAnimalRepo.Create(ctx, &userAnimal); err != nil {
			panic(err)
		}
	}
}

func InsertBadges(ctx context.Context) {
	badgeRepo := repository.NewBadgeRepository()
	userBadgeRepo := repository.NewUserBadgeRepository()

	for _, badge := range []entity.Badge{Badge1, Badge2, Badge3, Badge4, Badge5} {
		badge := badge
		if err := badgeRepo.Create(ctx, &badge); err != nil {
			panic(err)
		}
	}

	for _, userBadge := range []entity.UserBadge{UserBadge1, UserBadge2} {
		userBadge := userBadge
		if err := userBadgeRepo.Create(ctx, &userBadge); err != nil {
			panic(err)
		}
	}
}

func InsertItems(ctx context.Context) {
	userItemRepo := repository.NewUserItemRepository()

	for _, item := range []entity.Item{Item1, Item2} {
		item := item
		if err := userItemRepo.CreateItem(ctx, &item); err != nil {
			panic(err)
		}
	}

	for _, userItem := range []entity.UserItem{UserItem1, UserItem2} {
		userItem := userItem
		if err := userItemRepo.Create(ctx, &userItem); err != nil {
			panic(err)
		}
	}
}
