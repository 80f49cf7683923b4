package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/zoosum-lab/backend/config"
	"github.com/zoosum-lab/backend/internal/domain"
	"github.com/zoosum-lab/backend/internal/domain/badge"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/logger"
	"github.com/zoosum-lab/backend/pkg/router"
	"github.com/zoosum-lab/backend/pkg/storage"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"github.com/zoosum-lab/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	userRepo         repository.UserRepository
	userPlogInfoRepo repository.UserPlogInfoRepository
	animalRepo       repository.AnimalRepository
	userAnimalRepo   repository.UserAnimalRepository
	badgeRepo        repository.BadgeRepository
	userBadgeRepo    repository.UserBadgeRepository
	userItemRepo     repository.UserItemRepository
	activityRepo     repository.ActivityRepository

	badgeManager *badge.Manager

	rankingDomain  domain.RankingDomain
	activityDomain domain.ActivityDomain
	animalDomain   domain.AnimalDomain
	userInfoDomain domain.UserInfoDomain
	fileDomain     domain.FileDomain

	router *router.Router

	db          *gorm.DB
	logger      logger.Logger
	storage     storage.Storage
	redisClient xredis.Client

	configs *config.Configs

	server *http.Server
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}

	return d
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "zoosum"),
			User:     getEnv("MYSQL_USER", "zoosum"),
			Password: getEnv("MYSQL_PASSWORD", "zoosum"),
		},
		ApiServer: config.ServerConfigs{
			Host:     getEnv("HOST", "localhost"),
			Port:     getEnv("PORT", "8080"),
			MaxLimit: parseInt(getEnv("API_MAX_LIMIT", "50"), 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "5m"), 5*time.Minute),
			},
		},
		Plog: config.PlogConfigs{
			TreeSeedCost:     parseInt(getEnv("TREE_SEED_COST", "100"), 100),
			SeedPerTrash:     parseInt(getEnv("SEED_PER_TRASH", "1"), 1),
			SeedPerKilometer: parseInt(getEnv("SEED_PER_KILOMETER", "5"), 5),
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			SSLDisabled:    getEnv("STORAGE_SSL_DISABLE", "true") == "true",
			Bucket:         getEnv("STORAGE_BUCKET", "zoosum"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		File: config.FileConfigs{
			MaxSize: int64(parseInt(getEnv("MAX_UPLOAD_SIZE", "2097152"), 2097152)),
		},
		LogLevel: parseInt(getEnv("LOG_LEVEL", "1"), 1),
	}
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRedisClient(ctx context.Context) {
	var err error
	s.redisClient, err = xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.userPlogInfoRepo = repository.NewUserPlogInfoRepository()
	s.animalRepo = repository.NewAnimalRepository()
	s.userAnimalRepo = repository.NewUserAnimalRepository()
	s.badgeRepo = repository.NewBadgeRepository()
	s.userBadgeRepo = repository.NewUserBadgeRepository()
	s.userItemRepo = repository.NewUserItemRepository()
	s.activityRepo = repository.NewActivityRepository()
}

func (s *srv) loadBadgeManager() {
	s.badgeManager = badge.NewManager(
		s.userBadgeRepo,
		badge.NewPlogRunnerBadgeScanner(s.badgeRepo, s.userPlogInfoRepo),
		badge.NewTrashCollectorBadgeScanner(s.badgeRepo, s.userPlogInfoRepo),
		badge.NewTreePlanterBadgeScanner(s.badgeRepo, s.activityRepo),
	)
}

func (s *srv) loadDomains() {
	s.rankingDomain = domain.NewRankingDomain(s.userPlogInfoRepo, s.redisClient)
	s.activityDomain = domain.NewActivityDomain(
		s.userPlogInfoRepo, s.userAnimalRepo, s.activityRepo,
		s.badgeManager, s.redisClient, domain.DefaultScore)
	s.animalDomain = domain.NewAnimalDomain(s.animalRepo, s.userAnimalRepo)
	s.userInfoDomain = domain.NewUserInfoDomain(
		s.userRepo, s.userPlogInfoRepo, s.badgeRepo, s.userBadgeRepo,
		s.userAnimalRepo, s.animalRepo, s.userItemRepo, s.activityRepo)
	s.fileDomain = domain.NewFileDomain(s.storage)
}

func (s *srv) newContext(ctx context.Context) context.Context {
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	return ctx
}
