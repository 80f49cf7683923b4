package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/zoosum-lab/backend/internal/middleware"
	"github.com/zoosum-lab/backend/pkg/router"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedisClient(s.newContext(ct.Context))
	s.loadRepos()
	s.loadBadgeManager()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.AllowCors)
	s.router.Before(middleware.VerifyToken)
	s.router.AddCloser(middleware.Logger)

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate)
	{
		// Ranking API
		router.GET(authRouter, "/getMyRank", s.rankingDomain.GetMyRank)

		// Activity API
		router.POST(authRouter, "/recordActivity", s.activityDomain.RecordActivity)
		router.POST(authRouter, "/plantTree", s.activityDomain.PlantTree)

		// Animal API
		router.GET(authRouter, "/getAnimalDraw", s.animalDomain.GetAnimalDraw)
		router.GET(authRouter, "/getMyAnimals", s.animalDomain.GetMyAnimals)
		router.GET(authRouter, "/getAnimalDetail", s.animalDomain.GetAnimalDetail)
		router.POST(authRouter, "/registerAnimal", s.animalDomain.RegisterAnimal)
		router.POST(authRouter, "/selectAnimals", s.animalDomain.SelectAnimals)

		// Main screen API
		router.GET(authRouter, "/getMainInfo", s.userInfoDomain.GetMainInfo)
		router.GET(authRouter, "/getMain", s.userInfoDomain.GetMain)
		router.GET(authRouter, "/getBadgeList", s.userInfoDomain.GetBadgeList)

		// Image API
		router.POST(authRouter, "/uploadImage", s.fileDomain.UploadImage)
	}

	// Public API.
	router.GET(s.router, "/getRanking", s.rankingDomain.GetRanking)
	router.GET(s.router, "/getPlogRecord", s.userInfoDomain.GetPlogRecord)
}
