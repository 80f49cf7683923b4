package main

import (
	"log"

	"github.com/urfave/cli/v2"
	"github.com/zoosum-lab/backend/migration"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := migration.Migrate(s.newContext(ct.Context)); err != nil {
		return err
	}

	log.Println("migration completed")
	return nil
}
