package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"ship_catalog/internal/app/config"
	"ship_catalog/internal/app/ds"
	"ship_catalog/internal/app/dsn"
	"ship_catalog/internal/app/repository"
)

func main() {
	promote := flag.String("promote", "", "login of a user to make moderator")
	flag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.ConfigureLogger()

	connString := conf.SQLitePath
	if conf.StorageDriver == "postgres" {
		connString = dsn.FromEnv()
	}
	db, err := repository.Open(conf.StorageDriver, connString)
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	rep := repository.New(db, nil, conf.JwtKey, conf.JwtTTL)
	// Порядок миграций: сначала users, потом ships
	if err := rep.Migrate(); err != nil {
		logrus.Fatalf("error migrating database: %v", err)
	}
	logrus.Info("Database migration completed")

	if *promote != "" {
		if err := rep.SetRole(context.Background(), *promote, ds.RoleModerator); err != nil {
			logrus.Fatalf("error promoting %s: %v", *promote, err)
		}
		logrus.Infof("%s is now a moderator", *promote)
	}
}
