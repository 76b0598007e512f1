package main

// go run cmd/ship_catalog/main.go

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "ship_catalog/docs" // Swagger docs
	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/config"
	"ship_catalog/internal/app/dsn"
	"ship_catalog/internal/app/handler"
	"ship_catalog/internal/app/handler/api"
	"ship_catalog/internal/app/pkg"
	"ship_catalog/internal/app/repository"
	"ship_catalog/internal/app/utils"
)

// @title Ship catalog API
// @version 1.0
// @description Catalog of ships with validation, rating and paged search.
// @BasePath /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.ConfigureLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connString := conf.SQLitePath
	if conf.StorageDriver == "postgres" {
		connString = dsn.FromEnv()
	}
	db, err := repository.Open(conf.StorageDriver, connString)
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	var rdb *redis.Client
	if conf.RedisEndpoint != "" {
		rdb, err = utils.NewRedisClient(ctx, conf.RedisEndpoint, conf.RedisPassword)
		if err != nil {
			logrus.Fatalf("error connecting to redis: %v", err)
		}
	} else {
		logrus.Warn("redis endpoint not set, sessions are kept in memory")
	}

	rep := repository.New(db, rdb, conf.JwtKey, conf.JwtTTL)
	if conf.AutoMigrate {
		if err := rep.Migrate(); err != nil {
			logrus.Fatalf("error migrating database: %v", err)
		}
	}

	var store catalog.Store = rep
	if conf.CacheTTL > 0 {
		store = repository.NewCachedStore(rep, conf.CacheTTL)
	}
	svc := catalog.NewService(store)

	var images api.ImageStore
	if conf.MinioEndpoint != "" {
		imageStore, err := repository.NewImageStore(ctx, conf.MinioEndpoint, conf.MinioAccessKey,
			conf.MinioSecretKey, conf.MinioUseSSL, conf.MinioBucket)
		if err != nil {
			logrus.Fatalf("error initializing minio: %v", err)
		}
		images = imageStore
	} else {
		logrus.Warn("minio endpoint not set, image upload disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	hand := handler.NewHandler(rep, svc, images, handler.Options{
		RequireModerator: conf.RequireModerator,
		RateLimitRPS:     conf.RateLimitRPS,
		RateLimitBurst:   conf.RateLimitBurst,
	})

	application := pkg.NewApp(conf, router, hand)
	if err := application.RunApp(); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
