package repository

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ship_catalog/internal/app/ds"
)

type Repository struct {
	db       *gorm.DB
	sessions sessionStore
	jwtKey   string
	jwtTTL   time.Duration
}

// Open connects gorm to postgres or sqlite.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}

// New wraps an open database. Sessions live in redis when rdb is set and in
// process memory otherwise.
func New(db *gorm.DB, rdb *redis.Client, jwtKey string, jwtTTL time.Duration) *Repository {
	var sessions sessionStore
	if rdb != nil {
		sessions = &redisSessions{client: rdb}
	} else {
		sessions = newMemorySessions()
	}
	return &Repository{
		db:       db,
		sessions: sessions,
		jwtKey:   jwtKey,
		jwtTTL:   jwtTTL,
	}
}

// Migrate creates or updates the users and ships tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&ds.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := r.db.AutoMigrate(&ds.Ship{}); err != nil {
		return fmt.Errorf("migrate ships: %w", err)
	}
	return nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) JWTKey() []byte {
	return []byte(r.jwtKey)
}
