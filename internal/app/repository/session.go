package repository

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type sessionStore interface {
	Save(ctx context.Context, key, token string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

type redisSessions struct {
	client *redis.Client
}

func (s *redisSessions) Save(ctx context.Context, key, token string, ttl time.Duration) error {
	return s.client.Set(ctx, key, token, ttl).Err()
}

func (s *redisSessions) Get(ctx context.Context, key string) (string, bool, error) {
	token, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *redisSessions) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// memorySessions backs single-instance deployments and tests.
type memorySessions struct {
	cache *cache.Cache
}

func newMemorySessions() *memorySessions {
	return &memorySessions{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (s *memorySessions) Save(_ context.Context, key, token string, ttl time.Duration) error {
	s.cache.Set(key, token, ttl)
	return nil
}

func (s *memorySessions) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (s *memorySessions) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
