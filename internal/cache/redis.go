package cache

import (
	"context"
	"errors"
	"time"

	"github.com/finwise/fincalc/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps results in Redis so several API instances share them
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects lazily; the first command dials the server
func NewRedisStore(cfg config.CacheConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 2 * time.Second,
		ReadTimeout: time.Second,
	})
	return &RedisStore{client: rdb, ttl: cfg.TTL}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Ping checks connectivity
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
