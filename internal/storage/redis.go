package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "mm"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisKV persists storefront state in Redis under a namespaced key space.
type RedisKV struct {
	store cmdable
	raw   *redis.Client
}

// NewRedis bootstraps a Redis-backed KV and verifies connectivity.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisKV, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisKV{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	return opts, nil
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	if r.store == nil {
		return "", errors.New("redis client not initialized")
	}
	val, err := r.store.Get(ctx, r.buildKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if r.store == nil {
		return errors.New("redis client not initialized")
	}
	// Storefront state has no TTL; it lives until the user clears it.
	return r.store.Set(ctx, r.buildKey(key), value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if r.store == nil {
		return errors.New("redis client not initialized")
	}
	return r.store.Del(ctx, r.buildKey(key)).Err()
}

// Ping verifies the connection.
func (r *RedisKV) Ping(ctx context.Context) error {
	if r.store == nil {
		return errors.New("redis client not initialized")
	}
	return r.store.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (r *RedisKV) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func (r *RedisKV) buildKey(key string) string {
	return strings.Join([]string{keyNamespace, key}, ":")
}
