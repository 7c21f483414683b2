package cache

import (
	"context"
	"errors"
	"time"

	"github.com/paani/remedial-learning-app/pkg/logging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache is a best-effort byte cache: failures read as misses.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Connect parses a redis:// URL and pings the server once.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		warn(ctx, "cache get failed", key, err)
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		warn(ctx, "cache set failed", key, err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		warn(ctx, "cache delete failed", key, err)
	}
}

func warn(ctx context.Context, msg string, key string, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, msg, zap.String("key", key), zap.Error(err))
	}
}
