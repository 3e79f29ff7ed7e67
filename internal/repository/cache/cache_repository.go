package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// DeleteByPrefix walks the keyspace with SCAN so invalidation never
// blocks the store on a large match set.
func (r *cacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	mask := prefix + "*"

	for {
		keys, next, err := r.client.Scan(ctx, cursor, mask, 100).Result()
		if err != nil {
			r.logger.Error("Failed to scan cache keys", zap.String("prefix", prefix), zap.Error(err))
			return fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("Failed to delete scanned keys", zap.String("prefix", prefix), zap.Error(err))
				return fmt.Errorf("cache delete error: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.logger.Debug("Cache invalidated by prefix", zap.String("prefix", prefix))
	return nil
}
