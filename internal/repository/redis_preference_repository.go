package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type redisPreferenceRepository struct {
	redisClient *redis.Client
	prefix      string
}

// NewRedisPreferenceRepository 创建一个 Redis 版 PreferenceRepository 实例。
// 记录不设过期时间，与浏览器 localStorage 的语义一致。
func NewRedisPreferenceRepository(redisClient *redis.Client, prefix string) PreferenceRepository {
	return &redisPreferenceRepository{redisClient: redisClient, prefix: prefix}
}

// preferenceKey 返回形如 scholar:visitor:{id}:scholar_tasks 的键。
func preferenceKey(prefix, visitorID, key string) string {
	if prefix == "" {
		return fmt.Sprintf("visitor:%s:%s", visitorID, key)
	}
	return fmt.Sprintf("%s:visitor:%s:%s", prefix, visitorID, key)
}

// Get 从 Redis 读取一条记录。
func (r *redisPreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, error) {
	val, err := r.redisClient.Get(ctx, preferenceKey(r.prefix, visitorID, key)).Result()
	if err == redis.Nil {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return val, nil
}

// Put 在 Redis 中整体覆盖一条记录。
func (r *redisPreferenceRepository) Put(ctx context.Context, visitorID, key, value string) error {
	if err := r.redisClient.Set(ctx, preferenceKey(r.prefix, visitorID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}
