package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisKV 基于 Redis 的键值存储
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV 创建 Redis 键值存储
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: strings.TrimSpace(prefix)}
}

// Get 读取键值，键不存在时 ok 为 false
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	if r.client == nil {
		return "", false, errors.New("redis client not initialized")
	}
	val, err := r.client.Get(ctx, r.buildKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set 写入键值（无过期时间）
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if r.client == nil {
		return errors.New("redis client not initialized")
	}
	return r.client.Set(ctx, r.buildKey(key), value, 0).Err()
}

func (r *RedisKV) buildKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.prefix, key)
}
