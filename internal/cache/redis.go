// Package cache 封装 Redis 缓存访问
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/logger"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient  *redis.Client
	redisPrefix  string
	redisEnabled bool
)

// InitRedis 初始化全局 Redis 客户端，连接失败时自动降级
func InitRedis(cfg config.RedisConfig) {
	redisEnabled = false
	redisClient = nil
	redisPrefix = strings.TrimSpace(cfg.Prefix)
	if redisPrefix == "" {
		redisPrefix = "yn"
	}

	if !cfg.Enabled {
		logger.Infow("redis_disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_connect_failed", "error", err, "addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
		return
	}

	redisClient = client
	redisEnabled = true
	logger.Infow("redis_connected", "addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), "db", cfg.DB)
}

// Enabled 判断缓存是否可用
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client 返回底层 Redis 客户端
func Client() *redis.Client {
	return redisClient
}

// Prefix 返回缓存键前缀
func Prefix() string {
	return redisPrefix
}

func buildKey(parts ...string) string {
	return redisPrefix + ":" + strings.Join(parts, ":")
}

// GetJSON 读取并反序列化缓存值，命中返回 true
func GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	raw, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, key, raw, ttl).Err()
}

// Del 删除缓存键
func Del(ctx context.Context, keys ...string) {
	if !Enabled() || len(keys) == 0 {
		return
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		logger.Warnw("redis_del_failed", "error", err, "keys", keys)
	}
}
