package infra

import (
	"context"
	"fmt"
	"gin-manufacturer/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SetupRedis REDIS_ADDRが未設定ならnilを返す（キャッシュなしで動かす）
func SetupRedis(ctx context.Context, cfg config.Redis, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("Setup redis cache", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.CacheTTL))
	return client, nil
}
