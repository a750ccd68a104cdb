package main

import (
	"context"
	"gin-manufacturer/config"
	"gin-manufacturer/infra"
	"gin-manufacturer/services"
	"log"

	"go.uber.org/zap"
)

// go run migrations/migration.go
// スキーマ（gorm）またはインデックス（mongo）を作成し、ADMIN_EMAILがあれば管理者を登録する
func main() {
	if err := infra.Initialize(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := infra.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := infra.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("Failed to migrate database", zap.String("driver", store.Driver), zap.Error(err))
	}
	logger.Info("Migrated database", zap.String("driver", store.Driver))

	if cfg.Admin.Email != "" {
		if err := services.EnsureAdmin(ctx, store.Repositories.Users, cfg.Admin.Email); err != nil {
			logger.Fatal("Failed to seed admin", zap.Error(err))
		}
		logger.Info("Seeded admin", zap.String("email", cfg.Admin.Email))
	}
}
