package infra

import (
	"context"
	"fmt"
	"gin-manufacturer/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupGormDB DB_DRIVER=postgres / sqlite 用の接続
func SetupGormDB(cfg config.Database, env string, logger *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.Driver {
	case "postgres":
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=%d",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.DBPort,
			sslmode,
			int(cfg.ConnectTimeout.Seconds()),
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.Info("Setup postgres database", zap.String("host", cfg.Host), zap.String("dbname", cfg.Name))
		return db, nil

	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to sqlite: %w", err)
		}
		// インメモリDBは接続ごとに別のDBになるので1本に絞る
		if cfg.SQLitePath == ":memory:" {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(1)
		}
		logger.Info("Setup sqlite database", zap.String("path", cfg.SQLitePath))
		return db, nil
	}

	return nil, fmt.Errorf("unsupported gorm driver %q", cfg.Driver)
}

// SetupMongo ドキュメントストアへの接続。プロセス起動時に一度だけ作り、終了時にDisconnectする
func SetupMongo(ctx context.Context, cfg config.Database, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.MongoURL()).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("Setup mongo database", zap.String("database", cfg.MongoDB))
	return client, nil
}

// CloseGormDB gormの接続プールを閉じる
func CloseGormDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DisconnectMongo 終了処理用
func DisconnectMongo(client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}
