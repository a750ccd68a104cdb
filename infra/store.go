package infra

import (
	"context"
	"gin-manufacturer/config"
	"gin-manufacturer/repositories"

	"go.uber.org/zap"
)

// Store DB_DRIVERで選ばれたストアとそのリポジトリ
type Store struct {
	Driver       string
	Repositories *repositories.Repositories

	migrate func(ctx context.Context) error
	close   func() error
}

// Migrate gormならAutoMigrate、mongoならインデックス作成
func (s *Store) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}

func (s *Store) Close() error {
	return s.close()
}

func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	if cfg.Database.Driver == "mongo" {
		client, err := SetupMongo(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.MongoDB)
		return &Store{
			Driver:       cfg.Database.Driver,
			Repositories: repositories.NewMongoRepositories(db),
			migrate: func(ctx context.Context) error {
				return EnsureMongoIndexes(ctx, db)
			},
			close: func() error {
				return DisconnectMongo(client, cfg.Database.ConnectTimeout)
			},
		}, nil
	}

	db, err := SetupGormDB(cfg.Database, cfg.Env, logger)
	if err != nil {
		return nil, err
	}
	return &Store{
		Driver:       cfg.Database.Driver,
		Repositories: repositories.NewGormRepositories(db),
		migrate: func(context.Context) error {
			return MigrateGorm(db)
		},
		close: func() error {
			return CloseGormDB(db)
		},
	}, nil
}
