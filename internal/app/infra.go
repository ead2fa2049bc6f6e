package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"campus-portal/internal/auth/provider/password"
	"campus-portal/internal/config"
	"campus-portal/internal/db"
	"campus-portal/internal/logger"
	"campus-portal/internal/redis"
	"campus-portal/internal/session"
	"campus-portal/internal/store"
)

type Infra struct {
	Store       store.Store
	Sessions    session.Store
	Credentials password.CredentialStore

	cleanup func() error
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	// Local demo mode: everything in-process, no external services
	if cfg.StoreBackend == "memory" {
		logger.Info("using in-memory store (demo mode)", nil)
		return &Infra{
			Store:       store.NewMemory(),
			Sessions:    session.NewMemoryStore(),
			Credentials: password.NewMemoryStore(),
		}, nil
	}

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunPortalMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	database := &db.DB{DB: sqlDB}

	return &Infra{
		Store:       store.NewPostgres(database),
		Sessions:    session.NewRedisStore(redisClient.Client),
		Credentials: password.NewPostgresStore(database),
		cleanup:     sqlDB.Close,
	}, nil
}
