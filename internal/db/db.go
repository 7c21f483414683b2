package db

import (
	"context"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paani/remedial-learning-app/internal/config"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"go.uber.org/zap"
)

const connectBaseDelay = 500 * time.Millisecond

func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*pgxpool.Pool, error) {
	if cfg.PostgresAutoMigrate {
		if err := MigrateUp(cfg); err != nil {
			return nil, err
		}
		logger.Info(ctx, "migrations applied")
	}

	pgxCfg, err := pgxpool.ParseConfig(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	pgxCfg.MaxConns = cfg.PostgresMaxConn
	pgxCfg.MinConns = cfg.PostgresMinConn

	attempt := 0
	return RetryWithBackoff(ctx, cfg.PostgresConnectRetries, connectBaseDelay, IsRetriable, func() (*pgxpool.Pool, error) {
		attempt++
		pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			logger.Warn(ctx, "postgres not reachable", zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}
		return pool, nil
	})
}

func MigrateUp(cfg *config.Config) error {
	m, err := migrate.New(cfg.MigrationsURL, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func MigrateDown(cfg *config.Config) error {
	m, err := migrate.New(cfg.MigrationsURL, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
