package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/config"
)

const applicationName = "lumenquest"

// NewPostgresPool opens the catalogue database and pings it before handing
// the pool out.
func NewPostgresPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open catalogue pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping catalogue database: %w", err)
	}
	return pool, nil
}

func poolConfig(cfg config.PostgresConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	if cfg.MaxOpen > 0 {
		pc.MaxConns = int32(cfg.MaxOpen)
	}
	// Idle connections kept warm can never exceed the pool size.
	pc.MinConns = int32(min(cfg.MaxIdle, int(pc.MaxConns)))
	if cfg.ConnMaxLifetime > 0 {
		pc.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	pc.MaxConnIdleTime = 5 * time.Minute
	pc.HealthCheckPeriod = 30 * time.Second
	pc.ConnConfig.RuntimeParams["application_name"] = applicationName
	return pc, nil
}
