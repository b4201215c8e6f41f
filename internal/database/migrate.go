package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending schema migration embedded in the binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	// goose only speaks database/sql.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("close migration db handle")
		}
	}()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: logger.With().Str("component", "migrate").Logger()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
