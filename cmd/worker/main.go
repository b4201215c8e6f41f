package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"lumenquest/internal/cache"
	"lumenquest/internal/config"
	"lumenquest/internal/log"
	"lumenquest/internal/queue"
	"lumenquest/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.Logging.Level).With().Str("component", "worker").Logger()

	if !cfg.Redis.Enabled() {
		logger.Fatal().Msg("worker requires redis.addr; without redis the api delivers campaigns itself")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := cache.NewRedisClient(ctx, cfg.Redis, "lumenquest-worker")
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	defer client.Close()

	processor := tasks.NewCampaignProcessor(cfg.Email, logger)
	consumer := queue.NewConsumer(
		client,
		cfg.Campaigns.Stream,
		cfg.Campaigns.Group,
		cfg.Campaigns.Consumer,
		cfg.Campaigns.ClaimInterval,
		logger,
		processor,
	)

	logger.Info().
		Str("stream", cfg.Campaigns.Stream).
		Str("group", cfg.Campaigns.Group).
		Str("consumer", cfg.Campaigns.Consumer).
		Msg("worker started")

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("consumer stopped unexpectedly")
		return
	}
	logger.Info().Msg("worker exited cleanly")
}
