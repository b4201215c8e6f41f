package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"lumenquest/internal/cache"
	"lumenquest/internal/config"
	"lumenquest/internal/database"
	"lumenquest/internal/handlers"
	"lumenquest/internal/jobs"
	"lumenquest/internal/log"
	"lumenquest/internal/portal"
	"lumenquest/internal/queue"
	"lumenquest/internal/repository"
	"lumenquest/internal/repository/memory"
	"lumenquest/internal/security"
	"lumenquest/internal/server"
	"lumenquest/internal/service"
	"lumenquest/internal/session"
	"lumenquest/internal/storage"
	"lumenquest/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.Logging.Level)

	ctx := context.Background()
	var checks []handlers.HealthCheck

	var dbPool *pgxpool.Pool
	if cfg.Catalog.Driver == config.StorageDriverPostgres {
		dbPool, err = database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		if cfg.Postgres.AutoMigrate {
			if err := database.Migrate(ctx, dbPool, logger); err != nil {
				logger.Fatal().Err(err).Msg("failed to migrate postgres")
			}
		}
		checks = append(checks, handlers.HealthCheck{Name: "database", Ping: dbPool.Ping})
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis, "lumenquest-api")
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		checks = append(checks, handlers.HealthCheck{Name: "cache", Ping: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
	}

	repos := buildRepositories(cfg, dbPool, redisClient, logger)

	var reports service.ReportStore
	if cfg.Storage.Enabled() {
		objectStore, err := storage.NewObjectStore(cfg.Storage)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init object store")
		}
		if err := objectStore.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("ensure bucket failed")
		}
		reports = objectStore
		checks = append(checks, handlers.HealthCheck{Name: "storage", Ping: objectStore.Ping})
	}

	scheduler := jobs.NewScheduler(logger, time.Minute)

	var sessions session.Store
	var memorySessions *session.MemoryStore
	if redisClient != nil {
		sessions = session.NewRedisStore(redisClient)
	} else {
		memorySessions = session.NewMemoryStore()
		sessions = memorySessions
	}

	var taskQueue service.TaskQueue
	if redisClient != nil {
		taskQueue = queue.NewProducer(redisClient, cfg.Campaigns.Stream)
	} else {
		logger.Info().Msg("no redis configured, campaigns are delivered in process")
		taskQueue = queue.NewInline(tasks.NewCampaignProcessor(cfg.Email, logger))
	}

	portals := portal.NewRegistry()
	auth := service.NewAuthService(repos.Users, sessions, portals, security.NewHasher(security.DefaultParams), cfg, logger)
	campaigns := service.NewCampaignService(repos.Templates, repos.Campaigns, repos.Plans, repos.Accounts, taskQueue, logger)

	if err := scheduler.Add("0 */5 * * * *", "session-sweep", func(ctx context.Context) error {
		if memorySessions != nil {
			if n := memorySessions.Sweep(); n > 0 {
				logger.Debug().Int("removed", n).Msg("expired sessions swept")
			}
		}
		n, err := auth.PrunePortals(ctx)
		if n > 0 {
			logger.Debug().Int("removed", n).Msg("portal state of expired sessions dropped")
		}
		return err
	}); err != nil {
		logger.Fatal().Err(err).Msg("schedule session sweep")
	}

	if cfg.Catalog.SeedFixtures {
		if err := service.SeedFixtures(ctx, repos, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed fixtures")
		}
	}
	if cfg.Auth.SeedDemoUsers {
		if err := service.SeedDemoUsers(ctx, auth); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo users")
		}
	}

	if err := scheduler.Add(cfg.Campaigns.DispatchSchedule, "campaign-dispatch", func(ctx context.Context) error {
		sent, err := campaigns.Dispatch(ctx)
		if sent > 0 {
			logger.Info().Int("sent", sent).Msg("campaigns dispatched")
		}
		return err
	}); err != nil {
		logger.Fatal().Err(err).Msg("schedule campaign dispatch")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, handlers.Services{
		Auth:      auth,
		Plans:     service.NewPlanService(repos.Plans, logger),
		Accounts:  service.NewAccountService(repos.Accounts, logger),
		Campaigns: campaigns,
		Customers: service.NewCustomerService(repos.Subscriptions, repos.Plans, repos.Offers, repos.Notifications, logger),
		Analytics: service.NewAnalyticsService(repos.Plans, reports, logger),
	}, portals, checks...)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler.Start()

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, dbPool, redisClient)
}

// buildRepositories picks the storage driver. The plan catalogue is served
// through the redis cache whenever redis is configured.
func buildRepositories(cfg *config.AppConfig, pool *pgxpool.Pool, redisClient *redis.Client, logger zerolog.Logger) service.Repositories {
	var repos service.Repositories
	if pool != nil {
		repos = service.Repositories{
			Plans:         repository.NewPlanRepository(pool),
			Accounts:      repository.NewAccountRepository(pool),
			Users:         repository.NewUserRepository(pool),
			Templates:     repository.NewTemplateRepository(pool),
			Campaigns:     repository.NewCampaignRepository(pool),
			Offers:        repository.NewOfferRepository(pool),
			Notifications: repository.NewNotificationRepository(pool),
			Subscriptions: repository.NewSubscriptionRepository(pool),
		}
	} else {
		repos = service.Repositories{
			Plans:         memory.NewPlanRepository(),
			Accounts:      memory.NewAccountRepository(),
			Users:         memory.NewUserRepository(),
			Templates:     memory.NewTemplateRepository(),
			Campaigns:     memory.NewCampaignRepository(),
			Offers:        memory.NewOfferRepository(),
			Notifications: memory.NewNotificationRepository(),
			Subscriptions: memory.NewSubscriptionRepository(),
		}
	}

	if redisClient != nil {
		repos.Plans = cache.NewPlanCatalog(repos.Plans, redisClient, cfg.Catalog.CacheTTL, logger)
	}
	logger.Info().Str("driver", cfg.Catalog.Driver).Bool("plan_cache", redisClient != nil).Msg("repositories ready")
	return repos
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	scheduler.Stop(shutdownCtx)

	if db != nil {
		db.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
