package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mateoquintero/venturelink-backend/internal/content"
	"github.com/mateoquintero/venturelink-backend/internal/scheduler"
	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/db"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
	"github.com/mateoquintero/venturelink-backend/pkg/metrics"
	"github.com/mateoquintero/venturelink-backend/pkg/migrate"
	"github.com/mateoquintero/venturelink-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "scheduler"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "scheduler"

	logg = logger.New(logger.Options{
		ServiceName: "scheduler",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	jobMetrics := metrics.NewJobMetrics(prometheus.DefaultRegisterer)

	lock, err := scheduler.NewRedisLock(redisClient, cfg.Scheduler.LockKey, cfg.Scheduler.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create scheduler lock", err)
		os.Exit(1)
	}

	postingJob, err := scheduler.NewContentPostingJob(scheduler.ContentPostingJobParams{
		Logger:     logg,
		Repository: content.NewRepository(dbClient.DB()),
		Poster:     logPoster(logg),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create content posting job", err)
		os.Exit(1)
	}

	service, err := scheduler.NewService(scheduler.ServiceParams{
		Logger:   logg,
		Registry: scheduler.NewRegistry(postingJob),
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.Scheduler.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create scheduler service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting scheduler worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "scheduler worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "scheduler worker shutting down gracefully")
}

// logPoster stands in for real channel integrations: posting succeeds and
// is recorded in the logs.
func logPoster(logg *logger.Logger) scheduler.PosterFunc {
	return func(ctx context.Context, item *models.ContentItem) error {
		ctx = logg.WithFields(ctx, map[string]any{
			"content_id": item.ID.String(),
			"title":      item.Title,
		})
		logg.Info(ctx, "content.posted")
		return nil
	}
}
