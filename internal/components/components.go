package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stingwatch/internal/api"
	"stingwatch/internal/config"
	"stingwatch/internal/push"
	"stingwatch/internal/redis"
	"stingwatch/internal/service"
	"stingwatch/internal/storage/postgres"
	"stingwatch/internal/workers"
	"stingwatch/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	DispatchWorker *workers.DispatchWorker
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	DispatchQ      *redis.DispatchQueue
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	dispatchQueue := redis.NewDispatchQueue(redisClient.Client, "alerts:dispatch")
	directoryCache := redis.NewDirectoryCache(redisClient.Client, cfg.Alert.DirectoryCacheTTL)
	transport := push.NewWebPush(cfg.Push, logger)

	certSvc := service.NewCertificationEngine(storage.Certs, storage.Training, logger)
	trainingSvc := service.NewTrainingService(storage.Training, certSvc, logger)
	subscriptionSvc := service.NewSubscriptionRegistry(storage.Subscriptions, logger)
	dispatcherSvc := service.NewAlertDispatcher(storage.Alerts, subscriptionSvc, storage.Dir, directoryCache, transport, cfg.Alert, logger)
	incidentSvc := service.NewIncidentPipeline(storage.Incidents, certSvc, dispatchQueue, logger)

	srv := service.NewService(certSvc, trainingSvc, subscriptionSvc, dispatcherSvc, incidentSvc)

	httpServer := api.NewServer(cfg, logger, srv, storage.Dir)
	logger.Info("Initialized server")

	dispatchWorker := workers.NewDispatchWorker(logger, dispatchQueue, storage.Incidents, dispatcherSvc)

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		DispatchWorker: dispatchWorker,
		Postgres:       storage,
		Redis:          redisClient,
		DispatchQ:      dispatchQueue,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
