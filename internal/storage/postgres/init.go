package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"stingwatch/internal/config"
	"stingwatch/pkg/e"
)

type Postgres struct {
	Pool          *pgxpool.Pool
	Incidents     *IncidentRepo
	Certs         *CertificationRepo
	Training      *TrainingRepo
	Alerts        *AlertRepo
	Subscriptions *SubscriptionRepo
	Dir           *DirectoryRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	return &Postgres{
		Pool:          pool,
		Incidents:     NewIncidentRepo(pool, logger),
		Certs:         NewCertificationRepo(pool, logger),
		Training:      NewTrainingRepo(pool, logger),
		Alerts:        NewAlertRepo(pool, logger),
		Subscriptions: NewSubscriptionRepo(pool, logger),
		Dir:           NewDirectoryRepo(pool, logger),
	}, nil
}
