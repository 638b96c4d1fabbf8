package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

type SubscriptionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubscriptionRepo(pool *pgxpool.Pool, logger *slog.Logger) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool, logger: logger}
}

// Upsert is keyed by the unique endpoint: re-registering rebinds the row to
// the caller, refreshes the keys and reactivates it.
func (p *SubscriptionRepo) Upsert(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error) {
	const op = "postgres.Subscription.Upsert"

	const query = `
		INSERT INTO push_subscriptions
			(id, user_id, endpoint, p256dh_key, auth_key, user_agent, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, now(), now())
		ON CONFLICT (endpoint) DO UPDATE
		SET user_id = EXCLUDED.user_id,
		    p256dh_key = EXCLUDED.p256dh_key,
		    auth_key = EXCLUDED.auth_key,
		    user_agent = EXCLUDED.user_agent,
		    is_active = true,
		    updated_at = now()
		RETURNING id, user_id, endpoint, p256dh_key, auth_key, user_agent, is_active, created_at, updated_at
	`

	var stored domain.PushSubscription
	err := p.pool.QueryRow(ctx, query,
		sub.ID,
		sub.UserID,
		sub.Endpoint,
		sub.P256dhKey,
		sub.AuthKey,
		sub.UserAgent,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.Endpoint,
		&stored.P256dhKey,
		&stored.AuthKey,
		&stored.UserAgent,
		&stored.IsActive,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db upsert failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &stored, nil
}

// Deactivate is a single-row conditional update, idempotent under concurrent
// dispatches racing on the same endpoint. Rows are never deleted.
func (p *SubscriptionRepo) Deactivate(ctx context.Context, endpoint string) error {
	const op = "postgres.Subscription.Deactivate"

	const query = `
		UPDATE push_subscriptions
		SET is_active = false, updated_at = now()
		WHERE endpoint = $1 AND is_active = true
	`

	if _, err := p.pool.Exec(ctx, query, endpoint); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *SubscriptionRepo) ActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error) {
	const op = "postgres.Subscription.ActiveByUser"

	const query = `
		SELECT id, user_id, endpoint, p256dh_key, auth_key, user_agent, is_active, created_at, updated_at
		FROM push_subscriptions
		WHERE user_id = $1 AND is_active = true
	`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var subs []*domain.PushSubscription
	for rows.Next() {
		var s domain.PushSubscription
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Endpoint,
			&s.P256dhKey,
			&s.AuthKey,
			&s.UserAgent,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return subs, nil
}
