package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

// Create inserts the alert. incident_id carries a unique constraint, so a
// concurrent dispatch for the same incident surfaces as e.ErrUniqueViolation
// and the caller falls back to the existing row.
func (p *AlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Create"

	const query = `
		INSERT INTO alerts
			(id, incident_id, title, message, severity, lat, lng, radius_miles,
			 published_at, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.IncidentID,
		alert.Title,
		alert.Message,
		alert.Severity,
		alert.Location.Lat,
		alert.Location.Lng,
		alert.RadiusMiles,
		alert.PublishedAt,
		alert.ExpiresAt,
		alert.IsActive,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.Get"
	return p.getWhere(ctx, op, `id = $1`, id)
}

func (p *AlertRepo) GetByIncident(ctx context.Context, incidentID uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.GetByIncident"
	return p.getWhere(ctx, op, `incident_id = $1`, incidentID)
}

func (p *AlertRepo) getWhere(ctx context.Context, op, where string, arg any) (*domain.Alert, error) {
	query := `
		SELECT id, incident_id, title, message, severity, lat, lng, radius_miles,
		       published_at, expires_at, is_active
		FROM alerts
		WHERE ` + where

	var a domain.Alert
	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID,
		&a.IncidentID,
		&a.Title,
		&a.Message,
		&a.Severity,
		&a.Location.Lat,
		&a.Location.Lng,
		&a.RadiusMiles,
		&a.PublishedAt,
		&a.ExpiresAt,
		&a.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &a, nil
}

func (p *AlertRepo) ListActive(ctx context.Context) ([]*domain.Alert, error) {
	const op = "postgres.Alert.ListActive"

	const query = `
		SELECT id, incident_id, title, message, severity, lat, lng, radius_miles,
		       published_at, expires_at, is_active
		FROM alerts
		WHERE is_active = true
		ORDER BY published_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID,
			&a.IncidentID,
			&a.Title,
			&a.Message,
			&a.Severity,
			&a.Location.Lat,
			&a.Location.Lng,
			&a.RadiusMiles,
			&a.PublishedAt,
			&a.ExpiresAt,
			&a.IsActive,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}

func (p *AlertRepo) Update(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Update"

	const query = `
		UPDATE alerts
		SET is_active = $2, expires_at = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query, alert.ID, alert.IsActive, alert.ExpiresAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
