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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

func (p *IncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Create"

	const query = `
		INSERT INTO incidents
			(id, category, reporter_id, venue_id, lat, lng, address, description,
			 photo_urls, verification_status, incident_at, reported_at, validated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.Category,
		incident.ReporterID,
		incident.VenueID,
		incident.Location.Lat,
		incident.Location.Lng,
		incident.Address,
		incident.Description,
		incident.PhotoURLs,
		incident.VerificationStatus,
		incident.IncidentAt,
		incident.ReportedAt,
		incident.ValidatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	const query = `
		SELECT id, category, reporter_id, venue_id, lat, lng, address, description,
		       photo_urls, verification_status, incident_at, reported_at, validated_at
		FROM incidents
		WHERE id = $1
	`

	var inc domain.Incident
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&inc.ID,
		&inc.Category,
		&inc.ReporterID,
		&inc.VenueID,
		&inc.Location.Lat,
		&inc.Location.Lng,
		&inc.Address,
		&inc.Description,
		&inc.PhotoURLs,
		&inc.VerificationStatus,
		&inc.IncidentAt,
		&inc.ReportedAt,
		&inc.ValidatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &inc, nil
}

func (p *IncidentRepo) Update(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Update"

	const query = `
		UPDATE incidents
		SET verification_status = $2, validated_at = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.VerificationStatus,
		incident.ValidatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *IncidentRepo) ListByVenue(ctx context.Context, venueID uuid.UUID, limit int) ([]*domain.Incident, error) {
	const op = "postgres.Incident.ListByVenue"

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const query = `
		SELECT id, category, reporter_id, venue_id, lat, lng, address, description,
		       photo_urls, verification_status, incident_at, reported_at, validated_at
		FROM incidents
		WHERE venue_id = $1
		ORDER BY incident_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, venueID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, limit)
	for rows.Next() {
		var inc domain.Incident
		if err := rows.Scan(
			&inc.ID,
			&inc.Category,
			&inc.ReporterID,
			&inc.VenueID,
			&inc.Location.Lat,
			&inc.Location.Lng,
			&inc.Address,
			&inc.Description,
			&inc.PhotoURLs,
			&inc.VerificationStatus,
			&inc.IncidentAt,
			&inc.ReportedAt,
			&inc.ValidatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, &inc)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}
