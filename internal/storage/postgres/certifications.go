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

type CertificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCertificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *CertificationRepo {
	return &CertificationRepo{pool: pool, logger: logger}
}

func (p *CertificationRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Certification, error) {
	const op = "postgres.Certification.GetByUser"

	const query = `
		SELECT id, user_id, status, certified_at, expires_at, related_incident_count,
		       requires_recertification, recertification_reason, created_at, updated_at
		FROM certifications
		WHERE user_id = $1
	`

	var c domain.Certification
	err := p.pool.QueryRow(ctx, query, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.Status,
		&c.CertifiedAt,
		&c.ExpiresAt,
		&c.RelatedIncidentCount,
		&c.RequiresRecertification,
		&c.RecertificationReason,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &c, nil
}

func (p *CertificationRepo) Create(ctx context.Context, cert *domain.Certification) error {
	const op = "postgres.Certification.Create"

	const query = `
		INSERT INTO certifications
			(id, user_id, status, certified_at, expires_at, related_incident_count,
			 requires_recertification, recertification_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`

	_, err := p.pool.Exec(ctx, query,
		cert.ID,
		cert.UserID,
		cert.Status,
		cert.CertifiedAt,
		cert.ExpiresAt,
		cert.RelatedIncidentCount,
		cert.RequiresRecertification,
		cert.RecertificationReason,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *CertificationRepo) Update(ctx context.Context, cert *domain.Certification) error {
	const op = "postgres.Certification.Update"

	const query = `
		UPDATE certifications
		SET status = $2,
		    certified_at = $3,
		    expires_at = $4,
		    related_incident_count = $5,
		    requires_recertification = $6,
		    recertification_reason = $7,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		cert.ID,
		cert.Status,
		cert.CertifiedAt,
		cert.ExpiresAt,
		cert.RelatedIncidentCount,
		cert.RequiresRecertification,
		cert.RecertificationReason,
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

// ListByVenue joins staff users with their certification, if any. Staff who
// never opened a module have no record and show up as not_certified.
func (p *CertificationRepo) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*domain.StaffCertification, error) {
	const op = "postgres.Certification.ListByVenue"

	const query = `
		SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.venue_id, u.created_at,
		       c.status, c.expires_at, c.related_incident_count
		FROM users u
		LEFT JOIN certifications c ON c.user_id = u.id
		WHERE u.venue_id = $1 AND u.role = 'staff'
		ORDER BY u.last_name, u.first_name
	`

	rows, err := p.pool.Query(ctx, query, venueID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var result []*domain.StaffCertification
	for rows.Next() {
		var (
			row           domain.StaffCertification
			status        *domain.CertificationStatus
			incidentCount *int
		)
		if err := rows.Scan(
			&row.User.ID,
			&row.User.Email,
			&row.User.FirstName,
			&row.User.LastName,
			&row.User.Role,
			&row.User.VenueID,
			&row.User.CreatedAt,
			&status,
			&row.ExpiresAt,
			&incidentCount,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		row.Status = domain.StatusNotCertified
		if status != nil {
			row.Status = *status
		}
		if incidentCount != nil {
			row.IncidentCount = *incidentCount
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return result, nil
}
