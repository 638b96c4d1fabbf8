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

// DirectoryRepo is the read-only user/venue lookup. The core never writes
// through it.
type DirectoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDirectoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *DirectoryRepo {
	return &DirectoryRepo{pool: pool, logger: logger}
}

// ManagersWithVenue returns every manager joined with their venue location
// and geofence radius. Managers without a venue are filtered out by the
// inner join; they cannot receive geofenced alerts.
func (p *DirectoryRepo) ManagersWithVenue(ctx context.Context) ([]domain.ManagerVenue, error) {
	const op = "postgres.Directory.ManagersWithVenue"

	const query = `
		SELECT u.id, v.id, v.lat, v.lng, v.radius_miles
		FROM users u
		JOIN venues v ON v.id = u.venue_id
		WHERE u.role = 'manager'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var managers []domain.ManagerVenue
	for rows.Next() {
		var m domain.ManagerVenue
		if err := rows.Scan(
			&m.UserID,
			&m.VenueID,
			&m.Location.Lat,
			&m.Location.Lng,
			&m.RadiusMiles,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		managers = append(managers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return managers, nil
}

func (p *DirectoryRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.Directory.GetUser"

	const query = `
		SELECT id, email, first_name, last_name, role, venue_id, created_at
		FROM users
		WHERE id = $1
	`

	var u domain.User
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.VenueID,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return &u, nil
}

func (p *DirectoryRepo) GetVenue(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	const op = "postgres.Directory.GetVenue"

	const query = `
		SELECT id, name, address, lat, lng, radius_miles, created_at
		FROM venues
		WHERE id = $1
	`

	var v domain.Venue
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.Location.Lat,
		&v.Location.Lng,
		&v.RadiusMiles,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return &v, nil
}
