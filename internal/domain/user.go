package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// Valid reports whether the point can be fed into distance math. Geocoded
// venue data arrives from outside the system and may carry NaN or
// out-of-range values.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

type User struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      UserRole   `json:"role"`
	VenueID   *uuid.UUID `json:"venue_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Venue struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Location    Coordinate `json:"location"`
	RadiusMiles float64    `json:"radius_miles"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ManagerVenue is a directory row: a manager joined with their venue's
// location and configured geofence radius. Managers without a venue never
// appear here.
type ManagerVenue struct {
	UserID      uuid.UUID  `json:"user_id"`
	VenueID     uuid.UUID  `json:"venue_id"`
	Location    Coordinate `json:"location"`
	RadiusMiles float64    `json:"radius_miles"`
}
