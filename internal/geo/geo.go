// Package geo answers "how far apart" and "who is in range" questions over
// WGS84 coordinates. It is pure computation: no storage, no side effects.
package geo

import (
	"math"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
)

// EarthRadiusMiles per the haversine convention used throughout the platform.
const EarthRadiusMiles = 3959.0

// Distance returns the great-circle distance between two points in miles.
func Distance(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// Clamp before atan2: float error can push h a hair outside [0,1] for
	// identical or antipodal points.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMiles * c
}

// Candidate is a potential alert recipient anchored at a location with its
// own configured catch radius.
type Candidate struct {
	ID          uuid.UUID
	Location    domain.Coordinate
	RadiusMiles float64
}

// WithinRange returns the ids of every candidate whose location lies within
// radiusMiles plus the candidate's own radius of center. The radii are summed
// so a venue with a wider configured geofence extends its catch area.
// Candidates with malformed coordinates are skipped, not errored: one bad
// geocode must not abort a whole dispatch.
func WithinRange(center domain.Coordinate, radiusMiles float64, candidates []Candidate) []uuid.UUID {
	if !center.Valid() {
		return nil
	}

	in := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		if !c.Location.Valid() {
			continue
		}
		catch := radiusMiles + c.RadiusMiles
		if Distance(center, c.Location) <= catch {
			in = append(in, c.ID)
		}
	}
	return in
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
