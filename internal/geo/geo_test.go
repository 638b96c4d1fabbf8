package geo

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
)

const distTolerance = 1e-6

func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	p := domain.Coordinate{Lat: 40.7128, Lng: -74.0060}
	if d := Distance(p, p); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b domain.Coordinate
	}{
		{"nearby", domain.Coordinate{Lat: 40.0, Lng: -74.0}, domain.Coordinate{Lat: 40.01, Lng: -74.0}},
		{"cross_hemisphere", domain.Coordinate{Lat: 51.5, Lng: -0.12}, domain.Coordinate{Lat: -33.86, Lng: 151.2}},
		{"date_line", domain.Coordinate{Lat: 10, Lng: 179.9}, domain.Coordinate{Lat: 10, Lng: -179.9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab := Distance(tc.a, tc.b)
			ba := Distance(tc.b, tc.a)
			if math.Abs(ab-ba) > distTolerance {
				t.Fatalf("distance not symmetric: ab=%v ba=%v", ab, ba)
			}
		})
	}
}

func TestDistance_Antipodal_NoNaN(t *testing.T) {
	t.Parallel()

	a := domain.Coordinate{Lat: 0, Lng: 0}
	b := domain.Coordinate{Lat: 0, Lng: 180}

	d := Distance(a, b)
	if math.IsNaN(d) {
		t.Fatal("antipodal distance is NaN")
	}
	// Half the circumference, within a mile of pi*R.
	if math.Abs(d-math.Pi*EarthRadiusMiles) > 1.0 {
		t.Fatalf("antipodal distance off: %v", d)
	}
}

func TestDistance_KnownValue(t *testing.T) {
	t.Parallel()

	// One hundredth of a degree of latitude is about 0.69 miles.
	a := domain.Coordinate{Lat: 40.0, Lng: -74.0}
	b := domain.Coordinate{Lat: 40.01, Lng: -74.0}

	d := Distance(a, b)
	if d < 0.6 || d > 0.8 {
		t.Fatalf("expected ~0.69 miles, got %v", d)
	}
}

func TestWithinRange_GeofenceInclusion(t *testing.T) {
	t.Parallel()

	incident := domain.Coordinate{Lat: 40.0, Lng: -74.0}
	venue := Candidate{
		ID:          uuid.New(),
		Location:    domain.Coordinate{Lat: 40.01, Lng: -74.0}, // ~0.69 miles
		RadiusMiles: 5.0,
	}

	got := WithinRange(incident, 5.0, []Candidate{venue})
	if len(got) != 1 || got[0] != venue.ID {
		t.Fatalf("expected venue included, got %v", got)
	}
}

func TestWithinRange_GeofenceExclusion(t *testing.T) {
	t.Parallel()

	incident := domain.Coordinate{Lat: 40.0, Lng: -74.0}
	venue := Candidate{
		ID:          uuid.New(),
		Location:    domain.Coordinate{Lat: 41.0, Lng: -74.0}, // ~69 miles
		RadiusMiles: 5.0,
	}

	got := WithinRange(incident, 5.0, []Candidate{venue})
	if len(got) != 0 {
		t.Fatalf("expected venue excluded, got %v", got)
	}
}

func TestWithinRange_RadiusMonotonicity(t *testing.T) {
	t.Parallel()

	center := domain.Coordinate{Lat: 40.0, Lng: -74.0}
	candidates := []Candidate{
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 40.01, Lng: -74.0}, RadiusMiles: 1},
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 40.1, Lng: -74.0}, RadiusMiles: 1},
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 40.5, Lng: -74.0}, RadiusMiles: 1},
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 41.0, Lng: -74.0}, RadiusMiles: 1},
	}

	prev := map[uuid.UUID]bool{}
	for _, radius := range []float64{1, 5, 10, 25, 100} {
		got := WithinRange(center, radius, candidates)
		cur := make(map[uuid.UUID]bool, len(got))
		for _, id := range got {
			cur[id] = true
		}
		for id := range prev {
			if !cur[id] {
				t.Fatalf("radius %v dropped candidate %v included at a smaller radius", radius, id)
			}
		}
		prev = cur
	}
}

func TestWithinRange_SkipsMalformedCandidates(t *testing.T) {
	t.Parallel()

	center := domain.Coordinate{Lat: 40.0, Lng: -74.0}
	good := Candidate{ID: uuid.New(), Location: domain.Coordinate{Lat: 40.0, Lng: -74.0}, RadiusMiles: 1}
	candidates := []Candidate{
		{ID: uuid.New(), Location: domain.Coordinate{Lat: math.NaN(), Lng: -74.0}, RadiusMiles: 5},
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 95.0, Lng: -74.0}, RadiusMiles: 5},
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 40.0, Lng: 200.0}, RadiusMiles: 5},
		good,
	}

	got := WithinRange(center, 5.0, candidates)
	if len(got) != 1 || got[0] != good.ID {
		t.Fatalf("expected only the well-formed candidate, got %v", got)
	}
}

func TestWithinRange_InvalidCenter(t *testing.T) {
	t.Parallel()

	center := domain.Coordinate{Lat: math.NaN(), Lng: 0}
	got := WithinRange(center, 5.0, []Candidate{
		{ID: uuid.New(), Location: domain.Coordinate{Lat: 0, Lng: 0}, RadiusMiles: 5},
	})
	if len(got) != 0 {
		t.Fatalf("expected no candidates for invalid center, got %v", got)
	}
}
