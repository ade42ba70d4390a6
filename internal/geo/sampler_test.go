package geo

import (
	"testing"

	"rain-radar/internal/types"
)

func TestSampler_Points_Count(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{"zero count", 0, 0},
		{"negative count", -3, 0},
		{"single point", 1, 1},
		{"ten points", 10, 10},
		{"many points", 250, 250},
	}

	center := types.NewCoords(-6.0, 106.0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSamplerWithSeed(1)
			points := s.Points(center, 100000, tt.count)
			if len(points) != tt.expected {
				t.Errorf("Points() returned %d points, want %d", len(points), tt.expected)
			}
		})
	}
}

func TestSampler_Points_WithinRadius(t *testing.T) {
	tests := []struct {
		name         string
		center       types.Coords
		radiusMeters float64
	}{
		{"equator", types.NewCoords(0.0, 0.0), 100000},
		{"jakarta", types.NewCoords(-6.0, 106.0), 100000},
		{"mid latitude", types.NewCoords(45.0, -122.0), 100000},
		{"high latitude", types.NewCoords(68.0, 18.0), 30000},
		{"small radius", types.NewCoords(-6.0, 106.0), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSamplerWithSeed(42)
			points := s.Points(tt.center, tt.radiusMeters, 500)

			// The flat-plane conversion is approximate; allow 1% slack on
			// the great-circle distance.
			limit := tt.radiusMeters * 1.01
			for i, p := range points {
				if d := Distance(tt.center, p); d > limit {
					t.Errorf("point %d at distance %.1f m exceeds radius %.1f m", i, d, tt.radiusMeters)
				}
			}
		})
	}
}

func TestSampler_Points_ZeroRadius(t *testing.T) {
	center := types.NewCoords(0.0, 0.0)

	s := NewSamplerWithSeed(7)
	points := s.Points(center, 0, 5)

	if len(points) != 5 {
		t.Fatalf("Points() returned %d points, want 5", len(points))
	}
	for i, p := range points {
		if p != center {
			t.Errorf("point %d = %+v, want center %+v", i, p, center)
		}
	}
}

func TestSampler_Points_NegativeRadius(t *testing.T) {
	center := types.NewCoords(-6.0, 106.0)

	s := NewSamplerWithSeed(7)
	points := s.Points(center, -100, 3)

	for i, p := range points {
		if p != center {
			t.Errorf("point %d = %+v, want center %+v", i, p, center)
		}
	}
}

func TestSampler_Points_Deterministic(t *testing.T) {
	center := types.NewCoords(-6.0, 106.0)

	a := NewSamplerWithSeed(99).Points(center, 100000, 10)
	b := NewSamplerWithSeed(99).Points(center, 100000, 10)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between identically seeded samplers: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSampler_Points_BiasedTowardCenter(t *testing.T) {
	// Distance is sampled uniformly in [0, r], so the expected distance is
	// r/2. An area-uniform disk would average 2r/3. Check the mean lands
	// near r/2 to pin the intended distribution.
	center := types.NewCoords(0.0, 0.0)
	radius := 100000.0

	s := NewSamplerWithSeed(12345)
	points := s.Points(center, radius, 5000)

	var total float64
	for _, p := range points {
		total += Distance(center, p)
	}
	mean := total / float64(len(points))

	if mean < radius*0.45 || mean > radius*0.55 {
		t.Errorf("mean sample distance = %.1f m, want within [%.1f, %.1f]", mean, radius*0.45, radius*0.55)
	}
}
