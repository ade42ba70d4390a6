package geo

import (
	"math"
	"math/rand"
	"time"

	"rain-radar/internal/types"
)

// earthRadiusMeters is the mean Earth radius used for the local flat-plane
// conversion between metric offsets and degree deltas.
const earthRadiusMeters = 6371000.0

// Sampler generates pseudo-random coordinates around a center point.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded from the current time.
func NewSampler() *Sampler {
	return NewSamplerWithSeed(time.Now().UnixNano())
}

// NewSamplerWithSeed creates a sampler with a fixed seed, giving a
// reproducible point sequence.
func NewSamplerWithSeed(seed int64) *Sampler {
	return &Sampler{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Points returns count coordinates within radiusMeters of center, in
// generation order.
//
// Each point is drawn by picking a uniform angle in [0, 2π) and a uniform
// distance in [0, radiusMeters], then converting that polar offset to degree
// deltas on a local tangent plane. Sampling the distance uniformly (rather
// than its square root) clusters points toward the center; that distribution
// is intentional and relied on by consumers.
//
// A non-positive radius collapses the distance range, so every returned point
// equals center. A non-positive count yields an empty slice. The center must
// not be at ±90° latitude: the longitude conversion divides by
// cos(latitude).
func (s *Sampler) Points(center types.Coords, radiusMeters float64, count int) []types.Coords {
	if count <= 0 {
		return []types.Coords{}
	}
	if radiusMeters < 0 {
		radiusMeters = 0
	}

	points := make([]types.Coords, 0, count)
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		distance := s.rng.Float64() * radiusMeters

		// Metric offsets on the local tangent plane.
		dx := distance * math.Cos(angle)
		dy := distance * math.Sin(angle)

		deltaLat := (dy / earthRadiusMeters) * (180 / math.Pi)
		deltaLon := (dx / (earthRadiusMeters * math.Cos(center.Latitude*math.Pi/180))) * (180 / math.Pi)

		points = append(points, types.NewCoords(
			center.Latitude+deltaLat,
			center.Longitude+deltaLon,
		))
	}

	return points
}
