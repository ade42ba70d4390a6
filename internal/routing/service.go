package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rain-radar/internal/providers/ors"
	"rain-radar/internal/types"
)

// ErrNoRoute is returned when the directions provider finds no route between
// the given coordinates.
var ErrNoRoute = errors.New("no route found")

// DirectionsProvider computes routes between [lon, lat] positions.
type DirectionsProvider interface {
	GetDirections(ctx context.Context, coordinates [][]float64) (*ors.DirectionsAPIResponse, error)
}

// Service computes driving routes between coordinates.
type Service interface {
	Route(ctx context.Context, from, to types.Coords) (*types.Route, error)
}

type routingService struct {
	directionsProvider DirectionsProvider
	logger             *slog.Logger
}

// NewRoutingService creates a routing service backed by OpenRouteService.
func NewRoutingService(apiKey string, logger *slog.Logger) Service {
	return NewRoutingServiceWithProvider(ors.NewClient(apiKey), logger)
}

// NewRoutingServiceWithProvider creates a routing service with a custom
// provider. This is useful for testing with mock providers.
func NewRoutingServiceWithProvider(directionsProvider DirectionsProvider, logger *slog.Logger) Service {
	return &routingService{
		directionsProvider: directionsProvider,
		logger:             logger.With("component", "routing-service"),
	}
}

func (s *routingService) Route(ctx context.Context, from, to types.Coords) (*types.Route, error) {
	// ORS expects [lon, lat] positions.
	coordinates := [][]float64{
		{from.Longitude, from.Latitude},
		{to.Longitude, to.Latitude},
	}

	resp, err := s.directionsProvider.GetDirections(ctx, coordinates)
	if err != nil {
		s.logger.Error("directions request failed",
			"from_latitude", from.Latitude,
			"from_longitude", from.Longitude,
			"to_latitude", to.Latitude,
			"to_longitude", to.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get directions: %w", err)
	}

	if len(resp.Features) == 0 {
		return nil, ErrNoRoute
	}

	feature := resp.Features[0]
	geometry := make([]types.Coords, 0, len(feature.Geometry.Coordinates))
	for _, pos := range feature.Geometry.Coordinates {
		if len(pos) < 2 {
			continue
		}
		geometry = append(geometry, types.NewCoords(pos[1], pos[0]))
	}

	return &types.Route{
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
		Geometry:        geometry,
	}, nil
}
