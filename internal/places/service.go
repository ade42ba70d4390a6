package places

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"rain-radar/internal/providers/nominatim"
	"rain-radar/internal/types"
)

// SearchProvider is the forward-geocoding source for place lookups.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]nominatim.SearchAPIResult, error)
}

// Service resolves free-text queries to named places.
type Service interface {
	Search(ctx context.Context, query string, limit int) ([]types.Place, error)
}

type placesService struct {
	searchProvider SearchProvider
	logger         *slog.Logger
}

// NewPlacesService creates a places service backed by Nominatim.
func NewPlacesService(logger *slog.Logger) Service {
	return NewPlacesServiceWithProvider(nominatim.NewClient(), logger)
}

// NewPlacesServiceWithProvider creates a places service with a custom
// provider. This is useful for testing with mock providers.
func NewPlacesServiceWithProvider(searchProvider SearchProvider, logger *slog.Logger) Service {
	return &placesService{
		searchProvider: searchProvider,
		logger:         logger.With("component", "places-service"),
	}
}

func (s *placesService) Search(ctx context.Context, query string, limit int) ([]types.Place, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := s.searchProvider.Search(ctx, query, limit)
	if err != nil {
		s.logger.Error("place search failed", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	places := make([]types.Place, 0, len(results))
	for _, r := range results {
		place, err := translatePlace(r)
		if err != nil {
			s.logger.Warn("skipping unparsable search result",
				"place_id", r.PlaceId,
				"error", err,
			)
			continue
		}
		places = append(places, place)
	}

	return places, nil
}

// translatePlace converts a Nominatim search result to a domain Place. Lat
// and Lon are strings in the wire format.
func translatePlace(r nominatim.SearchAPIResult) (types.Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return types.Place{}, fmt.Errorf("parse latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return types.Place{}, fmt.Errorf("parse longitude %q: %w", r.Lon, err)
	}

	name := r.Name
	if name == "" {
		name = r.DisplayName
	}

	return types.Place{
		Name:        name,
		DisplayName: r.DisplayName,
		Category:    r.Class,
		Coordinates: types.NewCoords(lat, lon),
		Importance:  r.Importance,
	}, nil
}
