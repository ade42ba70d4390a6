package precip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rain-radar/internal/config"
	"rain-radar/internal/providers/openmeteo"
	"rain-radar/internal/timezone"
	"rain-radar/internal/types"
)

type ForecastProvider interface {
	// GetHourlyPrecipitation fetches the hourly precipitation-probability
	// forecast for the given coordinates, with timestamps local to the
	// supplied IANA timezone.
	GetHourlyPrecipitation(ctx context.Context, latitude, longitude float64, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

// Service collects precipitation outlooks for a batch of points.
type Service interface {
	// Collect fetches one hourly precipitation record per input point, in
	// input order. The batch is all-or-nothing: the first provider failure
	// aborts it and no partial results are returned.
	Collect(ctx context.Context, points []types.Coords) ([]types.PointPrecipitation, error)
}

type precipService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewPrecipService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewPrecipServiceWithProviders(openmeteo.NewForecastClient(), tzSvc, cfg, logger), nil
}

func NewPrecipServiceWithProviders(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &precipService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "precip-service"),
	}
}

func (s *precipService) Collect(ctx context.Context, points []types.Coords) ([]types.PointPrecipitation, error) {
	hours := s.cfg.App.ForecastHours
	if hours <= 0 {
		hours = 12
	}

	// Requests are issued one at a time so output order matches input order
	// and the first failure stops the batch before further calls go out.
	records := make([]types.PointPrecipitation, 0, len(points))
	for _, point := range points {
		record, err := s.collectPoint(ctx, point, hours)
		if err != nil {
			s.logger.Error("failed to collect precipitation for point",
				"latitude", point.Latitude,
				"longitude", point.Longitude,
				"error", err,
			)
			return nil, fmt.Errorf("failed to collect precipitation for point (%.6f, %.6f): %w",
				point.Latitude, point.Longitude, err)
		}
		records = append(records, *record)
	}

	return records, nil
}

func (s *precipService) collectPoint(ctx context.Context, point types.Coords, hours int) (*types.PointPrecipitation, error) {
	// Look up timezone for the point
	tz, err := s.timezoneService.GetTimezone(point.Latitude, point.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	s.logger.Debug("determined timezone for point",
		"latitude", point.Latitude,
		"longitude", point.Longitude,
		"timezone", tz,
	)

	apiResponse, err := s.forecastProvider.GetHourlyPrecipitation(ctx, point.Latitude, point.Longitude, tz)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	hourly, err := mapHourlyPrecipitation(apiResponse, hours)
	if err != nil {
		return nil, err
	}

	return &types.PointPrecipitation{
		Coordinates: point,
		Timezone:    apiResponse.Timezone,
		Hourly:      hourly,
	}, nil
}

// mapHourlyPrecipitation extracts the next `hours` future readings from the
// response, in service-returned order. Probabilities arrive as percent
// integers and are normalized to 0.0-1.0, unclamped.
func mapHourlyPrecipitation(apiResponse *openmeteo.ForecastAPIResponse, hours int) ([]types.HourlyPrecipitation, error) {
	location, err := time.LoadLocation(apiResponse.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone location %s: %w", apiResponse.Timezone, err)
	}
	now := time.Now().In(location)

	if len(apiResponse.Hourly.Time) != len(apiResponse.Hourly.PrecipitationProbability) {
		return nil, fmt.Errorf("hourly arrays misaligned: %d timestamps, %d probabilities",
			len(apiResponse.Hourly.Time), len(apiResponse.Hourly.PrecipitationProbability))
	}

	// Hourly data starts at 00:00 today; skip to the first entry after now.
	hourly := make([]types.HourlyPrecipitation, 0, hours)
	for i, raw := range apiResponse.Hourly.Time {
		parsed, err := time.ParseInLocation("2006-01-02T15:04", raw, location)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hourly timestamp %q: %w", raw, err)
		}
		if !parsed.After(now) {
			continue
		}

		hourly = append(hourly, types.HourlyPrecipitation{
			Time:        parsed,
			Probability: toProbability(apiResponse.Hourly.PrecipitationProbability[i]),
		})
		if len(hourly) == hours {
			break
		}
	}

	return hourly, nil
}

// toProbability converts a percent integer to a 0.0-1.0 fraction.
func toProbability(percent int) float64 {
	return float64(percent) / 100.0
}
