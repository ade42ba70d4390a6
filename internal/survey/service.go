package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"rain-radar/internal/config"
	"rain-radar/internal/precip"
	"rain-radar/internal/storage"
	"rain-radar/internal/types"
)

// ErrSurveyInProgress is returned when Run is called while another survey is
// still in flight. Surveys issue their forecast requests sequentially, so
// overlapping runs would only multiply load on the forecast source.
var ErrSurveyInProgress = errors.New("a survey is already in progress")

// PointSampler generates coordinates around a center point.
type PointSampler interface {
	Points(center types.Coords, radiusMeters float64, count int) []types.Coords
}

// Request selects the area to survey. Zero values fall back to the
// configured defaults.
type Request struct {
	Center       *types.Coords
	RadiusMeters float64
	Count        int
}

// Service runs precipitation surveys: sample points around a center, collect
// a precipitation record per point, persist the result.
type Service interface {
	Run(ctx context.Context, req Request) (*types.Survey, error)
	Recent(limit int) ([]types.Survey, error)
}

type surveyService struct {
	sampler  PointSampler
	precip   precip.Service
	store    storage.Store
	cfg      *config.Config
	logger   *slog.Logger
	inFlight atomic.Bool
}

func NewSurveyService(
	sampler PointSampler,
	precipService precip.Service,
	store storage.Store,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &surveyService{
		sampler: sampler,
		precip:  precipService,
		store:   store,
		cfg:     cfg,
		logger:  logger.With("component", "survey-service"),
	}
}

func (s *surveyService) Run(ctx context.Context, req Request) (*types.Survey, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSurveyInProgress
	}
	defer s.inFlight.Store(false)

	center := types.NewCoords(s.cfg.Center.Latitude, s.cfg.Center.Longitude)
	if req.Center != nil {
		center = *req.Center
	}
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = s.cfg.Sampling.RadiusMeters
	}
	count := req.Count
	if count <= 0 {
		count = s.cfg.Sampling.Count
	}

	s.logger.Info("starting precipitation survey",
		"latitude", center.Latitude,
		"longitude", center.Longitude,
		"radius_meters", radius,
		"count", count,
	)

	points := s.sampler.Points(center, radius, count)

	records, err := s.precip.Collect(ctx, points)
	if err != nil {
		s.logger.Error("survey failed", "error", err)
		return nil, fmt.Errorf("failed to collect precipitation records: %w", err)
	}

	result := &types.Survey{
		Center:       center,
		RadiusMeters: radius,
		Timestamp:    time.Now().UTC(),
		Records:      records,
	}

	id, err := s.store.SaveSurvey(result)
	if err != nil {
		s.logger.Error("failed to persist survey", "error", err)
		return nil, fmt.Errorf("failed to persist survey: %w", err)
	}
	result.ID = id

	s.logger.Info("survey complete",
		"survey_id", id,
		"records", len(result.Records),
	)

	return result, nil
}

func (s *surveyService) Recent(limit int) ([]types.Survey, error) {
	surveys, err := s.store.ListSurveys(limit)
	if err != nil {
		s.logger.Error("failed to list surveys", "error", err)
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	return surveys, nil
}
