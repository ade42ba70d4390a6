package survey

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"rain-radar/internal/config"
	"rain-radar/internal/geo"
	"rain-radar/internal/types"
)

type mockPrecipService struct {
	mu        sync.Mutex
	calls     [][]types.Coords
	err       error
	started   chan struct{} // closed when Collect first begins, if set
	startOnce sync.Once
	release   chan struct{} // Collect blocks until closed, if set
}

func (m *mockPrecipService) Collect(ctx context.Context, points []types.Coords) ([]types.PointPrecipitation, error) {
	m.mu.Lock()
	m.calls = append(m.calls, points)
	m.mu.Unlock()

	if m.started != nil {
		m.startOnce.Do(func() { close(m.started) })
	}
	if m.release != nil {
		<-m.release
	}
	if m.err != nil {
		return nil, m.err
	}

	records := make([]types.PointPrecipitation, 0, len(points))
	for _, p := range points {
		records = append(records, types.PointPrecipitation{Coordinates: p})
	}
	return records, nil
}

type mockStore struct {
	saved  []*types.Survey
	listed []types.Survey
	err    error
}

func (m *mockStore) SaveSurvey(survey *types.Survey) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, survey)
	return int64(len(m.saved)), nil
}

func (m *mockStore) ListSurveys(limit int) ([]types.Survey, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listed, nil
}

func (m *mockStore) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Center:   config.CenterConfig{Latitude: -6.0, Longitude: 106.0},
		Sampling: config.SamplingConfig{RadiusMeters: 100000, Count: 10},
		App:      config.AppConfig{ForecastHours: 12},
	}
}

func newTestService(precipSvc *mockPrecipService, store *mockStore) Service {
	return NewSurveyService(
		geo.NewSamplerWithSeed(1),
		precipSvc,
		store,
		testConfig(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestRun_UsesConfiguredDefaults(t *testing.T) {
	precipSvc := &mockPrecipService{}
	store := &mockStore{}
	svc := newTestService(precipSvc, store)

	result, err := svc.Run(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if result.Center != types.NewCoords(-6.0, 106.0) {
		t.Errorf("survey center = %+v, want configured default", result.Center)
	}
	if result.RadiusMeters != 100000 {
		t.Errorf("survey radius = %f, want 100000", result.RadiusMeters)
	}
	if len(result.Records) != 10 {
		t.Errorf("survey has %d records, want 10", len(result.Records))
	}
	if len(precipSvc.calls) != 1 || len(precipSvc.calls[0]) != 10 {
		t.Errorf("precip service not called with 10 points")
	}
	if len(store.saved) != 1 {
		t.Errorf("store has %d surveys, want 1", len(store.saved))
	}
	if result.ID != 1 {
		t.Errorf("survey ID = %d, want 1", result.ID)
	}
}

func TestRun_RequestOverrides(t *testing.T) {
	precipSvc := &mockPrecipService{}
	store := &mockStore{}
	svc := newTestService(precipSvc, store)

	center := types.NewCoords(51.5, -0.12)
	result, err := svc.Run(context.Background(), Request{
		Center:       &center,
		RadiusMeters: 5000,
		Count:        3,
	})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if result.Center != center {
		t.Errorf("survey center = %+v, want %+v", result.Center, center)
	}
	if result.RadiusMeters != 5000 {
		t.Errorf("survey radius = %f, want 5000", result.RadiusMeters)
	}
	if len(result.Records) != 3 {
		t.Errorf("survey has %d records, want 3", len(result.Records))
	}
}

func TestRun_CollectFailureReturnsNoSurvey(t *testing.T) {
	precipSvc := &mockPrecipService{err: errors.New("forecast service unavailable")}
	store := &mockStore{}
	svc := newTestService(precipSvc, store)

	result, err := svc.Run(context.Background(), Request{})
	if err == nil {
		t.Fatal("Run() succeeded, want error")
	}
	if result != nil {
		t.Errorf("Run() returned survey %+v on failure, want nil", result)
	}
	if len(store.saved) != 0 {
		t.Errorf("store has %d surveys after failure, want 0", len(store.saved))
	}
}

func TestRun_RejectsOverlappingInvocations(t *testing.T) {
	precipSvc := &mockPrecipService{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := &mockStore{}
	svc := newTestService(precipSvc, store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background(), Request{})
		done <- err
	}()

	<-precipSvc.started

	// Second run while the first is blocked inside Collect.
	if _, err := svc.Run(context.Background(), Request{}); !errors.Is(err, ErrSurveyInProgress) {
		t.Errorf("overlapping Run() error = %v, want ErrSurveyInProgress", err)
	}

	close(precipSvc.release)
	if err := <-done; err != nil {
		t.Errorf("first Run() returned error: %v", err)
	}

	// The guard clears after completion.
	if _, err := svc.Run(context.Background(), Request{}); err != nil {
		t.Errorf("Run() after completion returned error: %v", err)
	}
}

func TestRun_StoreFailure(t *testing.T) {
	precipSvc := &mockPrecipService{}
	store := &mockStore{err: errors.New("disk full")}
	svc := newTestService(precipSvc, store)

	if _, err := svc.Run(context.Background(), Request{}); err == nil {
		t.Fatal("Run() succeeded despite store failure, want error")
	}
}

func TestRecent(t *testing.T) {
	store := &mockStore{
		listed: []types.Survey{{ID: 2}, {ID: 1}},
	}
	svc := newTestService(&mockPrecipService{}, store)

	surveys, err := svc.Recent(10)
	if err != nil {
		t.Fatalf("Recent() returned error: %v", err)
	}
	if len(surveys) != 2 {
		t.Errorf("Recent() returned %d surveys, want 2", len(surveys))
	}
}
