package places

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"rain-radar/internal/providers/nominatim"
)

type mockSearchProvider struct {
	results []nominatim.SearchAPIResult
	err     error
	limit   int
}

func (m *mockSearchProvider) Search(ctx context.Context, query string, limit int) ([]nominatim.SearchAPIResult, error) {
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearch(t *testing.T) {
	provider := &mockSearchProvider{
		results: []nominatim.SearchAPIResult{
			{
				Name:        "Monas",
				DisplayName: "Monas, Gambir, Central Jakarta, Indonesia",
				Class:       "tourism",
				Lat:         "-6.1754",
				Lon:         "106.8272",
				Importance:  0.7,
			},
			{
				DisplayName: "Jalan Monas, Jakarta, Indonesia",
				Class:       "highway",
				Lat:         "-6.1760",
				Lon:         "106.8280",
			},
		},
	}
	svc := NewPlacesServiceWithProvider(provider, testLogger())

	places, err := svc.Search(context.Background(), "monas", 10)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}

	if len(places) != 2 {
		t.Fatalf("Search() returned %d places, want 2", len(places))
	}
	if places[0].Name != "Monas" {
		t.Errorf("first place name = %q, want %q", places[0].Name, "Monas")
	}
	if places[0].Coordinates.Latitude != -6.1754 {
		t.Errorf("first place latitude = %f, want -6.1754", places[0].Coordinates.Latitude)
	}
	// Falls back to the display name when the short name is missing.
	if places[1].Name != "Jalan Monas, Jakarta, Indonesia" {
		t.Errorf("second place name = %q, want display name fallback", places[1].Name)
	}
}

func TestSearch_SkipsUnparsableResults(t *testing.T) {
	provider := &mockSearchProvider{
		results: []nominatim.SearchAPIResult{
			{Name: "Bad", Lat: "not-a-number", Lon: "106.8"},
			{Name: "Good", Lat: "-6.2", Lon: "106.8"},
		},
	}
	svc := NewPlacesServiceWithProvider(provider, testLogger())

	places, err := svc.Search(context.Background(), "anything", 10)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("Search() returned %d places, want 1", len(places))
	}
	if places[0].Name != "Good" {
		t.Errorf("place name = %q, want %q", places[0].Name, "Good")
	}
}

func TestSearch_ProviderError(t *testing.T) {
	provider := &mockSearchProvider{err: errors.New("rate limited")}
	svc := NewPlacesServiceWithProvider(provider, testLogger())

	if _, err := svc.Search(context.Background(), "monas", 10); err == nil {
		t.Fatal("Search() succeeded, want error")
	}
}

func TestSearch_DefaultLimit(t *testing.T) {
	provider := &mockSearchProvider{}
	svc := NewPlacesServiceWithProvider(provider, testLogger())

	if _, err := svc.Search(context.Background(), "monas", 0); err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if provider.limit != 10 {
		t.Errorf("provider limit = %d, want default 10", provider.limit)
	}
}
