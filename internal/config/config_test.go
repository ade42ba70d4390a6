package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Center.Latitude != -6.0 {
		t.Errorf("Center.Latitude = %f, want -6.0", cfg.Center.Latitude)
	}
	if cfg.Center.Longitude != 106.0 {
		t.Errorf("Center.Longitude = %f, want 106.0", cfg.Center.Longitude)
	}
	if cfg.Sampling.RadiusMeters != 100000.0 {
		t.Errorf("Sampling.RadiusMeters = %f, want 100000", cfg.Sampling.RadiusMeters)
	}
	if cfg.Sampling.Count != 10 {
		t.Errorf("Sampling.Count = %d, want 10", cfg.Sampling.Count)
	}
	if cfg.App.ForecastHours != 12 {
		t.Errorf("App.ForecastHours = %d, want 12", cfg.App.ForecastHours)
	}
}

func TestGetServerAddr(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		expected string
	}{
		{"default port", 8080, ":8080"},
		{"custom port", 3000, ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{Port: tt.port}}
			if addr := cfg.GetServerAddr(); addr != tt.expected {
				t.Errorf("GetServerAddr() = %q, want %q", addr, tt.expected)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug text", "debug", "text"},
		{"info json", "info", "json"},
		{"unknown level falls back", "verbose", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			if logger := cfg.NewLogger(); logger == nil {
				t.Error("NewLogger() returned nil")
			}
		})
	}
}
