package timezone

import "testing"

func TestGetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService() returned error: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{"jakarta", -6.2088, 106.8456, "Asia/Jakarta"},
		{"denver", 39.7392, -104.9903, "America/Denver"},
		{"london", 51.5074, -0.1278, "Europe/London"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Fatalf("GetTimezone(%f, %f) returned error: %v", tt.latitude, tt.longitude, err)
			}
			if tz != tt.expected {
				t.Errorf("GetTimezone(%f, %f) = %q, want %q", tt.latitude, tt.longitude, tz, tt.expected)
			}
		})
	}
}

func TestGetTimezone_OpenOcean(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService() returned error: %v", err)
	}

	// tzf maps open ocean to Etc/GMT offsets rather than failing.
	tz, err := svc.GetTimezone(0.0, -140.0)
	if err != nil {
		t.Fatalf("GetTimezone over open ocean returned error: %v", err)
	}
	if tz == "" {
		t.Error("GetTimezone over open ocean returned empty name")
	}
}
