package types

import "time"

// HourlyPrecipitation is a single timestamped precipitation-probability
// reading. Probability is in the range 0.0-1.0 as reported by the forecast
// source; it is not clamped or validated here.
type HourlyPrecipitation struct {
	Time        time.Time `json:"time"`
	Probability float64   `json:"probability"`
}

// PointPrecipitation holds the hourly precipitation outlook for one sampled
// point. Hourly preserves the order the forecast source returned.
type PointPrecipitation struct {
	Coordinates Coords                `json:"coordinates"`
	Timezone    string                `json:"timezone"`
	Hourly      []HourlyPrecipitation `json:"hourly"`
}
