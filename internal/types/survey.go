package types

import "time"

// Survey is one completed precipitation survey: the sampled points around a
// center together with their hourly precipitation records.
type Survey struct {
	ID           int64                `json:"id,omitempty"`
	Center       Coords               `json:"center"`
	RadiusMeters float64              `json:"radiusMeters"`
	Timestamp    time.Time            `json:"timestamp"`
	Records      []PointPrecipitation `json:"records"`
}
