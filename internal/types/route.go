package types

// Route is a driving route between two coordinates.
type Route struct {
	DistanceMeters  float64  `json:"distanceMeters"`
	DurationSeconds float64  `json:"durationSeconds"`
	Geometry        []Coords `json:"geometry"`
}
