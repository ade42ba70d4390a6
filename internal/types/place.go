package types

// Place is a named location returned by a place search.
type Place struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Category    string  `json:"category"`
	Coordinates Coords  `json:"coordinates"`
	Importance  float64 `json:"importance"`
}
