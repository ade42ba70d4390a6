package openmeteo

// ForecastAPIResponse is the subset of the Open-Meteo forecast response this
// service consumes. Hourly arrays are index-aligned.
type ForecastAPIResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	GenerationtimeMs float64 `json:"generationtime_ms"`
	UtcOffsetSeconds int     `json:"utc_offset_seconds"`
	Timezone         string  `json:"timezone"`
	Hourly           struct {
		Time                     []string `json:"time"`
		PrecipitationProbability []int    `json:"precipitation_probability"`
	} `json:"hourly"`
	HourlyUnits struct {
		Time                     string `json:"time"`
		PrecipitationProbability string `json:"precipitation_probability"`
	} `json:"hourly_units"`
}
