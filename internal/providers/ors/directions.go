package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DirectionsAPIResponse is the GeoJSON-style directions response. The route
// geometry is a sequence of [lon, lat] positions.
type DirectionsAPIResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// GetDirections requests a driving route between the given [lon, lat]
// positions. Transient failures are retried with backoff.
func (c *Client) GetDirections(ctx context.Context, coordinates [][]float64) (*DirectionsAPIResponse, error) {
	endpoint := c.baseURL + "/v2/directions/driving-car/geojson"

	payload, err := json.Marshal(directionsRequest{Coordinates: coordinates})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp DirectionsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	return &apiResp, nil
}
