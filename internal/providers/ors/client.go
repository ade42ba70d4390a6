package ors

import (
	"net/http"
	"time"
)

// API Docs: https://openrouteservice.org/dev/#/api-docs/v2/directions
const baseURL = "https://api.openrouteservice.org"

// Client talks to the OpenRouteService HTTP API. Requests are authorized
// with the account API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}
