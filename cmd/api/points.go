package main

import (
	"net/http"

	"rain-radar/internal/types"

	"github.com/gin-gonic/gin"
)

// SamplePointsInput defines the query parameters for the point sampling
// endpoint. Omitted parameters fall back to the configured defaults.
type SamplePointsInput struct {
	Latitude     *float64 `form:"latitude"`     // Center latitude in decimal degrees
	Longitude    *float64 `form:"longitude"`    // Center longitude in decimal degrees
	RadiusMeters *float64 `form:"radiusMeters"` // Sampling radius in meters
	Count        *int     `form:"count"`        // Number of points to generate
}

// SamplePointsResponse lists the generated points together with the inputs
// that produced them.
type SamplePointsResponse struct {
	Center       types.Coords   `json:"center"`
	RadiusMeters float64        `json:"radiusMeters"`
	Points       []types.Coords `json:"points"`
}

// handleSamplePoints godoc
// @Summary Sample points around a center
// @Description Generate pseudo-random coordinates within a radius of a center point
// @Tags points
// @Produce json
// @Param latitude query number false "Center latitude in decimal degrees" example(-6.0)
// @Param longitude query number false "Center longitude in decimal degrees" example(106.0)
// @Param radiusMeters query number false "Sampling radius in meters" example(100000)
// @Param count query integer false "Number of points" example(10)
// @Success 200 {object} SamplePointsResponse
// @Failure 400 {object} map[string]string
// @Router /v1/points/sample [get]
func (app *App) handleSamplePoints(c *gin.Context) {
	var input SamplePointsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center := types.NewCoords(app.cfg.Center.Latitude, app.cfg.Center.Longitude)
	if input.Latitude != nil && input.Longitude != nil {
		center = types.NewCoords(*input.Latitude, *input.Longitude)
	}
	radius := app.cfg.Sampling.RadiusMeters
	if input.RadiusMeters != nil {
		radius = *input.RadiusMeters
	}
	count := app.cfg.Sampling.Count
	if input.Count != nil {
		count = *input.Count
	}

	// The sampler divides by cos(latitude); reject the poles here.
	if center.Latitude <= -90 || center.Latitude >= 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center latitude must be strictly between -90 and 90"})
		return
	}

	c.JSON(http.StatusOK, SamplePointsResponse{
		Center:       center,
		RadiusMeters: radius,
		Points:       app.sampler.Points(center, radius, count),
	})
}
