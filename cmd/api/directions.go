package main

import (
	"errors"
	"net/http"

	"rain-radar/internal/routing"
	"rain-radar/internal/types"

	"github.com/gin-gonic/gin"
)

// GetRouteInput defines the query parameters for the directions endpoint
type GetRouteInput struct {
	FromLatitude  float64 `form:"fromLatitude" binding:"required"`  // Origin latitude in decimal degrees
	FromLongitude float64 `form:"fromLongitude" binding:"required"` // Origin longitude in decimal degrees
	ToLatitude    float64 `form:"toLatitude" binding:"required"`    // Destination latitude in decimal degrees
	ToLongitude   float64 `form:"toLongitude" binding:"required"`   // Destination longitude in decimal degrees
}

// handleGetRoute godoc
// @Summary Get a driving route
// @Description Compute a driving route between two coordinates
// @Tags routes
// @Produce json
// @Param fromLatitude query number true "Origin latitude" example(-6.2088)
// @Param fromLongitude query number true "Origin longitude" example(106.8456)
// @Param toLatitude query number true "Destination latitude" example(-6.9175)
// @Param toLongitude query number true "Destination longitude" example(107.6191)
// @Success 200 {object} types.Route
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /v1/routes [get]
func (app *App) handleGetRoute(c *gin.Context) {
	if app.cfg.Routing.ApiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "routing is not configured"})
		return
	}

	var input GetRouteInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := app.routingService.Route(
		c.Request.Context(),
		types.NewCoords(input.FromLatitude, input.FromLongitude),
		types.NewCoords(input.ToLatitude, input.ToLongitude),
	)
	if err != nil {
		if errors.Is(err, routing.ErrNoRoute) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no route found"})
			return
		}

		app.logger.Error("failed to get route", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get route"})
		return
	}

	c.JSON(http.StatusOK, route)
}
