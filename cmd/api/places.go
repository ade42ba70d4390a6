package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchPlacesInput defines the query parameters for the place search
// endpoint
type SearchPlacesInput struct {
	Query string `form:"q" binding:"required"` // Free-text search query
	Limit int    `form:"limit"`                // Maximum number of results
}

// handleSearchPlaces godoc
// @Summary Search for places
// @Description Resolve a free-text query to named places with coordinates
// @Tags places
// @Produce json
// @Param q query string true "Search query" example(monas jakarta)
// @Param limit query integer false "Maximum number of results" example(10)
// @Success 200 {array} types.Place
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /v1/places/search [get]
func (app *App) handleSearchPlaces(c *gin.Context) {
	var input SearchPlacesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	places, err := app.placesService.Search(c.Request.Context(), input.Query, input.Limit)
	if err != nil {
		app.logger.Error("place search failed", "query", input.Query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to search places"})
		return
	}

	c.JSON(http.StatusOK, places)
}
