package main

import (
	"errors"
	"io"
	"net/http"

	"rain-radar/internal/survey"
	"rain-radar/internal/types"

	"github.com/gin-gonic/gin"
)

// RunSurveyInput is the optional JSON body for the survey endpoint. Omitted
// fields fall back to the configured defaults.
type RunSurveyInput struct {
	Center       *types.Coords `json:"center"`
	RadiusMeters float64       `json:"radiusMeters"`
	Count        int           `json:"count"`
}

// ListSurveysInput defines the query parameters for the survey listing
// endpoint.
type ListSurveysInput struct {
	Limit int `form:"limit"` // Maximum number of surveys to return
}

// handleRunSurvey godoc
// @Summary Run a precipitation survey
// @Description Sample points around the center and collect an hourly precipitation-probability record for each; the batch is all-or-nothing
// @Tags surveys
// @Accept json
// @Produce json
// @Param request body RunSurveyInput false "Survey parameters"
// @Success 200 {object} types.Survey
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /v1/surveys [post]
func (app *App) handleRunSurvey(c *gin.Context) {
	var input RunSurveyInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Center != nil && (input.Center.Latitude <= -90 || input.Center.Latitude >= 90) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center latitude must be strictly between -90 and 90"})
		return
	}

	result, err := app.surveyService.Run(c.Request.Context(), survey.Request{
		Center:       input.Center,
		RadiusMeters: input.RadiusMeters,
		Count:        input.Count,
	})
	if err != nil {
		if errors.Is(err, survey.ErrSurveyInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("survey failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to run survey"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleListSurveys godoc
// @Summary List recent surveys
// @Description Return persisted surveys, most recent first
// @Tags surveys
// @Produce json
// @Param limit query integer false "Maximum number of surveys" example(20)
// @Success 200 {array} types.Survey
// @Failure 500 {object} map[string]string
// @Router /v1/surveys [get]
func (app *App) handleListSurveys(c *gin.Context) {
	var input ListSurveysInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	surveys, err := app.surveyService.Recent(input.Limit)
	if err != nil {
		app.logger.Error("failed to list surveys", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list surveys"})
		return
	}

	c.JSON(http.StatusOK, surveys)
}
