package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	v1 := app.router.Group("/v1")
	{
		// Sampling endpoints
		v1.GET("/points/sample", app.handleSamplePoints)

		// Survey endpoints
		v1.POST("/surveys", app.handleRunSurvey)
		v1.GET("/surveys", app.handleListSurveys)

		// Place search
		v1.GET("/places/search", app.handleSearchPlaces)

		// Directions
		v1.GET("/routes", app.handleGetRoute)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
