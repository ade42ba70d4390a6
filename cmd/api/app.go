package main

import (
	"log/slog"

	"rain-radar/internal/config"
	"rain-radar/internal/geo"
	"rain-radar/internal/places"
	"rain-radar/internal/precip"
	"rain-radar/internal/routing"
	"rain-radar/internal/storage"
	"rain-radar/internal/survey"

	"github.com/gin-gonic/gin"

	_ "rain-radar/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	sampler        *geo.Sampler
	surveyService  survey.Service
	placesService  places.Service
	routingService routing.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, store storage.Store) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	sampler := geo.NewSampler()

	// Initialize precipitation service (loads timezone data)
	precipSvc, err := precip.NewPrecipService(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		sampler:        sampler,
		surveyService:  survey.NewSurveyService(sampler, precipSvc, store, cfg, logger),
		placesService:  places.NewPlacesService(logger),
		routingService: routing.NewRoutingService(cfg.Routing.ApiKey, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
