package main

import (
	"log"
	"log/slog"

	"rain-radar/internal/config"
	"rain-radar/internal/storage"

	"github.com/joho/godotenv"
)

// @title Rain-Radar API
// @version 1.0
// @description Precipitation survey API: samples points around a center and collects hourly precipitation-probability forecasts for each.
func main() {
	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Open survey store
	store, err := storage.NewSQLite("surveys.db")
	if err != nil {
		logger.Error("failed to open survey store", "error", err)
		log.Fatal(err)
	}
	defer store.Close()

	// Create app
	app, err := NewApp(cfg, logger, store)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		log.Fatal(err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
