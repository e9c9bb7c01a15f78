package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
	"github.com/ahatanar/StudentSpace/internal/server"
)

// @title StudentSpace Heatmap API
// @version 1.0
// @description Classroom usage heatmap service for the StudentSpace campus platform

// @contact.name API Support
// @contact.url https://github.com/ahatanar/StudentSpace

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Environment overrides may come from a local .env during development
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
