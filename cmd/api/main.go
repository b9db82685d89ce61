package main

import (
	"context"
	"os"

	"github.com/yigit/schoolfm/internal/pkg/logger"
	"github.com/yigit/schoolfm/internal/server"
)

// @title School Back Office API
// @version 1.0
// @description Students, staff, classes, transport and fees of a school.

// @host localhost:3000
// @BasePath /api
// @schemes http

func main() {
	configPath := os.Getenv("SCHOOLFM_CONFIG")

	srv, err := server.NewServer(context.Background(), configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
