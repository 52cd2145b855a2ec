package main

import (
	"os"

	"github.com/joho/godotenv"

	"schooladmin/internal/pkg/logger"
	"schooladmin/internal/server"
)

// @title School Administration API
// @version 1.0
// @description Roster, enrollment import and workload reporting API
// @BasePath /api

func main() {
	// A .env file is optional; env vars may come from the environment.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
