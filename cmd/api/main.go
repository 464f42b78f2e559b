package main

import (
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/logger"
	"github.com/HoseaMuriira/iruma-portal/internal/server"
)

// @title Iruma Portal API
// @version 1.0
// @description Backend for the Iruma school portal: accounts, sessions,
// @description departments, student records and public admissions intake.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Session cookie issued by register or login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
