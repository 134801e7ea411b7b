package main

import (
	"os"

	"github.com/aksoyb/schedly/internal/pkg/logger"
	"github.com/aksoyb/schedly/internal/server"
)

// @title Schedly API
// @version 1.0
// @description Course scheduling service with conflict detection, automatic timetable generation and a draft-validate-publish lifecycle.

// @contact.name API Support
// @contact.email support@schedly.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by the identity service, sent as "Bearer <token>"

func main() {
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
	os.Exit(0)
}
