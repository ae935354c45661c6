package main

import (
	"github.com/vlourenco/solarapi/internal/config"
	"github.com/vlourenco/solarapi/internal/handlers"
	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/logger"
)

// bootstrap initializes the database and request validation.
func bootstrap(cfg *config.Config) {
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed catalog data")
	}

	handlers.RegisterValidatorTagNames()
}
