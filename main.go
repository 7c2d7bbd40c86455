package main

import (
	"context"

	"aiva-backend/config"
	"aiva-backend/models"
	"aiva-backend/routes"
	"aiva-backend/services"

	"github.com/rs/zerolog/log"
)

func main() {
	config.SetupLogger()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := config.ConnectDB(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := config.DB.AutoMigrate(
		&models.Technician{},
		&models.Service{},
		&models.Booking{},
		&models.ConversationState{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := config.EnsureIndexes(config.DB); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := services.InitSheets(context.Background()); err != nil {
		log.Error().Err(err).Msg("sheets export unavailable")
	}

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	log.Info().Str("port", config.C.Port).Msg("starting server")
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
