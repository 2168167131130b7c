package main

import (
	"context"
	"os"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/config"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/logging"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/postgres"
)

// Seeds the catalogue of Mindanao destinations. Safe to rerun: rows are
// upserted by slug.
func main() {
	cfg := config.Load()
	logger, closer := logging.New(cfg.LogLevel, cfg.LogstashTCPAddr)
	defer closer.Close()

	ctx := context.Background()
	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("connect database")
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error().Err(err).Msg("migrate database")
		os.Exit(1)
	}

	repo := postgres.NewDestinationRepo(db)
	for _, destination := range destinations() {
		saved, err := repo.Upsert(ctx, &destination)
		if err != nil {
			logger.Error().Err(err).Str("slug", destination.Slug).Msg("upsert destination")
			os.Exit(1)
		}
		logger.Info().Str("slug", saved.Slug).Str("id", saved.ID.String()).Msg("destination seeded")
	}
}
