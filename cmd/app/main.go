package main

import (
	"bestevents/config"
	"bestevents/di"
	"bestevents/shared/logger"
	"context"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load collections")
	}
	defer cleanup()

	if err = http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
