package main

import (
	"bestevents/config"
	"bestevents/di"
	"bestevents/shared/logger"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger.InitLoggerTo(os.Stderr)

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if cfg.Server.LogLevel == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, cleanup, err := di.InitializeApp(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load collections")

		return 1
	}
	defer cleanup()

	if err = app.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		return 1
	}

	return 0
}
