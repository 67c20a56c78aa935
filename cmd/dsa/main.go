package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(startupLevel(os.Getenv("DSA_LOG_LEVEL")))
	logger := log.Logger

	// Load env
	loadEnv(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// a second signal falls through to the default handler
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug().Msg("interrupted")
			os.Exit(130)
		}
		logger.Error().Err(err).Msg("dsa failed")
		os.Exit(1)
	}
}

// loadEnv reads .env style files into the environment. A missing file is
// normal and only logged at debug level.
func loadEnv(logger *zerolog.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}
}

// startupLevel is the level used before the configuration is loaded.
func startupLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
