package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/apptrack/internal/cli"
	"github.com/dmitrijs2005/apptrack/internal/config"
	"github.com/dmitrijs2005/apptrack/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	log := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		// NewApp already logged the cause.
		os.Exit(1)
	}

	app.Run(context.Background())
}
