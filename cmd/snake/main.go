package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"gridsnake/internal/audio"
	"gridsnake/internal/config"
	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
	"gridsnake/internal/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.WithError(err).Error("snake failed")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.NewGame(cfg.Seed)
	log.WithFields(log.Fields{
		"frontend": cfg.Frontend,
		"seed":     cfg.Seed,
	}).Info("starting")

	if !cfg.Mute {
		player, err := audio.Init()
		if err != nil {
			log.WithError(err).Warn("audio init failed, continuing without sound")
		} else {
			player.Subscribe(g.Events)
		}
	}

	switch cfg.Frontend {
	case config.FrontendTerm:
		return term.Run(ctx, g)
	default:
		return desktop.Run(ctx, g, cfg.CellSize)
	}
}

// setupLogging points logrus at the configured destination. The terminal
// frontend owns stdout and stderr, so without a log file it logs nowhere.
func setupLogging(cfg config.Config) (func(), error) {
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { _ = f.Close() }, nil
	case cfg.Frontend == config.FrontendTerm:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}
