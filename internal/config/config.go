// Package config resolves runtime options from flags and SNAKE_* environment
// variables. Flags win over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	FrontendGL   = "gl"
	FrontendTerm = "term"
)

// ErrUnknownFrontend is returned for a frontend other than gl or term.
var ErrUnknownFrontend = errors.New("unknown frontend")

type Config struct {
	Frontend string
	Seed     uint64
	Mute     bool
	LogLevel log.Level
	LogFile  string
	CellSize int
}

// Default returns the configuration used when nothing is set. The seed comes
// from the wall clock.
func Default() Config {
	return Config{
		Frontend: FrontendGL,
		Seed:     uint64(time.Now().UnixNano()),
		LogLevel: log.InfoLevel,
		CellSize: 20,
	}
}

// Load parses args (without the program name) over the environment read
// through getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	frontend := fs.String("frontend", cfg.Frontend, "frontend: gl or term")
	seed := fs.Uint64("seed", cfg.Seed, "food placement seed")
	mute := fs.Bool("mute", cfg.Mute, "disable sound")
	level := fs.String("log-level", cfg.LogLevel.String(), "log level")
	logFile := fs.String("log-file", cfg.LogFile, "write logs to this file")
	cell := fs.Int("cell", cfg.CellSize, "desktop cell size in pixels")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.Frontend = *frontend
	cfg.Seed = *seed
	cfg.Mute = *mute
	cfg.LogLevel = lvl
	cfg.LogFile = *logFile
	cfg.CellSize = *cell

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Frontend != FrontendGL && c.Frontend != FrontendTerm {
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		return fmt.Errorf("cell size %d out of range 4..64", c.CellSize)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("SNAKE_FRONTEND"); v != "" {
		cfg.Frontend = v
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("SNAKE_MUTE"); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_MUTE: %w", err)
		}
		cfg.Mute = mute
	}
	if v := getenv("SNAKE_LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("SNAKE_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv("SNAKE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("SNAKE_CELL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNAKE_CELL: %w", err)
		}
		cfg.CellSize = n
	}
	return nil
}
