// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// UIMode selects how the maze is played.
type UIMode string

const (
	// UILine prints the maze and reads one direction per input line.
	UILine UIMode = "line"
	// UITUI draws the maze full screen and reacts to single key presses.
	UITUI UIMode = "tui"
)

// Config holds runtime configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maze generation.
	// A seed of 0 means a time-based seed is used.
	Seed int64
	// UI selects the play mode. UITUI falls back to UILine without a terminal.
	UI UIMode
	// PlayerGlyph is drawn over the player's cell.
	PlayerGlyph rune
	// LogVerbosity is the logr verbosity threshold; 1 enables debug output.
	LogVerbosity int
	// Telemetry enables OpenTelemetry trace export.
	Telemetry bool
	// HoneycombAPIKey and HoneycombDataset configure the OTLP exporter for Honeycomb.
	HoneycombAPIKey  string
	HoneycombDataset string
	// EnvFileErr records why the .env file was not loaded, if it was not.
	EnvFileErr error
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		UI:               UILine,
		PlayerGlyph:      'X',
		HoneycombDataset: "mazeband",
	}
}

// Load reads a .env file from the working directory, if present, and then
// the process environment. A missing .env file is not an error; it is
// recorded in EnvFileErr. A rejected value leaves its default in place, so
// the returned Config is usable even when err is non-nil.
func Load() (Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil {
		cfg.EnvFileErr = err
	}
	return cfg, cfg.fromEnv(os.LookupEnv)
}

func (c *Config) fromEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup("MAZE_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED must be an integer: %w", err))
		} else {
			c.Seed = seed
		}
	}

	if v, ok := lookup("MAZE_UI"); ok && v != "" {
		switch mode := UIMode(v); mode {
		case UILine, UITUI:
			c.UI = mode
		default:
			errs = append(errs, fmt.Errorf("MAZE_UI must be %q or %q, got %q", UILine, UITUI, v))
		}
	}

	if v, ok := lookup("MAZE_PLAYER_GLYPH"); ok && v != "" {
		r, size := utf8.DecodeRuneInString(v)
		if size != len(v) || r == utf8.RuneError {
			errs = append(errs, fmt.Errorf("MAZE_PLAYER_GLYPH must be a single character, got %q", v))
		} else {
			c.PlayerGlyph = r
		}
	}

	if v, ok := lookup("MAZE_LOG_VERBOSITY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("MAZE_LOG_VERBOSITY must be a non-negative integer, got %q", v))
		} else {
			c.LogVerbosity = n
		}
	}

	if v, ok := lookup("MAZE_TELEMETRY"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_TELEMETRY must be a boolean: %w", err))
		} else {
			c.Telemetry = on
		}
	}

	if v, ok := lookup("HONEYCOMB_API_KEY"); ok {
		c.HoneycombAPIKey = v
	}
	if v, ok := lookup("HONEYCOMB_DATASET"); ok && v != "" {
		c.HoneycombDataset = v
	}

	return errors.Join(errs...)
}
