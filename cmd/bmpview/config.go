package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/bmpview/viewer"
)

// Environment variables read at startup.
const (
	envOutput  = "BMPVIEW_OUTPUT"
	envTheme   = "BMPVIEW_THEME"
	envLog     = "BMPVIEW_LOG"
	envWorkers = "BMPVIEW_WORKERS"
)

const defaultOutput = "bmpview.png"

// config is the process configuration.
type config struct {
	output   string
	theme    viewer.Theme
	logLevel slog.Level
	workers  int
}

// loadConfig reads the configuration through getenv. Unset variables take
// their defaults; malformed ones are errors.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		output:   defaultOutput,
		theme:    viewer.ThemeLight,
		logLevel: slog.LevelInfo,
	}

	if v := getenv(envOutput); v != "" {
		cfg.output = v
	}

	switch v := strings.ToLower(strings.TrimSpace(getenv(envTheme))); v {
	case "", "light":
	case "dark":
		cfg.theme = viewer.ThemeDark
	default:
		return cfg, fmt.Errorf("%s: unknown theme %q (want light or dark)", envTheme, v)
	}

	if v := getenv(envLog); v != "" {
		if err := cfg.logLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("%s: %w", envLog, err)
		}
	}

	if v := getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envWorkers, err)
		}
		cfg.workers = n
	}

	return cfg, nil
}
