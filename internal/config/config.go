// Package config holds the small set of environment-tunable knobs this
// process reads at startup. There is no persisted configuration file:
// every value here has a hardcoded default and an optional env override,
// the same pattern the logger package uses for its own level.
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultRefreshInterval is the periodic topology-refresh tick period.
	DefaultRefreshInterval = 30 * time.Second

	envRefreshInterval = "CURSORWARP_REFRESH_INTERVAL_MS"
	envLogLevel        = "CURSORWARP_LOG_LEVEL"
)

// Config is the resolved set of runtime knobs.
type Config struct {
	RefreshInterval time.Duration
	LogLevel        string
}

// FromEnv resolves a Config from the process environment, falling back
// to defaults for anything unset or unparsable.
func FromEnv() Config {
	cfg := Config{
		RefreshInterval: DefaultRefreshInterval,
		LogLevel:        os.Getenv(envLogLevel),
	}

	if raw := os.Getenv(envRefreshInterval); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.RefreshInterval = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}
