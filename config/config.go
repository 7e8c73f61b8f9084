// SPDX-License-Identifier: MIT
//
// Package config reads algmoments settings from ALGMOMENTS_* environment
// variables. Command-line flags take precedence over every value here.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrBadLogLevel indicates an unrecognised log level name.
var ErrBadLogLevel = errors.New("config: unknown log level")

// Config is the environment configuration. An empty Mode defers to the
// model file.
type Config struct {
	LogLevel   string `env:"ALGMOMENTS_LOG_LEVEL"   envDefault:"info"`
	Mode       string `env:"ALGMOMENTS_MODE"`
	Syntax     string `env:"ALGMOMENTS_SYNTAX"      envDefault:"python"`
	MaxMoments int    `env:"ALGMOMENTS_MAX_MOMENTS" envDefault:"0"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
}
