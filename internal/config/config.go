// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config assembles the configuration of a tdd run from its
// defaults, an env file, the environment and command line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/slukits/tdd"
)

// Config holds the configuration of a run
type Config struct {
	// Test selection
	Run  []string
	Skip []string

	// Strategy names the failure strategy, see tdd.StrategyFor
	Strategy string

	// Output settings
	Color   bool
	Verbose bool

	// Logging
	LogLevel  string
	LogFormat string

	// MetricsPath is the file metrics are written to; none if empty
	MetricsPath string

	EnvFile string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Strategy:  DefaultStrategy,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		EnvFile:   DefaultEnvFile,
	}
}

// Load loads given env file into the environment and returns the
// defaults overwritten by the environment.  A missing env file is only
// an error if it is not the default env file.  Variables already set
// in the environment are not overwritten by the env file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = envOrDefault(EnvEnvFile, DefaultEnvFile)
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg := New()
	cfg.EnvFile = envFile
	cfg.Run = envOrDefaultList(EnvRun, cfg.Run)
	cfg.Skip = envOrDefaultList(EnvSkip, cfg.Skip)
	cfg.Strategy = envOrDefault(EnvStrategy, cfg.Strategy)
	cfg.Color = envOrDefaultBool(EnvColor, cfg.Color)
	cfg.Verbose = envOrDefaultBool(EnvVerbose, cfg.Verbose)
	cfg.LogLevel = envOrDefault(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = envOrDefault(EnvLogFormat, cfg.LogFormat)
	cfg.MetricsPath = envOrDefault(EnvMetrics, cfg.MetricsPath)
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == DefaultEnvFile {
			return nil
		}
		return errors.Wrap(err, "config: env file")
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "config: load env file %s", path)
	}
	return nil
}

// Validate returns an error if c names an unknown strategy, log level
// or log format.
func (c *Config) Validate() error {
	if _, err := tdd.StrategyFor(c.Strategy); err != nil {
		return errors.Wrap(err, "config")
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return errors.Errorf("config: log level: unknown: %s", c.LogLevel)
	}
	if !slices.Contains(LogFormats, strings.ToLower(c.LogFormat)) {
		return errors.Errorf("config: log format: unknown: %s", c.LogFormat)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return fallback
	}
}

func envOrDefaultList(key string, fallback []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return splitCSV(value)
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
