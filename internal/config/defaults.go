// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

const (
	// DefaultStrategy is the default failure strategy
	DefaultStrategy = "unwind"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default log format
	DefaultLogFormat = "console"
	// DefaultEnvFile is the env file which is loaded if it exists
	DefaultEnvFile = ".env"
)

// Environment variables overwriting the defaults.
const (
	EnvRun       = "TDD_RUN"
	EnvSkip      = "TDD_SKIP"
	EnvStrategy  = "TDD_STRATEGY"
	EnvColor     = "TDD_COLOR"
	EnvVerbose   = "TDD_VERBOSE"
	EnvLogLevel  = "TDD_LOG_LEVEL"
	EnvLogFormat = "TDD_LOG_FORMAT"
	EnvMetrics   = "TDD_METRICS"
	EnvEnvFile   = "TDD_ENV_FILE"
)

// LogLevels are the accepted log levels
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats are the accepted log formats
var LogFormats = []string{"console", "json"}
