// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/slukits/tdd/filter"
	"github.com/slukits/tdd/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Run       string
	Skip      string
	Strategy  string
	Color     bool
	Verbose   bool
	LogLevel  string
	LogFormat string
	Metrics   string
	EnvFile   string
}

// register registers f's flags as persistent flags of given command.
func (f *Flags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVarP(&f.Run, "run", "r", "", "Run only tests matching one of these comma separated patterns (e.g. 'Math.*' or 'Adds')")
	fs.StringVarP(&f.Skip, "skip", "s", "", "Skip tests matching one of these comma separated patterns")
	fs.StringVar(&f.Strategy, "strategy", config.DefaultStrategy, "Failure strategy: 'unwind' aborts a test at its first failed check, 'record' continues")
	fs.BoolVarP(&f.Color, "color", "c", false, "Colorize the report")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Report test and failure counts per group")
	fs.StringVar(&f.LogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&f.LogFormat, "log-format", config.DefaultLogFormat, "Log format: console or json")
	fs.StringVar(&f.Metrics, "metrics", "", "Write prometheus metrics of the run to this file")
	fs.StringVar(&f.EnvFile, "env-file", "", "Env file to load (default .env if it exists)")
}

// envFile returns the env file flag if it was set.
func (f *Flags) envFile(cmd *cobra.Command) string {
	if cmd.Flags().Changed("env-file") {
		return f.EnvFile
	}
	return ""
}

// apply overwrites given configuration with the flags set on given
// command.
func (f *Flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("run") {
		cfg.Run = filter.Split(f.Run)
	}
	if changed("skip") {
		cfg.Skip = filter.Split(f.Skip)
	}
	if changed("strategy") {
		cfg.Strategy = f.Strategy
	}
	if changed("color") {
		cfg.Color = f.Color
	}
	if changed("verbose") {
		cfg.Verbose = f.Verbose
	}
	if changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.LogFormat
	}
	if changed("metrics") {
		cfg.MetricsPath = f.Metrics
	}
}
