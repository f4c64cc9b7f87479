// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli hosts a tdd registry as command line program.  A test
// binary's main function typically is
//
//	func main() { os.Exit(cli.Main(tdd.Default)) }
//
// The program's "run" command, which is also its default, runs the
// registry's tests and exits with ExitPassed iff at least one test was
// run and none failed, with ExitFailed otherwise.  The "list" command
// lists the selected tests without running them.  Usage and
// configuration errors exit with ExitError.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/slukits/tdd"
	"github.com/slukits/tdd/filter"
	"github.com/slukits/tdd/internal/config"
	"github.com/slukits/tdd/internal/logging"
	"github.com/slukits/tdd/metrics"
	"github.com/slukits/tdd/report"
)

// Exit codes of a command line run.
const (
	ExitPassed = 0
	ExitFailed = 1
	ExitError  = 2
)

// Main executes the command line given to the process for given
// registry and returns the exit code.
func Main(reg *tdd.Registry) int {
	return Execute(reg, os.Args[1:], os.Stdout, os.Stderr)
}

// Execute executes given arguments for given registry writing reports
// to out and errors to errOut.  It returns the exit code.
func Execute(reg *tdd.Registry, args []string, out, errOut io.Writer) int {
	h := &host{reg: reg, out: out}
	cmd := h.command()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(errOut, "Error: %v\n", err)
		return ExitError
	}
	return h.code
}

// host holds the state of one command line execution.
type host struct {
	reg   *tdd.Registry
	out   io.Writer
	flags Flags
	cfg   *config.Config
	code  int
}

func (h *host) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "tdd",
		Short: "Run registered tdd tests",
		Long: `Run the tests registered with this binary and report their failures.
Exits with 0 iff at least one test ran and none failed, 1 otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: h.configure,
		RunE:              h.run,
	}
	h.flags.register(root)

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the selected tests",
		Args:  cobra.NoArgs,
		RunE:  h.run,
	})
	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the selected tests in run order",
		Args:  cobra.NoArgs,
		RunE:  h.list,
	})
	return root
}

// configure loads the configuration and overwrites it with the flags
// given on the command line.
func (h *host) configure(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(h.flags.envFile(cmd))
	if err != nil {
		return err
	}
	h.flags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.cfg = cfg
	return nil
}

// console is a reporter writing a run's report to the host's output.
type console interface {
	tdd.Reporter
	Passed() bool
	Close() error
}

func (h *host) console() console {
	if h.cfg.Color {
		return report.NewColor(h.out)
	}
	return report.NewPortable(h.out)
}

func (h *host) run(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(h.cfg)
	if err != nil {
		return errors.Wrap(err, "cli: logger")
	}
	defer func() { _ = logger.Sync() }()
	strategy, err := tdd.StrategyFor(h.cfg.Strategy)
	if err != nil {
		return errors.Wrap(err, "cli")
	}

	c := h.console()
	reporters := report.Multi{c}
	var summary *report.Summary
	if h.cfg.Verbose {
		summary = report.NewSummary()
		reporters = append(reporters, summary)
	}
	e := &tdd.Engine{Strategy: strategy, Logger: logger}
	var collector *metrics.Collector
	if h.cfg.MetricsPath != "" {
		collector = metrics.NewCollector()
		e.Observer = collector
	}

	e.Run(h.reg, filter.New(h.cfg.Run, h.cfg.Skip), reporters)

	if summary != nil {
		if _, err := summary.WriteTo(h.out); err != nil {
			return errors.Wrap(err, "cli: summary")
		}
	}
	if err := c.Close(); err != nil {
		return errors.Wrap(err, "cli: report")
	}
	if collector != nil {
		if err := collector.Write(h.cfg.MetricsPath); err != nil {
			return err
		}
	}
	if !c.Passed() {
		h.code = ExitFailed
	}
	return nil
}

func (h *host) list(cmd *cobra.Command, _ []string) error {
	d, n := filter.New(h.cfg.Run, h.cfg.Skip), 0
	for _, ti := range h.reg.Tests() {
		if !d.WantTest(ti) {
			continue
		}
		n++
		if _, err := fmt.Fprintln(h.out, ti); err != nil {
			return errors.Wrap(err, "cli: list")
		}
	}
	if n == 0 {
		color.New(color.FgYellow).Fprintln(h.out, "No tests found")
	}
	return nil
}
