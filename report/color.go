// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/fatih/color"
	"github.com/slukits/tdd"
)

// Color writes failures in light red and a summary which is green for a
// passed run, red for a failed run and yellow if no test was run.
type Color struct {
	Counter
	out                  io.Writer
	failure, pass, empty *color.Color
}

// NewColor creates a colorizing reporter writing to given writer.
// Whether colors are actually written is decided by color.NoColor,
// i.e. colors are suppressed if stdout is not a terminal or NO_COLOR is
// set; see ForceColor.
func NewColor(out io.Writer) *Color {
	return &Color{
		out:     out,
		failure: color.New(color.FgHiRed),
		pass:    color.New(color.FgHiGreen),
		empty:   color.New(color.FgYellow),
	}
}

// ForceColor switches colorized output on or off regardless of the
// environment.
func (c *Color) ForceColor(on bool) *Color {
	for _, cl := range []*color.Color{c.failure, c.pass, c.empty} {
		if on {
			cl.EnableColor()
		} else {
			cl.DisableColor()
		}
	}
	return c
}

// ForEachFailure counts and writes given failure.
func (c *Color) ForEachFailure(f tdd.TestFailure) {
	c.Counter.ForEachFailure(f)
	c.failure.Fprintf(c.out, "Failure in %s - \n", f.Test)
	c.failure.Fprintf(c.out, "%s(%d) : ERROR : %s\n",
		f.File, f.Line, f.Message)
}

// Close writes the run's colorized summary.
func (c *Color) Close() error {
	cl := c.pass
	switch {
	case c.TestsRun == 0:
		cl = c.empty
	case c.TestsFailed > 0:
		cl = c.failure
	}
	_, err := cl.Fprint(c.out, c.Summary()+"\n")
	return err
}
