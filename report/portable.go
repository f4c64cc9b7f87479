// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report provides the reporters of tdd runs: Portable and
// Color write a run's failures and its summary to a writer, Testing
// forwards a run's failures to go test, Recorder records a run's events
// and Summary counts tests and failures per group.  Multi combines
// reporters.
package report

import (
	"fmt"
	"io"

	"github.com/slukits/tdd"
)

// NoTests is the summary of a run which didn't run any test.
const NoTests = "No tests were run!!!"

// Counter counts the tests and failures of a run.
type Counter struct {
	TestsRun    int
	TestsFailed int
}

// ForEachTest counts given test.
func (c *Counter) ForEachTest(tdd.TestInfo) { c.TestsRun++ }

// ForEachFailure counts given failure.
func (c *Counter) ForEachFailure(tdd.TestFailure) { c.TestsFailed++ }

// Passed returns true iff at least one test was run and no failure was
// reported.
func (c *Counter) Passed() bool {
	return c.TestsRun > 0 && c.TestsFailed == 0
}

// Summary returns "N failure(s) out of M test(s) run" or NoTests.
func (c *Counter) Summary() string {
	if c.TestsRun == 0 {
		return NoTests
	}
	return fmt.Sprintf("%d %s out of %d %s run",
		c.TestsFailed, plural(c.TestsFailed, "failure"),
		c.TestsRun, plural(c.TestsRun, "test"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// Portable writes each failure in a format editors and IDEs understand
// as warning location:
//
//	Failure in Math.AddsNegative -
//	/src/math_test.go(12) : warning : Assertion failure : "Expected <5> Actual <4>"
//
// Close writes the run's summary.
type Portable struct {
	Counter
	out io.Writer
}

// NewPortable creates a new portable reporter writing to given writer.
func NewPortable(out io.Writer) *Portable {
	return &Portable{out: out}
}

// ForEachFailure counts and writes given failure.
func (p *Portable) ForEachFailure(f tdd.TestFailure) {
	p.Counter.ForEachFailure(f)
	fmt.Fprintf(p.out, "Failure in %s -\n", f.Test)
	fmt.Fprintf(p.out,
		"%s(%d) : warning : Assertion failure : \"%s\"\n",
		f.File, f.Line, f.Message)
}

// Close writes the run's summary.
func (p *Portable) Close() error {
	_, err := fmt.Fprintln(p.out, p.Summary())
	return err
}
