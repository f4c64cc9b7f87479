// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"testing"

	"github.com/slukits/tdd"
)

// Testing reports a run to the go testing framework: Close turns each
// selected test into a sub-test of the wrapped testing.T which fails
// with the test's reported failures.  Failures of lifecycle steps,
// e.g. TestClassCleanup, get a sub-test of their own.  Sub-tests are
// created in the order of the run; a group registered twice gets a
// sub-test per registration.
//
//	func TestMath(t *testing.T) {
//	    report.Run(t, fx.NewMath(), tdd.AllTests)
//	}
type Testing struct {
	t *testing.T

	// tests are the recorded tests and steps in sequence.
	tests []*testingEntry

	// current is the index of the last selected test.
	current int
}

type testingEntry struct {
	info     tdd.TestInfo
	failures []tdd.TestFailure
}

// NewTesting creates a reporter whose tests become sub-tests of given
// testing.T.
func NewTesting(t *testing.T) *Testing {
	return &Testing{t: t, current: -1}
}

// ForEachTest records given test.
func (r *Testing) ForEachTest(ti tdd.TestInfo) {
	r.tests = append(r.tests, &testingEntry{info: ti})
	r.current = len(r.tests) - 1
}

// ForEachFailure records given failure with the last selected test if
// it is the failure's test.  A step failure is recorded with the last
// recorded entry if that is the same step, with a new entry otherwise.
func (r *Testing) ForEachFailure(f tdd.TestFailure) {
	if r.current >= 0 && r.tests[r.current].info == f.Test {
		r.tests[r.current].failures = append(
			r.tests[r.current].failures, f)
		return
	}
	if n := len(r.tests); n > 0 && n-1 != r.current &&
		r.tests[n-1].info == f.Test {
		r.tests[n-1].failures = append(r.tests[n-1].failures, f)
		return
	}
	r.tests = append(r.tests, &testingEntry{
		info: f.Test, failures: []tdd.TestFailure{f}})
}

// Close runs a sub-test for each recorded test reporting its failures.
func (r *Testing) Close() error {
	for _, e := range r.tests {
		failures := e.failures
		r.t.Run(e.info.String(), func(t *testing.T) {
			for _, f := range failures {
				t.Errorf("%s(%d): %s", f.File, f.Line, f.Message)
			}
		})
	}
	return nil
}

// Run runs the tests of given registry selected by given discriminator
// with the zero engine and reports them as sub-tests of given
// testing.T.
func Run(t *testing.T, reg *tdd.Registry, d tdd.Discriminator) {
	r := NewTesting(t)
	(&tdd.Engine{}).Run(reg, d, r)
	r.Close()
}
