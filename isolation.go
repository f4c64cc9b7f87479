// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strategy decides what a failed check means for the step it was made
// in.  The engine runs every lifecycle step through its strategy's Run
// method which executes the step with given T bound to it and reports
// whether the step failed.  The verifier of a T hands every failed
// check to Fail.  Both provided strategies recover any panic at the
// step boundary, i.e. nothing raised by test code escapes a step.
type Strategy interface {
	Fail(t *T, f TestFailure)
	Run(t *T, step func(*T)) (failed bool)
}

// Unwinding is the default strategy: a failed check aborts the
// remainder of its step immediately and is reported at the step's
// boundary.
var Unwinding Strategy = unwinding{}

// Recording reports a failed check immediately and continues the
// step, i.e. every failed check of a step is reported.  The step is
// only aborted by an explicit t.FailNow (or one of its variants) or a
// panic.
var Recording Strategy = recording{}

// failureSignal is the panic value of a failed check under the
// unwinding strategy.
type failureSignal struct{ failure TestFailure }

// abortSignal aborts the remainder of a step whose failure has already
// been reported.
type abortSignal struct{}

type unwinding struct{}

// Fail unwinds to the boundary of t's step.
func (unwinding) Fail(_ *T, f TestFailure) {
	panic(&failureSignal{failure: f})
}

// Run executes given step and reports a failure signal recovered at its
// boundary.
func (unwinding) Run(t *T, step func(*T)) bool { return isolate(t, step) }

func (unwinding) String() string { return "unwind" }

type recording struct{}

// Fail reports given failure to t's reporter.
func (recording) Fail(t *T, f TestFailure) { t.report(f) }

// Run executes given step; failures were reported while it ran.
func (recording) Run(t *T, step func(*T)) bool { return isolate(t, step) }

func (recording) String() string { return "record" }

// StrategyFor maps the strategy names "unwind" and "record" to their
// strategies.
func StrategyFor(name string) (Strategy, error) {
	switch name {
	case "unwind", "":
		return Unwinding, nil
	case "record":
		return Recording, nil
	}
	return nil, errors.Errorf("tdd: strategy: unknown: %s", name)
}

// isolate runs given step with given T and converts whatever panic
// reaches the step's boundary into a reported failure.  A failure
// signal carries the location and message of the failed check while
// any other panic value is reported with a generic message located at
// the step boundary.
func isolate(t *T, step func(*T)) (failed bool) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case *failureSignal:
			t.report(r.failure)
		case abortSignal:
		default:
			t.report(TestFailure{
				Test: t.info,
				File: t.boundary.file,
				Line: t.boundary.line,
				Message: fmt.Sprintf(
					"unknown panic from %s: %v", t.info.Name, r),
			})
		}
		failed = t.failed
	}()
	step(t)
	return t.failed
}
