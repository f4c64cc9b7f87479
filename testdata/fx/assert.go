// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fx

import (
	"github.com/slukits/tdd"
	"github.com/slukits/tdd/report"
)

// Check's only test runs the checks it was created with.
type Check struct{ checks func(*tdd.T) }

func (c *Check) Runs(t *tdd.T) { c.checks(t) }

// RunCheck runs given checks as test Check.Runs with given strategy and
// returns the recorded events.
func RunCheck(s tdd.Strategy, checks func(*tdd.T)) *report.Recorder {
	return RunCheckWith(&tdd.Engine{Strategy: s}, checks)
}

// RunCheckWith runs given checks as test Check.Runs with given engine
// and returns the recorded events.
func RunCheckWith(e *tdd.Engine, checks func(*tdd.T)) *report.Recorder {
	r := tdd.NewRegistry()
	tdd.RegisterFuncIn(r, func() *Check { return &Check{checks: checks} })
	rec := &report.Recorder{}
	e.Run(r, tdd.AllTests, rec)
	return rec
}

// RangeError is the error value of an index out of range.
type RangeError struct{ Index int }

func (e RangeError) Error() string { return "index out of range" }

// TypeError is the error value of an unexpected type.
type TypeError struct{}

func (e TypeError) Error() string { return "unexpected type" }

// Color is an enumeration with a String method.
type Color int

const (
	Red Color = iota
	Green
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "green"
}

// Point is a structured value which can only be compared by its String
// method.
type Point struct{ X, Y int }

func (p *Point) String() string {
	return "(" + itoa(p.X) + "," + itoa(p.Y) + ")"
}

func itoa(i int) string { return tdd.Display(i) }
