// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// T instances are passed to test methods and lifecycle hooks.  A T is
// bound to exactly one lifecycle step, i.e. it knows the step's test
// identity, the reporter of the run and the run's failure strategy.
// It provides the verifier every assertion reports through as well as
// logging:
//
//	type Math struct{}
//
//	var _ = tdd.Register[Math]()
//
//	func (m *Math) Adds_positive_numbers(t *tdd.T) {
//	    tdd.AreEqual(t, 4, 2+2)
//	}
type T struct {
	info     TestInfo
	reporter Reporter
	strategy Strategy
	logger   *zap.Logger
	failed   bool
	helpers  map[string]bool
	boundary location

	// Not provides the negations of T's assertion methods.
	Not Not
}

type location struct {
	file string
	line uint
}

func newT(
	info TestInfo, r Reporter, s Strategy, l *zap.Logger,
) *T {
	t := &T{info: info, reporter: r, strategy: s, logger: l}
	t.Not = Not{t: t}
	return t
}

// Info returns the identity of the test or lifecycle step t is bound
// to.
func (t *T) Info() TestInfo { return t.info }

// Failed returns true iff a failure was reported for t's step.
func (t *T) Failed() bool { return t.failed }

// Helper marks the calling function as a test helper function.  The
// location of a failure is the first caller which is neither a helper
// nor part of this package.
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	if t.helpers == nil {
		t.helpers = map[string]bool{}
	}
	t.helpers[runtime.FuncForPC(pc).Name()] = true
}

// Verify is the verifier every failed check goes through: it is a
// no-op if given condition is true.  Otherwise a failure with given
// message located at the check's caller is handed to the run's
// strategy, i.e. either the step is aborted or the failure is reported
// and Verify returns false.
func (t *T) Verify(condition bool, message string) bool {
	if condition {
		return true
	}
	file, line := t.location()
	t.strategy.Fail(t, TestFailure{
		Test: t.info, File: file, Line: line, Message: message})
	return false
}

// Fail reports a failure with given message.
func (t *T) Fail(message string) bool {
	t.Helper()
	return t.Verify(false, message)
}

// Failf reports a failure with given format string formatted by
// fmt.Sprintf.
func (t *T) Failf(format string, args ...interface{}) bool {
	t.Helper()
	return t.Verify(false, fmt.Sprintf(format, args...))
}

// FailNow reports a failure with given message and aborts the
// remainder of t's step regardless of the run's strategy.
func (t *T) FailNow(message string) {
	t.Helper()
	t.Verify(false, message)
	panic(abortSignal{})
}

// Fatal reports given arguments formatted by fmt.Sprint as failure
// and aborts the remainder of t's step (see FailNow).
func (t *T) Fatal(args ...interface{}) {
	t.Helper()
	t.FailNow(fmt.Sprint(args...))
}

// Fatalf reports given format string formatted by fmt.Sprintf as
// failure and aborts the remainder of t's step (see FailNow).
func (t *T) Fatalf(format string, args ...interface{}) {
	t.Helper()
	t.FailNow(fmt.Sprintf(format, args...))
}

// FatalOn aborts t's step (see FailNow) reporting given error iff it
// is not nil and is a no-op otherwise.
func (t *T) FatalOn(err error) {
	if err == nil {
		return
	}
	t.Helper()
	t.FailNow(err.Error())
}

// FatalIfNot aborts t's step (see FailNow) if given assertion is false
// and is a no-op otherwise.
func (t *T) FatalIfNot(assertion bool) {
	if assertion {
		return
	}
	t.Helper()
	t.FailNow("fatal: assertion failed")
}

// Log writes given arguments formatted by fmt.Sprint to the run's
// logger labeled with t's group and test.
func (t *T) Log(args ...interface{}) {
	t.logger.Info(fmt.Sprint(args...),
		zap.String("group", t.info.Group), zap.String("test", t.info.Name))
}

// Logf writes given format string formatted by fmt.Sprintf to the
// run's logger (see Log).
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// report delivers given failure to the run's reporter and flags t's
// step as failed.
func (t *T) report(f TestFailure) {
	t.failed = true
	t.logger.Debug("failure", zap.String("group", f.Test.Group),
		zap.String("test", f.Test.Name), zap.String("file", f.File),
		zap.Uint("line", f.Line), zap.String("message", f.Message))
	t.reporter.ForEachFailure(f)
}

// pkgPrefix is the prefix of the function names of this package,
// e.g. "github.com/slukits/tdd.".
var pkgPrefix = func() string {
	name := runtime.FuncForPC(reflect.ValueOf(newT).Pointer()).Name()
	return name[:strings.LastIndex(name, ".")+1]
}()

// location returns the file and line of the first caller which is
// neither inside this package nor marked as helper.
func (t *T) location() (string, uint) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, pkgPrefix) &&
			!t.helpers[f.Function] {
			return f.File, uint(f.Line)
		}
		if !more {
			break
		}
	}
	return "", 0
}
