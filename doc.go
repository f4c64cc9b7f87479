// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tdd is a self-registering unit-test engine: test groups
// register themselves at package initialization and a host program
// runs them, reporting each selected test and each failure to a
// Reporter.  tdd doesn't need the go test command, i.e. tests can be
// linked into any binary, e.g. a test binary for a target which has no
// go toolchain:
//
//	import "github.com/slukits/tdd"
//
//	type Math struct{}
//
//	var _ = tdd.Register[Math]()
//
//	func (m *Math) Adds_positive_numbers(t *tdd.T) {
//	    tdd.AreEqual(t, 4, 2+2)
//	}
//
//	func (m *Math) Adds_negative_numbers(t *tdd.T) {
//	    tdd.That(t, -2+-2).Is.EqualTo(-4)
//	}
//
//	func main() { os.Exit(cli.Main(tdd.Default)) }
//
// A group is a struct type G whose exported methods of *G taking a *T
// as only argument are its tests.  Tests are run in the order they are
// written.  The methods Init, Finalize, SetUp and TearDown are no tests
// but the optional lifecycle hooks of a group, see Initializer,
// Finalizer, SetUpper and TearDowner.  A run executes for each selected
// test
//
//	TestModuleInitialize (once per run, before the first test)
//	TestClassInitialize  (once per group, Init)
//	constructor          (a fresh *G, see RegisterFunc)
//	TestInitialize       (SetUp)
//	the test             (iff SetUp didn't fail)
//	TestCleanup          (TearDown)
//	TestClassCleanup     (once per group, Finalize, iff Init was called)
//	TestModuleCleanup    (once per run, after the last group)
//
// Each of these steps is isolated: whatever happens in a step ends at
// its boundary and is reported as failure of the step.  A failed module
// or group initialization fails the tests depending on it without
// executing them.  Nothing a test does terminates the run.
//
// A failed check is reported at the location of its call in the test
// code, see T.Helper for assertion helpers.  Whether a failed check
// aborts its step is decided by the engine's Strategy: Unwinding
// aborts, Recording records the failure and lets the step continue
// (Fatal and FailNow abort with either strategy).
//
// Checks are package level functions like AreEqual, IsWithin or
// ExpectPanic, methods of T like T.True or T.Contains, or fluent
// subjects created by That, ThatStringer and ThatRef.  Equality of
// scalars is decided by their display text, see Display, which also is
// what a failure message shows:
//
//	Expected <5> Actual <4> - negative
//
// A run is executed by an Engine with a Discriminator selecting tests
// (see the filter package) and a Reporter (see the report package).
// Run runs the Default registry with the zero Engine.  The cli package
// provides a command line host for a registry.
package tdd
