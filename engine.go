// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Names of the lifecycle steps failures may be reported for.
const (
	StepModuleInitialize = "TestModuleInitialize"
	StepClassInitialize  = "TestClassInitialize"
	StepConstructor      = "constructor"
	StepInitialize       = "TestInitialize"
	StepCleanup          = "TestCleanup"
	StepClassCleanup     = "TestClassCleanup"
	StepModuleCleanup    = "TestModuleCleanup"
)

// GlobalGroup is the group name the module cleanup step is reported
// with.
const GlobalGroup = "<Global>"

// InexplicableTest is the test name of a failure which escaped every
// lifecycle step's boundary and was caught at its group's boundary.
const InexplicableTest = "inexplicable exception"

const (
	moduleInitErr   = "test module initialization failure: can't run test!"
	classInitErr    = "test class initialization failure: can't run test!"
	inexplicableErr = "An unexpected exception was thrown"
)

// Observer is notified about the duration and outcome of each executed
// lifecycle step and of each selected test, e.g. to collect metrics.
// A test's outcome includes the outcomes of its lifecycle steps.
type Observer interface {
	ObserveStep(info TestInfo, failed bool, d time.Duration)
	ObserveTest(info TestInfo, failed bool, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveStep(TestInfo, bool, time.Duration) {}
func (nopObserver) ObserveTest(TestInfo, bool, time.Duration) {}

// Engine runs the tests of a registry.  The zero value runs with the
// Unwinding strategy, without logging and without observer.
type Engine struct {

	// Strategy decides if a failed check aborts its step; defaults to
	// Unwinding.
	Strategy Strategy

	// Logger receives the engine's run logging; defaults to a no-op
	// logger.
	Logger *zap.Logger

	// Observer is informed about executed steps and tests.
	Observer Observer
}

// Run runs the tests of the Default registry selected by given
// discriminator reporting to given reporter with a zero Engine.
func Run(d Discriminator, r Reporter) {
	(&Engine{}).Run(Default, d, r)
}

// Run runs all tests of given registry which are selected by given
// discriminator and reports them and their failures to given reporter.
// Groups are run in registration order, tests in declaration order.
// Each selected test is announced before any of its lifecycle steps is
// executed.  The module initialization hook is executed before the
// first executed test and each group's Init-hook before its first
// executed test.  A failed initialization makes every later test of
// its scope fail without being executed.  Each test gets a fresh group
// instance which is set up, tested and torn down; the test is skipped
// if the set up failed while the tear down always runs.  Finalize and
// module cleanup run iff their initialization ran.  Run never panics
// because of a test's code.
func (e *Engine) Run(reg *Registry, d Discriminator, r Reporter) {
	reg.sealed = true
	x := e.execution(reg, d, r)
	x.logger.Info("run started", zap.Int("groups", len(reg.groups)),
		zap.Stringer("strategy", strategyName{x.strategy}))
	start := time.Now()
	for _, g := range reg.groups {
		x.logger.Debug("group started", zap.String("group", g.name))
		g.runner.run(x)
	}
	if x.moduleInitCalled {
		x.guard(GlobalGroup, func() {
			x.step(TestInfo{Group: GlobalGroup, Name: StepModuleCleanup},
				reg.moduleCleanup)
		})
	}
	x.logger.Info("run finished", zap.Int("tests", x.tests),
		zap.Int("failures", x.failures),
		zap.Duration("duration", time.Since(start)))
}

func (e *Engine) execution(
	reg *Registry, d Discriminator, r Reporter,
) *execution {
	x := &execution{
		registry:      reg,
		discriminator: d,
		strategy:      e.Strategy,
		observer:      e.Observer,
		logger:        e.Logger,
	}
	if x.discriminator == nil {
		x.discriminator = AllTests
	}
	if x.strategy == nil {
		x.strategy = Unwinding
	}
	if x.observer == nil {
		x.observer = nopObserver{}
	}
	if x.logger == nil {
		x.logger = zap.NewNop()
	}
	x.logger = x.logger.With(zap.String("run_id", uuid.NewString()))
	x.reporter = &countingReporter{Reporter: r, x: x}
	return x
}

type strategyName struct{ s Strategy }

func (n strategyName) String() string {
	if s, ok := n.s.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", n.s)
}

// execution is the state of one run of a registry.  The flags only
// ever change from false to true during a run.
type execution struct {
	registry      *Registry
	discriminator Discriminator
	reporter      Reporter
	strategy      Strategy
	observer      Observer
	logger        *zap.Logger

	moduleInitCalled bool
	moduleInitFailed bool

	tests, failures int
}

// countingReporter counts the events of a run before passing them on.
type countingReporter struct {
	Reporter
	x *execution
}

func (r *countingReporter) ForEachTest(ti TestInfo) {
	r.x.tests++
	r.Reporter.ForEachTest(ti)
}

func (r *countingReporter) ForEachFailure(f TestFailure) {
	r.x.failures++
	r.Reporter.ForEachFailure(f)
}

// step runs given lifecycle step with a T bound to given identity
// through the run's strategy and returns true if it failed.  Panics
// without a failure signal are located at the caller of step.
func (x *execution) step(info TestInfo, f func(*T)) (failed bool) {
	t := newT(info, x.reporter, x.strategy, x.logger)
	if _, file, line, ok := runtime.Caller(1); ok {
		t.boundary = location{file: file, line: uint(line)}
	}
	start := time.Now()
	failed = x.strategy.Run(t, f)
	x.observer.ObserveStep(info, failed, time.Since(start))
	if failed {
		x.logger.Debug("step failed", zap.String("group", info.Group),
			zap.String("step", info.Name))
	}
	return failed
}

// skip reports given test as failed without running it.
func (x *execution) skip(info TestInfo, message string) {
	_, file, line, _ := runtime.Caller(1)
	x.reporter.ForEachFailure(TestFailure{
		Test: info, File: file, Line: uint(line), Message: message})
}

// guard runs f and reports a panic escaping it, e.g. from a
// discriminator or a reporter, as inexplicable failure of given group.
func (x *execution) guard(group string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			x.inexplicable(group, r)
		}
	}()
	f()
}

// inexplicable reports a panic which escaped every step boundary of
// given group.  If reporting it panics again that panic is logged and
// dropped.
func (x *execution) inexplicable(group string, r interface{}) {
	_, file, line, _ := runtime.Caller(1)
	x.logger.Error("inexplicable panic", zap.String("group", group),
		zap.Any("panic", r))
	defer func() {
		if r := recover(); r != nil {
			x.logger.Error("reporter panicked", zap.String("group", group),
				zap.Any("panic", r))
		}
	}()
	x.reporter.ForEachFailure(TestFailure{
		Test: TestInfo{Group: group, Name: InexplicableTest},
		File: file, Line: uint(line), Message: inexplicableErr,
	})
}

// groupState is the state of a group during a run.
type groupState struct {
	initCalled, initFailed bool
}

// run runs g's tests selected by x's discriminator.  Each run works on
// its own copy of g's method table, i.e. a nested run of the same group
// starts with a fresh table.
func (g *group[G]) run(x *execution) {
	table := slices.Clone(g.methods)
	state := &groupState{}
	x.guard(g.name, func() {
		for _, m := range table {
			if !x.discriminator.WantTest(m.info) {
				continue
			}
			x.reporter.ForEachTest(m.info)
			start, failures := time.Now(), x.failures
			g.runTest(x, state, m)
			x.observer.ObserveTest(
				m.info, x.failures > failures, time.Since(start))
		}
	})
	if state.initCalled {
		x.guard(g.name, func() {
			x.step(g.info(StepClassCleanup), g.hooks.finalize)
		})
	}
}

// runTest executes the lifecycle of given selected test.  A test whose
// module or group initialization failed is reported failed without
// being executed, including the test which triggered the
// initialization.
func (g *group[G]) runTest(x *execution, s *groupState, m *methodEntry[G]) {
	if !x.moduleInitCalled {
		x.moduleInitCalled = true
		x.moduleInitFailed = x.step(
			g.info(StepModuleInitialize), x.registry.moduleInit)
	}
	if x.moduleInitFailed {
		x.skip(m.info, moduleInitErr)
		return
	}

	if !s.initCalled {
		s.initCalled = true
		s.initFailed = x.step(g.info(StepClassInitialize), g.hooks.init)
	}
	if s.initFailed {
		x.skip(m.info, classInitErr)
		return
	}

	var instance *G
	if x.step(g.info(StepConstructor), func(*T) {
		instance = g.create()
		if instance == nil {
			panic("factory returned nil")
		}
	}) {
		s.initFailed = true
		x.skip(m.info, classInitErr)
		return
	}

	if !x.step(g.info(StepInitialize), func(t *T) {
		g.hooks.setUp(instance, t)
	}) {
		x.step(m.info, func(t *T) { m.invoke(instance, t) })
	}
	x.step(g.info(StepCleanup), func(t *T) {
		g.hooks.tearDown(instance, t)
	})
}

func (g *group[G]) info(step string) TestInfo {
	return TestInfo{Group: g.name, Name: step}
}
