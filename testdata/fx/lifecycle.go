// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fx

import (
	"github.com/slukits/tdd"
	"github.com/slukits/tdd/report"
)

// Lifecycle implements all hooks and traces every call.  Its tests
// fail if they don't get a fresh instance.
type Lifecycle struct{ setUps int }

func (l *Lifecycle) Init(t *tdd.T) { Trace.Add("Init") }

func (l *Lifecycle) SetUp(t *tdd.T) {
	l.setUps++
	Trace.Add("SetUp")
}

func (l *Lifecycle) First(t *tdd.T) {
	Trace.Add("First")
	tdd.AreEqual(t, 1, l.setUps)
}

func (l *Lifecycle) Second(t *tdd.T) {
	Trace.Add("Second")
	tdd.AreEqual(t, 1, l.setUps)
}

func (l *Lifecycle) TearDown(t *tdd.T) { Trace.Add("TearDown") }

func (l *Lifecycle) Finalize(t *tdd.T) { Trace.Add("Finalize") }

// NewLifecycle returns a registry with traced module hooks and the
// Lifecycle group.
func NewLifecycle() *tdd.Registry {
	r := tdd.NewRegistry()
	r.SetModuleInitialize(func(*tdd.T) { Trace.Add("ModuleInit") })
	r.SetModuleCleanup(func(*tdd.T) { Trace.Add("ModuleCleanup") })
	tdd.RegisterIn[Lifecycle](r)
	return r
}

// NewModuleInitFails returns a registry whose module initialization
// fails with the groups Lifecycle and Math.
func NewModuleInitFails() *tdd.Registry {
	r := tdd.NewRegistry()
	r.SetModuleInitialize(func(t *tdd.T) {
		Trace.Add("ModuleInit")
		t.Fatal("no database")
	})
	r.SetModuleCleanup(func(*tdd.T) { Trace.Add("ModuleCleanup") })
	tdd.RegisterIn[Lifecycle](r)
	tdd.RegisterIn[Math](r)
	return r
}

// NoHooks implements no hook.
type NoHooks struct{}

func (h *NoHooks) One(t *tdd.T) { tdd.IsTrue(t, true) }

func (h *NoHooks) Two(t *tdd.T) { tdd.IsTrue(t, false) }

func (h *NoHooks) Three(t *tdd.T) { panic("three") }

// NoOpHooks implements every hook doing nothing.
type NoOpHooks struct{}

func (h *NoOpHooks) Init(t *tdd.T) {}

func (h *NoOpHooks) SetUp(t *tdd.T) {}

func (h *NoOpHooks) One(t *tdd.T) { tdd.IsTrue(t, true) }

func (h *NoOpHooks) Two(t *tdd.T) { tdd.IsTrue(t, false) }

func (h *NoOpHooks) Three(t *tdd.T) { panic("three") }

func (h *NoOpHooks) TearDown(t *tdd.T) {}

func (h *NoOpHooks) Finalize(t *tdd.T) {}

// NewNoHooks returns a registry with the NoHooks group.
func NewNoHooks() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[NoHooks](r)
	return r
}

// NewNoOpHooks returns a registry with the NoOpHooks group.
func NewNoOpHooks() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[NoOpHooks](r)
	return r
}

// Broken's group initialization panics.
type Broken struct{}

func (b *Broken) Init(t *tdd.T) {
	Trace.Add("BrokenInit")
	panic("no fixture")
}

func (b *Broken) One(t *tdd.T) { Trace.Add("One") }

func (b *Broken) Two(t *tdd.T) { Trace.Add("Two") }

func (b *Broken) Finalize(t *tdd.T) { Trace.Add("BrokenFinalize") }

// Healthy has a passing test.
type Healthy struct{}

func (h *Healthy) Runs(t *tdd.T) { Trace.Add("Runs") }

// NewGroupInitFails returns a registry with the Broken group followed by
// the Healthy group.
func NewGroupInitFails() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[Broken](r)
	tdd.RegisterIn[Healthy](r)
	return r
}

// BrokenSetUp's instance set up fails.
type BrokenSetUp struct{}

func (b *BrokenSetUp) SetUp(t *tdd.T) {
	Trace.Add("SetUp")
	t.Fatal("no instance fixture")
}

func (b *BrokenSetUp) Body(t *tdd.T) { Trace.Add("Body") }

func (b *BrokenSetUp) TearDown(t *tdd.T) { Trace.Add("TearDown") }

// BrokenBody's test fails.
type BrokenBody struct{}

func (b *BrokenBody) SetUp(t *tdd.T) { Trace.Add("SetUp") }

func (b *BrokenBody) Body(t *tdd.T) {
	Trace.Add("Body")
	tdd.IsTrue(t, false)
	Trace.Add("Unreachable")
}

func (b *BrokenBody) TearDown(t *tdd.T) { Trace.Add("TearDown") }

// BrokenTearDown's instance tear down panics.
type BrokenTearDown struct{}

func (b *BrokenTearDown) Body(t *tdd.T) { Trace.Add("Body") }

func (b *BrokenTearDown) TearDown(t *tdd.T) { panic("tear down") }

// NewBrokenInstances returns a registry with the groups BrokenSetUp,
// BrokenBody and BrokenTearDown.
func NewBrokenInstances() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[BrokenSetUp](r)
	tdd.RegisterIn[BrokenBody](r)
	tdd.RegisterIn[BrokenTearDown](r)
	return r
}

// BrokenConstructor's factory panics.
type BrokenConstructor struct{}

func (b *BrokenConstructor) One(t *tdd.T) { Trace.Add("One") }

func (b *BrokenConstructor) Two(t *tdd.T) { Trace.Add("Two") }

func (b *BrokenConstructor) Finalize(t *tdd.T) {
	Trace.Add("BrokenConstructorFinalize")
}

// NewBrokenConstructor returns a registry with the BrokenConstructor
// group whose factory panics.
func NewBrokenConstructor() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterFuncIn(r, func() *BrokenConstructor {
		panic("no instance")
	})
	return r
}

// Counted's factory counts the created instances.
type Counted struct{ ID int }

// Instances is the number of Counted instances created by its factory.
var Instances int

func (c *Counted) One(t *tdd.T) { Trace.Add("One:%d", c.ID) }

func (c *Counted) Two(t *tdd.T) { Trace.Add("Two:%d", c.ID) }

// NewCounted returns a registry with the Counted group.
func NewCounted() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterFuncIn(r, func() *Counted {
		Instances++
		return &Counted{ID: Instances}
	})
	return r
}

// Reentrant's Outer test runs the Inner test of the registry it is
// registered with.
type Reentrant struct{}

var reentrant *tdd.Registry

// Nested records the events of the nested run of Reentrant.Outer.
var Nested = &report.Recorder{}

func (r *Reentrant) Outer(t *tdd.T) {
	(&tdd.Engine{}).Run(reentrant, tdd.DiscriminatorFunc(
		func(ti tdd.TestInfo) bool { return ti.Name == "Inner" },
	), Nested)
	Trace.Add("Outer")
}

func (r *Reentrant) Inner(t *tdd.T) { Trace.Add("Inner") }

// NewReentrant returns a registry with the Reentrant group.
func NewReentrant() *tdd.Registry {
	reentrant = tdd.NewRegistry()
	tdd.RegisterIn[Reentrant](reentrant)
	return reentrant
}

// SoftSetUp's set up fails with a check which doesn't abort the set up
// under the Recording strategy.
type SoftSetUp struct{}

func (s *SoftSetUp) SetUp(t *tdd.T) {
	tdd.IsTrue(t, false)
	Trace.Add("after-setup-check")
}

func (s *SoftSetUp) Body(t *tdd.T) { Trace.Add("Body") }

func (s *SoftSetUp) TearDown(t *tdd.T) { Trace.Add("TearDown") }

// NewSoftSetUp returns a registry with the SoftSetUp group.
func NewSoftSetUp() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[SoftSetUp](r)
	return r
}

// FailingFinalize's Finalize fails.
type FailingFinalize struct{}

func (f *FailingFinalize) Init(t *tdd.T) { Trace.Add("FailingInit") }

func (f *FailingFinalize) One(t *tdd.T) { Trace.Add("One") }

func (f *FailingFinalize) Finalize(t *tdd.T) { tdd.Fail(t, "finalize fails") }

// NewFailingCleanups returns a registry with the FailingFinalize group
// followed by the Healthy group and a failing module cleanup.
func NewFailingCleanups() *tdd.Registry {
	r := tdd.NewRegistry()
	r.SetModuleCleanup(func(t *tdd.T) { tdd.Fail(t, "cleanup fails") })
	tdd.RegisterIn[FailingFinalize](r)
	tdd.RegisterIn[Healthy](r)
	return r
}
