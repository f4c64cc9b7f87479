// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fx

import "github.com/slukits/tdd"

// Math has a passing and a failing test.
type Math struct{}

func (m *Math) AddsPositive(t *tdd.T) {
	Trace.Add("AddsPositive")
	tdd.AreEqual(t, 4, 2+2)
}

func (m *Math) AddsNegative(t *tdd.T) {
	Trace.Add("AddsNegative")
	tdd.AreEqual(t, 5, 2+2)
}

// NewMath returns a registry with the Math group.
func NewMath() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[Math](r)
	return r
}

// Slow's tests are meant to be rejected by a discriminator.
type Slow struct{}

func (s *Slow) Sleeps(t *tdd.T) { Trace.Add("Sleeps") }
func (s *Slow) SleepsLong(t *tdd.T) { Trace.Add("SleepsLong") }
func (s *Slow) SleepsLonger(t *tdd.T) { Trace.Add("SleepsLonger") }

// NewSlow returns a registry with only the Slow group and a module
// initialization and cleanup which are traced.
func NewSlow() *tdd.Registry {
	r := tdd.NewRegistry()
	r.SetModuleInitialize(func(*tdd.T) { Trace.Add("ModuleInit") })
	r.SetModuleCleanup(func(*tdd.T) { Trace.Add("ModuleCleanup") })
	tdd.RegisterIn[Slow](r)
	return r
}

// NewMathAndSlow returns a registry with the Math group followed by the
// Slow group.
func NewMathAndSlow() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[Math](r)
	tdd.RegisterIn[Slow](r)
	return r
}

// Ordered declares its tests in non-lexicographical order.
type Ordered struct{}

func (o *Ordered) Zebra(t *tdd.T) { Trace.Add("Zebra") }
func (o *Ordered) Alpha(t *tdd.T) { Trace.Add("Alpha") }
func (o *Ordered) Middle(t *tdd.T) { Trace.Add("Middle") }

// helper isn't a test since it is not exported.
func (o *Ordered) helper(t *tdd.T) { Trace.Add("helper") }

// Arg isn't a test since its argument isn't a *tdd.T.
func (o *Ordered) Arg(s string) { Trace.Add("Arg") }

// Ret isn't a test since it returns a value.
func (o *Ordered) Ret(t *tdd.T) bool { Trace.Add("Ret"); return true }

// NewOrdered returns a registry with the Ordered group.
func NewOrdered() *tdd.Registry {
	r := tdd.NewRegistry()
	tdd.RegisterIn[Ordered](r)
	return r
}
