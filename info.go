// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import "fmt"

// TestInfo identifies a test by the name of its group and its own
// name.  The group name is the declared name of the group's type, the
// test name is the declared name of the test method.
type TestInfo struct {
	Group string
	Name  string
}

// String returns "Group.Name".
func (ti TestInfo) String() string {
	return fmt.Sprintf("%s.%s", ti.Group, ti.Name)
}

// TestFailure is a failure reported for a test or for one of the
// lifecycle steps around it.  File and Line locate the failed check
// or, for failures the engine synthesizes, the engine's step boundary.
type TestFailure struct {
	Test    TestInfo
	File    string
	Line    uint
	Message string
}

// Reporter receives the events of a run.  ForEachTest is called once
// for each test a Discriminator selected before any of its lifecycle
// steps is executed; ForEachFailure once for each failure.
type Reporter interface {
	ForEachTest(TestInfo)
	ForEachFailure(TestFailure)
}

// Discriminator decides which of the discovered tests are run.
type Discriminator interface {
	WantTest(TestInfo) bool
}

// DiscriminatorFunc adapts a function to the Discriminator interface.
type DiscriminatorFunc func(TestInfo) bool

// WantTest calls f.
func (f DiscriminatorFunc) WantTest(ti TestInfo) bool { return f(ti) }

// AllTests selects every test.
var AllTests Discriminator = DiscriminatorFunc(func(TestInfo) bool {
	return true
})
