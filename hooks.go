// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

// Initializer is implemented by a group whose Init-method should run
// once before the group's first selected test.  Init is called on a
// zero value of the group, i.e. state which should be shared by the
// group's tests must be kept outside the group instance, e.g. in
// Fixtures or in a package variable:
//
//	var conn *DB
//
//	type Store struct{ db *DB }
//
//	func (s *Store) Init(t *tdd.T) { conn = openDB() }
//
//	func (s *Store) SetUp(t *tdd.T) { s.db = conn }
type Initializer interface {
	Init(*T)
}

// Finalizer is implemented by a group whose Finalize-method should run
// once after the group's last test iff its Init-method was called.
// Like Init Finalize is called on a zero value of the group.
type Finalizer interface {
	Finalize(*T)
}

// SetUpper is implemented by a group whose SetUp-method should run
// before each test on the test's fresh group instance.
type SetUpper interface {
	SetUp(*T)
}

// TearDowner is implemented by a group whose TearDown-method should run
// after each test on the test's group instance, regardless if SetUp or
// the test itself failed.
type TearDowner interface {
	TearDown(*T)
}

// special are the method names of the optional lifecycle hooks which
// are never considered a test.
const special = "Init SetUp TearDown Finalize"

func noGroupHook(*T) {}

// hooks holds for a group type G the resolved optional lifecycle
// hooks.  A hook a group doesn't implement is resolved to a no-op once
// at registration, i.e. the engine never asks for it again.
type hooks[G any] struct {
	init, finalize  func(*T)
	setUp, tearDown func(*G, *T)
}

// resolveHooks detects which of the optional lifecycle hooks G's
// pointer type implements.
func resolveHooks[G any]() hooks[G] {
	noInstanceHook := func(*G, *T) {}
	hh := hooks[G]{
		init:     noGroupHook,
		finalize: noGroupHook,
		setUp:    noInstanceHook,
		tearDown: noInstanceHook,
	}
	var probe interface{} = new(G)
	if _, ok := probe.(Initializer); ok {
		hh.init = func(t *T) {
			var g interface{} = new(G)
			g.(Initializer).Init(t)
		}
	}
	if _, ok := probe.(Finalizer); ok {
		hh.finalize = func(t *T) {
			var g interface{} = new(G)
			g.(Finalizer).Finalize(t)
		}
	}
	if _, ok := probe.(SetUpper); ok {
		hh.setUp = func(g *G, t *T) {
			var i interface{} = g
			i.(SetUpper).SetUp(t)
		}
	}
	if _, ok := probe.(TearDowner); ok {
		hh.tearDown = func(g *G, t *T) {
			var i interface{} = g
			i.(TearDowner).TearDown(t)
		}
	}
	return hh
}
