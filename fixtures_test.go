// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd_test

import (
	"testing"

	"github.com/slukits/tdd"
	"github.com/slukits/tdd/testdata/fx"
)

var shared tdd.Fixtures

// Shared hands its Init's fixture to each of its instances.
type Shared struct{ db string }

func (s *Shared) Init(t *tdd.T) { shared.Set(t, "db") }

func (s *Shared) SetUp(t *tdd.T) { s.db = shared.Get(t).(string) }

func (s *Shared) Reads(t *tdd.T) { tdd.AreEqual(t, "db", s.db) }

func (s *Shared) Writes(t *tdd.T) { tdd.AreEqual(t, "db", s.db) }

func (s *Shared) Finalize(t *tdd.T) {
	fx.Trace.Add("%v", shared.Del(t))
}

// Unshared's fixture lookup finds nothing.
type Unshared struct{}

func (u *Unshared) Reads(t *tdd.T) { tdd.IsNil(t, shared.Get(t)) }

func Test_fixtures_are_shared_by_the_tests_of_a_group(t *testing.T) {
	fx.Trace.Reset()
	reg := tdd.NewRegistry()
	tdd.RegisterIn[Shared](reg)
	tdd.RegisterIn[Unshared](reg)
	rec := run(reg, tdd.AllTests)
	if len(rec.Tests) != 3 || len(rec.Failures) != 0 {
		t.Errorf("expected 3 passing tests; got %v", rec.Events)
	}
	diffTrace(t, "db")
}
