// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import "sync"

// Fixtures provides a simple fixture storage for state a group's Init
// shares with the group's tests.  Since Init is called on a zero value
// of its group, fixtures are stored by group name, i.e. the Group of
// the storing T's TestInfo.  A Fixtures instance must not be copied
// after its first use.
//
//	var fixtures tdd.Fixtures
//
//	type Store struct{ db *DB }
//
//	func (s *Store) Init(t *tdd.T) { fixtures.Set(t, openDB()) }
//
//	func (s *Store) SetUp(t *tdd.T) { s.db = fixtures.Get(t).(*DB) }
//
//	func (s *Store) Finalize(t *tdd.T) { fixtures.Del(t).(*DB).Close() }
type Fixtures struct {
	mutex sync.Mutex
	ff    map[string]interface{}
}

// Set maps given test's group to given fixture.
func (ff *Fixtures) Set(t *T, fixture interface{}) {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if ff.ff == nil {
		ff.ff = map[string]interface{}{}
	}
	ff.ff[t.Info().Group] = fixture
}

// Get returns the fixture of given test's group; nil if there is none.
func (ff *Fixtures) Get(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.ff[t.Info().Group]
}

// Del removes the fixture of given test's group and returns it.
func (ff *Fixtures) Del(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	fixture := ff.ff[t.Info().Group]
	delete(ff.ff, t.Info().Group)
	return fixture
}
