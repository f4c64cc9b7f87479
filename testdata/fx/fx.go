// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides tdd test-fixture groups and the registries they
// are registered with.
//
// Each New*-function creates a fresh registry with fixture groups
// registered so that a test can run it without affecting other tests.
// Group hooks are called on zero values of their group, hence fixture
// groups trace their lifecycle to the package wide Trace which tests
// reset before a run:
//
//	func Test_lifecycle_is_traced(t *testing.T) {
//	    fx.Trace.Reset()
//	    (&tdd.Engine{}).Run(fx.NewLifecycle(), tdd.AllTests, &report.Recorder{})
//	    // evaluate fx.Trace.Entries()
//	}
package fx

import (
	"fmt"
	"sync"
)

// Log collects trace entries.  A Log mustn't be copied once it has been
// used.
type Log struct {
	entries []string
	mutex   sync.Mutex
}

// Trace is the log fixture groups trace their lifecycle to.
var Trace = &Log{}

// Add appends given format string formatted by fmt.Sprintf.
func (l *Log) Add(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the traced entries; nil if there are none.
func (l *Log) Entries() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.entries...)
}

// Reset removes all entries.
func (l *Log) Reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.entries = nil
}
