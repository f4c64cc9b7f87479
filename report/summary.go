// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/slukits/tdd"
)

// Multi passes each event on to all its reporters in order.
type Multi []tdd.Reporter

// ForEachTest passes given test on.
func (m Multi) ForEachTest(ti tdd.TestInfo) {
	for _, r := range m {
		r.ForEachTest(ti)
	}
}

// ForEachFailure passes given failure on.
func (m Multi) ForEachFailure(f tdd.TestFailure) {
	for _, r := range m {
		r.ForEachFailure(f)
	}
}

// GroupResult are the counts of one group.
type GroupResult struct {
	Tests    int
	Failures int
}

// Summary counts tests and failures per group in the order the groups
// appear in a run.  Failures of the module cleanup are counted for
// tdd.GlobalGroup.
type Summary struct {
	groups *orderedmap.OrderedMap[string, *GroupResult]
}

// NewSummary creates a new empty summary.
func NewSummary() *Summary {
	return &Summary{groups: orderedmap.New[string, *GroupResult]()}
}

func (s *Summary) group(name string) *GroupResult {
	if r, ok := s.groups.Get(name); ok {
		return r
	}
	r := &GroupResult{}
	s.groups.Set(name, r)
	return r
}

// ForEachTest counts given test for its group.
func (s *Summary) ForEachTest(ti tdd.TestInfo) { s.group(ti.Group).Tests++ }

// ForEachFailure counts given failure for its group.
func (s *Summary) ForEachFailure(f tdd.TestFailure) {
	s.group(f.Test.Group).Failures++
}

// Groups returns the names of the counted groups in order.
func (s *Summary) Groups() []string {
	gg := make([]string, 0, s.groups.Len())
	for p := s.groups.Oldest(); p != nil; p = p.Next() {
		gg = append(gg, p.Key)
	}
	return gg
}

// Of returns the counts of given group.
func (s *Summary) Of(group string) GroupResult {
	if r, ok := s.groups.Get(group); ok {
		return *r
	}
	return GroupResult{}
}

// WriteTo writes a line per group with its counts.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for p := s.groups.Oldest(); p != nil; p = p.Next() {
		m, err := fmt.Fprintf(w, "%-32s %4d %s %4d %s\n", p.Key,
			p.Value.Tests, plural(p.Value.Tests, "test"),
			p.Value.Failures, plural(p.Value.Failures, "failure"))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
