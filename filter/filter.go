// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package filter provides a tdd.Discriminator selecting tests by name
// patterns.  A pattern is matched against a test's "Group.Name" and
// against its group name alone.  Patterns containing one of the
// wildcards '*', '?' or '[' are glob patterns in the syntax of
// path.Match, e.g. "Math.*" or "*Slow*"; other patterns match if they
// are contained in "Group.Name".
package filter

import (
	"path"
	"strings"

	"github.com/slukits/tdd"
)

// Patterns selects a test iff one of its run patterns matches (or it
// has none) and none of its skip patterns matches.
type Patterns struct {
	run  []string
	skip []string
}

// New creates a discriminator from given run and skip patterns.  Empty
// patterns are ignored.
func New(run, skip []string) *Patterns {
	return &Patterns{run: compact(run), skip: compact(skip)}
}

// Split splits a comma separated list of patterns.
func Split(list string) []string {
	return compact(strings.Split(list, ","))
}

func compact(pp []string) []string {
	var cc []string
	for _, p := range pp {
		if p = strings.TrimSpace(p); p != "" {
			cc = append(cc, p)
		}
	}
	return cc
}

// WantTest implements tdd.Discriminator.
func (p *Patterns) WantTest(ti tdd.TestInfo) bool {
	if len(p.run) > 0 && !matchAny(p.run, ti) {
		return false
	}
	return !matchAny(p.skip, ti)
}

// Empty returns true iff p selects every test.
func (p *Patterns) Empty() bool {
	return len(p.run) == 0 && len(p.skip) == 0
}

func matchAny(pp []string, ti tdd.TestInfo) bool {
	for _, p := range pp {
		if Match(p, ti) {
			return true
		}
	}
	return false
}

// Match reports whether given pattern matches given test.  A malformed
// glob pattern matches nothing.
func Match(pattern string, ti tdd.TestInfo) bool {
	name := ti.String()
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(name, pattern)
	}
	for _, s := range []string{name, ti.Group} {
		if ok, err := path.Match(pattern, s); err == nil && ok {
			return true
		}
	}
	return false
}
