// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slukits/tdd"
)

var (
	adds   = tdd.TestInfo{Group: "Math", Name: "AddsPositive"}
	sleeps = tdd.TestInfo{Group: "Slow", Name: "Sleeps"}
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		ti       tdd.TestInfo
		expected bool
	}{
		{"substring of test", "Adds", adds, true},
		{"substring of full name", "h.Add", adds, true},
		{"substring mismatch", "Subtracts", adds, false},
		{"glob on full name", "Math.Adds*", adds, true},
		{"glob on group", "Ma?h", adds, true},
		{"glob on group mismatch", "Sl*w", adds, false},
		{"glob surrounding", "*Sleep*", sleeps, true},
		{"character class", "[MS]*.*", sleeps, true},
		{"malformed glob", "Math[", adds, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.pattern, tt.ti))
		})
	}
}

func TestPatterns_WantTest(t *testing.T) {
	t.Run("no patterns select everything", func(t *testing.T) {
		p := New(nil, []string{"", " "})
		assert.True(t, p.Empty())
		assert.True(t, p.WantTest(adds))
		assert.True(t, p.WantTest(sleeps))
	})

	t.Run("run patterns select", func(t *testing.T) {
		p := New([]string{"Math"}, nil)
		assert.True(t, p.WantTest(adds))
		assert.False(t, p.WantTest(sleeps))
	})

	t.Run("skip patterns win", func(t *testing.T) {
		p := New([]string{"Math", "Slow"}, []string{"Slow.*"})
		assert.True(t, p.WantTest(adds))
		assert.False(t, p.WantTest(sleeps))
	})

	t.Run("skip only", func(t *testing.T) {
		p := New(nil, []string{"*Positive"})
		assert.False(t, p.WantTest(adds))
		assert.True(t, p.WantTest(sleeps))
	})
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"Math", "Slow.*"}, Split(" Math, ,Slow.* "))
	assert.Nil(t, Split(""))
}
