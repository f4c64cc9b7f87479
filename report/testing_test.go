// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slukits/tdd"
	"github.com/slukits/tdd/report"
	"github.com/slukits/tdd/testdata/fx"
)

func TestTesting_keeps_each_registration_of_a_group_apart(t *testing.T) {
	reg := tdd.NewRegistry()
	tdd.RegisterIn[fx.Math](reg)
	tdd.RegisterIn[fx.Math](reg)
	r := report.NewTesting(t)
	(&tdd.Engine{}).Run(reg, tdd.AllTests, r)

	infos, messages := report.TestingEntries(r)
	assert.Equal(t, []string{
		"Math.AddsPositive", "Math.AddsNegative",
		"Math.AddsPositive", "Math.AddsNegative",
	}, infos)
	assert.Equal(t, [][]string{
		{}, {"Expected <5> Actual <4>"},
		{}, {"Expected <5> Actual <4>"},
	}, messages)
}

func TestTesting_records_step_failures_in_sequence(t *testing.T) {
	r := report.NewTesting(t)
	(&tdd.Engine{}).Run(fx.NewGroupInitFails(), tdd.AllTests, r)

	infos, messages := report.TestingEntries(r)
	assert.Equal(t, []string{
		"Broken.One", "Broken.TestClassInitialize", "Broken.Two",
		"Healthy.Runs",
	}, infos)
	assert.Equal(t, []string{classInit}, messages[0])
	assert.Equal(t, []string{
		"unknown panic from TestClassInitialize: no fixture"}, messages[1])
	assert.Equal(t, []string{classInit}, messages[2])
	assert.Empty(t, messages[3])
}

const classInit = "test class initialization failure: can't run test!"
