// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics provides a tdd.Observer collecting prometheus
// metrics of a run which may be written to a file in the prometheus
// text format, e.g. for a node exporter's textfile collector.
package metrics

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/slukits/tdd"
)

// Status label values.
const (
	Passed = "passed"
	Failed = "failed"
)

// StepBody is the step label of a test's body.
const StepBody = "body"

var lifecycle = map[string]bool{
	tdd.StepModuleInitialize: true,
	tdd.StepClassInitialize:  true,
	tdd.StepConstructor:      true,
	tdd.StepInitialize:       true,
	tdd.StepCleanup:          true,
	tdd.StepClassCleanup:     true,
	tdd.StepModuleCleanup:    true,
}

// Collector captures the metrics of tdd runs.
type Collector struct {
	registry     *prometheus.Registry
	testsTotal   *prometheus.CounterVec
	stepsTotal   *prometheus.CounterVec
	testDuration *prometheus.HistogramVec
	stepDuration *prometheus.HistogramVec
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	collector := &Collector{
		registry: registry,
		testsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tdd_tests_total", Help: "Total number of tests"},
			[]string{"group", "status"},
		),
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tdd_steps_total", Help: "Total number of lifecycle steps"},
			[]string{"step", "status"},
		),
		testDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tdd_test_duration_seconds",
				Help:    "Test duration in seconds including its lifecycle steps",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"group", "status"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tdd_step_duration_seconds",
				Help:    "Step duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"step", "status"},
		),
	}

	registry.MustRegister(collector.testsTotal, collector.stepsTotal,
		collector.testDuration, collector.stepDuration)
	return collector
}

func status(failed bool) string {
	if failed {
		return Failed
	}
	return Passed
}

// Step returns the step label of given step info: the lifecycle step's
// name or StepBody for a test's body.
func Step(info tdd.TestInfo) string {
	if lifecycle[info.Name] {
		return info.Name
	}
	return StepBody
}

// ObserveStep records a step outcome.
func (c *Collector) ObserveStep(
	info tdd.TestInfo, failed bool, duration time.Duration,
) {
	step, status := Step(info), status(failed)
	c.stepsTotal.WithLabelValues(step, status).Inc()
	c.stepDuration.WithLabelValues(step, status).Observe(duration.Seconds())
}

// ObserveTest records a test outcome.
func (c *Collector) ObserveTest(
	info tdd.TestInfo, failed bool, duration time.Duration,
) {
	status := status(failed)
	c.testsTotal.WithLabelValues(info.Group, status).Inc()
	c.testDuration.WithLabelValues(info.Group, status).Observe(
		duration.Seconds())
}

// Write writes all metrics to a prometheus text file.
func (c *Collector) Write(path string) error {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "metrics: gather")
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return errors.Wrapf(err, "metrics: encode %s", family.GetName())
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "metrics: write")
	}
	return nil
}
