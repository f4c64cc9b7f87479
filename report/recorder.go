// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/slukits/tdd"
)

// Kind distinguishes the events a reporter receives.
type Kind int

const (
	// TestEvent is the announcement of a selected test.
	TestEvent Kind = iota

	// FailureEvent is a reported failure.
	FailureEvent
)

// Event is one received reporter event without source location.
type Event struct {
	Kind    Kind
	Test    tdd.TestInfo
	Message string
}

// Selected returns the event announcing given group's test.
func Selected(group, test string) Event {
	return Event{Kind: TestEvent, Test: tdd.TestInfo{
		Group: group, Name: test}}
}

// Failed returns the event of a failure of given group's test or step
// with given message.
func Failed(group, test, message string) Event {
	return Event{Kind: FailureEvent, Test: tdd.TestInfo{
		Group: group, Name: test}, Message: message}
}

func (e Event) String() string {
	if e.Kind == TestEvent {
		return fmt.Sprintf("test %s", e.Test)
	}
	return fmt.Sprintf("failure %s: %s", e.Test, e.Message)
}

// Recorder records the events it receives in the order they are
// received.
type Recorder struct {
	Tests    []tdd.TestInfo
	Failures []tdd.TestFailure
	Events   []Event
}

// ForEachTest records given test.
func (r *Recorder) ForEachTest(ti tdd.TestInfo) {
	r.Tests = append(r.Tests, ti)
	r.Events = append(r.Events, Event{Kind: TestEvent, Test: ti})
}

// ForEachFailure records given failure.
func (r *Recorder) ForEachFailure(f tdd.TestFailure) {
	r.Failures = append(r.Failures, f)
	r.Events = append(r.Events, Event{
		Kind: FailureEvent, Test: f.Test, Message: f.Message})
}

// FailuresOf returns the recorded failures of given group's test or
// step.
func (r *Recorder) FailuresOf(group, test string) []tdd.TestFailure {
	ff := []tdd.TestFailure{}
	for _, f := range r.Failures {
		if f.Test.Group == group && f.Test.Name == test {
			ff = append(ff, f)
		}
	}
	return ff
}

// Messages returns the messages of all recorded failures.
func (r *Recorder) Messages() []string {
	mm := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		mm[i] = f.Message
	}
	return mm
}

// Reset removes all recorded events.
func (r *Recorder) Reset() {
	r.Tests, r.Failures, r.Events = nil, nil, nil
}
