// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// mismatchErr is the format of a failed equality check.
const mismatchErr = "Expected <%s> Actual <%s>"

// equalityErr is the format of a failed inequality check.
const equalityErr = "Unexpected equality <%s>"

// withinErr is the format of a failed tolerance check.
const withinErr = "expected <%s> to be within <%s> of <%s>"

// wrongPanicErr is the format of a failed panic expectation whose call
// panicked with an other value than expected.
const wrongPanicErr = "exception of wrong type thrown; " +
	"was expecting exception of type '%s'"

// noPanicErr is the format of a failed panic expectation whose call
// didn't panic.
const noPanicErr = "no exception thrown; " +
	"was expecting exception of type '%s'"

// containsErr is the format of a failed 'Contains'-assertion.
const containsErr = "Expected <%s> to contain <%s>"

// matchedErr is the format of a failed 'Matched'-assertion.
const matchedErr = "Expected <%s> to match <%s>"

// withMessage appends a non-empty optional message to given failure
// text.
func withMessage(text string, msg []string) string {
	m := strings.Join(msg, " ")
	if m == "" {
		return text
	}
	return text + " - " + m
}

// mismatch formats a failed equality check.  Texts spanning several
// lines get a diff appended.
func mismatch(expected, actual string, msg []string) string {
	text := withMessage(fmt.Sprintf(mismatchErr, expected, actual), msg)
	if strings.Contains(expected, "\n") || strings.Contains(actual, "\n") {
		text += "\n" + cmp.Diff(expected, actual)
	}
	return text
}

// True fails the test and returns false iff given value is not true;
// otherwise true is returned.
func (t *T) True(value bool, msg ...string) bool {
	if value {
		return true
	}
	return t.Verify(false, mismatch("true", "false", msg))
}

// False fails the test and returns false iff given value is not false;
// otherwise true is returned.
func (t *T) False(value bool, msg ...string) bool {
	if !value {
		return true
	}
	return t.Verify(false, mismatch("false", "true", msg))
}

// Not implements negations of [T]-assertions, e.g. [Not.True].  Negated
// assertions can be accessed through [T]'s Not field.
type Not struct{ t *T }

// True passes iff given value is not true.
func (n Not) True(value bool, msg ...string) bool {
	if !value {
		return true
	}
	return n.t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, "true"), msg))
}

// False passes iff given value is not false.
func (n Not) False(value bool, msg ...string) bool {
	if value {
		return true
	}
	return n.t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, "false"), msg))
}

// Contains fails the test and returns false iff given value doesn't
// contain given sub-string; otherwise true is returned.
func (t *T) Contains(value, sub string, msg ...string) bool {
	if strings.Contains(value, sub) {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(containsErr, value, sub), msg))
}

// Contains negation passes iff given value doesn't contain given
// sub-string.
func (n Not) Contains(value, sub string, msg ...string) bool {
	if !strings.Contains(value, sub) {
		return true
	}
	return n.t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, sub), msg))
}

// Matched fails the test and returns false iff given value isn't
// matched by given regex; otherwise true is returned.
func (t *T) Matched(value, regex string, msg ...string) bool {
	if regexp.MustCompile(regex).MatchString(value) {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(matchedErr, value, regex), msg))
}

// ErrIs fails the test and returns false iff given error doesn't wrap
// given target; otherwise true is returned.
func (t *T) ErrIs(err, target error, msg ...string) bool {
	if errors.Is(err, target) {
		return true
	}
	return t.Verify(false, mismatch(
		fmt.Sprintf("%v", target), fmt.Sprintf("%v", err), msg))
}

// IsTrue fails given test iff given value is false.
func IsTrue(t *T, value bool, msg ...string) bool {
	return t.True(value, msg...)
}

// IsFalse fails given test iff given value is true.
func IsFalse(t *T, value bool, msg ...string) bool {
	return t.False(value, msg...)
}

// AreEqual fails given test iff the display texts of given values
// differ (see Display).
func AreEqual[V Scalar](t *T, expected, actual V, msg ...string) bool {
	exp, act := Display(expected), Display(actual)
	if exp == act {
		return true
	}
	return t.Verify(false, mismatch(exp, act, msg))
}

// AreNotEqual fails given test iff the display texts of given values
// are the same (see Display).
func AreNotEqual[V Scalar](
	t *T, notExpected, actual V, msg ...string,
) bool {
	act := Display(actual)
	if Display(notExpected) != act {
		return true
	}
	return t.Verify(false, withMessage(fmt.Sprintf(equalityErr, act), msg))
}

// AreEqualStringers fails given test iff the String-results of given
// values differ.
func AreEqualStringers[V fmt.Stringer](
	t *T, expected, actual V, msg ...string,
) bool {
	exp, act := DisplayStringer(expected), DisplayStringer(actual)
	if exp == act {
		return true
	}
	return t.Verify(false, mismatch(exp, act, msg))
}

// AreNotEqualStringers fails given test iff the String-results of
// given values are the same.
func AreNotEqualStringers[V fmt.Stringer](
	t *T, notExpected, actual V, msg ...string,
) bool {
	act := DisplayStringer(actual)
	if DisplayStringer(notExpected) != act {
		return true
	}
	return t.Verify(false, withMessage(fmt.Sprintf(equalityErr, act), msg))
}

// AreEqualFold fails given test iff given strings differ under Unicode
// case-folding.
func AreEqualFold(t *T, expected, actual string, msg ...string) bool {
	if strings.EqualFold(expected, actual) {
		return true
	}
	return t.Verify(false, mismatch(expected, actual, msg))
}

// AreNotEqualFold fails given test iff given strings are equal under
// Unicode case-folding.
func AreNotEqualFold(
	t *T, notExpected, actual string, msg ...string,
) bool {
	if !strings.EqualFold(notExpected, actual) {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, actual), msg))
}

// IsWithin fails given test iff the distance of given actual value to
// given expected value isn't less than the absolute of given epsilon.
func IsWithin(
	t *T, expected, actual, epsilon float64, msg ...string,
) bool {
	if math.Abs(expected-actual) < math.Abs(epsilon) {
		return true
	}
	return t.Verify(false, withMessage(fmt.Sprintf(withinErr,
		Display(expected), Display(epsilon), Display(actual)), msg))
}

// IsNil fails given test iff given value is neither nil nor a nil
// value of a nil-able kind.
func IsNil(t *T, value interface{}, msg ...string) bool {
	if isNil(value) {
		return true
	}
	return t.Verify(false, mismatch("nil", displayRef(value), msg))
}

// IsNotNil fails given test iff given value is nil or a nil value of a
// nil-able kind.
func IsNotNil(t *T, value interface{}, msg ...string) bool {
	if !isNil(value) {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, "nil"), msg))
}

// AreSame fails given test iff given pointers don't point to the same
// value.
func AreSame[P any](t *T, expected, actual *P, msg ...string) bool {
	if expected == actual {
		return true
	}
	return t.Verify(false, mismatch(
		displayRef(expected), displayRef(actual), msg))
}

// AreNotSame fails given test iff given pointers point to the same
// value.
func AreNotSame[P any](t *T, notExpected, actual *P, msg ...string) bool {
	if notExpected != actual {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(equalityErr, displayRef(actual)), msg))
}

// Fail fails given test with given message.
func Fail(t *T, msg string) bool {
	return t.Verify(false, msg)
}

// ExpectPanic fails given test unless given function panics with a
// value of type E.  A function which doesn't panic fails the test as
// well as a function panicking with a value of an other type.
func ExpectPanic[E any](t *T, f func(), msg ...string) bool {
	name := typeName[E]()
	raised, matched := catch[E](f)
	switch {
	case matched:
		return true
	case raised:
		return t.Verify(false, withMessage(
			fmt.Sprintf(wrongPanicErr, name), msg))
	}
	return t.Verify(false, withMessage(fmt.Sprintf(noPanicErr, name), msg))
}

// ExpectError fails given test unless given function returns an error
// which is or wraps an error of type E (see errors.As).
func ExpectError[E error](t *T, f func() error, msg ...string) bool {
	name := typeName[E]()
	err := f()
	if err == nil {
		return t.Verify(false, withMessage(
			fmt.Sprintf(noPanicErr, name), msg))
	}
	var target E
	if errors.As(err, &target) {
		return true
	}
	return t.Verify(false, withMessage(
		fmt.Sprintf(wrongPanicErr, name)+fmt.Sprintf(": %v", err), msg))
}

// catch calls given function and reports if it panicked and if so if
// the panic value is of type E.  Failure signals of the verifier are
// passed on.
func catch[E any](f func()) (raised, matched bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case *failureSignal, abortSignal:
			panic(r)
		}
		raised = true
		_, matched = r.(E)
	}()
	f()
	return false, false
}

func typeName[E any]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}
