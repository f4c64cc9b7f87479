// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import "fmt"

// Subject is the value of a fluent assertion, e.g.:
//
//	tdd.That(t, 2+2).Is.EqualTo(4)
//	tdd.That(t, 2+2).Is.Not.EqualTo(5)
//	tdd.That(t, 2+2).IsNot.Zero()
type Subject[V Scalar] struct {
	Is    Is[V]
	IsNot IsNot[V]
}

// Is provides the fluent assertions about a subject.
type Is[V Scalar] struct {
	t     *T
	value V
	Not   IsNot[V]
}

// IsNot provides the negated fluent assertions about a subject.
type IsNot[V Scalar] struct {
	t     *T
	value V
}

// That starts a fluent assertion about given value.
func That[V Scalar](t *T, value V) Subject[V] {
	not := IsNot[V]{t: t, value: value}
	return Subject[V]{
		Is:    Is[V]{t: t, value: value, Not: not},
		IsNot: not,
	}
}

// EqualTo see AreEqual.
func (is Is[V]) EqualTo(expected V) bool {
	return AreEqual(is.t, expected, is.value)
}

// EqualToFold see AreEqualFold.
func (is Is[V]) EqualToFold(expected V) bool {
	return AreEqualFold(is.t, Display(expected), Display(is.value))
}

// True fails iff the subject's display text is not "true".
func (is Is[V]) True() bool {
	return is.displayedAs("true")
}

// False fails iff the subject's display text is not "false".
func (is Is[V]) False() bool {
	return is.displayedAs("false")
}

// Zero fails iff the subject is not its type's zero value.
func (is Is[V]) Zero() bool {
	var zero V
	return AreEqual(is.t, zero, is.value)
}

func (is Is[V]) displayedAs(expected string) bool {
	act := Display(is.value)
	if act == expected {
		return true
	}
	return is.t.Verify(false, mismatch(expected, act, nil))
}

// EqualTo see AreNotEqual.
func (not IsNot[V]) EqualTo(notExpected V) bool {
	return AreNotEqual(not.t, notExpected, not.value)
}

// Zero fails iff the subject is its type's zero value.
func (not IsNot[V]) Zero() bool {
	var zero V
	return AreNotEqual(not.t, zero, not.value)
}

// StringerSubject is the value of a fluent assertion about a
// fmt.Stringer implementation.
type StringerSubject[V fmt.Stringer] struct {
	t     *T
	value V
}

// ThatStringer starts a fluent assertion about given Stringer.
func ThatStringer[V fmt.Stringer](t *T, value V) StringerSubject[V] {
	return StringerSubject[V]{t: t, value: value}
}

// IsEqualTo see AreEqualStringers.
func (s StringerSubject[V]) IsEqualTo(expected V) bool {
	return AreEqualStringers(s.t, expected, s.value)
}

// IsNotEqualTo see AreNotEqualStringers.
func (s StringerSubject[V]) IsNotEqualTo(notExpected V) bool {
	return AreNotEqualStringers(s.t, notExpected, s.value)
}

// RefSubject is the reference of a fluent identity assertion, e.g.:
//
//	tdd.ThatRef(t, p).Is.Not.Null()
//	tdd.ThatRef(t, p).Is.SameAs(q)
type RefSubject[P any] struct {
	Is RefIs[P]
}

// RefIs provides fluent identity assertions about a reference.
type RefIs[P any] struct {
	t   *T
	ref *P
	Not RefIsNot[P]
}

// RefIsNot provides negated fluent identity assertions.
type RefIsNot[P any] struct {
	t   *T
	ref *P
}

// ThatRef starts a fluent identity assertion about given pointer.
func ThatRef[P any](t *T, ref *P) RefSubject[P] {
	return RefSubject[P]{Is: RefIs[P]{
		t: t, ref: ref, Not: RefIsNot[P]{t: t, ref: ref}}}
}

// Null see IsNil.
func (is RefIs[P]) Null() bool { return IsNil(is.t, is.ref) }

// SameAs see AreSame.
func (is RefIs[P]) SameAs(expected *P) bool {
	return AreSame(is.t, expected, is.ref)
}

// Null see IsNotNil.
func (not RefIsNot[P]) Null() bool { return IsNotNil(not.t, not.ref) }

// SameAs see AreNotSame.
func (not RefIsNot[P]) SameAs(notExpected *P) bool {
	return AreNotSame(not.t, notExpected, not.ref)
}
