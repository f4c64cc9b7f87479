// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"fmt"
	"reflect"
	"strconv"
)

// Scalar is the constraint of the values failure messages know how to
// display without help.  A type which is neither Scalar nor a
// fmt.Stringer can't be compared by this package's assertions: a
// comparison of such values doesn't compile rather than producing an
// unreadable failure message.  To make a type comparable give it a
// String method and use the *Stringers-assertions.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// floatDigits is the number of significant digits a float is displayed
// with.
const floatDigits = 10

// Display returns the text a failure message shows for given value.
// A scalar type implementing fmt.Stringer, e.g. an enumeration, is
// displayed by its String method.
func Display[V Scalar](v V) string {
	if s, ok := interface{}(v).(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', floatDigits, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', floatDigits, 64)
	default:
		return strconv.FormatComplex(rv.Complex(), 'g', floatDigits, 128)
	}
}

// DisplayStringer returns the text a failure message shows for given
// Stringer implementation.
func DisplayStringer[V fmt.Stringer](v V) string {
	if isNil(v) {
		return "<nil>"
	}
	return v.String()
}

// displayRef returns the text a failure message shows for a reference
// value which is compared by identity rather than by content.
func displayRef(v interface{}) string {
	if isNil(v) {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Slice, reflect.UnsafePointer:
		return fmt.Sprintf("%#x", rv.Pointer())
	}
	return fmt.Sprintf("%T value", v)
}

// isNil returns true iff given value is nil or a nil value of a
// nil-able kind wrapped in an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
