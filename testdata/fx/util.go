// Copyright (c) 2022 Stephan Lukits. All rights reserved.
//  Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fx

import (
	"runtime"

	"github.com/slukits/tdd"
)

// File is the file name of the fixture assertions in this file.
var File = func() string {
	_, f, _, ok := runtime.Caller(0)
	if !ok {
		panic("fx: util: can't determine file")
	}
	return f
}()

// AssertPositive is a test helper which fails given test if given value
// is not positive.  Its failures are located at its caller.
func AssertPositive(t *tdd.T, value int) {
	t.Helper()
	tdd.IsTrue(t, value > 0, "positive")
}

// FailHere fails given test and sets given line to the line of the
// failed assertion.
func FailHere(t *tdd.T, line *int) {
	_, _, l, _ := runtime.Caller(0)
	*line = l + 2
	tdd.IsTrue(t, false)
}
