// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

// ModuleInitErr is the failure message of tests skipped due to a
// failed module initialization.
const ModuleInitErr = moduleInitErr

// ClassInitErr is the failure message of tests skipped due to a failed
// group initialization or construction.
const ClassInitErr = classInitErr

// InexplicableErr is the failure message of a panic caught at a
// group's boundary.
const InexplicableErr = inexplicableErr

// WrongPanicErr default message for an ExpectPanic or ExpectError
// assertion recovering a value of the wrong type.
const WrongPanicErr = wrongPanicErr

// NoPanicErr default message for an ExpectPanic or ExpectError
// assertion which recovered nothing.
const NoPanicErr = noPanicErr
