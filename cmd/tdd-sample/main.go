// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Tdd-sample is a test binary hosting a few sample test groups; some of
them fail on purpose to show how failures are reported.

Usage:

	tdd-sample [run|list] [flags]

E.g.

	tdd-sample --run 'Account.*' --color
	tdd-sample list --skip Failing
	TDD_STRATEGY=record tdd-sample --metrics tdd.prom

It exits with 0 iff at least one test ran and none failed.
*/
package main

import (
	"os"

	"github.com/slukits/tdd"
	"github.com/slukits/tdd/cli"
)

func main() { os.Exit(cli.Main(tdd.Default)) }
