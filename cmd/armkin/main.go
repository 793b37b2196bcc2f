// SPDX-License-Identifier: MIT

// Package main provides the armkin CLI: forward and inverse kinematics of a
// 5-segment serial arm from the command line.
//
// Usage:
//
//	armkin fk --theta 0,90,0,0
//	armkin ik --target 0,0,472,90 --json
//	armkin dh --theta 20,80,-60,10
//	armkin overview
//
// Link geometry is taken from --links, then ARMKIN_* environment variables,
// then the --config file, then the reference arm.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
