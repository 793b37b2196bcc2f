// SPDX-License-Identifier: MIT

package ik

import "errors"

// Status lines carried by Solution and Config.
const (
	StatusOK             = "Calculations ended successfully"
	StatusSomethingWrong = "Error: Something went wrong"
	StatusIncorrectData  = "Error: The entered data is incorrect"
	StatusFinished       = "Inverse kinematics calculations ended"

	StatusConfig1OK        = "Config_1: Success"
	StatusConfig1NoResults = "Warning: Config_1: No results"
	StatusConfig2OK        = "Config_2: Success"
	StatusConfig2NoResults = "Warning: Config_2: No results"
)

var (
	// ErrSomethingWrong marks an unreachable target: an acos/asin argument
	// outside [-1, 1] or an undecidable branch.
	ErrSomethingWrong = errors.New("ik: target not reachable")

	// ErrIncorrectData marks input the method cannot work with: a zero
	// divisor, undefined geometry or a non-finite intermediate.
	ErrIncorrectData = errors.New("ik: incorrect data")

	// ErrBadTarget is returned by ParseTarget for malformed input.
	ErrBadTarget = errors.New("ik: malformed target")
)
