// SPDX-License-Identifier: MIT

package fk

import "errors"

// Status lines carried by Pose.Status and returned by BuildDH.
const (
	StatusThetasNotFloat    = "Thetas values must be float"
	StatusGeometryUndefined = "Robot configurations not defined correctly"
	StatusTableOK           = "DH table generated correctly"
	StatusOK                = "Forward kinematics calculations ended successfully"
	StatusZeroDivision      = "ZeroDivisionError: Table_dh[-2][-2] must be != 0"
	StatusFailed            = "Sth went wrong"
)

var (
	// ErrThetasNotFloat marks a joint angle that is not a finite float.
	ErrThetasNotFloat = errors.New("fk: thetas values must be float")

	// ErrGeometryUndefined marks a DH table built from invalid link geometry.
	ErrGeometryUndefined = errors.New("fk: robot configuration not defined")

	// ErrZeroDivision marks a wrist length that rounds to zero, which makes
	// the orientation undefined.
	ErrZeroDivision = errors.New("fk: wrist length rounds to zero")

	// ErrNumeric marks any other arithmetic fault: asin out of domain, NaN in
	// the chain, a table too short to derive orientation, a failed product.
	ErrNumeric = errors.New("fk: numeric failure")
)
