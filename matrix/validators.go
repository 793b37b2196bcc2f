// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers still match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Content).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHomogeneous checks that m is a 4×4 matrix whose last row is
// exactly [0 0 0 1]. The rotation block is not checked for orthonormality:
// DH products accumulate rounding noise and callers read translation only.
//
// Errors: ErrNilMatrix, ErrNotHomogeneous.
func ValidateHomogeneous(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateHomogeneous", err)
	}
	if m.Rows() != HomogeneousSize || m.Cols() != HomogeneousSize {
		return validatorErrorf("ValidateHomogeneous", ErrNotHomogeneous)
	}
	var j int
	var v, want float64
	for j = 0; j < HomogeneousSize; j++ {
		v, _ = m.At(HomogeneousSize-1, j) // indices are in range after the shape check
		want = 0
		if j == HomogeneousSize-1 {
			want = 1
		}
		if v != want {
			return validatorErrorf("ValidateHomogeneous", ErrNotHomogeneous)
		}
	}

	return nil
}
