// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, chained products and approximate equality. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap failures via matrixErrorf.
//   - *Dense operands unlock flat-slice fast paths; other Matrix
//     implementations go through At/Set with the same loop order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - A zero A[i,k] is skipped, so 0·NaN contributes 0 instead of NaN. The
//     homogeneous bottom row [0 0 0 1] therefore stays exact even when a
//     translation column carries NaN.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			res.validateNaNInf = da.validateNaNInf
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MulChain folds Mul left to right: ((M0 × M1) × M2) × ... .
// A single operand is returned as a clone; an empty chain is ErrInvalidDimensions.
func MulChain(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// NaN never compares close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN-safe negation
				return false, nil
			}
		}
	}

	return true, nil
}
