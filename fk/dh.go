// SPDX-License-Identifier: MIT

package fk

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armkin/matrix"
)

// Fixed angles of the chain, radians.
var (
	baseTwist      = deg2rad(90)  // row0 alpha
	effectorOffset = deg2rad(-90) // row4 theta
)

// BuildDH builds the 5-row DH table for th using the solver's link lengths.
//
// Implementation:
//   - Stage 1: reject non-finite angles → zero table, StatusThetasNotFloat.
//   - Stage 2: convert to radians and lay out the rows (see package doc).
//   - Stage 3: geometry that failed validation (including the zero
//     Geometry) or a NaN entry keeps the computed table but reports
//     StatusGeometryUndefined.
//
// Returns:
//   - Table, status line, and nil or ErrThetasNotFloat / ErrGeometryUndefined.
func (s *Solver) BuildDH(th Thetas) (Table, string, error) {
	for _, v := range th {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return zeroTable(), StatusThetasNotFloat, ErrThetasNotFloat
		}
	}

	l := s.geom.Lengths()
	t := Table{
		{Theta: deg2rad(th[0]), D: l[0], A: 0, Alpha: baseTwist},
		{Theta: deg2rad(th[1]), D: 0, A: l[1], Alpha: 0},
		{Theta: deg2rad(th[2]), D: 0, A: l[2], Alpha: 0},
		{Theta: deg2rad(th[3]), D: 0, A: l[3], Alpha: 0},
		{Theta: effectorOffset, D: 0, A: l[4], Alpha: 0},
	}
	if !s.geom.Valid() || t.hasNaN() {
		return t, StatusGeometryUndefined, ErrGeometryUndefined
	}

	return t, StatusTableOK, nil
}

// Transform returns the standard DH homogeneous transform of r:
//
//	[cosθ  −sinθ·cosα   sinθ·sinα  a·cosθ]
//	[sinθ   cosθ·cosα  −cosθ·sinα  a·sinθ]
//	[0      sinα        cosα       d     ]
//	[0      0           0          1     ]
func Transform(r Row) *matrix.Dense {
	st, ct := math.Sincos(r.Theta)
	sa, ca := math.Sincos(r.Alpha)
	R := [3][3]float64{
		{ct, -st * ca, st * sa},
		{st, ct * ca, -ct * sa},
		{0, sa, ca},
	}
	p := [3]float64{r.A * ct, r.A * st, r.D}
	T, _ := matrix.NewHomogeneous(R, p) // default policy accepts NaN; no other failure is possible

	return T
}

// Matrix returns the table as a len(t)×4 matrix (θ, d, a, α per row).
func (t Table) Matrix() (*matrix.Dense, error) {
	rows := make([][]float64, len(t))
	for i, r := range t {
		rows[i] = []float64{r.Theta, r.D, r.A, r.Alpha}
	}

	return matrix.NewFromRows(rows)
}

// Frame composes every row of t into the base-to-effector transform
// T0·T1·…·Tn. Undefined entries propagate as NaN; only an empty table fails.
func (t Table) Frame() (*matrix.Dense, error) {
	ms := make([]matrix.Matrix, len(t))
	for i, r := range t {
		ms[i] = Transform(r)
	}
	T, err := matrix.MulChain(ms...)
	if err != nil {
		return nil, fmt.Errorf("frame of %d rows: %v: %w", len(t), err, ErrNumeric)
	}

	return T.(*matrix.Dense), nil
}

// hasNaN reports whether any entry is undefined.
func (t Table) hasNaN() bool {
	for _, r := range t {
		if math.IsNaN(r.Theta) || math.IsNaN(r.D) || math.IsNaN(r.A) || math.IsNaN(r.Alpha) {
			return true
		}
	}

	return false
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func deg2rad(d float64) float64 { return d * degToRad }

func rad2deg(r float64) float64 { return r * radToDeg }
