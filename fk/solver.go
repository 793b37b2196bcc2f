// SPDX-License-Identifier: MIT

package fk

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/matrix"
)

// Solver computes forward kinematics for one arm geometry.
// A Solver holds no per-call state; it is safe for concurrent use.
type Solver struct {
	geom   arm.Geometry
	logger *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger routes status lines to l. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Solver bound to g. Invalid geometry is accepted; every
// solve then reports StatusGeometryUndefined.
func New(g arm.Geometry, opts ...Option) *Solver {
	s := &Solver{geom: g, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Geometry returns the geometry the solver was built with.
func (s *Solver) Geometry() arm.Geometry { return s.geom }

// Solve builds the DH table for th and composes it.
//
// Behavior highlights:
//   - Rejected angles: orientation 0, Rows-1 zero positions, StatusThetasNotFloat.
//   - Undefined geometry: orientation 0, one zero position, StatusGeometryUndefined.
//     The table is not composed, so the status names the geometry rather
//     than the zero wrist length a zero table would hit.
//   - Otherwise the result of SolveTable.
func (s *Solver) Solve(th Thetas) (Pose, error) {
	table, status, err := s.BuildDH(th)
	switch {
	case errors.Is(err, ErrThetasNotFloat):
		s.logger.Print(status)
		return rejectedPose(status), err
	case err != nil:
		s.logger.Print(status)
		return failedPose(status), err
	}

	return s.SolveTable(table)
}

// SolveTable composes a caller-supplied table and logs the outcome.
func (s *Solver) SolveTable(t Table) (Pose, error) {
	p, err := SolveTable(t)
	s.logger.Print(p.Status)

	return p, err
}

// SolveTable composes the homogeneous transforms of t and derives the
// end-effector orientation.
//
// Implementation:
//   - Stage 1: T = T0; for each further row T = T·Ti, recording the rounded
//     translation of T. A NaN anywhere in T or a non-finite translation
//     stops the chain with StatusFailed.
//   - Stage 2: wrist length a = round(t[len-2].A); zero → StatusZeroDivision.
//   - Stage 3: orientation = round(deg(asin((round(Tz) − P[len-3].Z) / a))).
//
// Returns:
//   - Pose with len(t)-1 positions on success; the single-zero failure Pose
//     with StatusZeroDivision or StatusFailed otherwise.
//
// Errors:
//   - ErrZeroDivision, ErrNumeric (wrapping the cause).
//
// Complexity:
//   - Time O(len(t)), Space O(len(t)).
func SolveTable(t Table) (Pose, error) {
	if len(t) < 2 {
		return failedPose(StatusFailed), fmt.Errorf("%d rows: %w", len(t), ErrNumeric)
	}

	var (
		T   matrix.Matrix = Transform(t[0])
		ps                = make([]Point, 0, len(t)-1)
		xyz [3]float64
		err error
	)
	for i := 1; i < len(t); i++ {
		if T, err = matrix.Mul(T, Transform(t[i])); err != nil {
			return failedPose(StatusFailed), fmt.Errorf("row %d: %v: %w", i, err, ErrNumeric)
		}
		if d, ok := T.(*matrix.Dense); ok && d.HasNaN() {
			return failedPose(StatusFailed), fmt.Errorf("row %d: NaN in product: %w", i, ErrNumeric)
		}
		if xyz, err = matrix.Translation(T); err != nil {
			return failedPose(StatusFailed), fmt.Errorf("row %d: %v: %w", i, err, ErrNumeric)
		}
		if !finite(xyz) {
			return failedPose(StatusFailed), fmt.Errorf("row %d: position %v: %w", i, xyz, ErrNumeric)
		}
		ps = append(ps, Point{X: roundHalfEven(xyz[0]), Y: roundHalfEven(xyz[1]), Z: roundHalfEven(xyz[2])})
	}

	wrist := roundHalfEven(t[len(t)-2].A)
	if wrist == 0 {
		return failedPose(StatusZeroDivision), ErrZeroDivision
	}
	if len(ps) < 3 {
		return failedPose(StatusFailed), fmt.Errorf("%d rows, need at least 4: %w", len(t), ErrNumeric)
	}

	dz := roundHalfEven(xyz[2]) - ps[len(ps)-3].Z
	pitch := math.Asin(dz / wrist)
	if math.IsNaN(pitch) {
		return failedPose(StatusFailed), fmt.Errorf("asin(%v/%v): %w", dz, wrist, ErrNumeric)
	}

	return Pose{
		Orientation: int(roundHalfEven(rad2deg(pitch))),
		Positions:   ps,
		Status:      StatusOK,
	}, nil
}

func finite(p [3]float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// roundHalfEven rounds to the nearest integer, ties to even, and folds -0 to 0.
func roundHalfEven(v float64) float64 {
	return math.RoundToEven(v) + 0
}
