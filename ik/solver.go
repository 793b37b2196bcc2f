// SPDX-License-Identifier: MIT

package ik

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"

	"github.com/katalvlaran/armkin/arm"
)

// Solver computes inverse kinematics for one arm geometry.
// It holds no per-call state and is safe for concurrent use.
type Solver struct {
	geom   arm.Geometry
	limits arm.Limits
	logger *log.Logger
}

// New returns a Solver bound to g, gating on arm.DeclaredLimits unless an
// option says otherwise. Options apply in order.
func New(g arm.Geometry, opts ...Option) *Solver {
	s := &Solver{geom: g, limits: arm.DeclaredLimits, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Geometry returns the geometry the solver was built with.
func (s *Solver) Geometry() arm.Geometry { return s.geom }

// Limits returns the active gating limits.
func (s *Solver) Limits() arm.Limits { return s.limits }

// Solve computes both configurations for t and gates them.
//
// Returns:
//   - Solution with Status StatusOK and gated Config1/Config2 on success.
//   - failure Solution (zeros, both "No results") with StatusSomethingWrong
//     or StatusIncorrectData otherwise.
//
// Errors:
//   - ErrSomethingWrong, ErrIncorrectData (wrapping the failing step).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Solver) Solve(t Target) (Solution, error) {
	defer s.logger.Print(StatusFinished)

	theta0, raw1, raw2, err := s.solve(t)
	if err != nil {
		status := StatusIncorrectData
		if errors.Is(err, ErrSomethingWrong) {
			status = StatusSomethingWrong
		}
		s.logger.Print(status)

		return failedSolution(status), err
	}
	s.logger.Print(StatusOK)

	return Solution{
		Theta0:  theta0,
		Raw1:    raw1,
		Raw2:    raw2,
		Config1: s.gate(raw1, StatusConfig1OK, StatusConfig1NoResults),
		Config2: s.gate(raw2, StatusConfig2OK, StatusConfig2NoResults),
		Status:  StatusOK,
	}, nil
}

// solve runs the geometric method; angles are returned in degrees.
func (s *Solver) solve(t Target) (theta0 float64, c1, c2 [4]float64, err error) {
	if !s.geom.Valid() {
		return 0, c1, c2, fmt.Errorf("geometry: %v: %w", s.geom.Err(), ErrIncorrectData)
	}
	l := s.geom.Lengths()
	base, l2, l3, wl, wh := l[0], l[1], l[2], l[3], l[4]
	px, py, pz := float64(t.X), float64(t.Y), float64(t.Z)
	alpha := float64(t.Alpha) * degToRad

	// XY plane.
	var t0 float64
	switch {
	case px != 0 && py != 0:
		t0 = math.Atan(py / px)
	case py > 0:
		t0 = math.Pi / 2
	case py < 0:
		t0 = -math.Pi / 2
	}
	r := math.Sqrt(px*px + py*py)

	// Effector folded into one segment.
	if wl == 0 {
		return 0, c1, c2, fmt.Errorf("wrist length is zero: %w", ErrIncorrectData)
	}
	c := math.Sqrt(wl*wl + wh*wh)
	beta := math.Atan(wh / wl)
	z2 := pz - base - c*math.Sin(alpha-beta)
	r2 := r - c*math.Cos(alpha-beta)

	// ZR plane: two-link law of cosines.
	delta := r2*r2 + z2*z2
	var elbow float64
	if l3 != 0 {
		if l2 == 0 {
			return 0, c1, c2, fmt.Errorf("first link length is zero: %w", ErrIncorrectData)
		}
		if elbow, err = acos((delta-l2*l2-l3*l3)/(2*l2*l3), "elbow"); err != nil {
			return 0, c1, c2, err
		}
	}
	if delta == 0 || l2 == 0 {
		return 0, c1, c2, fmt.Errorf("shoulder triangle is degenerate: %w", ErrIncorrectData)
	}
	gamma, err := acos((delta+l2*l2-l3*l3)/(2*math.Sqrt(delta)*l2), "shoulder")
	if err != nil {
		return 0, c1, c2, err
	}

	var reach float64
	switch q := z2 / r2; {
	case r2 == 0:
		reach = math.Pi / 2
	case q >= 0:
		reach = math.Atan(q)
	case q < 0:
		reach = math.Pi + math.Atan(q)
	default:
		return 0, c1, c2, fmt.Errorf("z2/r2 = %v: %w", q, ErrSomethingWrong)
	}
	s1, s2 := reach-gamma, reach+gamma

	// Pitch of the second link closes the chain.
	p1, p2 := s1, s2
	if l3 != 0 {
		if p1, err = asin((z2-l2*math.Sin(s1))/l3, "wrist"); err != nil {
			return 0, c1, c2, err
		}
		if p2, err = asin((z2-l2*math.Sin(s2))/l3, "wrist"); err != nil {
			return 0, c1, c2, err
		}
	}

	theta0 = t0 * radToDeg
	c1 = [4]float64{theta0, s1 * radToDeg, elbow * radToDeg, (alpha - p1) * radToDeg}
	c2 = [4]float64{theta0, s2 * radToDeg, -elbow * radToDeg, (alpha - p2) * radToDeg}
	for i := range c1 {
		if !finite(c1[i]) || !finite(c2[i]) {
			return 0, [4]float64{}, [4]float64{}, fmt.Errorf("angle %d not finite: %w", i, ErrIncorrectData)
		}
	}

	return theta0, c1, c2, nil
}

// gate keeps raw when every angle is within the active limits.
func (s *Solver) gate(raw [4]float64, okStatus, failStatus string) Config {
	if _, ok := s.limits.Check(raw); !ok {
		return Config{Status: failStatus}
	}
	var out [4]float64
	for i, v := range raw {
		out[i] = round2(v)
	}

	return Config{Angles: out, OK: true, Status: okStatus}
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// acos rejects arguments outside [-1, 1] instead of returning NaN.
func acos(x float64, step string) (float64, error) {
	if !(x >= -1 && x <= 1) {
		return 0, fmt.Errorf("%s: acos(%v): %w", step, x, ErrSomethingWrong)
	}

	return math.Acos(x), nil
}

// asin rejects arguments outside [-1, 1] instead of returning NaN.
func asin(x float64, step string) (float64, error) {
	if !(x >= -1 && x <= 1) {
		return 0, fmt.Errorf("%s: asin(%v): %w", step, x, ErrSomethingWrong)
	}

	return math.Asin(x), nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// round2 rounds the exact binary value of v to 2 decimals, ties to even
// (2.675 → 2.67, 0.125 → 0.12), and folds -0 to 0.
func round2(v float64) float64 {
	out, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)

	return out + 0
}
