// SPDX-License-Identifier: MIT

package ik

import (
	"log"

	"github.com/katalvlaran/armkin/arm"
)

// Option configures a Solver.
type Option func(*Solver)

// WithLimits gates configurations against l instead of arm.DeclaredLimits.
func WithLimits(l arm.Limits) Option {
	return func(s *Solver) { s.limits = l }
}

// WithGeometryLimits gates against the ranges of link1..link4 of the
// solver's own geometry.
func WithGeometryLimits() Option {
	return func(s *Solver) { s.limits = s.geom.JointLimits() }
}

// WithLogger routes the status and trailer lines to l. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}
