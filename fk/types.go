// SPDX-License-Identifier: MIT

package fk

// Rows is the number of rows BuildDH produces.
const Rows = 5

// Thetas holds the four joint angles in degrees:
// base rotation, first link, second link, third link.
type Thetas [4]float64

// Row is one Denavit–Hartenberg row. Angles are in radians.
//   - Theta: rotation about the previous z axis.
//   - D:     offset along the previous z axis.
//   - A:     length along the rotated x axis.
//   - Alpha: twist about the new x axis.
type Row struct {
	Theta float64
	D     float64
	A     float64
	Alpha float64
}

// Table is an ordered DH table; T0 is the base frame.
type Table []Row

// Point is a link-end position rounded to whole length units.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pose is the outcome of a forward solve.
//   - Orientation: end-effector pitch relative to the base plane, whole degrees.
//   - Positions:   one point per composed row (len(table)-1 on success).
//   - Status:      human-readable outcome; always set.
type Pose struct {
	Orientation int
	Positions   []Point
	Status      string
}

// EndEffector returns the last recorded position (zero Point for an empty Pose).
func (p Pose) EndEffector() Point {
	if len(p.Positions) == 0 {
		return Point{}
	}

	return p.Positions[len(p.Positions)-1]
}

// zeroTable is returned by BuildDH when the angles are rejected.
func zeroTable() Table { return make(Table, Rows) }

// failedPose is the single-zero-position shape used for numeric failures.
func failedPose(status string) Pose {
	return Pose{Orientation: 0, Positions: []Point{{}}, Status: status}
}

// rejectedPose is the Rows-1 zero-position shape used when the angles are rejected.
func rejectedPose(status string) Pose {
	return Pose{Orientation: 0, Positions: make([]Point, Rows-1), Status: status}
}
