// SPDX-License-Identifier: MIT

package arm

// NumJoints is the number of actuated joints checked against limits.
const NumJoints = 4

// Range is an inclusive joint-angle interval in degrees.
type Range struct {
	Min float64
	Max float64
}

// Contains reports Min ≤ v ≤ Max. NaN is never contained.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Limits holds the ranges of the four actuated joints: base rotation,
// shoulder, elbow and wrist.
type Limits [NumJoints]Range

// DeclaredLimits are the mechanical limits of the reference arm.
// The inverse solver gates on these unless told to use a geometry's own ranges.
var DeclaredLimits = Limits{
	{Min: -80, Max: 80},
	{Min: 5, Max: 175},
	{Min: -115, Max: 55},
	{Min: -85, Max: 85},
}

// Check returns the index of the first joint outside its range (or -1) and
// whether all four angles are within limits.
func (l Limits) Check(angles [NumJoints]float64) (int, bool) {
	for i, a := range angles {
		if !l[i].Contains(a) {
			return i, false
		}
	}

	return -1, true
}
