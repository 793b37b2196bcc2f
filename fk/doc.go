// Package fk computes forward kinematics of the 5-segment arm described by
// package arm: joint angles in, link-end positions and end-effector pitch out.
//
// Algorithm Outline:
//  1. BuildDH turns four joint angles (degrees) and the link lengths into the
//     5-row Denavit–Hartenberg table (θ, d, a, α) shown below.
//  2. SolveTable composes T = T0·T1·…·Tn with the standard DH transform and
//     records the translation of every partial product after T0, rounded to
//     whole units (ties to even).
//  3. The end-effector pitch is asin(Δz / link4) where Δz is the height
//     difference between the last position and the third-from-last one.
//
// DH table:
//
//	row0  (θ1,   link1, 0,     +90°)   base rotation, column height
//	row1  (θ2,   0,     link2, 0)      first link
//	row2  (θ3,   0,     link3, 0)      second link
//	row3  (θ4,   0,     link4, 0)      wrist, "L" dimension
//	row4  (−90°, 0,     link5, 0)      effector, "H" dimension
//
// Errors are reported twice: every Pose carries a human-readable Status and
// the error return carries a sentinel for errors.Is. No call panics; failures
// produce a zero Pose so callers can always serialize the result.
//
// Complexity: O(rows) 4×4 products; a handful of trig evaluations per row.
package fk
