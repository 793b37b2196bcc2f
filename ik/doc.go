// Package ik solves inverse kinematics for the 5-segment arm of package arm
// by the closed-form geometric method: a target position and approach angle
// in, two candidate joint configurations ("elbow down" and "elbow up") out.
//
// Algorithm Outline:
//  1. Base rotation θ0 from the XY projection of the target.
//  2. The wrist ("L") and effector ("H") dimensions are folded into one
//     segment of length c = √(L²+H²) at angle β = atan(H/L); subtracting it
//     from the target along the approach angle gives the end of the second
//     link (r2, z2) in the vertical ZR plane.
//  3. The two-link problem in ZR is solved with the law of cosines,
//     producing the shoulder/elbow pair for both elbow branches.
//  4. The wrist angle closes the chain: θ3 = α − β', where β' is the pitch
//     of the second link.
//
// Each configuration is then gated against the active joint limits: a
// configuration outside the limits is replaced by zeros and flagged with a
// warning status. The two configurations are gated independently.
//
// The base angle uses atan(y/x) without quadrant correction, so targets with
// x < 0 share θ0 with their mirror image through the origin. This is kept for
// compatibility with existing callers.
//
// Failures never panic. Solve always returns a Solution whose Status and
// per-configuration statuses describe the outcome; the error return carries
// ErrSomethingWrong or ErrIncorrectData for errors.Is.
package ik
