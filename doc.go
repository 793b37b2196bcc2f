// Package armkin is a small kinematics toolkit for a 5-segment serial arm:
// a rotating base column, three links in a vertical plane and an
// end-effector offset.
//
// 🚀 What is armkin?
//
//	A pure-Go library and CLI that brings together:
//		• Link geometry: lengths and joint ranges, validated once
//		• Matrix primitives: dense products and 4×4 homogeneous transforms
//		• Forward kinematics: DH table → link-end positions + pitch
//		• Inverse kinematics: target pose → two elbow configurations,
//		  gated against joint limits
//
// ✨ Why armkin?
//
//   - Never panics – degenerate input yields a zero result and a status line
//   - Deterministic – results are rounded the same way on every platform
//   - Concurrency-safe – solvers are immutable after construction
//
// Under the hood, everything is organized under four subpackages:
//
//	arm/           Link, Geometry, Limits
//	matrix/        Dense, Mul, NewHomogeneous, Translation
//	fk/            Solver.BuildDH, Solver.Solve, SolveTable
//	ik/            Solver.Solve, Target, Solution
//	cmd/armkin/    the command-line front end
//
// Quick ASCII sketch of the reference arm (118/150/150/54/0) at θ=(0,90,0,0):
//
//	  ● (0,0,472)   wrist
//	  │ 54
//	  ● (0,0,418)
//	  │ 150
//	  ● (0,0,268)
//	  │ 150
//	  ● (0,0,118)   shoulder
//	  │ 118
//	══╧══           base
//
//	go install github.com/katalvlaran/armkin/cmd/armkin@latest
package armkin
