// Package matrix provides the dense linear-algebra primitives used by the
// kinematic solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels: Mul and MulChain with deterministic loop orders, AllClose.
//   - Homogeneous transforms: 4×4 rigid-body matrices built from a rotation
//     block and a translation column, plus accessors to read them back.
//   - Validators that return package sentinels (match with errors.Is).
//
// Numeric policy:
//
//	Matrices accept NaN/±Inf by default. Kinematic chains rely on this:
//	an undefined link length is represented as NaN and must flow through
//	the product so the caller can detect it at the end. Use
//	WithValidateNaNInf() to get a strictly finite matrix.
//
// Quick example (planar rotation followed by a translation):
//
//	R := [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
//	T, _ := matrix.NewHomogeneous(R, [3]float64{10, 0, 0})
//	P, _ := matrix.Mul(T, T)
//	p, _ := matrix.Translation(P) // [10 10 0]
package matrix
