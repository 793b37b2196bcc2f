// SPDX-License-Identifier: MIT

// Package matrix - homogeneous (rigid-body) transforms.
//
// Layout of a 4×4 homogeneous transform:
//
//	[ R00 R01 R02 px ]
//	[ R10 R11 R12 py ]
//	[ R20 R21 R22 pz ]
//	[ 0   0   0   1  ]
//
// Composition is plain matrix multiplication; the translation column of the
// product is the origin of the last frame expressed in the first.

package matrix

// HomogeneousSize is the side of a 3-D homogeneous transform.
const HomogeneousSize = 4

const (
	opHomogeneous = "Homogeneous"
	opTranslation = "Translation"
	opRotation    = "Rotation"
)

// NewHomogeneous assembles a 4×4 transform from a rotation block and a
// translation vector. Values are copied as given; R is not orthonormalized.
//
// Errors:
//   - ErrNaNInf only when WithValidateNaNInf is supplied and an input is non-finite.
func NewHomogeneous(R [3][3]float64, p [3]float64, opts ...Option) (*Dense, error) {
	T, err := NewIdentity(HomogeneousSize, opts...)
	if err != nil {
		return nil, matrixErrorf(opHomogeneous, err)
	}
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if err = T.Set(i, j, R[i][j]); err != nil {
				return nil, matrixErrorf(opHomogeneous, err)
			}
		}
		if err = T.Set(i, 3, p[i]); err != nil {
			return nil, matrixErrorf(opHomogeneous, err)
		}
	}

	return T, nil
}

// Translation returns the translation column (px, py, pz) of a homogeneous transform.
//
// Errors:
//   - ErrNilMatrix, ErrNotHomogeneous.
func Translation(m Matrix) ([3]float64, error) {
	var p [3]float64
	if err := ValidateHomogeneous(m); err != nil {
		return p, matrixErrorf(opTranslation, err)
	}
	for i := 0; i < 3; i++ {
		p[i], _ = m.At(i, 3) // in range after validation
	}

	return p, nil
}

// Rotation returns the upper-left 3×3 rotation block of a homogeneous transform.
//
// Errors:
//   - ErrNilMatrix, ErrNotHomogeneous.
func Rotation(m Matrix) ([3][3]float64, error) {
	var R [3][3]float64
	if err := ValidateHomogeneous(m); err != nil {
		return R, matrixErrorf(opRotation, err)
	}
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			R[i][j], _ = m.At(i, j)
		}
	}

	return R, nil
}
