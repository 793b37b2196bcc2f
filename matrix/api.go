// SPDX-License-Identifier: MIT

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Every homogeneous transform starts from it.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
