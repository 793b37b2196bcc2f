// SPDX-License-Identifier: MIT

package ik

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTarget parses "x,y,z,alpha" (integers, spaces allowed).
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Target{}, fmt.Errorf("%q: want x,y,z,alpha: %w", s, ErrBadTarget)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Target{}, fmt.Errorf("%q field %d: %w", s, i+1, ErrBadTarget)
		}
		v[i] = n
	}

	return Target{X: v[0], Y: v[1], Z: v[2], Alpha: v[3]}, nil
}

// String renders t in the ParseTarget form.
func (t Target) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.X, t.Y, t.Z, t.Alpha)
}
