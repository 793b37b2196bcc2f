// SPDX-License-Identifier: MIT

package fk

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseThetas parses exactly four joint angles in degrees. Each value may be
// surrounded by spaces. A value that is not a finite float yields
// ErrThetasNotFloat; a wrong count is reported the same way.
func ParseThetas(vals ...string) (Thetas, error) {
	var th Thetas
	if len(vals) != len(th) {
		return th, fmt.Errorf("want %d angles, got %d: %w", len(th), len(vals), ErrThetasNotFloat)
	}
	for i, s := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Thetas{}, fmt.Errorf("theta%d %q: %w", i+1, s, ErrThetasNotFloat)
		}
		th[i] = v
	}

	return th, nil
}

// ParseThetaList splits a comma separated list ("0,90,0,0") and parses it
// with ParseThetas.
func ParseThetaList(s string) (Thetas, error) {
	return ParseThetas(strings.Split(s, ",")...)
}
