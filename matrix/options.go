// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Only the numeric policy is configurable. Kinematic chains keep the default
// (NaN/Inf allowed) so undefined link lengths propagate; strict callers opt in
// with WithValidateNaNInf.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf makes Set/Apply reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions applies user options over defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
