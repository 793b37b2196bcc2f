// SPDX-License-Identifier: MIT

package arm

import "errors"

// Status messages reported by validation. They are part of the public
// contract: callers inspect them instead of relying on errors.
const (
	StatusNonInteger = "Links dimensions must be integers"
	StatusNegative   = "Links dimensions must be equal or greater then 0"
	StatusOK         = "Links dimensions ok"
)

var (
	// ErrNonInteger marks a link length that is NaN, ±Inf or has a fractional part.
	ErrNonInteger = errors.New("arm: link length is not an integer")

	// ErrNegative marks a negative link length.
	ErrNegative = errors.New("arm: link length is negative")

	// ErrBadLinkSpec is returned by ParseLinks for malformed link specs.
	ErrBadLinkSpec = errors.New("arm: malformed link spec")
)
