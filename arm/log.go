// SPDX-License-Identifier: MIT

package arm

import (
	"io"
	"log"
)

// logger receives informational validation status lines. Silent by default.
var logger = log.New(io.Discard, "", 0)

// SetLogger routes validation status lines to l; nil restores the silent default.
// Call it during start-up, before geometries are built concurrently.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
