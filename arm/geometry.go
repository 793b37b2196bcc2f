// SPDX-License-Identifier: MIT

package arm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumLinks is the fixed number of segments in the chain.
const NumLinks = 5

// Link is one chain segment: its length (arbitrary unit, e.g. mm) and the
// allowed joint angle range in degrees.
type Link struct {
	Length float64
	Min    int
	Max    int
}

// Geometry is a validated, immutable set of five links.
// Copying a Geometry is cheap and safe; nothing mutates it after New.
type Geometry struct {
	links  [NumLinks]Link
	valid  bool
	status string
	err    error
}

// New validates links and returns the resulting Geometry.
//
// Implementation:
//   - Stage 1: every length must be finite and integral, else StatusNonInteger.
//   - Stage 2: every length must be ≥ 0, else StatusNegative.
//   - Stage 3: on failure all lengths collapse to NaN (ranges are kept).
//
// Behavior highlights:
//   - Never returns an error; Valid/Status/Err describe the outcome.
//   - The status line is written to the package logger.
func New(links [NumLinks]Link) Geometry {
	g := Geometry{links: links, valid: true, status: StatusOK}

	for i, l := range links {
		if math.IsNaN(l.Length) || math.IsInf(l.Length, 0) || l.Length != math.Trunc(l.Length) {
			g.invalidate(StatusNonInteger, fmt.Errorf("link%d=%v: %w", i+1, l.Length, ErrNonInteger))
			break
		}
	}
	if g.valid {
		for i, l := range links {
			if l.Length < 0 {
				g.invalidate(StatusNegative, fmt.Errorf("link%d=%v: %w", i+1, l.Length, ErrNegative))
				break
			}
		}
	}
	logger.Print(g.status)

	return g
}

// invalidate records the failure and replaces every length with NaN.
func (g *Geometry) invalidate(status string, err error) {
	g.valid = false
	g.status = status
	g.err = err
	for i := range g.links {
		g.links[i].Length = math.NaN()
	}
}

// FromLengths builds a Geometry from bare lengths with zero joint ranges.
func FromLengths(l1, l2, l3, l4, l5 float64) Geometry {
	return New([NumLinks]Link{{Length: l1}, {Length: l2}, {Length: l3}, {Length: l4}, {Length: l5}})
}

// Default returns the reference arm: 118/150/150/54/0 with the declared
// joint ranges on the first four links.
func Default() Geometry {
	return New([NumLinks]Link{
		{Length: 118, Min: -80, Max: 80},
		{Length: 150, Min: 5, Max: 175},
		{Length: 150, Min: -115, Max: 55},
		{Length: 54, Min: -85, Max: 85},
		{Length: 0, Min: 0, Max: 0},
	})
}

// Valid reports whether every length passed validation.
func (g Geometry) Valid() bool { return g.valid }

// Status returns the validation status line.
func (g Geometry) Status() string { return g.status }

// Err returns nil for valid geometry, otherwise ErrNonInteger or ErrNegative
// wrapped with the offending link.
func (g Geometry) Err() error { return g.err }

// Link returns link n (1-based). Out-of-range n yields a Link with NaN length.
func (g Geometry) Link(n int) Link {
	if n < 1 || n > NumLinks {
		return Link{Length: math.NaN()}
	}

	return g.links[n-1]
}

// Length returns the length of link n (1-based); NaN when undefined.
func (g Geometry) Length(n int) float64 { return g.Link(n).Length }

// Lengths returns all five lengths in chain order.
func (g Geometry) Lengths() [NumLinks]float64 {
	var out [NumLinks]float64
	for i, l := range g.links {
		out[i] = l.Length
	}

	return out
}

// Links returns a copy of the five links.
func (g Geometry) Links() [NumLinks]Link { return g.links }

// Ranges returns the joint range of every link.
func (g Geometry) Ranges() [NumLinks]Range {
	var out [NumLinks]Range
	for i, l := range g.links {
		out[i] = Range{Min: float64(l.Min), Max: float64(l.Max)}
	}

	return out
}

// JointLimits returns the ranges of link1..link4, the four actuated joints.
func (g Geometry) JointLimits() Limits {
	r := g.Ranges()

	return Limits{r[0], r[1], r[2], r[3]}
}

// ParseLinks parses the compact "length_min_max/length_min_max/..." form
// (five segments) used by request paths and the command line.
// Lengths parse as floats so that a fractional length reaches New and is
// reported through the status channel; ranges must be integers.
func ParseLinks(spec string) ([NumLinks]Link, error) {
	var out [NumLinks]Link
	parts := strings.Split(strings.Trim(spec, "/"), "/")
	if len(parts) != NumLinks {
		return out, fmt.Errorf("%q: want %d segments, got %d: %w", spec, NumLinks, len(parts), ErrBadLinkSpec)
	}
	for i, p := range parts {
		fields := strings.Split(p, "_")
		if len(fields) != 3 {
			return out, fmt.Errorf("link%d %q: want length_min_max: %w", i+1, p, ErrBadLinkSpec)
		}
		length, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return out, fmt.Errorf("link%d length %q: %w", i+1, fields[0], ErrBadLinkSpec)
		}
		lo, err := strconv.Atoi(fields[1])
		if err != nil {
			return out, fmt.Errorf("link%d min %q: %w", i+1, fields[1], ErrBadLinkSpec)
		}
		hi, err := strconv.Atoi(fields[2])
		if err != nil {
			return out, fmt.Errorf("link%d max %q: %w", i+1, fields[2], ErrBadLinkSpec)
		}
		out[i] = Link{Length: length, Min: lo, Max: hi}
	}

	return out, nil
}

// FormatLinks renders links back into the ParseLinks form.
func FormatLinks(links [NumLinks]Link) string {
	parts := make([]string, NumLinks)
	for i, l := range links {
		parts[i] = fmt.Sprintf("%s_%d_%d", strconv.FormatFloat(l.Length, 'f', -1, 64), l.Min, l.Max)
	}

	return strings.Join(parts, "/")
}
