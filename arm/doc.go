// Package arm describes the link geometry of a 5-segment serial arm:
// a base column, three rotating links and an end-effector offset.
//
// 🚀 What is in here?
//
//	Geometry  five links, each a length plus the joint range in degrees.
//	           Validated once at construction and immutable afterwards.
//	Limits    inclusive joint ranges for the four actuated joints, used by
//	           the inverse solver to accept or reject a configuration.
//
// ⚙️ Usage:
//
//	g := arm.New([5]arm.Link{
//	  {Length: 118, Min: -80, Max: 80},   // base column
//	  {Length: 150, Min: 5, Max: 175},    // first link
//	  {Length: 150, Min: -115, Max: 55},  // second link
//	  {Length: 54, Min: -85, Max: 85},    // wrist "L" dimension
//	  {Length: 0},                        // effector "H" dimension
//	})
//	if !g.Valid() {
//	  fmt.Println(g.Status()) // "Links dimensions must be integers", ...
//	}
//
// Validation never fails loudly. A length that is not a non-negative whole
// number marks the geometry invalid and every length becomes NaN, so any
// solver built on it yields a degenerate result with an explanatory status
// instead of an error crossing the call boundary.
package arm
