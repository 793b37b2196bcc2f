package arm_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/armkin/arm"
)

// TestRangeContainsInclusive checks both bounds are accepted.
func TestRangeContainsInclusive(t *testing.T) {
	r := arm.Range{Min: 5, Max: 175}

	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(175))
	assert.False(t, r.Contains(4))
	assert.False(t, r.Contains(175.01))
	assert.False(t, r.Contains(math.NaN()))
}

// TestLimitsCheck reports the first violating joint.
func TestLimitsCheck(t *testing.T) {
	idx, ok := arm.DeclaredLimits.Check([4]float64{0, 90, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, -1, idx)

	idx, ok = arm.DeclaredLimits.Check([4]float64{0, 4, 60, 0})
	assert.False(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = arm.DeclaredLimits.Check([4]float64{0, 90, 0, -85.5})
	assert.False(t, ok)
	assert.Equal(t, 3, idx)
}

// ExampleLimits_Check gates a joint vector against the declared limits.
func ExampleLimits_Check() {
	_, ok := arm.DeclaredLimits.Check([4]float64{0, 90, -90, 0})
	idx, bad := arm.DeclaredLimits.Check([4]float64{0, 0, 90, -90})
	fmt.Println(ok, idx, bad)
	// Output:
	// true 1 false
}
