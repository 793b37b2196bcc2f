package ik_test

import (
	"bytes"
	"io"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/fk"
	"github.com/katalvlaran/armkin/ik"
)

// approx compares float fields to within 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

// TestSolveReferenceArm covers both elbow branches on the reference arm.
func TestSolveReferenceArm(t *testing.T) {
	cases := []struct {
		name   string
		target ik.Target
		raw1   [4]float64
		c1     ik.Config
		c2     ik.Config
	}{
		{
			name:   "upright",
			target: ik.Target{X: 0, Y: 0, Z: 472, Alpha: 90},
			raw1:   [4]float64{0, 90, 0, 0},
			c1:     ik.Config{Angles: [4]float64{0, 90, 0, 0}, OK: true, Status: ik.StatusConfig1OK},
			c2:     ik.Config{Angles: [4]float64{0, 90, 0, 0}, OK: true, Status: ik.StatusConfig2OK},
		},
		{
			name:   "folded elbow",
			target: ik.Target{X: 204, Y: 0, Z: 268, Alpha: 0},
			raw1:   [4]float64{0, 0, 90, -90},
			c1:     ik.Config{Status: ik.StatusConfig1NoResults},
			c2:     ik.Config{Angles: [4]float64{0, 90, -90, 0}, OK: true, Status: ik.StatusConfig2OK},
		},
		{
			name:   "low reach",
			target: ik.Target{X: 300, Y: 0, Z: 118, Alpha: 0},
			raw1:   [4]float64{0, -34.91520624744419, 69.83041249488838, -34.91520624744419},
			c1:     ik.Config{Status: ik.StatusConfig1NoResults},
			c2:     ik.Config{Angles: [4]float64{0, 34.92, -69.83, 34.92}, OK: true, Status: ik.StatusConfig2OK},
		},
		{
			name:   "diagonal",
			target: ik.Target{X: 100, Y: 100, Z: 300, Alpha: 0},
			raw1:   [4]float64{45, 16.644172079798338, 95.3982509249267, -67.95757699527498},
			c1:     ik.Config{Status: ik.StatusConfig1NoResults},
			c2:     ik.Config{Angles: [4]float64{45, 112.04, -95.4, -16.64}, OK: true, Status: ik.StatusConfig2OK},
		},
		{
			name:   "pitched down",
			target: ik.Target{X: 250, Y: 0, Z: 200, Alpha: -30},
			raw1:   [4]float64{0, -11.5540829529827, 79.51979168364551, -97.96570873066281},
			c1:     ik.Config{Status: ik.StatusConfig1NoResults},
			c2:     ik.Config{Angles: [4]float64{0, 67.97, -79.52, -18.45}, OK: true, Status: ik.StatusConfig2OK},
		},
	}

	s := ik.New(arm.Default())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := s.Solve(tc.target)
			require.NoError(t, err)
			assert.Equal(t, ik.StatusOK, sol.Status)
			if diff := cmp.Diff(tc.raw1, sol.Raw1, approx); diff != "" {
				t.Errorf("raw config 1 (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.c1, sol.Config1, approx); diff != "" {
				t.Errorf("config 1 (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.c2, sol.Config2, approx); diff != "" {
				t.Errorf("config 2 (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSolveBaseQuadrants checks the simplified base-angle rule, including
// the mirrored quadrants it does not tell apart.
func TestSolveBaseQuadrants(t *testing.T) {
	s := ik.New(arm.Default())
	cases := []struct {
		target ik.Target
		theta0 float64
	}{
		{ik.Target{X: 100, Y: 100, Z: 300}, 45},
		{ik.Target{X: -100, Y: 100, Z: 300}, -45},
		{ik.Target{X: 100, Y: -100, Z: 300}, -45},
		{ik.Target{X: 0, Y: 150, Z: 300}, 90},
		{ik.Target{X: 0, Y: -150, Z: 300}, -90},
		{ik.Target{X: 300, Y: 0, Z: 118}, 0},
	}
	for _, tc := range cases {
		sol, err := s.Solve(tc.target)
		require.NoError(t, err, "%v", tc.target)
		assert.InDelta(t, tc.theta0, sol.Theta0, 1e-9, "%v", tc.target)
		assert.InDelta(t, tc.theta0, sol.Raw2[0], 1e-9, "%v", tc.target)
	}
}

// TestSolveBaseOutOfRange rejects both configurations when θ0 = ±90.
func TestSolveBaseOutOfRange(t *testing.T) {
	sol, err := ik.New(arm.Default()).Solve(ik.Target{X: 0, Y: 150, Z: 300})
	require.NoError(t, err)
	assert.InDelta(t, 108.88398086759851, sol.Raw2[1], 1e-9)
	assert.False(t, sol.Config1.OK)
	assert.False(t, sol.Config2.OK)
	assert.Equal(t, ik.StatusConfig2NoResults, sol.Config2.Status)
	assert.Equal(t, [4]float64{}, sol.Config2.Angles)
}

// TestSolveGeometryLimits gates on the geometry's own ranges.
func TestSolveGeometryLimits(t *testing.T) {
	links, err := arm.ParseLinks("118_-90_90/150_5_175/150_-115_55/54_-85_85/0_0_0")
	require.NoError(t, err)
	target := ik.Target{X: 0, Y: 150, Z: 300}

	declared, err := ik.New(arm.New(links)).Solve(target)
	require.NoError(t, err)
	assert.False(t, declared.Config2.OK)

	own, err := ik.New(arm.New(links), ik.WithGeometryLimits()).Solve(target)
	require.NoError(t, err)
	assert.True(t, own.Config2.OK)
	assert.Equal(t, [4]float64{90, 108.88, -93.39, -15.5}, own.Config2.Angles)
}

// TestSolveWithLimits widens the gate so the elbow-down branch passes.
func TestSolveWithLimits(t *testing.T) {
	wide := arm.Limits{{Min: -180, Max: 180}, {Min: -180, Max: 180}, {Min: -180, Max: 180}, {Min: -180, Max: 180}}
	s := ik.New(arm.Default(), ik.WithLimits(wide))
	assert.Equal(t, wide, s.Limits())

	sol, err := s.Solve(ik.Target{X: 300, Y: 0, Z: 118})
	require.NoError(t, err)
	assert.True(t, sol.Config1.OK)
	assert.Equal(t, [4]float64{0, -34.92, 69.83, -34.92}, sol.Config1.Angles)
}

// TestSolveShortChain drops the second link; the elbow stays at zero.
func TestSolveShortChain(t *testing.T) {
	s := ik.New(arm.FromLengths(118, 150, 0, 54, 0), ik.WithLimits(arm.DeclaredLimits))

	sol, err := s.Solve(ik.Target{X: 0, Y: 0, Z: 322, Alpha: 90})
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0, 90, 0, 0}, sol.Config1.Angles)
	assert.Equal(t, [4]float64{0, 90, 0, 0}, sol.Config2.Angles)

	// Stretched flat: θ1 = 0 lies below the shoulder limit.
	sol, err = s.Solve(ik.Target{X: 204, Y: 0, Z: 118})
	require.NoError(t, err)
	if diff := cmp.Diff([4]float64{}, sol.Raw1, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("raw config 1 (-want +got):\n%s", diff)
	}
	assert.False(t, sol.Config1.OK)
	assert.False(t, sol.Config2.OK)
}

// TestSolveFailures maps each failure to its status and sentinel.
func TestSolveFailures(t *testing.T) {
	cases := []struct {
		name   string
		geom   arm.Geometry
		target ik.Target
		status string
		err    error
	}{
		{"out of reach", arm.Default(), ik.Target{X: 1000, Y: 0, Z: 118}, ik.StatusSomethingWrong, ik.ErrSomethingWrong},
		{"zero wrist", arm.FromLengths(118, 150, 150, 0, 0), ik.Target{X: 0, Y: 0, Z: 472, Alpha: 90}, ik.StatusIncorrectData, ik.ErrIncorrectData},
		{"zero first link", arm.FromLengths(118, 0, 150, 54, 0), ik.Target{X: 100, Y: 0, Z: 300}, ik.StatusIncorrectData, ik.ErrIncorrectData},
		{"target at wrist base", arm.Default(), ik.Target{X: 54, Y: 0, Z: 118}, ik.StatusIncorrectData, ik.ErrIncorrectData},
		{"invalid geometry", arm.FromLengths(118, 150, -1, 54, 0), ik.Target{X: 0, Y: 0, Z: 472, Alpha: 90}, ik.StatusIncorrectData, ik.ErrIncorrectData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := ik.New(tc.geom).Solve(tc.target)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.status, sol.Status)
			assert.Equal(t, ik.Config{Status: ik.StatusConfig1NoResults}, sol.Config1)
			assert.Equal(t, ik.Config{Status: ik.StatusConfig2NoResults}, sol.Config2)
			assert.Equal(t, [4]float64{}, sol.Raw1)
		})
	}
}

// TestSolveRoundTrip feeds forward results back into the inverse solver.
// Positions and pitch come back rounded, so angles agree to within half a
// degree; the elbow sign decides which configuration reproduces the pose.
func TestSolveRoundTrip(t *testing.T) {
	g := arm.Default()
	fwd := fk.New(g)
	inv := ik.New(g)

	cases := []struct {
		th     fk.Thetas
		config int
		tol    float64
	}{
		{fk.Thetas{0, 90, 0, 0}, 2, 0},
		{fk.Thetas{0, 90, -90, 0}, 2, 0},
		{fk.Thetas{0, 60, -30, -30}, 2, 0.5},
		{fk.Thetas{0, 120, -90, 0}, 2, 0.5},
		{fk.Thetas{0, 100, -60, -10}, 2, 0.5},
		{fk.Thetas{0, 130, -110, 10}, 2, 0.5},
		{fk.Thetas{25, 100, -60, -10}, 2, 0.5},
		{fk.Thetas{-60, 60, -30, -30}, 2, 0.5},
		{fk.Thetas{0, 45, 30, -20}, 1, 0.5},
		{fk.Thetas{0, 30, 40, -40}, 1, 0.5},
		{fk.Thetas{30, 45, 30, -20}, 1, 0.5},
		{fk.Thetas{-40, 30, 40, -40}, 1, 0.5},
	}
	for _, tc := range cases {
		p, err := fwd.Solve(tc.th)
		require.NoError(t, err)
		end := p.EndEffector()
		target := ik.Target{X: int(end.X), Y: int(end.Y), Z: int(end.Z), Alpha: p.Orientation}

		sol, err := inv.Solve(target)
		require.NoError(t, err)
		cfg := sol.Config2
		if tc.config == 1 {
			cfg = sol.Config1
		}
		require.True(t, cfg.OK, "%v from %v: %+v", target, tc.th, sol)
		for i := range cfg.Angles {
			assert.InDelta(t, tc.th[i], cfg.Angles[i], tc.tol, "%v joint %d", tc.th, i)
		}
	}
}

// TestSolverConcurrentUse shares one Solver across goroutines; run with -race.
func TestSolverConcurrentUse(t *testing.T) {
	s := ik.New(arm.Default(), ik.WithLogger(log.New(io.Discard, "", 0)))
	targets := []ik.Target{
		{X: 250, Y: 0, Z: 200, Alpha: -30},
		{X: 176, Y: 0, Z: 413, Alpha: 55},
		{X: 129, Y: -224, Z: 323, Alpha: 0},
		{X: 0, Y: 0, Z: 9999, Alpha: 0},
	}
	want := make([]ik.Solution, len(targets))
	for i, tg := range targets {
		want[i], _ = s.Solve(tg)
	}

	const workers = 8
	var wg sync.WaitGroup
	got := make([][]ik.Solution, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for range 50 {
				for _, tg := range targets {
					sol, _ := s.Solve(tg)
					got[w] = append(got[w], sol)
				}
			}
		}(w)
	}
	wg.Wait()

	for w := range got {
		require.Len(t, got[w], 50*len(targets))
		for i, sol := range got[w] {
			if diff := cmp.Diff(want[i%len(targets)], sol, cmpopts.EquateNaNs()); diff != "" {
				t.Fatalf("worker %d result %d (-want +got):\n%s", w, i, diff)
			}
		}
	}
}

// TestGateBoundaries accepts the inclusive edges of every range.
func TestGateBoundaries(t *testing.T) {
	s := ik.New(arm.Default())

	assert.True(t, s.GateTestOnly([4]float64{-80, 5, -115, -85}).OK)
	assert.True(t, s.GateTestOnly([4]float64{80, 175, 55, 85}).OK)
	assert.False(t, s.GateTestOnly([4]float64{0, 4, 0, 0}).OK)
	assert.False(t, s.GateTestOnly([4]float64{0, 90, 55.001, 0}).OK)

	got := s.GateTestOnly([4]float64{0, 5, 0, 0})
	assert.Equal(t, ik.Config{Angles: [4]float64{0, 5, 0, 0}, OK: true, Status: ik.StatusConfig1OK}, got)
}

// TestRound2 follows the exact binary value and folds -0.
func TestRound2(t *testing.T) {
	assert.Equal(t, 34.92, ik.Round2TestOnly(34.91520624744419))
	assert.Equal(t, 2.67, ik.Round2TestOnly(2.675))
	assert.Equal(t, 0.12, ik.Round2TestOnly(0.125))
	assert.Equal(t, -95.4, ik.Round2TestOnly(-95.3982509249267))
	got := ik.Round2TestOnly(-0.001)
	assert.Equal(t, 0.0, got)
	assert.False(t, got < 0 || 1/got < 0)
}

// TestSolverLogs writes the status then the trailer.
func TestSolverLogs(t *testing.T) {
	var buf bytes.Buffer
	s := ik.New(arm.Default(), ik.WithLogger(log.New(&buf, "", 0)))

	_, err := s.Solve(ik.Target{X: 0, Y: 0, Z: 472, Alpha: 90})
	require.NoError(t, err)
	_, err = s.Solve(ik.Target{X: 1000, Y: 0, Z: 118})
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		ik.StatusOK, ik.StatusFinished,
		ik.StatusSomethingWrong, ik.StatusFinished,
	}, lines)
}

// TestParseTarget accepts four integers.
func TestParseTarget(t *testing.T) {
	tg, err := ik.ParseTarget("204, 0, 268, -5")
	require.NoError(t, err)
	assert.Equal(t, ik.Target{X: 204, Y: 0, Z: 268, Alpha: -5}, tg)
	assert.Equal(t, "204,0,268,-5", tg.String())

	for _, in := range []string{"", "1,2,3", "1,2,3,4,5", "1,2,x,4", "1,2,3.5,4"} {
		_, err := ik.ParseTarget(in)
		assert.ErrorIs(t, err, ik.ErrBadTarget, "%q", in)
	}
}
