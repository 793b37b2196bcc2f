package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/fk"
	"github.com/katalvlaran/armkin/ik"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// runJSON executes args with --json and decodes the payload.
func runJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()
	out, _, err := run(t, append(args, "--json")...)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)

	return m
}

const shortChain = "118_0_0/150_0_0/0_0_0/54_0_0/0_0_0"

func TestFKText(t *testing.T) {
	out, _, err := run(t, "fk", "--theta", "0,90,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "status: "+fk.StatusOK)
	assert.Contains(t, out, "alpha:  90\n")
	assert.Contains(t, out, "p1:     0 0 268\n")
	assert.Contains(t, out, "p4:     0 0 472\n")
}

func TestFKJSON(t *testing.T) {
	m := runJSON(t, "fk", "--theta", "20,80,-60,10")
	assert.Equal(t, fk.StatusOK, m["status_calc"])
	assert.Equal(t, 201.0, m["x"])
	assert.Equal(t, 73.0, m["y"])
	assert.Equal(t, 344.0, m["z"])
	assert.Equal(t, 30.0, m["alpha"])
	assert.Equal(t, 118.0, m["link1"])
	assert.Equal(t, -115.0, m["link3_min"])
	assert.Equal(t, -60.0, m["theta3"])
}

func TestFKLinksFlag(t *testing.T) {
	m := runJSON(t, "fk", "--theta", "0,90,0,0", "--links", shortChain)
	assert.Equal(t, 322.0, m["z"])
	assert.Equal(t, 90.0, m["alpha"])
}

// TestFKInvalidGeometry reports through the status and still succeeds.
func TestFKInvalidGeometry(t *testing.T) {
	m := runJSON(t, "fk", "--theta", "0,90,0,0", "--links", "118.5_0_0/150_0_0/150_0_0/54_0_0/0_0_0")
	assert.Equal(t, fk.StatusGeometryUndefined, m["status_calc"])
	assert.Equal(t, 118.5, m["link1"])
	assert.Equal(t, 0.0, m["z"])
}

func TestFKBadInput(t *testing.T) {
	_, _, err := run(t, "fk", "--theta", "0,x,0,0")
	require.ErrorIs(t, err, fk.ErrThetasNotFloat)

	_, _, err = run(t, "fk", "--theta", "0,90,0,0", "--links", "118_0_0/150_0_0")
	require.ErrorIs(t, err, arm.ErrBadLinkSpec)

	_, _, err = run(t, "fk")
	require.Error(t, err)
}

func TestIKText(t *testing.T) {
	out, _, err := run(t, "ik", "--target", "300,0,118,0")
	require.NoError(t, err)
	assert.Contains(t, out, "status: "+ik.StatusOK)
	assert.Contains(t, out, ik.StatusConfig1NoResults+": 0 0 0 0\n")
	assert.Contains(t, out, ik.StatusConfig2OK+": 0 34.92 -69.83 34.92\n")
}

func TestIKJSON(t *testing.T) {
	m := runJSON(t, "ik", "--target", "0,0,472,90")
	assert.Equal(t, ik.StatusConfig1OK, m["Config1"])
	assert.Equal(t, ik.StatusConfig2OK, m["Config2"])
	assert.Equal(t, 90.0, m["theta2"])
	assert.Equal(t, 90.0, m["theta22"])
	assert.Equal(t, 472.0, m["z"])
}

func TestIKLimitsFlag(t *testing.T) {
	links := "118_-90_90/150_5_175/150_-115_55/54_-85_85/0_0_0"

	m := runJSON(t, "ik", "--target", "0,150,300,0", "--links", links)
	assert.Equal(t, ik.StatusConfig2NoResults, m["Config2"])

	m = runJSON(t, "ik", "--target", "0,150,300,0", "--links", links, "--limits", "geometry")
	assert.Equal(t, ik.StatusConfig2OK, m["Config2"])
	assert.Equal(t, 90.0, m["theta11"])

	_, _, err := run(t, "ik", "--target", "0,150,300,0", "--limits", "loose")
	require.Error(t, err)
}

func TestIKFailureStillExitsCleanly(t *testing.T) {
	m := runJSON(t, "ik", "--target", "1000,0,118,0")
	assert.Equal(t, ik.StatusSomethingWrong, m["status_calc"])
	assert.Equal(t, ik.StatusConfig1NoResults, m["Config1"])

	_, _, err := run(t, "ik", "--target", "1,2,3")
	require.ErrorIs(t, err, ik.ErrBadTarget)
}

func TestDH(t *testing.T) {
	out, _, err := run(t, "dh", "--theta", "20,80,-60,10")
	require.NoError(t, err)
	assert.Contains(t, out, "status: "+fk.StatusTableOK)

	m := runJSON(t, "dh", "--theta", "0,90,0,0")
	rows, ok := m["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, fk.Rows)
	first := rows[0].([]any)
	assert.InDelta(t, 118.0, first[1], 1e-12)
	assert.InDelta(t, 90.0, first[3], 1e-12)
	last := rows[4].([]any)
	assert.InDelta(t, -90.0, last[0], 1e-12)
}

// TestDHFrame appends the composed transform of the upright reference arm.
func TestDHFrame(t *testing.T) {
	out, _, err := run(t, "dh", "--theta", "0,90,0,0", "--frame")
	require.NoError(t, err)
	assert.Contains(t, out, "frame:\n")
	assert.Contains(t, out, ", 472]\n")

	m := runJSON(t, "dh", "--theta", "0,90,0,0", "--frame")
	frame, ok := m["frame"].(map[string]any)
	require.True(t, ok)
	tr := frame["translation"].([]any)
	require.Len(t, tr, 3)
	assert.InDelta(t, 0.0, tr[0], 1e-9)
	assert.InDelta(t, 0.0, tr[1], 1e-9)
	assert.InDelta(t, 472.0, tr[2], 1e-9)
	require.Len(t, frame["rotation"].([]any), 3)

	m = runJSON(t, "dh", "--theta", "0,90,0,0")
	assert.NotContains(t, m, "frame")
}

// TestDHUndefinedGeometry encodes NaN entries as null.
func TestDHUndefinedGeometry(t *testing.T) {
	m := runJSON(t, "dh", "--theta", "0,90,0,0", "--links", "118_0_0/-150_0_0/150_0_0/54_0_0/0_0_0")
	assert.Equal(t, fk.StatusGeometryUndefined, m["status"])
	first := m["rows"].([]any)[0].([]any)
	assert.Nil(t, first[1])

	m = runJSON(t, "dh", "--theta", "0,90,0,0", "--frame", "--links", "118_0_0/-150_0_0/150_0_0/54_0_0/0_0_0")
	tr := m["frame"].(map[string]any)["translation"].([]any)
	assert.Nil(t, tr[2])
}

func TestOverview(t *testing.T) {
	out, _, err := run(t, "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "armkin fk --links 118_-80_80/150_5_175/150_-115_55/54_-85_85/0_0_0 --theta 0,90,0,0")
	assert.Contains(t, out, "link3: {length: 150, min: -115, max: 55}")
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("ARMKIN_LINKS_LINK3_LENGTH", "0")

	m := runJSON(t, "fk", "--theta", "0,90,0,0")
	assert.Equal(t, 322.0, m["z"])
	assert.Equal(t, 0.0, m["link3"])

	t.Setenv("ARMKIN_LINKS_LINK3_LENGTH", "short")
	_, _, err := run(t, "fk", "--theta", "0,90,0,0")
	require.ErrorIs(t, err, arm.ErrBadLinkSpec)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armkin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  link3:\n    length: 0\n"), 0o600))

	m := runJSON(t, "fk", "--theta", "0,90,0,0", "--config", path)
	assert.Equal(t, 322.0, m["z"])
	assert.Equal(t, -115.0, m["link3_min"])

	// Environment wins over the file, the flag wins over both.
	t.Setenv("ARMKIN_LINKS_LINK3_LENGTH", "150")
	m = runJSON(t, "fk", "--theta", "0,90,0,0", "--config", path)
	assert.Equal(t, 472.0, m["z"])

	m = runJSON(t, "fk", "--theta", "0,90,0,0", "--config", path, "--links", shortChain)
	assert.Equal(t, 322.0, m["z"])

	_, _, err := run(t, "fk", "--theta", "0,90,0,0", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestVerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "ik", "--target", "0,0,472,90", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "armkin: "+arm.StatusOK+"\n")
	assert.Contains(t, stderr, "armkin: "+ik.StatusOK+"\n")
	assert.Contains(t, stderr, "armkin: "+ik.StatusFinished+"\n")

	_, stderr, err = run(t, "ik", "--target", "0,0,472,90")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
