// SPDX-License-Identifier: MIT

package ik

// Test bridge: exposes unexported helpers to package ik_test only.

// Round2TestOnly passes through to round2.
func Round2TestOnly(v float64) float64 { return round2(v) }

// GateTestOnly gates raw as configuration 1 with the solver's limits.
func (s *Solver) GateTestOnly(raw [4]float64) Config {
	return s.gate(raw, StatusConfig1OK, StatusConfig1NoResults)
}
