// SPDX-License-Identifier: MIT

package ik

// Target is the requested end-effector pose: position in link units and the
// approach angle Alpha in degrees, measured from the base plane.
type Target struct {
	X     int
	Y     int
	Z     int
	Alpha int
}

// Config is one gated joint configuration.
//   - Angles: θ0..θ3 in degrees rounded to 2 decimals; zeros when !OK.
//   - OK:     all four raw angles are within the active limits.
//   - Status: "Config_N: Success" or "Warning: Config_N: No results".
type Config struct {
	Angles [4]float64
	OK     bool
	Status string
}

// Solution holds both configurations of one solve.
// Raw1 and Raw2 are the unrounded, ungated angles in degrees (zeros on failure).
type Solution struct {
	Theta0  float64
	Raw1    [4]float64
	Raw2    [4]float64
	Config1 Config
	Config2 Config
	Status  string
}

// failedSolution is returned for every solve failure.
func failedSolution(status string) Solution {
	return Solution{
		Config1: Config{Status: StatusConfig1NoResults},
		Config2: Config{Status: StatusConfig2NoResults},
		Status:  status,
	}
}
