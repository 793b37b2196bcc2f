// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/arm"
)

// overviewEntry is one row of the usage overview.
type overviewEntry struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Example string `json:"example"`
}

func overview() []overviewEntry {
	links := arm.FormatLinks(arm.Default().Links())

	return []overviewEntry{
		{
			Name:    "Forward Kin Calc",
			Usage:   "armkin fk --links <l1>_<min>_<max>/.../<l5>_<min>_<max> --theta <theta1>,<theta2>,<theta3>,<theta4>",
			Example: "armkin fk --links " + links + " --theta 0,90,0,0",
		},
		{
			Name:    "Inverse Kin Calc",
			Usage:   "armkin ik --links <l1>_<min>_<max>/.../<l5>_<min>_<max> --target <x>,<y>,<z>,<alpha>",
			Example: "armkin ik --links " + links + " --target 0,0,472,90",
		},
		{
			Name:    "DH Table",
			Usage:   "armkin dh --links <l1>_<min>_<max>/.../<l5>_<min>_<max> --theta <theta1>,<theta2>,<theta3>,<theta4>",
			Example: "armkin dh --links " + links + " --theta 0,90,0,0",
		},
	}
}

func (a *app) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "List the calculations with worked examples and the config layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, overview())
			}
			for _, e := range overview() {
				fmt.Fprintf(w, "%s\n  %s\n  e.g. %s\n", e.Name, e.Usage, e.Example)
			}
			fmt.Fprintf(w, "\nConfig file (--config), overridable by ARMKIN_LINKS_LINK<n>_<FIELD>:\n%s", defaultConfigYAML)

			return nil
		},
	}
}
