// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/ik"
)

func (a *app) ikCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "ik",
		Short: "Joint configurations that reach a target pose",
		Example: `  armkin ik --target 0,0,472,90
  armkin ik --target 300,0,118,0 --limits geometry --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := ik.ParseTarget(target)
			if err != nil {
				return err
			}
			sol, _ := ik.New(a.geom, a.ikOptions()...).Solve(t)

			w := cmd.OutOrStdout()
			if a.json {
				c1, c2 := sol.Config1.Angles, sol.Config2.Angles
				return writeJSON(w, ikPayload{
					linksEcho: echoLinks(a.requested),
					X:         t.X,
					Y:         t.Y,
					Z:         t.Z,
					Alpha:     t.Alpha,
					Status:    sol.Status,
					Config1:   sol.Config1.Status,
					Theta1:    c1[0],
					Theta2:    c1[1],
					Theta3:    c1[2],
					Theta4:    c1[3],
					Config2:   sol.Config2.Status,
					Theta11:   c2[0],
					Theta22:   c2[1],
					Theta33:   c2[2],
					Theta44:   c2[3],
				})
			}
			fmt.Fprintf(w, "status: %s\n", sol.Status)
			printConfig(w, sol.Config1)
			printConfig(w, sol.Config2)

			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "target pose: x,y,z,alpha (integers, alpha in degrees)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func printConfig(w io.Writer, c ik.Config) {
	fmt.Fprintf(w, "%s: %g %g %g %g\n", c.Status, c.Angles[0], c.Angles[1], c.Angles[2], c.Angles[3])
}
