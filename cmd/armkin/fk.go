// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/fk"
)

func (a *app) fkCmd() *cobra.Command {
	var theta string
	cmd := &cobra.Command{
		Use:   "fk",
		Short: "Positions and end-effector pitch from joint angles",
		Example: `  armkin fk --theta 0,90,0,0
  armkin fk --theta 20,80,-60,10 --links 118_-80_80/150_5_175/150_-115_55/54_-85_85/0_0_0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th, err := fk.ParseThetaList(theta)
			if err != nil {
				return err
			}
			// Degenerate results carry their status; the error is not a CLI failure.
			p, _ := fk.New(a.geom, fk.WithLogger(a.logger)).Solve(th)

			w := cmd.OutOrStdout()
			if a.json {
				end := p.EndEffector()
				return writeJSON(w, fkPayload{
					linksEcho:  echoLinks(a.requested),
					Theta1:     th[0],
					Theta2:     th[1],
					Theta3:     th[2],
					Theta4:     th[3],
					StatusCalc: p.Status,
					X:          end.X,
					Y:          end.Y,
					Z:          end.Z,
					Alpha:      float64(p.Orientation),
				})
			}
			fmt.Fprintf(w, "status: %s\n", p.Status)
			fmt.Fprintf(w, "alpha:  %d\n", p.Orientation)
			for i, pt := range p.Positions {
				fmt.Fprintf(w, "p%d:     %g %g %g\n", i+1, pt.X, pt.Y, pt.Z)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&theta, "theta", "", "joint angles in degrees: theta1,theta2,theta3,theta4")
	_ = cmd.MarkFlagRequired("theta")

	return cmd
}
