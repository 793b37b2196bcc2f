// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/fk"
	"github.com/katalvlaran/armkin/matrix"
)

// DH table columns holding angles.
const (
	colTheta = 0
	colAlpha = 3
)

func (a *app) dhCmd() *cobra.Command {
	var (
		theta string
		frame bool
	)
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Print the Denavit-Hartenberg table for joint angles",
		Long: `Print the Denavit-Hartenberg table (theta, d, a, alpha per row) built
from the joint angles and the link geometry. Angles are shown in degrees.
With --frame the composed base-to-effector transform follows the table.`,
		Example: "  armkin dh --theta 20,80,-60,10\n  armkin dh --theta 0,90,0,0 --frame --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th, err := fk.ParseThetaList(theta)
			if err != nil {
				return err
			}
			table, status, _ := fk.New(a.geom, fk.WithLogger(a.logger)).BuildDH(th)
			m, err := degreeMatrix(table)
			if err != nil {
				return err
			}
			var T *matrix.Dense
			if frame {
				if T, err = table.Frame(); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if a.json {
				p := dhPayload{Status: status, Rows: jsonRows(m)}
				if T != nil {
					if p.Frame, err = newFramePayload(T); err != nil {
						return err
					}
				}
				return writeJSON(w, p)
			}

			fmt.Fprintf(w, "status: %s\n", status)
			if err = writeDHTable(w, m); err != nil {
				return err
			}
			if T != nil {
				fmt.Fprintf(w, "frame:\n%s", T)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&theta, "theta", "", "joint angles in degrees: theta1,theta2,theta3,theta4")
	cmd.Flags().BoolVar(&frame, "frame", false, "also print the composed base-to-effector transform")
	_ = cmd.MarkFlagRequired("theta")

	return cmd
}

// degreeMatrix returns the table as a matrix with θ and α in degrees.
func degreeMatrix(t fk.Table) (*matrix.Dense, error) {
	m, err := t.Matrix()
	if err != nil {
		return nil, err
	}
	err = m.Apply(func(_, j int, v float64) float64 {
		if j == colTheta || j == colAlpha {
			return v * 180 / math.Pi
		}
		return v
	})

	return m, err
}

func writeDHTable(w io.Writer, m *matrix.Dense) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "row\ttheta\td\ta\talpha\t")
	m.Do(func(i, j int, v float64) bool {
		if j == 0 {
			fmt.Fprintf(tw, "%d\t", i)
		}
		if j == colTheta || j == colAlpha {
			fmt.Fprintf(tw, "%.2f\t", v)
		} else {
			fmt.Fprintf(tw, "%g\t", v)
		}
		if j == m.Cols()-1 {
			fmt.Fprintln(tw)
		}
		return true
	})

	return tw.Flush()
}

// jsonRows copies m row by row with non-finite entries as null.
func jsonRows(m *matrix.Dense) [][]any {
	rows := make([][]any, m.Rows())
	m.Do(func(i, _ int, v float64) bool {
		rows[i] = append(rows[i], jsonNumber(v))
		return true
	})

	return rows
}
