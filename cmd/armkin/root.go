// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/ik"
)

// exitUserError is the exit code for usage and parse errors. Degenerate
// kinematics is reported through the status line and exits 0.
const exitUserError = 1

// Values accepted by --limits.
const (
	limitsDeclared = "declared"
	limitsGeometry = "geometry"
)

// app holds the global flag values and the state resolved before a
// subcommand runs.
type app struct {
	configFile string
	links      string
	limits     string
	json       bool
	verbose    bool

	requested [arm.NumLinks]arm.Link
	geom      arm.Geometry
	logger    *log.Logger
}

// newRootCmd builds a fresh command tree; tests call it once per run.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "armkin",
		Short: "Forward and inverse kinematics for a 5-segment arm",
		Long: `armkin computes link positions and end-effector pitch from joint angles
(fk), joint configurations from a target pose (ik) and the Denavit-Hartenberg
table behind them (dh).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file with links.linkN.{length,min,max}")
	root.PersistentFlags().StringVar(&a.links, "links", "", "links as length_min_max/... (five segments)")
	root.PersistentFlags().StringVar(&a.limits, "limits", limitsDeclared, "ik joint limits: declared or geometry")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log solver status lines to stderr")

	root.AddCommand(a.fkCmd(), a.ikCmd(), a.dhCmd(), a.overviewCmd())

	return root
}

// setup installs the logger and resolves the link geometry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = log.New(io.Discard, "", 0)
	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "armkin: ", 0)
	}
	arm.SetLogger(a.logger)

	if cmd.Name() == "overview" {
		return nil
	}
	if a.limits != limitsDeclared && a.limits != limitsGeometry {
		return fmt.Errorf("--limits %q: want %s or %s", a.limits, limitsDeclared, limitsGeometry)
	}

	links, err := a.resolveLinks()
	if err != nil {
		return err
	}
	a.requested = links
	a.geom = arm.New(links)

	return nil
}

// resolveLinks applies --links over the viper-backed configuration.
func (a *app) resolveLinks() ([arm.NumLinks]arm.Link, error) {
	if a.links != "" {
		return arm.ParseLinks(a.links)
	}

	return loadLinks(a.configFile)
}

// ikOptions maps the global flags to solver options.
func (a *app) ikOptions() []ik.Option {
	opts := []ik.Option{ik.WithLogger(a.logger)}
	if a.limits == limitsGeometry {
		opts = append(opts, ik.WithGeometryLimits())
	}

	return opts
}
