package main

import (
	"io"

	"github.com/spf13/cobra"
)

const runLong = `Generate a random Euclidean graph and race both engines on it.

Vertices get distinct integer coordinates inside the canvas; every edge
weighs the straight-line distance between its endpoints.

Examples:

  # 50 vertices, 120 edges, reproducible, with a drawing
  pathrace run -n 50 -m 120 --seed 7 --png race.png

  # pick endpoints by clicking coordinates, check against Floyd-Warshall
  pathrace run --seed 7 --from 12,40 --to 580,390 --verify`

const gridLong = `Lay vertices on a regular grid and race both engines on it.

Rows start at the margin and are spaced by --spacing; each vertex links to
its right and bottom neighbors. The default query runs corner to corner.`

// NewCmdRun races the engines on a random graph.
func NewCmdRun(out io.Writer) *cobra.Command {
	o := NewRaceOptions(out, false)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Race on a random graph",
		Long:  runLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return complete(cmd, o)
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// NewCmdGrid races the engines on a grid graph.
func NewCmdGrid(out io.Writer) *cobra.Command {
	o := NewRaceOptions(out, true)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Race on a grid graph",
		Long:  gridLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return complete(cmd, o)
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// complete runs the Complete, Validate, Run sequence for o.
func complete(cmd *cobra.Command, o *RaceOptions) error {
	v, err := loadViper(cmd.Flags())
	if err != nil {
		return err
	}
	if err := o.Complete(v); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Run(cmd.Context())
}
