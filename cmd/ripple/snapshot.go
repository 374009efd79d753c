package main

import (
	"github.com/spf13/cobra"

	"go-ripple-toggle/internal/snapshot"
)

func snapshotCmd() *cobra.Command {
	so := snapshot.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one ripple frame to SVG or PNG",
		Example: `  ripple snapshot --at 400ms --out ripple.svg
  ripple snapshot --debug --ring-width 20 --format png --out debug.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshot.Run(so)
		},
	}

	bindRippleFlags(cmd, &so.Ripple)
	f := cmd.Flags()
	f.DurationVar(&so.At, "at", so.At, "Time since spawn of the rendered frame")
	f.StringVar(&so.Format, "format", "", "svg or png; defaults to the --out extension")
	f.StringVarP(&so.Out, "out", "o", "", "Output file, - for stdout (svg only)")
	f.IntVar(&so.Size, "size", so.Size, "Canvas side in pixels")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
