package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-ripple-toggle/internal/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ripple",
		Short: "Toggle button that emits a ripple when switched on",
		Long: `ripple opens a window with a single toggle button. Switching it on
emits an expanding, fading ring from the button's center. Debug mode
draws the gradient bands in diagnostic colors instead.

The snapshot command renders one animation frame to SVG or PNG
without opening a window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		snapshotCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// bindRippleFlags wires the animation options shared by run and snapshot.
func bindRippleFlags(cmd *cobra.Command, opts *config.Options) {
	f := cmd.Flags()
	f.BoolVar(&opts.Debug, "debug", opts.Debug, "Draw gradient bands in diagnostic colors, never fade")
	f.Float64Var(&opts.RingWidth, "ring-width", opts.RingWidth, "Final ring width, percent of radius")
	f.Float64Var(&opts.Feather, "feather", opts.Feather, "Transition width on each side of the ring, percent of radius")
	f.BoolVar(&opts.Spring, "spring", opts.Spring, "Use a spring instead of the eased tween")
	f.Float64Var(&opts.Stiffness, "stiffness", opts.Stiffness, "Spring stiffness")
	f.Float64Var(&opts.Damping, "damping", opts.Damping, "Spring damping")
	f.Float64Var(&opts.Mass, "mass", opts.Mass, "Spring mass")
	f.DurationVar(&opts.Duration, "duration", opts.Duration, "Tween duration")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ripple %s (%s)\n", version, commit)
		},
	}
}
