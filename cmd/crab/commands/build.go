package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crab/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [assets...]",
		Short: "Build wasm modules from the given assets, or from crab.yaml",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			opts.NoCache, _ = cmd.Flags().GetBool("no-cache")

			return c.app.Run(cmd.Context(), args, opts)
		},
	}
	addRunFlags(cmd)
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore stored fingerprints and rebuild everything")
	return cmd
}

// addRunFlags registers the flags shared by build and watch.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "", "Consumption target: node or browser (default from crab.yaml)")
	cmd.Flags().StringP("profile", "p", "", "Build profile: dev, debug, release or profiling")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, linear or ci")
	cmd.Flags().Duration("timeout", 0, "Per-command timeout for external tools (default 15m)")
	cmd.Flags().Bool("json", false, "Log in JSON format")
}

// runOptions collects the shared flags into app.RunOptions.
func runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	var opts app.RunOptions
	var err error

	if opts.Target, err = cmd.Flags().GetString("target"); err != nil {
		return opts, err
	}
	if opts.Profile, err = cmd.Flags().GetString("profile"); err != nil {
		return opts, err
	}
	if opts.OutputMode, err = cmd.Flags().GetString("output"); err != nil {
		return opts, err
	}
	if opts.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return opts, err
	}
	if opts.JSON, err = cmd.Flags().GetBool("json"); err != nil {
		return opts, err
	}

	return opts, nil
}
