package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [assets...]",
		Short: "Build assets and rebuild them as their dependencies change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}

			return c.app.Watch(cmd.Context(), args, opts)
		},
	}
	addRunFlags(cmd)
	return cmd
}
