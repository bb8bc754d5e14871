package cli

import (
	"github.com/spf13/cobra"
)

// configCommand creates the config command, which prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if c.Config.Path != "" {
				printInfo(out, "loaded from %s", c.Config.Path)
			} else {
				printInfo(out, "no config file found; using defaults")
			}
			return c.Config.Encode(out)
		},
	}
}
