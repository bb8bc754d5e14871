package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PeterMinin/grid-strategy/pkg/render/sink"
)

// layoutCommand creates the layout command, which prints where each subplot goes.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags     layoutFlags
		asJSON    bool
		noPreview bool
	)

	cmd := &cobra.Command{
		Use:   "layout N",
		Short: "Print the grid arrangement for N subplots",
		Long: `Print the grid arrangement for N subplots.

Shows the number of subplots in each row, the grid size in column units and
one line per subplot with its row and half-open column span, followed by a
terminal preview of the grid. Use --json for machine-readable output.`,
		Example: `  gridstrategy layout 7
  gridstrategy layout 3 --align right
  gridstrategy layout 12 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			opts := c.Config.Options(n)
			flags.apply(cmd, &opts)

			layout, err := c.newRunner().Layout(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(layout)
			}

			printLayoutSummary(out, layout)
			fmt.Fprintln(out, placementTable(layout))
			if !noPreview {
				fmt.Fprintln(out, sink.RenderText(layout, nil, sink.DefaultTextWidth))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "omit the terminal preview")

	return cmd
}
