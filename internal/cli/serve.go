package cli

import (
	"github.com/spf13/cobra"

	"github.com/PeterMinin/grid-strategy/internal/api"
)

// serveCommand creates the serve command, which runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and rendered figures over HTTP",
		Long: `Serve layouts and rendered figures over HTTP.

Routes:
  GET /healthz
  GET /version
  GET /v1/grid?n=7&align=center
  GET /v1/grid/{format}?n=7&align=left&width=800&height=600&style=outline

Defaults for omitted parameters come from the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			srv := api.New(c.newRunner(), c.Config, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
