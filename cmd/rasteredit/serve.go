package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/rasteredit/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run rasteredit as an MCP server. Requests are read as line-delimited
JSON-RPC 2.0 from stdin and responses written to stdout. Configure it in
your MCP client as a stdio server.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return server.NewWithConfig(cfg).Run()
		},
	}
}
