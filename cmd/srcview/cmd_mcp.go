package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/mcp"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve render tools to agents over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			e, err := newEnv(cfg, true)
			if err != nil {
				return err
			}
			defer e.Close()

			return mcp.New(e.renderer, version).ServeStdio()
		},
	}
}
