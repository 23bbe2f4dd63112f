package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
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

			return lsp.NewServer(e.renderer, version).RunStdio()
		},
	}
}
