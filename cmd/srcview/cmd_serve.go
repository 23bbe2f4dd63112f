package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/ui"
)

func newServeCmd() *cobra.Command {
	var addr string
	var theme string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("theme") {
				cfg.Server.Theme = theme
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			e, err := newEnv(cfg, !noCache)
			if err != nil {
				return err
			}
			defer e.Close()

			server, err := ui.NewServer(e.renderer, e.classes, cfg.Server.Theme)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := cfg.Server.Addr
			if strings.HasPrefix(displayAddr, ":") {
				displayAddr = "localhost" + displayAddr
			}
			fmt.Printf("Serving %d classes at http://%s\n", e.classes.Len(), displayAddr)
			return http.ListenAndServe(cfg.Server.Addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config)")
	cmd.Flags().StringVar(&theme, "theme", "", "light or dark")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")

	return cmd
}
