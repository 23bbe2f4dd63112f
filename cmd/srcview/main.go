package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "srcview",
		Short:        "Render decompiled Java classes as navigable HTML",
		SilenceUsage: true,
		Version:      version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: srcview.yaml, srcview.yml or srcview.toml in the working directory)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newAnchorsCmd())
	rootCmd.AddCommand(newListingCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newCacheCmd())

	return rootCmd
}
