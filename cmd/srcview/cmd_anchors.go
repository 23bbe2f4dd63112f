package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/ui"
)

func newAnchorsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "anchors <class|file.java>",
		Short: "List the anchors of a rendered class",
		Args:  cobra.ExactArgs(1),
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

			_, html, err := renderArg(cmd.Context(), e.renderer, args[0])
			if err != nil {
				return err
			}
			infos, err := ui.Anchors(html)
			if err != nil {
				return fmt.Errorf("read anchors: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			for _, info := range infos {
				fmt.Printf("%s\t%s\t%s\n", info.Kind, info.Member, info.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON instead of lines")

	return cmd
}
