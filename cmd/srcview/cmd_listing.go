package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java"
)

func newListingCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "listing <file.class>",
		Short: "Print the member listing of a class file as HTML",
		Long: `Print the member listing of a class file as HTML.

Each field and method carries the same anchor it gets in rendered source,
so the two views can link to each other.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ext := filepath.Ext(args[0]); ext != ".class" {
				return fmt.Errorf("expected .class file, got %s", ext)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			model, err := java.ClassModelFromFile(args[0])
			if err != nil {
				return fmt.Errorf("parse class file: %w", err)
			}
			fmt.Print(format.Listing(model, cfg.Options()))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
