package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/java/ast"
	"github.com/dhamidi/srcview/java/source"
)

func newDumpCmd() *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "dump [file.java]",
		Short: "Dump the syntax tree of a .java file as JSON",
		Long: `Dump the syntax tree of a .java file as JSON.

If no file is provided, reads Java source from stdin. The output can be
placed below decompiler.tree_root to be rendered without parsing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var unit *ast.CompilationUnit
			var err error

			if len(args) == 0 {
				src, rerr := io.ReadAll(os.Stdin)
				if rerr != nil {
					return fmt.Errorf("read stdin: %w", rerr)
				}
				unit, err = source.Parse(cmd.Context(), src)
			} else {
				if ext := filepath.Ext(args[0]); ext != ".java" {
					return fmt.Errorf("expected .java file, got %s", ext)
				}
				unit, err = source.ParseFile(cmd.Context(), args[0])
			}

			var pe *source.ParseError
			if err != nil && !(keepGoing && errors.As(err, &pe)) {
				return err
			}
			if err != nil {
				log.Warningf("%s", err)
			}

			if err := ast.Encode(os.Stdout, unit); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "dump unparsable units instead of failing")

	return cmd
}
