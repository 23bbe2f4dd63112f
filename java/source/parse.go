// Package source turns Java source text into java/ast trees. Parsing is
// done by tree-sitter; the concrete syntax tree is lowered into the
// printer's node set with positions on every node and comments placed as
// attached or orphan comments.
package source

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/dhamidi/srcview/java/ast"
)

// Parse parses src as a Java compilation unit.
//
// Syntax errors inside method bodies become ast.UnparsableStmt nodes.
// Declarations that cannot be parsed are left out and the unit is marked
// Partial. When nothing usable remains the unit is marked Unparsable and a
// *ParseError describing the first error is returned along with it.
func Parse(ctx context.Context, src []byte) (*ast.CompilationUnit, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse java: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	l := newLowerer(src)
	l.collectComments(root)
	unit := l.unit(root)

	if root.HasError() && len(unit.Types) == 0 && unit.Module == nil {
		unit.Unparsable = true
		return unit, firstError(root, src)
	}
	unit.Partial = l.partial
	l.placeComments(unit)
	return unit, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(ctx context.Context, path string) (*ast.CompilationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	unit, err := Parse(ctx, src)
	if pe, ok := err.(*ParseError); ok {
		pe.File = path
	}
	return unit, err
}

// firstError describes the first ERROR or missing node below n.
func firstError(n *sitter.Node, src []byte) *ParseError {
	var found *ParseError
	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if n.Type() == "ERROR" || n.IsMissing() {
			p := n.StartPoint()
			msg := fmt.Sprintf("unexpected %q", clip(n.Content(src)))
			if n.IsMissing() {
				msg = "missing " + n.Type()
			}
			found = &ParseError{Message: msg, Line: int(p.Row) + 1, Column: int(p.Column) + 1}
			return false
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if !walk(n.Child(i)) {
				return false
			}
		}
		return true
	}
	walk(n)
	if found == nil {
		found = &ParseError{Message: "no declarations", Line: 1, Column: 1}
	}
	return found
}

func clip(s string) string {
	const limit = 40
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
