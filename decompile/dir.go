package decompile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dhamidi/srcview/java/ast"
)

// SourceDir reads <Root>/<package>/<Name>.java and parses it.
type SourceDir struct {
	Root string
}

func (d SourceDir) Decompile(ctx context.Context, class string) (*Output, error) {
	path := filepath.Join(d.Root, filepath.FromSlash(TopLevel(class))+".java")
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parse(ctx, class, src)
}

// TreeDir reads <Root>/<package>/<Name>.json tree dumps written by
// ast.Encode.
type TreeDir struct {
	Root string
}

func (d TreeDir) Decompile(ctx context.Context, class string) (*Output, error) {
	path := filepath.Join(d.Root, filepath.FromSlash(TopLevel(class))+".json")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	unit, err := ast.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &Output{Class: class, Unit: unit}, nil
}
