// Package decompile produces syntax trees for classes. Sources come from a
// directory of .java files, a directory of JSON tree dumps or an external
// decompiler run on class files.
package decompile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/java/ast"
	"github.com/dhamidi/srcview/java/source"
)

var log = commonlog.GetLogger("srcview.decompile")

// ErrResourceNotFound is returned when a decompiler has nothing for a
// class, or lacks a class file the class depends on.
var ErrResourceNotFound = errors.New("resource not found")

// Output is the result of decompiling one class. Source is the Java text
// the tree was parsed from; it is nil for trees loaded directly.
type Output struct {
	Class  string
	Source []byte
	Unit   *ast.CompilationUnit
}

// Decompiler turns an internal class name ("com/example/Outer$Inner") into
// a syntax tree. Nested classes are produced as part of their top-level
// class.
type Decompiler interface {
	Decompile(ctx context.Context, class string) (*Output, error)
}

// TopLevel returns the internal name of the top-level class enclosing class.
func TopLevel(class string) string {
	slash := strings.LastIndexByte(class, '/')
	if i := strings.IndexByte(class[slash+1:], '$'); i > 0 {
		return class[:slash+1+i]
	}
	return class
}

// simpleName returns the last segment of an internal name.
func simpleName(class string) string {
	return class[strings.LastIndexByte(class, '/')+1:]
}

// parse parses src as the source of class. On a parse error the returned
// output still carries the source, and the error wraps *source.ParseError.
func parse(ctx context.Context, class string, src []byte) (*Output, error) {
	out := &Output{Class: class, Source: src}
	unit, err := source.Parse(ctx, src)
	out.Unit = unit
	if err != nil {
		return out, fmt.Errorf("parse %s: %w", class, err)
	}
	if unit.Partial {
		log.Warningf("%s: parsed with declarations left out", class)
	}
	return out, nil
}

// Chain tries each decompiler in order and returns the first result. A
// decompiler reporting ErrResourceNotFound is skipped; any other error ends
// the search.
type Chain []Decompiler

func (c Chain) Decompile(ctx context.Context, class string) (*Output, error) {
	for _, d := range c {
		out, err := d.Decompile(ctx, class)
		if errors.Is(err, ErrResourceNotFound) {
			log.Debugf("%T has no %s: %s", d, class, err)
			continue
		}
		return out, err
	}
	return nil, fmt.Errorf("%s: %w", class, ErrResourceNotFound)
}
