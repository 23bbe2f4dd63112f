package format

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dhamidi/srcview/java/ast"
)

// StructuralError reports a tree or printer state that violates its own
// invariants, such as a node missing from its parent's children or an
// unbalanced unindent. It aborts the render in progress.
type StructuralError struct {
	Kind ast.Kind
	Msg  string
	err  error
}

func (e *StructuralError) Error() string {
	if e.Kind == ast.KindInvalid {
		return "structural inconsistency: " + e.Msg
	}
	return fmt.Sprintf("structural inconsistency at %s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying error, which carries the stack trace of the
// point where the inconsistency was detected.
func (e *StructuralError) Unwrap() error { return e.err }

func structural(n ast.Node, format string, args ...any) *StructuralError {
	msg := fmt.Sprintf(format, args...)
	e := &StructuralError{Msg: msg, err: errors.New(msg)}
	if n != nil {
		e.Kind = n.Kind()
	}
	return e
}

// fail aborts the render. Render recovers the panic and returns the error.
func fail(n ast.Node, format string, args ...any) {
	panic(structural(n, format, args...))
}
