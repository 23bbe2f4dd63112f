package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/srcview/decompile"
	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java/source"
)

// Describe returns the one-line label of a render failure.
func Describe(err error) string {
	var pe *source.ParseError
	var se *format.StructuralError
	switch {
	case errors.As(err, &pe):
		return "parse error: " + err.Error()
	case errors.As(err, &se):
		return "render error: " + err.Error()
	case errors.Is(err, decompile.ErrResourceNotFound):
		return "decompile error: class not found: " + err.Error()
	}
	return "decompile error: " + err.Error()
}

// failure builds the view shown instead of a rendered class: the error
// label, then the decompiled source when there is one, highlighted with
// the failing line marked.
func (r *Renderer) failure(err error, src []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<pre class=\"error\">%s</pre>\n", format.Escape(Describe(err)))
	if len(src) == 0 {
		return b.String()
	}

	line := 0
	var pe *source.ParseError
	if errors.As(err, &pe) {
		line = pe.Line
	}
	b.WriteString("<p>decompiled source:</p>\n")
	highlighted, herr := format.HighlightSource(string(src), line, r.Style)
	if herr != nil {
		log.Warningf("highlight failed: %s", herr)
		fmt.Fprintf(&b, "<pre>%s</pre>\n", format.Escape(string(src)))
		return b.String()
	}
	b.WriteString(highlighted)
	return b.String()
}
