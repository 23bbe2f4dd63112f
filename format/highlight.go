package format

import (
	"bytes"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers/j"
	"github.com/alecthomas/chroma/styles"
)

// HighlightSource renders raw Java source with lexical highlighting only.
// It is the fallback view for source that could not be parsed into a
// tree. Line errLine is marked when it is positive.
func HighlightSource(src string, errLine int, style string) (string, error) {
	l := chroma.Coalesce(j.Java)

	opts := []html.Option{html.WithLineNumbers()}
	if errLine > 0 {
		opts = append(opts, html.HighlightLines([][2]int{{errLine, errLine}}))
	}
	f := html.New(opts...)

	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}

	it, err := l.Tokenise(nil, src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := f.Format(&buf, s, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}
