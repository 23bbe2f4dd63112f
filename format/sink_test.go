package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkColumn(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		write  func(s *Sink)
		want   string
		column int
	}{
		{
			name:   "markup takes no room",
			opts:   DefaultOptions(),
			write:  func(s *Sink) { s.Print(`<span class="x">ab</span>`) },
			want:   `<span class="x">ab</span>`,
			column: 2,
		},
		{
			name:   "entity is one column",
			opts:   DefaultOptions(),
			write:  func(s *Sink) { s.Print("a &lt; b") },
			want:   "a &lt; b",
			column: 5,
		},
		{
			name: "tab indentation aligned to column",
			opts: DefaultOptions(),
			write: func(s *Sink) {
				s.Indent()
				s.IndentWithAlignTo(6)
				s.Print("x")
			},
			want:   "\t  x",
			column: 7,
		},
		{
			name: "space indentation aligned to column",
			opts: Options{IndentStyle: IndentSpaces, IndentWidth: 2},
			write: func(s *Sink) {
				s.Indent()
				s.IndentWithAlignTo(5)
				s.Print("x")
			},
			want:   "     x",
			column: 6,
		},
		{
			name: "anchor opens before the indentation",
			opts: DefaultOptions(),
			write: func(s *Sink) {
				s.Indent()
				s.OpenAnchor("a")
				s.Print("x")
			},
			want:   "<span id=\"a\">\tx",
			column: 5,
		},
		{
			name: "anchor mid line",
			opts: DefaultOptions(),
			write: func(s *Sink) {
				s.Indent()
				s.Print("x ")
				s.OpenAnchor("a")
				s.Print("y")
				s.CloseAnchor()
			},
			want:   "\tx <span id=\"a\">y</span>",
			column: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSink(tt.opts)
			tt.write(s)
			assert.Equal(t, tt.want, s.String())
			assert.Equal(t, tt.column, s.Column())
		})
	}
}

func TestSinkLazyIndent(t *testing.T) {
	s := NewSink(DefaultOptions())
	s.Indent()
	s.Println()
	s.PrintLine("a")
	s.Unindent()
	s.Print("b")

	assert.Equal(t, "\n\ta\nb", s.String())
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, 0, s.Depth())
	assert.NoError(t, s.Err())
}

func TestSinkReindent(t *testing.T) {
	s := NewSink(Options{IndentStyle: IndentSpaces, IndentWidth: 4})
	s.Indent()
	s.Print("abc")
	s.ReindentWithAlignToCursor()
	s.Println()
	s.Print(".x")
	s.ReindentToPreviousLevel()
	s.Println()
	s.Print("y")

	assert.Equal(t, "    abc\n       .x\n    y", s.String())
	assert.Equal(t, 1, s.Depth())
	assert.NoError(t, s.Err())
}

func TestSinkStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		write func(s *Sink)
	}{
		{"unindent at base level", func(s *Sink) { s.Unindent() }},
		{"restore without alignment", func(s *Sink) { s.ReindentToPreviousLevel() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSink(DefaultOptions())
			tt.write(s)

			var se *StructuralError
			require.Error(t, s.Err())
			assert.True(t, errors.As(s.Err(), &se))
			assert.Equal(t, 0, s.Depth())
		})
	}
}

func TestOptionsFingerprint(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.ColumnAlignParameters = true
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", `a < b && c > "d"`, "it's", "&amp;"} {
		assert.Equal(t, s, Unescape(Escape(s)))
	}
}

func TestSinkKeepsFirstError(t *testing.T) {
	s := NewSink(DefaultOptions())
	s.setErr(nil)
	require.NoError(t, s.Err())

	s.Unindent()
	s.ReindentToPreviousLevel()
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "unindent without matching indent")
}
