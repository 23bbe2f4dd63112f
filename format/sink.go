package format

import "strings"

// Sink accumulates rendered text. It writes indentation lazily at the first
// print of each line and keeps a stack of indentation strings so that
// chained calls and argument lists can align to an arbitrary column.
//
// Columns are visible columns: markup tags do not count.
type Sink struct {
	buf        strings.Builder
	unit       string
	tabWidth   int
	spacesOnly bool

	indents    []string
	reindented []string

	column   int
	line     int
	indented bool

	err error
}

// NewSink returns an empty sink configured by opts.
func NewSink(opts Options) *Sink {
	return &Sink{
		unit:       opts.indentUnit(),
		tabWidth:   opts.tabWidth(),
		spacesOnly: opts.IndentStyle == IndentSpaces,
		indents:    []string{""},
	}
}

func (s *Sink) current() string { return s.indents[len(s.indents)-1] }

func (s *Sink) push(indent string) { s.indents = append(s.indents, indent) }

func (s *Sink) pop() string {
	top := s.current()
	s.indents = s.indents[:len(s.indents)-1]
	return top
}

func (s *Sink) writeIndent() {
	if s.indented {
		return
	}
	s.indented = true
	indent := s.current()
	s.buf.WriteString(indent)
	s.column = visibleWidth(indent, s.tabWidth)
}

// Print appends text, indenting first if the line is still empty. Text may
// contain raw line breaks; lines started that way are not indented.
func (s *Sink) Print(text string) {
	if text == "" {
		return
	}
	s.writeIndent()
	s.buf.WriteString(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		s.line += strings.Count(text, "\n")
		s.column = visibleWidth(text[i+1:], s.tabWidth)
		return
	}
	s.column += visibleWidth(text, s.tabWidth)
}

// Println ends the current line.
func (s *Sink) Println() {
	s.buf.WriteByte('\n')
	s.line++
	s.column = 0
	s.indented = false
}

// PrintLine prints text and ends the line.
func (s *Sink) PrintLine(text string) {
	s.Print(text)
	s.Println()
}

// Indent adds one indentation level.
func (s *Sink) Indent() { s.push(s.current() + s.unit) }

// Unindent removes the innermost indentation level. Removing the base level
// is recorded as a structural error and otherwise ignored.
func (s *Sink) Unindent() {
	if len(s.indents) <= 1 {
		s.setErr(structural(nil, "unindent without matching indent"))
		return
	}
	s.pop()
}

// DuplicateIndent pushes a copy of the current level, so a later Unindent
// restores it unchanged.
func (s *Sink) DuplicateIndent() { s.push(s.current()) }

// IndentWithAlignTo pushes a level that starts lines at column col.
func (s *Sink) IndentWithAlignTo(col int) { s.push(s.alignTo(col)) }

// ReindentWithAlignToCursor replaces the current level with one aligned to
// the cursor. ReindentToPreviousLevel undoes it.
func (s *Sink) ReindentWithAlignToCursor() {
	aligned := s.alignTo(s.column)
	s.reindented = append(s.reindented, s.pop())
	s.push(aligned)
}

// ReindentToPreviousLevel restores the level replaced by the latest
// ReindentWithAlignToCursor.
func (s *Sink) ReindentToPreviousLevel() {
	if len(s.reindented) == 0 {
		s.setErr(structural(nil, "reindent to previous level without alignment"))
		return
	}
	s.pop()
	last := s.reindented[len(s.reindented)-1]
	s.reindented = s.reindented[:len(s.reindented)-1]
	s.push(last)
}

func (s *Sink) alignTo(col int) string {
	if s.spacesOnly {
		return spaces(col)
	}
	base := s.current()
	if w := visibleWidth(base, s.tabWidth); w <= col && !strings.Contains(base, " ") {
		return base + spaces(col-w)
	}
	return strings.Repeat("\t", col/s.tabWidth) + spaces(col%s.tabWidth)
}

// OpenAnchor starts an anchor span. At the start of a line the span opens
// one level to the left so that the member's own indentation is part of the
// anchored text.
func (s *Sink) OpenAnchor(id string) {
	markup := `<span id="` + Escape(id) + `">`
	if s.indented {
		s.Print(markup)
		return
	}
	indent := s.current()
	if !strings.HasSuffix(indent, s.unit) {
		s.Print(markup)
		return
	}
	s.indented = true
	s.buf.WriteString(strings.TrimSuffix(indent, s.unit))
	s.buf.WriteString(markup)
	s.buf.WriteString(s.unit)
	s.column = visibleWidth(indent, s.tabWidth)
}

// CloseAnchor ends the innermost anchor span.
func (s *Sink) CloseAnchor() { s.Print("</span>") }

// Column returns the visible column of the cursor.
func (s *Sink) Column() int { return s.column }

// Line returns the zero-based line of the cursor.
func (s *Sink) Line() int { return s.line }

// Depth returns the number of levels above the base level.
func (s *Sink) Depth() int { return len(s.indents) - 1 }

// Err returns the first structural error recorded by the sink.
func (s *Sink) Err() error { return s.err }

func (s *Sink) setErr(err *StructuralError) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *Sink) String() string { return s.buf.String() }
