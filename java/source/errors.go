package source

import "fmt"

// ParseError reports source that could not be turned into a syntax tree.
// Line and Column are 1-based and point at the first syntax error.
type ParseError struct {
	Message string
	File    string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}
