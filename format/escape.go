package format

import (
	"html"
	"strings"
)

// Escape makes s safe as HTML text or a quoted attribute value. Unescape
// reverses it exactly.
func Escape(s string) string { return html.EscapeString(s) }

// Unescape reverses Escape.
func Unescape(s string) string { return html.UnescapeString(s) }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// visibleWidth returns the number of columns s occupies once rendered:
// tags take no room, an entity takes one column and a tab takes tabWidth.
func visibleWidth(s string, tabWidth int) int {
	width := 0
	inTag, inEntity := false, false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case inEntity:
			if r == ';' {
				inEntity = false
			}
		case r == '<':
			inTag = true
		case r == '&':
			inEntity = true
			width++
		case r == '\t':
			width += tabWidth
		default:
			width++
		}
	}
	return width
}
