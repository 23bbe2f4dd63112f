// Package anchor maps declaration nodes to the stable identifiers that mark
// them in rendered source, so that a viewer can jump to a field or method.
package anchor

import (
	"fmt"
	"strings"

	"github.com/dhamidi/srcview/java/ast"
)

// Resolver looks up the anchor of a declaration node. Nodes that have no
// external entity report false; that is not an error.
type Resolver interface {
	Resolve(n ast.Node) (string, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(n ast.Node) (string, bool)

func (f ResolverFunc) Resolve(n ast.Node) (string, bool) { return f(n) }

// None resolves nothing.
var None Resolver = ResolverFunc(func(ast.Node) (string, bool) { return "", false })

// MapResolver resolves nodes by identity.
type MapResolver map[ast.Node]string

func (m MapResolver) Resolve(n ast.Node) (string, bool) {
	id, ok := m[n]
	return id, ok
}

// Kind tells field anchors from method anchors.
type Kind string

const (
	KindField  Kind = "field"
	KindMethod Kind = "method"
)

// FieldAnchor returns the anchor of the field with the given model ID
// (name;;descriptor).
func FieldAnchor(fieldID string) string { return string(KindField) + "-" + EscapeID(fieldID) }

// MethodAnchor returns the anchor of the method with the given model ID
// (name followed by descriptor).
func MethodAnchor(methodID string) string { return string(KindMethod) + "-" + EscapeID(methodID) }

// ParseAnchor splits an anchor produced by FieldAnchor or MethodAnchor back
// into its kind and model ID.
func ParseAnchor(id string) (Kind, string, error) {
	prefix, escaped, ok := strings.Cut(id, "-")
	if !ok {
		return "", "", fmt.Errorf("anchor %q: missing kind prefix", id)
	}
	kind := Kind(prefix)
	if kind != KindField && kind != KindMethod {
		return "", "", fmt.Errorf("anchor %q: unknown kind %q", id, prefix)
	}
	modelID, err := UnescapeID(escaped)
	if err != nil {
		return "", "", fmt.Errorf("anchor %q: %w", id, err)
	}
	return kind, modelID, nil
}

const hexDigits = "0123456789abcdef"

// EscapeID turns an arbitrary model ID into a string usable as an HTML id
// and CSS selector: ASCII letters and digits are kept and every other byte
// becomes "_" followed by two lower-case hex digits.
func EscapeID(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('_')
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0xf])
	}
	return sb.String()
}

// UnescapeID reverses EscapeID.
func UnescapeID(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' {
			if !isAlnum(c) {
				return "", fmt.Errorf("unescaped byte %q at offset %d", c, i)
			}
			sb.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("truncated escape at offset %d", i)
		}
		hi, lo := unhex(s[i+1]), unhex(s[i+2])
		if hi < 0 || lo < 0 {
			return "", fmt.Errorf("invalid escape %q at offset %d", s[i:i+3], i)
		}
		sb.WriteByte(byte(hi<<4 | lo))
		i += 2
	}
	return sb.String(), nil
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}
