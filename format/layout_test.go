package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/srcview/java/ast"
)

func memberNames(ms []ast.Member) []string {
	var out []string
	for _, m := range ms {
		switch m := m.(type) {
		case *ast.FieldDecl:
			out = append(out, m.Variables[0].Name)
		case *ast.MethodDecl:
			out = append(out, m.Name)
		case *ast.ConstructorDecl:
			out = append(out, "<init>")
		case *ast.InitializerDecl:
			if m.Static {
				out = append(out, "<clinit>")
			} else {
				out = append(out, "<init-block>")
			}
		case ast.TypeDecl:
			out = append(out, m.TypeName())
		}
	}
	return out
}

func TestOrderMembers(t *testing.T) {
	tests := []struct {
		name     string
		members  []ast.Member
		expected []string
	}{
		{
			name: "every category",
			members: []ast.Member{
				method("m1", 0),
				field(0, "f1"),
				ctor("A"),
				field(ast.ModStatic, "s1"),
				&ast.InitializerDecl{Static: true, Body: block()},
				&ast.ClassDecl{Name: "Inner"},
				&ast.ClassDecl{Name: "Nested", Modifiers: ast.ModStatic},
				method("m2", ast.ModStatic),
				&ast.InitializerDecl{Body: block()},
			},
			expected: []string{"s1", "<clinit>", "f1", "<init-block>", "<init>", "m1", "m2", "Inner", "Nested"},
		},
		{
			name: "initializers keep their place among fields",
			members: []ast.Member{
				field(ast.ModStatic, "a"),
				&ast.InitializerDecl{Static: true, Body: block()},
				field(ast.ModStatic, "b"),
			},
			expected: []string{"a", "<clinit>", "b"},
		},
		{
			name: "constructors move above instance methods only",
			members: []ast.Member{
				method("s", ast.ModStatic),
				method("i", 0),
				ctor("A"),
				ctor("A"),
			},
			expected: []string{"s", "<init>", "<init>", "i"},
		},
		{
			name: "interfaces are static types",
			members: []ast.Member{
				&ast.ClassDecl{Name: "I", Interface: true},
				&ast.ClassDecl{Name: "C"},
				&ast.EnumDecl{Name: "E", Modifiers: ast.ModStatic},
			},
			expected: []string{"C", "I", "E"},
		},
		{
			name:     "empty",
			members:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]ast.Member(nil), tt.members...)
			got := OrderMembers(in)
			assert.Equal(t, tt.expected, memberNames(got))
			assert.Equal(t, tt.members, in, "input is not modified")
			assert.Equal(t, memberNames(got), memberNames(OrderMembers(got)), "ordering is idempotent")
		})
	}
}

func TestLayoutKeyLess(t *testing.T) {
	static := Key(field(ast.ModStatic, "s"), 5)
	instance := Key(field(0, "i"), 0)
	assert.True(t, static.Less(instance))
	assert.False(t, instance.Less(static))

	first := Key(method("a", 0), 1)
	second := Key(method("b", 0), 2)
	assert.True(t, first.Less(second))
	assert.False(t, first.Less(first))
}

func TestNeedsBlankLine(t *testing.T) {
	static := field(ast.ModStatic, "s")
	instance := field(0, "i")
	m := method("m", 0)

	tests := []struct {
		name      string
		prev, cur ast.Member
		expected  bool
	}{
		{"first member", nil, static, false},
		{"static fields", static, field(ast.ModStatic, "t"), false},
		{"instance fields", instance, field(0, "j"), false},
		{"static to instance", static, instance, true},
		{"instance to static", instance, static, false},
		{"field to method", instance, m, true},
		{"method to field", m, instance, true},
		{"methods", m, method("n", 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NeedsBlankLine(tt.prev, tt.cur))
		})
	}
}
