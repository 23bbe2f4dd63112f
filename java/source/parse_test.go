package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/java/ast"
)

func parse(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	unit, err := Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotNil(t, unit)
	return unit
}

func class(t *testing.T, unit *ast.CompilationUnit) *ast.ClassDecl {
	t.Helper()
	require.Len(t, unit.Types, 1)
	c, ok := unit.Types[0].(*ast.ClassDecl)
	require.True(t, ok, "got %T", unit.Types[0])
	return c
}

func method(t *testing.T, c *ast.ClassDecl, name string) *ast.MethodDecl {
	t.Helper()
	for _, m := range c.Members {
		if md, ok := m.(*ast.MethodDecl); ok && md.Name == name {
			return md
		}
	}
	t.Fatalf("method %s not found", name)
	return nil
}

const greeter = `package com.example;

import java.util.List;
import static java.util.Collections.*;

public class Greeter {
    private int count, names[];

    /** Says hello. */
    public String greet(String who) {
        return "hello " + who;
    }
}
`

func TestParseDeclarations(t *testing.T) {
	unit := parse(t, greeter)

	require.NotNil(t, unit.Package)
	assert.Equal(t, "com.example", unit.Package.Name)
	require.Len(t, unit.Imports, 2)
	assert.Equal(t, "java.util.List", unit.Imports[0].Name)
	assert.True(t, unit.Imports[1].Static)
	assert.True(t, unit.Imports[1].Asterisk)
	assert.Equal(t, "java.util.Collections", unit.Imports[1].Name)

	c := class(t, unit)
	assert.Equal(t, "Greeter", c.Name)
	assert.True(t, c.Modifiers.Has(ast.ModPublic))
	require.Len(t, c.Members, 2)

	f, ok := c.Members[0].(*ast.FieldDecl)
	require.True(t, ok)
	require.Len(t, f.Variables, 2)
	assert.Equal(t, "count", f.Variables[0].Name)
	assert.IsType(t, &ast.PrimitiveType{}, f.Variables[0].Type)
	assert.Equal(t, "names", f.Variables[1].Name)
	assert.IsType(t, &ast.ArrayType{}, f.Variables[1].Type)

	m := method(t, c, "greet")
	require.NotNil(t, m.Span)
	assert.Equal(t, ast.Position{Line: 10, Column: 5}, m.Span.Start)
	require.Len(t, m.Params, 1)
	assert.Equal(t, "who", m.Params[0].Name)
	require.NotNil(t, m.Body)
	require.Len(t, m.Body.Stmts, 1)
	assert.IsType(t, &ast.ReturnStmt{}, m.Body.Stmts[0])
	assert.False(t, unit.Partial)
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		test func(t *testing.T, c *ast.ClassDecl)
	}{
		{
			name: "javadoc attached to method",
			src:  greeter,
			test: func(t *testing.T, c *ast.ClassDecl) {
				m := method(t, c, "greet")
				require.NotNil(t, m.Comment)
				assert.Equal(t, ast.JavadocComment, m.Comment.Style)
				assert.Equal(t, " Says hello. ", m.Comment.Text)
			},
		},
		{
			name: "line comment attached to statement",
			src: `class A {
    void run() {
        int x = 1;
        // bump
        x++;
    }
}
`,
			test: func(t *testing.T, c *ast.ClassDecl) {
				body := method(t, c, "run").Body
				require.Len(t, body.Stmts, 2)
				got := ast.CommentOf(body.Stmts[1])
				require.NotNil(t, got)
				assert.Equal(t, ast.LineComment, got.Style)
				assert.Equal(t, " bump", got.Text)
				assert.Empty(t, body.Orphans)
			},
		},
		{
			name: "comment at end of block is an orphan",
			src: `class A {
    void run() {
        call();
        /* done */
    }
}
`,
			test: func(t *testing.T, c *ast.ClassDecl) {
				body := method(t, c, "run").Body
				require.Len(t, body.Orphans, 1)
				assert.Equal(t, ast.BlockComment, body.Orphans[0].Style)
				assert.Equal(t, " done ", body.Orphans[0].Text)
			},
		},
		{
			name: "trailing comment on same line is an orphan",
			src: `class A {
    void run() {
        a(); // after a
        b();
    }
}
`,
			test: func(t *testing.T, c *ast.ClassDecl) {
				body := method(t, c, "run").Body
				require.Len(t, body.Stmts, 2)
				assert.Nil(t, ast.CommentOf(body.Stmts[1]))
				require.Len(t, body.Orphans, 1)
				assert.Equal(t, " after a", body.Orphans[0].Text)
			},
		},
		{
			name: "run of comments keeps source order",
			src: `class A {
    void run() {
        a();
        // one

        // two

    }
}
`,
			test: func(t *testing.T, c *ast.ClassDecl) {
				body := method(t, c, "run").Body
				require.Len(t, body.Orphans, 2)
				assert.Equal(t, " one", body.Orphans[0].Text)
				assert.Equal(t, " two", body.Orphans[1].Text)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.test(t, class(t, parse(t, tt.src)))
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		body string
		test func(t *testing.T, s ast.Stmt)
	}{
		{
			name: "arrow switch",
			body: `switch (k) { case 1 -> a(); default -> b(); }`,
			test: func(t *testing.T, s ast.Stmt) {
				sw, ok := s.(*ast.SwitchStmt)
				require.True(t, ok, "got %T", s)
				require.Len(t, sw.Entries, 2)
				assert.True(t, sw.Entries[0].Arrow)
				assert.Len(t, sw.Entries[0].Labels, 1)
				assert.Len(t, sw.Entries[0].Stmts, 1)
				assert.Empty(t, sw.Entries[1].Labels)
			},
		},
		{
			name: "colon switch",
			body: `switch (k) { case 1: case 2: a(); break; default: b(); }`,
			test: func(t *testing.T, s ast.Stmt) {
				sw, ok := s.(*ast.SwitchStmt)
				require.True(t, ok, "got %T", s)
				require.Len(t, sw.Entries, 2)
				assert.False(t, sw.Entries[0].Arrow)
				assert.Len(t, sw.Entries[0].Labels, 2)
				assert.Len(t, sw.Entries[0].Stmts, 2)
				assert.Nil(t, sw.Entries[1].Labels)
			},
		},
		{
			name: "for header",
			body: `for (int i = 0; i < n; i++, j--) work(i);`,
			test: func(t *testing.T, s ast.Stmt) {
				f, ok := s.(*ast.ForStmt)
				require.True(t, ok, "got %T", s)
				require.Len(t, f.Init, 1)
				assert.IsType(t, &ast.VarDeclExpr{}, f.Init[0])
				assert.IsType(t, &ast.BinaryExpr{}, f.Cond)
				assert.Len(t, f.Update, 2)
				assert.IsType(t, &ast.ExprStmt{}, f.Body)
			},
		},
		{
			name: "empty for header",
			body: `for (;;) { }`,
			test: func(t *testing.T, s ast.Stmt) {
				f, ok := s.(*ast.ForStmt)
				require.True(t, ok, "got %T", s)
				assert.Empty(t, f.Init)
				assert.Nil(t, f.Cond)
				assert.Empty(t, f.Update)
				assert.IsType(t, &ast.BlockStmt{}, f.Body)
			},
		},
		{
			name: "lambda",
			body: `run((a, b) -> a + b);`,
			test: func(t *testing.T, s ast.Stmt) {
				es, ok := s.(*ast.ExprStmt)
				require.True(t, ok, "got %T", s)
				call, ok := es.X.(*ast.MethodCallExpr)
				require.True(t, ok, "got %T", es.X)
				require.Len(t, call.Args, 1)
				l, ok := call.Args[0].(*ast.LambdaExpr)
				require.True(t, ok, "got %T", call.Args[0])
				assert.True(t, l.Parens)
				assert.Len(t, l.Params, 2)
				assert.IsType(t, &ast.ExprStmt{}, l.Body)
			},
		},
		{
			name: "multi catch",
			body: `try { a(); } catch (IOException | RuntimeException e) { b(); } finally { c(); }`,
			test: func(t *testing.T, s ast.Stmt) {
				ts, ok := s.(*ast.TryStmt)
				require.True(t, ok, "got %T", s)
				require.Len(t, ts.Catches, 1)
				u, ok := ts.Catches[0].Param.Type.(*ast.UnionType)
				require.True(t, ok, "got %T", ts.Catches[0].Param.Type)
				assert.Len(t, u.Elements, 2)
				assert.NotNil(t, ts.Finally)
			},
		},
		{
			name: "local class",
			body: `class Local { }`,
			test: func(t *testing.T, s ast.Stmt) {
				lc, ok := s.(*ast.LocalClassStmt)
				require.True(t, ok, "got %T", s)
				assert.Equal(t, "Local", lc.Decl.TypeName())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "class A {\n    void run() {\n        " + tt.body + "\n    }\n}\n"
			body := method(t, class(t, parse(t, src)), "run").Body
			require.Len(t, body.Stmts, 1)
			tt.test(t, body.Stmts[0])
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("error in method body", func(t *testing.T) {
		unit := parse(t, "class A {\n    void run() {\n        a();\n        ) ) )\n        b();\n    }\n}\n")
		c := class(t, unit)
		assert.Equal(t, "A", c.Name)
		var found bool
		ast.Inspect(unit, func(n ast.Node) bool {
			if _, ok := n.(*ast.UnparsableStmt); ok {
				found = true
			}
			return true
		})
		assert.True(t, found)
	})

	t.Run("nothing parses", func(t *testing.T) {
		unit, err := Parse(context.Background(), []byte("}}} not java {{{"))
		require.Error(t, err)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "got %T", err)
		assert.Equal(t, 1, pe.Line)
		require.NotNil(t, unit)
		assert.True(t, unit.Unparsable)
	})
}

func TestParseError(t *testing.T) {
	err := &ParseError{Message: "unexpected \"}\"", File: "A.java", Line: 3, Column: 7}
	assert.Equal(t, "A.java:3:7: unexpected \"}\"", err.Error())
}

func TestParseRendersWithAnchors(t *testing.T) {
	src := `package com.example;

public class Counter {
    // current value
    private int value;

    public Counter(int start) {
        this.value = start;
    }

    /**
     * Adds one.
     */
    public int next() {
        if (value > 10) {
            return value;
        }
        return value++;
    }
}
`
	unit := parse(t, src)
	classes := java.NewRegistry()
	classes.Add(&java.ClassModel{
		Name:    "com/example/Counter",
		Fields:  []java.FieldModel{{Name: "value", Descriptor: "I"}},
		Methods: []java.MethodModel{{Name: "<init>", Descriptor: "(I)V"}, {Name: "next", Descriptor: "()I"}},
	})
	html, err := format.Render(unit, format.DefaultOptions(), anchor.NewModelResolver(unit, classes))
	require.NoError(t, err)

	ids, err := anchor.Extract(html)
	require.NoError(t, err)
	assert.Equal(t, []string{
		anchor.FieldAnchor(java.FieldID("value", "I")),
		anchor.MethodAnchor(java.MethodID("<init>", "(I)V")),
		anchor.MethodAnchor(java.MethodID("next", "()I")),
	}, ids)

	assert.Contains(t, html, "current value")
	assert.Contains(t, html, "Adds one.")
	assert.Equal(t, 1, strings.Count(html, "current value"))
}
