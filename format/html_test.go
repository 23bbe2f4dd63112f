package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/java/ast"
)

func TestRenderEveryKind(t *testing.T) {
	for k := ast.KindCompilationUnit; k <= ast.KindJavadocComment; k++ {
		t.Run(k.String(), func(t *testing.T) {
			n := ast.New(k)
			require.NotNil(t, n)
			p := newPrinter(n, DefaultOptions(), nil)
			require.NoError(t, p.run(n))
		})
	}
}

type unknownNode struct{ ast.Base }

func (*unknownNode) Kind() ast.Kind { return ast.KindInvalid }

func TestRenderUnknownNodeIsStructural(t *testing.T) {
	n := &unknownNode{}
	p := newPrinter(n, DefaultOptions(), nil)
	err := p.run(n)

	var se *StructuralError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Contains(t, se.Msg, "no print routine")
}

func TestRenderField(t *testing.T) {
	tests := []struct {
		name     string
		anchors  anchor.MapResolver
		expected string
	}{
		{
			name: "plain",
			expected: "<span class=\"keyword\">class</span> A {\n" +
				"\t<span class=\"keyword\">int</span> <span class=\"field\">x</span>;\n" +
				"}\n",
		},
		{
			name:    "anchored",
			anchors: anchor.MapResolver{},
			expected: "<span class=\"keyword\">class</span> A {\n" +
				"<span id=\"X1\">\t<span class=\"keyword\">int</span> <span class=\"field\">x</span>;</span>\n" +
				"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := field(0, "x")
			var resolver anchor.Resolver = anchor.None
			if tt.anchors != nil {
				tt.anchors[f.Variables[0]] = "X1"
				resolver = tt.anchors
			}
			got, err := Render(unit(f), DefaultOptions(), resolver)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderFieldScenario(t *testing.T) {
	x := field(ast.ModPrivate|ast.ModStatic|ast.ModFinal, "X")
	x.Variables[0].Init = intLit("1")
	y := field(ast.ModPrivate, "y")
	resolver := anchor.MapResolver{
		x.Variables[0]: "field_X_id",
		y.Variables[0]: "field_y_id",
	}

	got, err := Render(unit(y, x), DefaultOptions(), resolver)
	require.NoError(t, err)

	lines := plainLines(got)
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "\tprivate static final int X = 1;", lines[1])
	assert.Equal(t, "", lines[2], "static to instance fields are separated")
	assert.Equal(t, "\tprivate int y;", lines[3])

	doc := parseHTML(got)
	for id, name := range map[string]string{"field_X_id": "X", "field_y_id": "y"} {
		found := elementsWithID(doc, id)
		require.Len(t, found, 1, id)
		assert.Contains(t, textOf(found[0]), name)
	}
}

func TestRenderMultiDeclaratorField(t *testing.T) {
	f := field(0, "a", "b", "c")
	f.Variables[1].Type = &ast.ArrayType{Component: intType()}
	resolver := anchor.MapResolver{f.Variables[1]: "B"}

	got, err := Render(unit(f), DefaultOptions(), resolver)
	require.NoError(t, err)

	assert.Equal(t, "\tint a, b[], c;", plainLines(got)[1])
	assert.Contains(t, got, `<span id="B"><span class="field">b</span>[]</span>`)
}

func TestRenderMissingCommonType(t *testing.T) {
	f := field(0, "a", "b")
	f.Variables[1].Type = classType("String")

	got, err := Render(unit(f), DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, "\t??? a, b;", plainLines(got)[1])
}

func TestRenderAnchorRoundTrip(t *testing.T) {
	f := field(ast.ModPrivate, "count")
	m := method("run", ast.ModPublic, exprStmt(call(nil, "work")))
	c := ctor("A")
	e := &ast.EnumDecl{
		Name:      "Color",
		Modifiers: ast.ModStatic,
		Constants: []*ast.EnumConstant{{Name: "RED"}, {Name: "GREEN"}},
	}
	resolver := anchor.MapResolver{
		f.Variables[0]: anchor.FieldAnchor("count;;I"),
		m:              anchor.MethodAnchor("run()V"),
		c:              anchor.MethodAnchor("<init>()V"),
		e.Constants[1]: anchor.FieldAnchor("GREEN;;LA$Color;"),
	}

	got, err := Render(unit(m, f, e, c), DefaultOptions(), resolver)
	require.NoError(t, err)

	doc := parseHTML(got)
	names := map[ast.Node]string{f.Variables[0]: "count", m: "run", c: "A", e.Constants[1]: "GREEN"}
	for n, id := range resolver {
		found := elementsWithID(doc, id)
		require.Len(t, found, 1, id)
		assert.Contains(t, textOf(found[0]), names[n])
	}
}

func TestRenderPreservesCommentCount(t *testing.T) {
	b := positioned(exprStmt(call(nil, "b")), 5)
	ast.Attach(b, lineComment(" after b"))
	body := positioned(block(
		positioned(exprStmt(call(nil, "a")), 4),
		b,
	), 3)
	ast.AddOrphan(body, positioned(lineComment(" lead"), 3))
	ast.AddOrphan(body, positioned(lineComment(" end"), 6))
	body.Span.Start = ast.Position{Line: 2, Column: 10}

	m := positioned(method("m", 0), 2)
	m.Body = body
	ast.Attach(m, &ast.Comment{Style: ast.JavadocComment, Text: "\n * Runs.\n "})

	f := field(0, "p", "q")
	ast.Attach(f.Variables[1].Type, &ast.Comment{Style: ast.BlockComment, Text: " hidden "})

	u := unit(f, m)
	ast.AddOrphan(u.Types[0], positioned(lineComment(" tail"), 9))

	got, err := Render(u, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, len(ast.Comments(u)), countComments(parseHTML(got)))
	assert.Equal(t, 1, strings.Count(got, "lead"))
}

func TestRenderOrphanOutOfPlaceIsStructural(t *testing.T) {
	first := positioned(exprStmt(call(nil, "a")), 4)
	second := exprStmt(call(nil, "b"))
	body := block(first, second)
	ast.AddOrphan(body, positioned(lineComment(" x"), 3))

	// The cached child order of body was taken before second had a position.
	p := newPrinter(methodUnit(), DefaultOptions(), nil)
	p.parents = ast.NewParents(body)
	ast.SetSpan(second, span(5, 1, 5, 10))
	p.sorted[body] = []ast.Node{first}

	var se *StructuralError
	require.True(t, errors.As(p.run(second), &se))
}

func TestRenderChainAlignment(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentStyle = IndentSpaces
	opts.ColumnAlignFirstMethodChain = true

	t.Run("statement", func(t *testing.T) {
		chain := call(call(call(ident("a"), "b"), "c"), "d")
		got, err := Render(methodUnit(exprStmt(chain)), opts, nil)
		require.NoError(t, err)

		lines := plainLines(got)
		require.GreaterOrEqual(t, len(lines), 5)
		col := strings.Index(lines[2], ".b(")
		require.Greater(t, col, 0)
		assert.Equal(t, col, strings.Index(lines[3], ".c("))
		assert.Equal(t, col, strings.Index(lines[4], ".d("))
		assert.Equal(t, strings.Repeat(" ", col), lines[3][:col])
	})

	t.Run("argument", func(t *testing.T) {
		chain := call(call(call(ident("a"), "b"), "c"), "d")
		got, err := Render(methodUnit(exprStmt(call(nil, "foo", chain))), opts, nil)
		require.NoError(t, err)
		assert.Equal(t, "        foo(a.b().c().d());", plainLines(got)[2])
	})

	t.Run("disabled", func(t *testing.T) {
		chain := call(call(call(ident("a"), "b"), "c"), "d")
		plain := opts
		plain.ColumnAlignFirstMethodChain = false
		got, err := Render(methodUnit(exprStmt(chain)), plain, nil)
		require.NoError(t, err)
		assert.Equal(t, "        a.b().c().d();", plainLines(got)[2])
	})
}

func TestRenderColumnAlignedArguments(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentStyle = IndentSpaces
	opts.ColumnAlignParameters = true

	got, err := Render(methodUnit(exprStmt(call(nil, "f", ident("x"), ident("y")))), opts, nil)
	require.NoError(t, err)

	lines := plainLines(got)
	assert.Equal(t, "        f(x,", lines[2])
	assert.Equal(t, "          y);", lines[3])
}

func TestRenderIfUnwrap(t *testing.T) {
	render := func(stmt ast.Stmt) string {
		got, err := Render(methodUnit(stmt), DefaultOptions(), nil)
		require.NoError(t, err)
		return got
	}

	t.Run("single statement", func(t *testing.T) {
		wrapped := &ast.IfStmt{Cond: ident("c"), Then: block(exprStmt(call(nil, "s")))}
		bare := &ast.IfStmt{Cond: ident("c"), Then: exprStmt(call(nil, "s"))}
		assert.Equal(t, render(bare), render(wrapped))
		assert.IsType(t, &ast.BlockStmt{}, wrapped.Then, "the tree is not modified")
	})

	t.Run("nested blocks", func(t *testing.T) {
		wrapped := &ast.IfStmt{Cond: ident("c"), Then: block(block(exprStmt(call(nil, "s"))))}
		bare := &ast.IfStmt{Cond: ident("c"), Then: exprStmt(call(nil, "s"))}
		assert.Equal(t, render(bare), render(wrapped))
	})

	t.Run("else keeps braces", func(t *testing.T) {
		n := &ast.IfStmt{
			Cond: ident("c"),
			Then: block(exprStmt(call(nil, "s"))),
			Else: block(exprStmt(call(nil, "t"))),
		}
		lines := plainLines(render(n))
		assert.Equal(t, "\t\tif (c) {", lines[2])
		assert.Equal(t, "\t\t} else {", lines[4])
	})

	t.Run("braced statement keeps braces", func(t *testing.T) {
		loop := &ast.WhileStmt{Cond: ident("x"), Body: block()}
		n := &ast.IfStmt{Cond: ident("c"), Then: block(loop)}
		assert.Equal(t, "\t\tif (c) {", plainLines(render(n))[2])
	})

	t.Run("declaration keeps braces", func(t *testing.T) {
		decl := exprStmt(&ast.VarDeclExpr{Variables: []*ast.VariableDeclarator{{Name: "v", Type: intType()}}})
		n := &ast.IfStmt{Cond: ident("c"), Then: block(decl)}
		assert.Equal(t, "\t\tif (c) {", plainLines(render(n))[2])
	})
}

func TestRenderControlSpacing(t *testing.T) {
	tests := []struct {
		name string
		stmt ast.Stmt
		head string
	}{
		{"loop", &ast.WhileStmt{Cond: ident("x"), Body: block()}, "\t\twhile (x) {"},
		{
			"labeled loop",
			&ast.LabeledStmt{Label: "outer", Stmt: &ast.WhileStmt{Cond: ident("x"), Body: block()}},
			"\t\touter: while (x) {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(methodUnit(
				exprStmt(call(nil, "a")),
				tt.stmt,
				exprStmt(call(nil, "b")),
			), DefaultOptions(), nil)
			require.NoError(t, err)

			assert.Equal(t, []string{
				"class A {",
				"\tvoid m() {",
				"\t\ta();",
				"",
				tt.head,
				"\t\t}",
				"",
				"\t\tb();",
				"\t}",
				"}",
				"",
			}, plainLines(got))
		})
	}
}

func TestRenderLabeledLoopAfterLoop(t *testing.T) {
	got, err := Render(methodUnit(
		&ast.WhileStmt{Cond: ident("x"), Body: block()},
		&ast.LabeledStmt{Label: "outer", Stmt: &ast.WhileStmt{Cond: ident("y"), Body: block()}},
	), DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"class A {",
		"\tvoid m() {",
		"\t\twhile (x) {",
		"\t\t}",
		"",
		"\t\touter: while (y) {",
		"\t\t}",
		"\t}",
		"}",
		"",
	}, plainLines(got))
}

func TestRenderIndentBalance(t *testing.T) {
	opts := DefaultOptions()
	opts.ColumnAlignFirstMethodChain = true
	opts.ColumnAlignParameters = true

	sw := &ast.SwitchStmt{
		Selector: ident("k"),
		Entries: []*ast.SwitchEntry{
			{Labels: []ast.Expr{intLit("1")}, Stmts: []ast.Stmt{&ast.BreakStmt{}}},
			{Stmts: []ast.Stmt{block(&ast.ReturnStmt{})}},
		},
	}
	try := &ast.TryStmt{
		Resources: []ast.Expr{ident("r1"), ident("r2"), ident("r3")},
		Body:      block(exprStmt(call(call(call(ident("a"), "b", ident("x"), ident("y")), "c"), "d"))),
		Catches: []*ast.CatchClause{{
			Param: &ast.Parameter{Type: classType("Exception"), Name: "e"},
			Body:  block(),
		}},
		Finally: block(),
	}
	anon := &ast.ObjectCreationExpr{
		Type:      classType("Runnable"),
		Anonymous: true,
		Body:      []ast.Member{method("run", ast.ModPublic)},
	}
	u := methodUnit(sw, try, &ast.ReturnStmt{X: anon})

	_, err := Render(u, opts, nil)
	require.NoError(t, err)
}

func TestRenderUnparsable(t *testing.T) {
	got, err := Render(&ast.CompilationUnit{Unparsable: true}, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, "???\n", got)

	got, err = Render(methodUnit(&ast.UnparsableStmt{Text: "goto x"}), DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, "\t\t???;", plainLines(got)[2])
}

func TestRenderImportsOrdered(t *testing.T) {
	u := unit()
	u.Package = &ast.PackageDecl{Name: "p"}
	u.Imports = []*ast.ImportDecl{
		{Name: "java.util.List"},
		{Name: "java.util.Collections.emptyList", Static: true},
		{Name: "java.io", Asterisk: true},
	}
	opts := DefaultOptions()
	opts.OrderImports = true

	got, err := Render(u, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"package p;",
		"",
		"import static java.util.Collections.emptyList;",
		"import java.io.*;",
		"import java.util.List;",
		"",
		"class A {",
	}, plainLines(got)[:7])
}

func TestRenderEnumLayout(t *testing.T) {
	constants := func(n int) []*ast.EnumConstant {
		var out []*ast.EnumConstant
		for i := 0; i < n; i++ {
			out = append(out, &ast.EnumConstant{Name: string(rune('A' + i))})
		}
		return out
	}
	tests := []struct {
		name     string
		count    int
		expected []string
	}{
		{"horizontal", 3, []string{"enum E {", "\tA, B, C", "}", ""}},
		{"vertical", 6, []string{"enum E {", "\tA,", "\tB,", "\tC,", "\tD,", "\tE,", "\tF", "}", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &ast.CompilationUnit{Types: []ast.TypeDecl{&ast.EnumDecl{Name: "E", Constants: constants(tt.count)}}}
			got, err := Render(u, DefaultOptions(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, plainLines(got))
		})
	}
}

func TestRenderEscapesText(t *testing.T) {
	cond := &ast.BinaryExpr{X: ident("a"), Op: "<", Y: &ast.Literal{Lit: ast.LitString, Value: "<b>"}}
	got, err := Render(methodUnit(&ast.ReturnStmt{X: cond}), DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Contains(t, got, "a &lt; ")
	assert.Contains(t, got, `<span class="string">"&lt;b&gt;"</span>`)
	assert.Equal(t, "\t\treturn a < \"<b>\";", plainLines(got)[2])
}

func TestRenderDoesNotShareState(t *testing.T) {
	u := methodUnit(exprStmt(call(call(call(ident("a"), "b"), "c"), "d")))
	opts := DefaultOptions()
	opts.ColumnAlignFirstMethodChain = true

	first, err := Render(u, opts, nil)
	require.NoError(t, err)
	second, err := Render(u, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
