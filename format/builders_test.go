package format

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dhamidi/srcview/java/ast"
)

// Small constructors for hand-built trees.

func ident(name string) *ast.NameExpr { return &ast.NameExpr{Name: name} }

func intType() *ast.PrimitiveType { return &ast.PrimitiveType{Name: "int"} }

func classType(name string) *ast.ClassType { return &ast.ClassType{Name: name} }

func intLit(v string) *ast.Literal { return &ast.Literal{Lit: ast.LitInt, Value: v} }

func call(scope ast.Expr, name string, args ...ast.Expr) *ast.MethodCallExpr {
	return &ast.MethodCallExpr{Scope: scope, Name: name, Args: args}
}

func exprStmt(x ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{X: x} }

func block(stmts ...ast.Stmt) *ast.BlockStmt { return &ast.BlockStmt{Stmts: stmts} }

func field(mods ast.Modifiers, names ...string) *ast.FieldDecl {
	f := &ast.FieldDecl{Modifiers: mods}
	for _, n := range names {
		f.Variables = append(f.Variables, &ast.VariableDeclarator{Name: n, Type: intType()})
	}
	return f
}

func method(name string, mods ast.Modifiers, stmts ...ast.Stmt) *ast.MethodDecl {
	return &ast.MethodDecl{
		Modifiers: mods,
		Type:      &ast.VoidType{},
		Name:      name,
		Body:      block(stmts...),
	}
}

func ctor(name string) *ast.ConstructorDecl {
	return &ast.ConstructorDecl{Modifiers: ast.ModPublic, Name: name, Body: block()}
}

func unit(members ...ast.Member) *ast.CompilationUnit {
	return &ast.CompilationUnit{
		Types: []ast.TypeDecl{&ast.ClassDecl{Name: "A", Members: members}},
	}
}

// methodUnit wraps statements in "class A { void m() { ... } }".
func methodUnit(stmts ...ast.Stmt) *ast.CompilationUnit {
	return unit(method("m", 0, stmts...))
}

func span(line, col, endLine, endCol int) ast.Span {
	return ast.Span{
		Start: ast.Position{Line: line, Column: col},
		End:   ast.Position{Line: endLine, Column: endCol},
	}
}

func positioned[T ast.Node](n T, line int) T {
	ast.SetSpan(n, span(line, 1, line, 80))
	return n
}

func lineComment(text string) *ast.Comment {
	return &ast.Comment{Style: ast.LineComment, Text: text}
}

// parseHTML parses rendered output for inspection.
func parseHTML(s string) *html.Node {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return doc
}

func walkHTML(n *html.Node, f func(*html.Node)) {
	f(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, f)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	walkHTML(n, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

// elementsWithID returns the elements of doc whose id is id.
func elementsWithID(doc *html.Node, id string) []*html.Node {
	var out []*html.Node
	walkHTML(doc, func(n *html.Node) {
		if v, ok := attr(n, "id"); ok && n.Type == html.ElementNode && v == id {
			out = append(out, n)
		}
	})
	return out
}

// countComments counts the comment and doc comment spans of a document.
func countComments(doc *html.Node) int {
	count := 0
	walkHTML(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "span" {
			return
		}
		if class, _ := attr(n, "class"); class == "comment" || class == "javadoc" {
			count++
		}
	})
	return count
}

// plainLines returns the text of rendered output split into lines, with
// markup removed and entities decoded.
func plainLines(s string) []string {
	return strings.Split(textOf(parseHTML(s)), "\n")
}
