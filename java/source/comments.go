package source

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dhamidi/srcview/java/ast"
)

// collectComments records every comment in the tree in source order.
func (l *lowerer) collectComments(n *sitter.Node) {
	if isComment(n) {
		l.comments = append(l.comments, l.comment(n))
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		l.collectComments(n.Child(i))
	}
}

func (l *lowerer) comment(n *sitter.Node) *ast.Comment {
	text := strings.TrimRight(l.text(n), "\r\n")
	c := &ast.Comment{Style: ast.BlockComment}
	switch {
	case strings.HasPrefix(text, "//"):
		c.Style = ast.LineComment
		c.Text = strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/**") && text != "/**/":
		c.Style = ast.JavadocComment
		c.Text = strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	default:
		c.Text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}
	return at(l, c, n)
}

// isContainer reports whether comments may be left as orphans on n.
func isContainer(n ast.Node) bool {
	switch n.(type) {
	case *ast.CompilationUnit, *ast.ClassDecl, *ast.EnumDecl, *ast.AnnotationDecl,
		*ast.RecordDecl, *ast.BlockStmt, *ast.SwitchEntry:
		return true
	}
	return false
}

// canAttach reports whether a comment may be attached to n.
func canAttach(n ast.Node) bool {
	switch n.(type) {
	case ast.Stmt, ast.Member, *ast.ImportDecl, *ast.PackageDecl, *ast.SwitchEntry:
		return true
	}
	return false
}

func contains(s *ast.Span, p ast.Position) bool {
	return s != nil && !p.Before(s.Start) && p.Before(s.End)
}

// placeComments gives every collected comment an owner. A comment
// directly above a statement or declaration, with no code between them on
// its lines, is attached to it. Any other comment becomes an orphan of the
// innermost block, type body or compilation unit around it.
func (l *lowerer) placeComments(unit *ast.CompilationUnit) {
	parents := ast.NewParents(unit)
	owners := make(map[*ast.Comment]ast.Node)
	// Closest comments first, so that of a run of comments the last one
	// claims the declaration below it.
	for i := len(l.comments) - 1; i >= 0; i-- {
		c := l.comments[i]
		pos := c.Span.Start
		owner := container(parents, unit, pos)

		var prev, next ast.Node
		for _, k := range positioned(parents.Children(owner)) {
			if ast.SpanOf(k).Start.Before(pos) {
				prev = k
				continue
			}
			next = k
			break
		}

		if next != nil && canAttach(next) && ast.CommentOf(next) == nil &&
			(prev == nil || ast.SpanOf(prev).End.Line < pos.Line) &&
			ast.SpanOf(next).Start.Line <= c.Span.End.Line+1 {
			ast.Attach(next, c)
			continue
		}
		owners[c] = owner
	}
	for _, c := range l.comments {
		if owner, ok := owners[c]; ok {
			ast.AddOrphan(owner, c)
		}
	}
}

// container returns the innermost container whose span holds p.
func container(parents *ast.Parents, root ast.Node, p ast.Position) ast.Node {
	best := root
	for cur := root; cur != nil; {
		var inner ast.Node
		for _, k := range parents.Children(cur) {
			if _, ok := k.(*ast.Comment); ok {
				continue
			}
			if contains(ast.SpanOf(k), p) {
				inner = k
				break
			}
		}
		if inner != nil && isContainer(inner) {
			best = inner
		}
		cur = inner
	}
	return best
}

// positioned returns the children that have a span, in source order,
// without comments.
func positioned(nodes []ast.Node) []ast.Node {
	var out []ast.Node
	for _, n := range nodes {
		if _, ok := n.(*ast.Comment); ok || ast.SpanOf(n) == nil {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ast.SpanOf(out[i]).Start.Before(ast.SpanOf(out[j]).Start)
	})
	return out
}
