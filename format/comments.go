package format

import (
	"sort"
	"strings"

	"github.com/dhamidi/srcview/java/ast"
)

// sortedChildren returns the positioned children of n ordered by start
// position. Children without a span cannot be placed and are left out.
func sortedChildren(children []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, c := range children {
		if ast.SpanOf(c) != nil {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ast.SpanOf(out[i]).Start.Before(ast.SpanOf(out[j]).Start)
	})
	return out
}

// leadingComments returns the comments that sit between child and the
// previous non-comment node in sorted. It reports false when child is not
// in sorted at all.
func leadingComments(sorted []ast.Node, child ast.Node) ([]*ast.Comment, bool) {
	pos := -1
	for i, n := range sorted {
		if n == child {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, false
	}
	prev := -1
	for i := pos - 1; i >= 0; i-- {
		if _, ok := sorted[i].(*ast.Comment); !ok {
			prev = i
			break
		}
	}
	var out []*ast.Comment
	for i := prev + 1; i < pos; i++ {
		c, ok := sorted[i].(*ast.Comment)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// trailingComments returns the run of comments at the end of sorted.
func trailingComments(sorted []ast.Node) []*ast.Comment {
	start := len(sorted)
	for start > 0 {
		if _, ok := sorted[start-1].(*ast.Comment); !ok {
			break
		}
		start--
	}
	out := make([]*ast.Comment, 0, len(sorted)-start)
	for _, n := range sorted[start:] {
		out = append(out, n.(*ast.Comment))
	}
	return out
}

// javadocLines reformats the text of a doc comment into the lines printed
// between "/**" and " */": leading stars are stripped, trailing blanks are
// trimmed, leading blank lines are dropped and runs of blank lines collapse
// into a single " *" line. A space follows each star only when at least one
// content line did not start with one already.
func javadocLines(text string) []string {
	lines := strings.Split(normalizeEOL(text), "\n")
	prependSpace := false
	for _, l := range lines {
		if l != "" && !strings.HasPrefix(l, " ") {
			prependSpace = true
			break
		}
	}
	var out []string
	skippingLeading := true
	pendingBlank := false
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "*") {
			line = trimmed[1:]
		}
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !skippingLeading {
				pendingBlank = true
			}
			continue
		}
		skippingLeading = false
		if pendingBlank {
			out = append(out, " *")
			pendingBlank = false
		}
		if prependSpace {
			out = append(out, " * "+line)
		} else {
			out = append(out, " *"+line)
		}
	}
	return out
}

func normalizeEOL(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// comment prints a line, block or doc comment according to the options.
func (p *printer) comment(c *ast.Comment) {
	if p.printed[c] {
		return
	}
	p.printed[c] = true
	if !p.opts.PrintComments {
		return
	}
	switch c.Style {
	case ast.JavadocComment:
		if !p.opts.PrintJavadoc {
			return
		}
		p.out.PrintLine(`<span class="javadoc">/**`)
		for _, line := range javadocLines(Escape(c.Text)) {
			p.out.PrintLine(line)
		}
		p.out.PrintLine(` */</span>`)
	case ast.BlockComment:
		p.out.Print(`<span class="comment">/*`)
		p.out.Print(Escape(normalizeEOL(c.Text)))
		p.out.PrintLine(`*/</span>`)
	default:
		text := strings.TrimRight(normalizeEOL(c.Text), " \t\n")
		p.out.PrintLine(`<span class="comment">//` + Escape(text) + `</span>`)
	}
}

// attached prints the comment attached to n, if any.
func (p *printer) attached(n ast.Node) {
	if c := ast.CommentOf(n); c != nil {
		p.comment(c)
	}
}

// leadingOrphans prints the orphan comments of n's parent that sit between
// n and its previous sibling in source order.
func (p *printer) leadingOrphans(n ast.Node) {
	if ast.SpanOf(n) == nil {
		return
	}
	parent := p.parents.Parent(n)
	if parent == nil || len(ast.OrphansOf(parent)) == 0 {
		return
	}
	comments, ok := leadingComments(p.sortedChildrenOf(parent), n)
	if !ok {
		fail(n, "node is not among the positioned children of its %s parent", parent.Kind())
	}
	for _, c := range comments {
		p.comment(c)
	}
}

// endOrphans prints the comments trailing the children of n, then any
// orphan of n that could not be placed by position.
func (p *printer) endOrphans(n ast.Node) {
	orphans := ast.OrphansOf(n)
	if len(orphans) == 0 {
		return
	}
	for _, c := range trailingComments(p.sortedChildrenOf(n)) {
		p.comment(c)
	}
	for _, c := range orphans {
		p.comment(c)
	}
}

func (p *printer) sortedChildrenOf(n ast.Node) []ast.Node {
	if s, ok := p.sorted[n]; ok {
		return s
	}
	s := sortedChildren(p.parents.Children(n))
	p.sorted[n] = s
	return s
}
