package format

import (
	"strings"

	"github.com/dhamidi/srcview/java/ast"
)

func (p *printer) literal(n *ast.Literal) {
	p.attached(n)
	switch n.Lit {
	case ast.LitInt, ast.LitLong, ast.LitDouble:
		p.out.Print(`<span class="number">` + Escape(n.Value) + `</span>`)
	case ast.LitChar:
		p.out.Print(`<span class="string">'` + Escape(n.Value) + `'</span>`)
	case ast.LitString:
		p.out.Print(`<span class="string">"` + Escape(n.Value) + `"</span>`)
	case ast.LitText:
		p.out.Print(`<span class="string">"""` + Escape(normalizeEOL(n.Value)) + `"""</span>`)
	case ast.LitBool, ast.LitNull:
		p.keyword(Escape(n.Value))
	default:
		p.out.Print(Escape(n.Value))
	}
}

func (p *printer) unary(n *ast.UnaryExpr) {
	p.attached(n)
	if !n.Postfix {
		p.out.Print(Escape(n.Op))
	}
	p.node(n.X)
	if n.Postfix {
		p.out.Print(Escape(n.Op))
	}
}

// methodCall prints a call. Inside a fluent chain whose alignment is
// enabled, the first call with a receiver records the column of its "."
// and every later call starts a new line at that column.
func (p *printer) methodCall(n *ast.MethodCallExpr) {
	p.attached(n)
	plan := planChain(p.parents, n, p.opts.ColumnAlignFirstMethodChain)

	if n.Scope != nil {
		p.node(n.Scope)
		if plan.alignable {
			if plan.scopeAligning {
				p.out.Println()
			} else if !plan.last {
				p.out.ReindentWithAlignToCursor()
			}
		}
		p.out.Print(".")
	}
	p.typeArgs(n.TypeArgs)
	p.out.Print(Escape(n.Name))

	p.out.DuplicateIndent()
	p.arguments(n.Args)
	p.out.Unindent()

	if plan.alignable && plan.scopeAligning && plan.last {
		p.out.ReindentToPreviousLevel()
	}
}

// fieldAccess marks all upper case names as constants.
func (p *printer) fieldAccess(n *ast.FieldAccessExpr) {
	p.attached(n)
	p.node(n.Scope)
	p.out.Print(".")
	class := "field"
	if strings.ToUpper(n.Name) == n.Name {
		class = "field constant"
	}
	p.out.Print(`<span class="` + class + `">` + Escape(n.Name) + `</span>`)
}

func (p *printer) arrayCreation(n *ast.ArrayCreationExpr) {
	p.attached(n)
	p.keyword("new")
	p.out.Print(" ")
	p.node(n.Elem)
	for _, l := range n.Levels {
		p.node(l)
	}
	if n.Init != nil {
		p.out.Print(" ")
		p.node(n.Init)
	}
}

func (p *printer) arrayInit(n *ast.ArrayInit) {
	p.attached(n)
	p.out.Print("{")
	if len(n.Values) > 0 {
		p.out.Print(" ")
		printList(p, n.Values, ", ")
		p.out.Print(" ")
	}
	p.endOrphans(n)
	p.out.Print("}")
}

func (p *printer) objectCreation(n *ast.ObjectCreationExpr) {
	p.attached(n)
	if n.Scope != nil {
		p.node(n.Scope)
		p.out.Print(".")
	}
	p.keyword("new")
	p.out.Print(" ")
	if len(n.TypeArgs) > 0 {
		p.typeArgs(n.TypeArgs)
		p.out.Print(" ")
	}
	p.node(n.Type)
	p.arguments(n.Args)
	if n.Anonymous {
		p.body(n, n.Body)
	}
}

// lambda prints an expression body without the statement around it.
func (p *printer) lambda(n *ast.LambdaExpr) {
	p.attached(n)
	if n.Parens {
		p.out.Print("(")
	}
	printList(p, n.Params, ", ")
	if n.Parens {
		p.out.Print(")")
	}
	p.out.Print(" -> ")
	if es, ok := n.Body.(*ast.ExprStmt); ok && es != nil {
		p.attached(es)
		p.node(es.X)
		p.endOrphans(es)
		return
	}
	p.node(n.Body)
}

func (p *printer) qualified(n ast.Expr, qualifier ast.Expr, kw string) {
	p.attached(n)
	if qualifier != nil {
		p.node(qualifier)
		p.out.Print(".")
	}
	p.keyword(kw)
}

func (p *printer) annotation(n *ast.Annotation) {
	p.attached(n)
	p.out.Print(`<span class="annotation">@` + Escape(n.Name) + `</span>`)
	switch {
	case n.Value != nil:
		p.out.Print("(")
		p.node(n.Value)
		p.out.Print(")")
	case len(n.Pairs) > 0:
		p.out.Print("(")
		printList(p, n.Pairs, ", ")
		p.out.Print(")")
	}
}
