package format

import (
	"github.com/dhamidi/srcview/java/ast"
)

func (p *printer) block(n *ast.BlockStmt) {
	p.attached(n)
	p.out.PrintLine("{")
	p.out.Indent()
	for _, s := range n.Stmts {
		p.node(s)
		p.out.Println()
	}
	p.endOrphans(n)
	p.out.Unindent()
	p.out.Print("}")
}

// stmtSiblings returns the statements around n in the statement list that
// holds it. Statements outside a block or switch entry have no siblings.
func (p *printer) stmtSiblings(n ast.Stmt) (prev, next ast.Stmt) {
	var list []ast.Stmt
	switch parent := p.parents.Parent(n).(type) {
	case *ast.BlockStmt:
		list = parent.Stmts
	case *ast.SwitchEntry:
		list = parent.Stmts
	}
	for i, s := range list {
		if s != n {
			continue
		}
		if i > 0 {
			prev = list[i-1]
		}
		if i < len(list)-1 {
			next = list[i+1]
		}
		break
	}
	return prev, next
}

// separated reports whether a control statement after prev starts with a
// blank line: it does unless prev is itself a braced construct.
func separated(prev ast.Stmt) bool {
	return prev != nil && !ast.IsBraced(prev)
}

// declares reports whether s introduces a name into its enclosing block and
// therefore cannot stand alone as the body of an if.
func declares(s ast.Stmt) bool {
	switch s := s.(type) {
	case *ast.LocalClassStmt:
		return true
	case *ast.ExprStmt:
		_, ok := s.X.(*ast.VarDeclExpr)
		return ok
	}
	return false
}

func isBlock(s ast.Stmt) bool {
	b, ok := s.(*ast.BlockStmt)
	return ok && b != nil
}

// thenBranch returns the statement shown as the then branch of n. A block
// holding a single statement is shown as that statement when n has no else
// branch and is not nested in another if, the block carries no comments,
// and the statement needs no braces of its own. The tree is left as it is.
func (p *printer) thenBranch(n *ast.IfStmt) ast.Stmt {
	then := n.Then
	if n.Else != nil {
		return then
	}
	if _, nested := p.parents.Parent(n).(*ast.IfStmt); nested {
		return then
	}
	for isBlock(then) {
		b := then.(*ast.BlockStmt)
		if len(b.Stmts) != 1 || b.Comment != nil || len(b.Orphans) > 0 {
			break
		}
		inner := b.Stmts[0]
		if isNil(inner) || ast.IsBraced(inner) && !isBlock(inner) || declares(inner) {
			break
		}
		then = inner
	}
	return then
}

func (p *printer) ifStmt(n *ast.IfStmt) {
	then := p.thenBranch(n)
	thenBlock := isBlock(then)
	_, nested := p.parents.Parent(n).(*ast.IfStmt)
	prev, next := p.stmtSiblings(n)

	afterBareIf := false
	if pi, ok := prev.(*ast.IfStmt); ok && pi != nil {
		afterBareIf = !isBlock(p.thenBranch(pi))
	}
	if thenBlock && !nested && (separated(prev) || afterBareIf) {
		p.out.Println()
	}

	p.attached(n)
	p.keyword("if")
	p.out.Print(" (")
	p.node(n.Cond)
	p.out.Print(") ")
	p.node(then)

	if n.Else == nil {
		if _, nextIf := next.(*ast.IfStmt); next != nil && (thenBlock || !nextIf) {
			p.out.Println()
		}
		return
	}

	if thenBlock {
		p.out.Print(" ")
	} else {
		p.out.Println()
	}
	_, elseIf := n.Else.(*ast.IfStmt)
	sameLine := elseIf || isBlock(n.Else)
	p.keyword("else")
	if sameLine {
		p.out.Print(" ")
		p.node(n.Else)
	} else {
		p.out.Println()
		p.out.Indent()
		p.node(n.Else)
		p.out.Unindent()
	}
	if next != nil {
		p.out.Println()
	}
}

// loop prints a control statement with the blank lines that set it apart
// from the plain statements around it.
func (p *printer) loop(n ast.Stmt, body func()) {
	prev, next := p.stmtSiblings(n)
	if separated(prev) {
		p.out.Println()
	}
	p.attached(n)
	body()
	if next != nil {
		p.out.Println()
	}
}

func (p *printer) whileStmt(n *ast.WhileStmt) {
	p.loop(n, func() {
		p.keyword("while")
		p.out.Print(" (")
		p.node(n.Cond)
		p.out.Print(") ")
		p.node(n.Body)
	})
}

func (p *printer) doStmt(n *ast.DoStmt) {
	p.loop(n, func() {
		p.keyword("do")
		p.out.Print(" ")
		p.node(n.Body)
		p.out.Print(" ")
		p.keyword("while")
		p.out.Print(" (")
		p.node(n.Cond)
		p.out.Print(");")
	})
}

func (p *printer) forStmt(n *ast.ForStmt) {
	p.loop(n, func() {
		p.keyword("for")
		p.out.Print(" (")
		printList(p, n.Init, ", ")
		p.out.Print("; ")
		if n.Cond != nil {
			p.node(n.Cond)
		}
		p.out.Print("; ")
		printList(p, n.Update, ", ")
		p.out.Print(") ")
		p.node(n.Body)
	})
}

func (p *printer) forEachStmt(n *ast.ForEachStmt) {
	p.loop(n, func() {
		p.keyword("for")
		p.out.Print(" (")
		p.node(n.Var)
		p.out.Print(" : ")
		p.node(n.Iterable)
		p.out.Print(") ")
		p.node(n.Body)
	})
}

func (p *printer) tryStmt(n *ast.TryStmt) {
	p.loop(n, func() {
		p.keyword("try")
		p.out.Print(" ")
		if len(n.Resources) > 0 {
			p.out.Print("(")
			for i, r := range n.Resources {
				p.node(r)
				if i == len(n.Resources)-1 {
					break
				}
				p.out.PrintLine(";")
				if i == 0 {
					p.out.Indent()
				}
			}
			if len(n.Resources) > 1 {
				p.out.Unindent()
			}
			p.out.Print(") ")
		}
		p.node(n.Body)
		for _, c := range n.Catches {
			p.node(c)
		}
		if n.Finally != nil {
			p.out.Print(" ")
			p.keyword("finally")
			p.out.Print(" ")
			p.node(n.Finally)
		}
	})
}

func (p *printer) catchClause(n *ast.CatchClause) {
	p.attached(n)
	p.out.Print(" ")
	p.keyword("catch")
	p.out.Print(" (")
	p.node(n.Param)
	p.out.Print(") ")
	p.node(n.Body)
}

// switchStmt prints the entries at the indentation of the switch itself.
func (p *printer) switchStmt(n *ast.SwitchStmt) {
	p.loop(n, func() {
		p.keyword("switch")
		p.out.Print(" (")
		p.node(n.Selector)
		p.out.PrintLine(") {")
		for _, e := range n.Entries {
			p.node(e)
		}
		p.endOrphans(n)
		p.out.Print("}")
	})
}

func (p *printer) switchEntry(n *ast.SwitchEntry) {
	p.attached(n)
	if len(n.Labels) == 0 {
		p.keyword("default")
	} else {
		p.keyword("case")
		p.out.Print(" ")
		printList(p, n.Labels, ", ")
	}
	if n.Arrow {
		p.out.Print(" ->")
	} else {
		p.out.Print(":")
	}

	if len(n.Stmts) == 1 && (n.Arrow || isBlock(n.Stmts[0])) {
		p.out.Print(" ")
		p.node(n.Stmts[0])
		p.out.Println()
		return
	}
	p.out.Println()
	p.out.Indent()
	for _, s := range n.Stmts {
		p.node(s)
		p.out.Println()
	}
	p.endOrphans(n)
	p.out.Unindent()
}

func (p *printer) jump(n ast.Stmt, kw, label string) {
	p.attached(n)
	p.keyword(kw)
	if label != "" {
		p.out.Print(" " + Escape(label))
	}
	p.out.Print(";")
}

func (p *printer) explicitCtor(n *ast.ExplicitCtorStmt) {
	p.attached(n)
	if n.This {
		p.typeArgs(n.TypeArgs)
		p.keyword("this")
	} else {
		if n.Scope != nil {
			p.node(n.Scope)
			p.out.Print(".")
		}
		p.typeArgs(n.TypeArgs)
		p.keyword("super")
	}
	p.arguments(n.Args)
	p.out.Print(";")
}

func (p *printer) assertStmt(n *ast.AssertStmt) {
	p.attached(n)
	p.keyword("assert")
	p.out.Print(" ")
	p.node(n.Check)
	if n.Message != nil {
		p.out.Print(" : ")
		p.node(n.Message)
	}
	p.out.Print(";")
}
