package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dhamidi/srcview/java/ast"
)

// block lowers a block or constructor body.
func (l *lowerer) block(n *sitter.Node) *ast.BlockStmt {
	if n == nil {
		return nil
	}
	b := at(l, &ast.BlockStmt{}, n)
	for _, c := range named(n) {
		b.Stmts = append(b.Stmts, l.stmt(c))
	}
	return b
}

func (l *lowerer) stmt(n *sitter.Node) ast.Stmt {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "block":
		return l.block(n)
	case ";":
		return at(l, &ast.EmptyStmt{}, n)
	case "expression_statement":
		return at(l, &ast.ExprStmt{X: l.expr(first(n))}, n)
	case "local_variable_declaration":
		return at(l, &ast.ExprStmt{X: l.varDecl(n)}, n)
	case "if_statement":
		s := at(l, &ast.IfStmt{
			Cond: l.expr(unparen(n.ChildByFieldName("condition"))),
			Then: l.stmt(n.ChildByFieldName("consequence")),
		}, n)
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			s.Else = l.stmt(alt)
		}
		return s
	case "while_statement":
		return at(l, &ast.WhileStmt{
			Cond: l.expr(unparen(n.ChildByFieldName("condition"))),
			Body: l.stmt(n.ChildByFieldName("body")),
		}, n)
	case "do_statement":
		return at(l, &ast.DoStmt{
			Body: l.stmt(n.ChildByFieldName("body")),
			Cond: l.expr(unparen(n.ChildByFieldName("condition"))),
		}, n)
	case "for_statement":
		return l.forStmt(n)
	case "enhanced_for_statement":
		return l.forEachStmt(n)
	case "try_statement", "try_with_resources_statement":
		return l.tryStmt(n)
	case "switch_expression", "switch_statement":
		return l.switchStmt(n)
	case "throw_statement":
		return at(l, &ast.ThrowStmt{X: l.expr(first(n))}, n)
	case "return_statement":
		s := at(l, &ast.ReturnStmt{}, n)
		if x := first(n); x != nil {
			s.X = l.expr(x)
		}
		return s
	case "break_statement":
		return at(l, &ast.BreakStmt{Label: l.text(childOfType(n, "identifier"))}, n)
	case "continue_statement":
		return at(l, &ast.ContinueStmt{Label: l.text(childOfType(n, "identifier"))}, n)
	case "labeled_statement":
		parts := named(n)
		s := at(l, &ast.LabeledStmt{Label: l.text(childOfType(n, "identifier"))}, n)
		if len(parts) > 1 {
			s.Stmt = l.stmt(parts[len(parts)-1])
		}
		return s
	case "synchronized_statement":
		return at(l, &ast.SynchronizedStmt{
			X:    l.expr(unparen(childOfType(n, "parenthesized_expression"))),
			Body: l.block(n.ChildByFieldName("body")),
		}, n)
	case "assert_statement":
		parts := named(n)
		if len(parts) == 0 {
			break
		}
		s := at(l, &ast.AssertStmt{Check: l.expr(parts[0])}, n)
		if len(parts) > 1 {
			s.Message = l.expr(parts[1])
		}
		return s
	case "explicit_constructor_invocation":
		return l.explicitCtor(n)
	case "yield_statement":
		text := strings.TrimSuffix(strings.TrimSpace(l.text(n)), ";")
		return at(l, &ast.ExprStmt{X: at(l, &ast.NameExpr{Name: collapse(text)}, n)}, n)
	}
	if td := l.typeDecl(n); td != nil {
		return at(l, &ast.LocalClassStmt{Decl: td}, n)
	}
	return at(l, &ast.UnparsableStmt{Text: l.text(n)}, n)
}

// first returns the first named child of n.
func first(n *sitter.Node) *sitter.Node {
	if parts := named(n); len(parts) > 0 {
		return parts[0]
	}
	return nil
}

// unparen returns the expression inside a parenthesized_expression.
func unparen(n *sitter.Node) *sitter.Node {
	if n != nil && n.Type() == "parenthesized_expression" {
		return first(n)
	}
	return n
}

func (l *lowerer) varDecl(n *sitter.Node) *ast.VarDeclExpr {
	d := at(l, &ast.VarDeclExpr{}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.Variables = l.declarators(n, n.ChildByFieldName("type"))
	return d
}

// forStmt splits the header at its ";" tokens: init, condition, update.
func (l *lowerer) forStmt(n *sitter.Node) *ast.ForStmt {
	s := at(l, &ast.ForStmt{}, n)
	section := 0
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == ";":
			section++
			continue
		case c.Type() == ")":
			section = 3
			continue
		case !c.IsNamed() || isComment(c):
			continue
		}
		switch section {
		case 0:
			if c.Type() == "local_variable_declaration" {
				s.Init = append(s.Init, l.varDecl(c))
				section = 1
			} else {
				s.Init = append(s.Init, l.expr(c))
			}
		case 1:
			s.Cond = l.expr(c)
		case 2:
			s.Update = append(s.Update, l.expr(c))
		default:
			s.Body = l.stmt(c)
		}
	}
	if s.Body == nil {
		if body := n.ChildByFieldName("body"); body != nil {
			s.Body = l.stmt(body)
		}
	}
	return s
}

func (l *lowerer) forEachStmt(n *sitter.Node) *ast.ForEachStmt {
	s := at(l, &ast.ForEachStmt{}, n)
	v := at(l, &ast.VarDeclExpr{}, n)
	v.Modifiers, v.Annotations = l.modifiers(n)
	name := n.ChildByFieldName("name")
	decl := &ast.VariableDeclarator{
		Name: l.text(name),
		Type: arrayOf(l.typ(n.ChildByFieldName("type")), dimensions(n.ChildByFieldName("dimensions"))),
	}
	if name != nil {
		at(l, decl, name)
	}
	v.Variables = []*ast.VariableDeclarator{decl}
	s.Var = v
	s.Iterable = l.expr(n.ChildByFieldName("value"))
	s.Body = l.stmt(n.ChildByFieldName("body"))
	return s
}

func (l *lowerer) tryStmt(n *sitter.Node) *ast.TryStmt {
	s := at(l, &ast.TryStmt{Body: l.block(n.ChildByFieldName("body"))}, n)
	for _, r := range childrenOfType(n.ChildByFieldName("resources"), "resource") {
		s.Resources = append(s.Resources, l.resource(r))
	}
	for _, c := range childrenOfType(n, "catch_clause") {
		s.Catches = append(s.Catches, l.catchClause(c))
	}
	if f := childOfType(n, "finally_clause"); f != nil {
		s.Finally = l.block(childOfType(f, "block"))
	}
	return s
}

func (l *lowerer) resource(n *sitter.Node) ast.Expr {
	typ := n.ChildByFieldName("type")
	if typ == nil {
		return l.expr(first(n))
	}
	d := at(l, &ast.VarDeclExpr{}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	v := &ast.VariableDeclarator{
		Name: l.text(n.ChildByFieldName("name")),
		Type: arrayOf(l.typ(typ), dimensions(n.ChildByFieldName("dimensions"))),
	}
	at(l, v, n)
	if val := n.ChildByFieldName("value"); val != nil {
		v.Init = l.expr(val)
	}
	d.Variables = []*ast.VariableDeclarator{v}
	return d
}

func (l *lowerer) catchClause(n *sitter.Node) *ast.CatchClause {
	c := at(l, &ast.CatchClause{Body: l.block(n.ChildByFieldName("body"))}, n)
	fp := childOfType(n, "catch_formal_parameter")
	if fp == nil {
		return c
	}
	p := at(l, &ast.Parameter{Name: l.text(fp.ChildByFieldName("name"))}, fp)
	p.Modifiers, p.Annotations = l.modifiers(fp)
	if ct := childOfType(fp, "catch_type"); ct != nil {
		alts := named(ct)
		if len(alts) == 1 {
			p.Type = l.typ(alts[0])
		} else {
			u := at(l, &ast.UnionType{}, ct)
			for _, a := range alts {
				u.Elements = append(u.Elements, l.typ(a))
			}
			p.Type = u
		}
	}
	c.Param = p
	return c
}

func (l *lowerer) switchStmt(n *sitter.Node) *ast.SwitchStmt {
	s := at(l, &ast.SwitchStmt{Selector: l.expr(unparen(n.ChildByFieldName("condition")))}, n)
	for _, c := range named(n.ChildByFieldName("body")) {
		switch c.Type() {
		case "switch_block_statement_group":
			e := at(l, &ast.SwitchEntry{}, c)
			isDefault := false
			for _, part := range named(c) {
				if part.Type() == "switch_label" {
					labels := l.exprs(part)
					if len(labels) == 0 {
						isDefault = true
					}
					e.Labels = append(e.Labels, labels...)
					continue
				}
				e.Stmts = append(e.Stmts, l.stmt(part))
			}
			if isDefault {
				e.Labels = nil
			}
			s.Entries = append(s.Entries, e)
		case "switch_rule":
			e := at(l, &ast.SwitchEntry{Arrow: true}, c)
			for _, part := range named(c) {
				if part.Type() == "switch_label" {
					e.Labels = l.exprs(part)
					continue
				}
				e.Stmts = append(e.Stmts, l.stmt(part))
			}
			s.Entries = append(s.Entries, e)
		}
	}
	return s
}

func (l *lowerer) explicitCtor(n *sitter.Node) *ast.ExplicitCtorStmt {
	s := at(l, &ast.ExplicitCtorStmt{}, n)
	if ctor := n.ChildByFieldName("constructor"); ctor != nil {
		s.This = ctor.Type() == "this"
	}
	if obj := n.ChildByFieldName("object"); obj != nil {
		s.Scope = l.expr(obj)
	}
	s.TypeArgs = l.typeArgs(childOfType(n, "type_arguments"))
	s.Args = l.exprs(n.ChildByFieldName("arguments"))
	return s
}
