package format

import "github.com/dhamidi/srcview/java/ast"

// chainPlan is the alignment decision for one call of a fluent chain.
type chainPlan struct {
	// alignable is set when the chain is the expression of a return, throw,
	// assert or expression statement and not an argument of another call.
	alignable bool
	// last is set when no call follows this one in the chain.
	last bool
	// scopeAligning is set when a call deeper in the receiver chain has
	// already set the alignment column.
	scopeAligning bool
}

// traversedBy reports whether parent continues a chain through child, that
// is, child is parent's receiver.
func traversedBy(parent, child ast.Node) bool {
	s := ast.Scope(parent)
	return s != nil && ast.Node(s) == child
}

func planChain(parents *ast.Parents, n *ast.MethodCallExpr, enabled bool) chainPlan {
	plan := chainPlan{last: true}
	if !enabled {
		return plan
	}

	stmt := parents.Ancestor(n, func(a ast.Node) bool {
		_, ok := a.(ast.Stmt)
		return ok
	})
	switch stmt.(type) {
	case *ast.ReturnStmt, *ast.ThrowStmt, *ast.AssertStmt, *ast.ExprStmt:
	default:
		return plan
	}
	var c ast.Node = n
	p := parents.Parent(c)
	for p != nil && traversedBy(p, c) {
		c = p
		p = parents.Parent(c)
	}
	if _, inArgs := p.(*ast.MethodCallExpr); inArgs {
		return plan
	}
	plan.alignable = true

	for c = n; ; {
		p := parents.Parent(c)
		if p == nil || !traversedBy(p, c) {
			break
		}
		c = p
		if _, ok := c.(*ast.MethodCallExpr); ok {
			plan.last = false
			break
		}
	}

	for s := n.Scope; s != nil; {
		next := ast.Scope(s)
		if _, ok := s.(*ast.MethodCallExpr); ok && next != nil {
			plan.scopeAligning = true
			break
		}
		s = next
	}
	return plan
}
