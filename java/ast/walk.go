package ast

type collector []Node

func (c *collector) add(n Node) {
	if n != nil {
		*c = append(*c, n)
	}
}

func (c *collector) annotations(as []*Annotation) {
	for _, a := range as {
		*c = append(*c, a)
	}
}

func (c *collector) classTypes(ts []*ClassType) {
	for _, t := range ts {
		*c = append(*c, t)
	}
}

func (c *collector) typeParams(ps []*TypeParameter) {
	for _, p := range ps {
		*c = append(*c, p)
	}
}

func (c *collector) params(ps []*Parameter) {
	for _, p := range ps {
		*c = append(*c, p)
	}
}

func (c *collector) types(ts []Type) {
	for _, t := range ts {
		c.add(t)
	}
}

func (c *collector) exprs(es []Expr) {
	for _, e := range es {
		c.add(e)
	}
}

func (c *collector) stmts(ss []Stmt) {
	for _, s := range ss {
		c.add(s)
	}
}

func (c *collector) members(ms []Member) {
	for _, m := range ms {
		c.add(m)
	}
}

func (c *collector) vars(vs []*VariableDeclarator) {
	for _, v := range vs {
		*c = append(*c, v)
	}
}

// Children returns the direct children of n in source order followed by
// the orphan comments of n. The comment attached to n is not a child.
func Children(n Node) []Node {
	var c collector
	switch n := n.(type) {
	case *CompilationUnit:
		if n.Package != nil {
			c.add(n.Package)
		}
		for _, i := range n.Imports {
			c.add(i)
		}
		for _, t := range n.Types {
			c.add(t)
		}
		if n.Module != nil {
			c.add(n.Module)
		}
	case *PackageDecl:
		c.annotations(n.Annotations)
	case *ImportDecl:
	case *ClassDecl:
		c.annotations(n.Annotations)
		c.typeParams(n.TypeParams)
		c.classTypes(n.Extends)
		c.classTypes(n.Implements)
		c.classTypes(n.Permits)
		c.members(n.Members)
	case *EnumDecl:
		c.annotations(n.Annotations)
		c.classTypes(n.Implements)
		for _, e := range n.Constants {
			c.add(e)
		}
		c.members(n.Members)
	case *AnnotationDecl:
		c.annotations(n.Annotations)
		c.members(n.Members)
	case *RecordDecl:
		c.annotations(n.Annotations)
		c.typeParams(n.TypeParams)
		c.params(n.Components)
		c.classTypes(n.Implements)
		c.members(n.Members)
	case *FieldDecl:
		c.annotations(n.Annotations)
		c.vars(n.Variables)
	case *VariableDeclarator:
		c.add(n.Type)
		c.add(n.Init)
	case *MethodDecl:
		c.annotations(n.Annotations)
		c.typeParams(n.TypeParams)
		c.add(n.Type)
		if n.Receiver != nil {
			c.add(n.Receiver)
		}
		c.params(n.Params)
		c.types(n.Throws)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *ConstructorDecl:
		c.annotations(n.Annotations)
		c.typeParams(n.TypeParams)
		c.params(n.Params)
		c.types(n.Throws)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *Parameter:
		c.annotations(n.Annotations)
		c.add(n.Type)
		c.annotations(n.VarArgsAnnotations)
	case *ReceiverParameter:
		c.annotations(n.Annotations)
		c.add(n.Type)
	case *InitializerDecl:
		if n.Body != nil {
			c.add(n.Body)
		}
	case *EnumConstant:
		c.annotations(n.Annotations)
		c.exprs(n.Args)
		c.members(n.Body)
	case *AnnotationMember:
		c.annotations(n.Annotations)
		c.add(n.Type)
		c.add(n.Default)
	case *TypeParameter:
		c.annotations(n.Annotations)
		c.classTypes(n.Bounds)
	case *ModuleDecl:
		c.annotations(n.Annotations)
		for _, d := range n.Directives {
			c.add(d)
		}
	case *ModuleDirective:

	case *PrimitiveType:
		c.annotations(n.Annotations)
	case *VoidType:
		c.annotations(n.Annotations)
	case *VarType:
		c.annotations(n.Annotations)
	case *ClassType:
		if n.Scope != nil {
			c.add(n.Scope)
		}
		c.annotations(n.Annotations)
		c.types(n.TypeArgs)
	case *ArrayType:
		c.add(n.Component)
		c.annotations(n.Annotations)
	case *UnionType:
		c.annotations(n.Annotations)
		c.types(n.Elements)
	case *IntersectionType:
		c.annotations(n.Annotations)
		c.types(n.Elements)
	case *WildcardType:
		c.annotations(n.Annotations)
		c.add(n.Extends)
		c.add(n.Super)
	case *UnknownType:

	case *BlockStmt:
		c.stmts(n.Stmts)
	case *ExprStmt:
		c.add(n.X)
	case *IfStmt:
		c.add(n.Cond)
		c.add(n.Then)
		c.add(n.Else)
	case *WhileStmt:
		c.add(n.Cond)
		c.add(n.Body)
	case *DoStmt:
		c.add(n.Body)
		c.add(n.Cond)
	case *ForStmt:
		c.exprs(n.Init)
		c.add(n.Cond)
		c.exprs(n.Update)
		c.add(n.Body)
	case *ForEachStmt:
		if n.Var != nil {
			c.add(n.Var)
		}
		c.add(n.Iterable)
		c.add(n.Body)
	case *TryStmt:
		c.exprs(n.Resources)
		if n.Body != nil {
			c.add(n.Body)
		}
		for _, cc := range n.Catches {
			c.add(cc)
		}
		if n.Finally != nil {
			c.add(n.Finally)
		}
	case *CatchClause:
		if n.Param != nil {
			c.add(n.Param)
		}
		if n.Body != nil {
			c.add(n.Body)
		}
	case *SwitchStmt:
		c.add(n.Selector)
		for _, e := range n.Entries {
			c.add(e)
		}
	case *SwitchEntry:
		c.exprs(n.Labels)
		c.stmts(n.Stmts)
	case *ThrowStmt:
		c.add(n.X)
	case *ReturnStmt:
		c.add(n.X)
	case *BreakStmt:
	case *ContinueStmt:
	case *LabeledStmt:
		c.add(n.Stmt)
	case *LocalClassStmt:
		c.add(n.Decl)
	case *ExplicitCtorStmt:
		c.add(n.Scope)
		c.types(n.TypeArgs)
		c.exprs(n.Args)
	case *SynchronizedStmt:
		c.add(n.X)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *AssertStmt:
		c.add(n.Check)
		c.add(n.Message)
	case *EmptyStmt:
	case *UnparsableStmt:

	case *Literal:
	case *NameExpr:
	case *BinaryExpr:
		c.add(n.X)
		c.add(n.Y)
	case *UnaryExpr:
		c.add(n.X)
	case *AssignExpr:
		c.add(n.Target)
		c.add(n.Value)
	case *ConditionalExpr:
		c.add(n.Cond)
		c.add(n.Then)
		c.add(n.Else)
	case *CastExpr:
		c.add(n.Type)
		c.add(n.X)
	case *InstanceOfExpr:
		c.add(n.X)
		c.add(n.Type)
	case *MethodCallExpr:
		c.add(n.Scope)
		c.types(n.TypeArgs)
		c.exprs(n.Args)
	case *FieldAccessExpr:
		c.add(n.Scope)
	case *ArrayAccessExpr:
		c.add(n.X)
		c.add(n.Index)
	case *ArrayCreationExpr:
		c.add(n.Elem)
		for _, l := range n.Levels {
			c.add(l)
		}
		if n.Init != nil {
			c.add(n.Init)
		}
	case *ArrayLevel:
		c.annotations(n.Annotations)
		c.add(n.Dim)
	case *ArrayInit:
		c.exprs(n.Values)
	case *ObjectCreationExpr:
		c.add(n.Scope)
		c.types(n.TypeArgs)
		if n.Type != nil {
			c.add(n.Type)
		}
		c.exprs(n.Args)
		c.members(n.Body)
	case *LambdaExpr:
		c.params(n.Params)
		c.add(n.Body)
	case *MethodRefExpr:
		c.add(n.Scope)
		c.types(n.TypeArgs)
	case *ClassExpr:
		c.add(n.Type)
	case *ThisExpr:
		c.add(n.Qualifier)
	case *SuperExpr:
		c.add(n.Qualifier)
	case *EnclosedExpr:
		c.add(n.X)
	case *VarDeclExpr:
		c.annotations(n.Annotations)
		c.vars(n.Variables)
	case *TypeExpr:
		c.add(n.Type)
	case *Annotation:
		c.add(n.Value)
		for _, p := range n.Pairs {
			c.add(p)
		}
	case *MemberValuePair:
		c.add(n.Value)

	case *Comment:
	}
	if n != nil {
		for _, o := range n.base().Orphans {
			c = append(c, o)
		}
	}
	return c
}

// Inspect traverses the tree rooted at n depth-first, calling f for each
// node including attached and orphan comments. Children of a node are
// skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	if c := n.base().Comment; c != nil {
		Inspect(c, f)
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}
