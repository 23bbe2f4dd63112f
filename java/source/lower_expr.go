package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dhamidi/srcview/java/ast"
)

// exprs lowers the named children of n, such as an argument list.
func (l *lowerer) exprs(n *sitter.Node) []ast.Expr {
	var out []ast.Expr
	for _, c := range named(n) {
		out = append(out, l.expr(c))
	}
	return out
}

// raw keeps an expression the node set cannot express as its source text.
func (l *lowerer) raw(n *sitter.Node) ast.Expr {
	return at(l, &ast.NameExpr{Name: collapse(l.text(n))}, n)
}

func (l *lowerer) literal(n *sitter.Node, kind ast.LiteralKind, value string) ast.Expr {
	return at(l, &ast.Literal{Lit: kind, Value: value}, n)
}

func (l *lowerer) expr(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	text := l.text(n)
	switch n.Type() {
	case "identifier", "scoped_identifier":
		return at(l, &ast.NameExpr{Name: text}, n)
	case "this":
		return at(l, &ast.ThisExpr{}, n)
	case "super":
		return at(l, &ast.SuperExpr{}, n)
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
			return l.literal(n, ast.LitLong, text)
		}
		return l.literal(n, ast.LitInt, text)
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		return l.literal(n, ast.LitDouble, text)
	case "true", "false":
		return l.literal(n, ast.LitBool, text)
	case "null_literal":
		return l.literal(n, ast.LitNull, "null")
	case "character_literal":
		return l.literal(n, ast.LitChar, strings.TrimSuffix(strings.TrimPrefix(text, "'"), "'"))
	case "string_literal", "text_block":
		if strings.HasPrefix(text, `"""`) {
			return l.literal(n, ast.LitText, strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`))
		}
		return l.literal(n, ast.LitString, strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`))
	case "parenthesized_expression":
		return at(l, &ast.EnclosedExpr{X: l.expr(first(n))}, n)
	case "binary_expression":
		return at(l, &ast.BinaryExpr{
			X:  l.expr(n.ChildByFieldName("left")),
			Op: l.text(n.ChildByFieldName("operator")),
			Y:  l.expr(n.ChildByFieldName("right")),
		}, n)
	case "assignment_expression":
		return at(l, &ast.AssignExpr{
			Target: l.expr(n.ChildByFieldName("left")),
			Op:     l.text(n.ChildByFieldName("operator")),
			Value:  l.expr(n.ChildByFieldName("right")),
		}, n)
	case "unary_expression":
		return at(l, &ast.UnaryExpr{
			Op: l.text(n.ChildByFieldName("operator")),
			X:  l.expr(n.ChildByFieldName("operand")),
		}, n)
	case "update_expression":
		return l.update(n)
	case "ternary_expression":
		return at(l, &ast.ConditionalExpr{
			Cond: l.expr(n.ChildByFieldName("condition")),
			Then: l.expr(n.ChildByFieldName("consequence")),
			Else: l.expr(n.ChildByFieldName("alternative")),
		}, n)
	case "cast_expression":
		return l.cast(n)
	case "instanceof_expression":
		if n.ChildByFieldName("name") != nil || n.ChildByFieldName("pattern") != nil {
			return l.raw(n)
		}
		return at(l, &ast.InstanceOfExpr{
			X:    l.expr(n.ChildByFieldName("left")),
			Type: l.typ(n.ChildByFieldName("right")),
		}, n)
	case "method_invocation":
		return l.call(n)
	case "field_access":
		return at(l, &ast.FieldAccessExpr{
			Scope: l.expr(n.ChildByFieldName("object")),
			Name:  l.text(n.ChildByFieldName("field")),
		}, n)
	case "array_access":
		return at(l, &ast.ArrayAccessExpr{
			X:     l.expr(n.ChildByFieldName("array")),
			Index: l.expr(n.ChildByFieldName("index")),
		}, n)
	case "object_creation_expression":
		return l.objectCreation(n)
	case "array_creation_expression":
		return l.arrayCreation(n)
	case "array_initializer":
		return l.arrayInit(n)
	case "lambda_expression":
		return l.lambda(n)
	case "method_reference":
		return l.methodRef(n)
	case "class_literal":
		return at(l, &ast.ClassExpr{Type: l.typ(first(n))}, n)
	case "annotation", "marker_annotation":
		return l.annotation(n)
	case "element_value_array_initializer":
		return l.elementValue(n)
	}
	return l.raw(n)
}

func (l *lowerer) update(n *sitter.Node) ast.Expr {
	u := at(l, &ast.UnaryExpr{}, n)
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.IsNamed() {
			u.X = l.expr(c)
			continue
		}
		u.Op = c.Type()
		u.Postfix = u.X != nil
	}
	return u
}

func (l *lowerer) cast(n *sitter.Node) ast.Expr {
	c := at(l, &ast.CastExpr{}, n)
	parts := named(n)
	if len(parts) == 0 {
		return c
	}
	// The operand comes last, after one or more "&"-separated types.
	c.X = l.expr(parts[len(parts)-1])
	var types []ast.Type
	for _, part := range parts[:len(parts)-1] {
		types = append(types, l.typ(part))
	}
	switch len(types) {
	case 0:
	case 1:
		c.Type = types[0]
	default:
		c.Type = &ast.IntersectionType{Elements: types}
	}
	return c
}

func (l *lowerer) call(n *sitter.Node) ast.Expr {
	c := at(l, &ast.MethodCallExpr{Name: l.text(n.ChildByFieldName("name"))}, n)
	if obj := n.ChildByFieldName("object"); obj != nil {
		c.Scope = l.expr(obj)
	}
	c.TypeArgs = l.typeArgs(childOfType(n, "type_arguments"))
	c.Args = l.exprs(n.ChildByFieldName("arguments"))
	return c
}

// objectCreation lowers "new" expressions. A named child before the "new"
// token is the qualifying outer instance.
func (l *lowerer) objectCreation(n *sitter.Node) ast.Expr {
	o := at(l, &ast.ObjectCreationExpr{}, n)
	seenNew := false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == "new":
			seenNew = true
		case !c.IsNamed() || isComment(c):
		case !seenNew:
			o.Scope = l.expr(c)
		case c.Type() == "type_arguments":
			o.TypeArgs = l.typeArgs(c)
		case c.Type() == "argument_list":
			o.Args = l.exprs(c)
		case c.Type() == "class_body":
			o.Anonymous = true
			o.Body = l.members(c)
		default:
			if t, ok := l.typ(c).(*ast.ClassType); ok {
				o.Type = t
			} else {
				o.Type = at(l, &ast.ClassType{Name: collapse(l.text(c))}, c)
			}
		}
	}
	return o
}

func (l *lowerer) arrayCreation(n *sitter.Node) ast.Expr {
	a := at(l, &ast.ArrayCreationExpr{Elem: l.typ(n.ChildByFieldName("type"))}, n)
	for _, c := range named(n) {
		switch c.Type() {
		case "dimensions_expr":
			lvl := at(l, &ast.ArrayLevel{}, c)
			for _, part := range named(c) {
				switch part.Type() {
				case "annotation", "marker_annotation":
					lvl.Annotations = append(lvl.Annotations, l.annotation(part))
				default:
					lvl.Dim = l.expr(part)
				}
			}
			a.Levels = append(a.Levels, lvl)
		case "dimensions":
			for i := 0; i < dimensions(c); i++ {
				a.Levels = append(a.Levels, at(l, &ast.ArrayLevel{}, c))
			}
		case "array_initializer":
			a.Init = l.arrayInit(c)
		}
	}
	return a
}

func (l *lowerer) arrayInit(n *sitter.Node) *ast.ArrayInit {
	init := at(l, &ast.ArrayInit{}, n)
	init.Values = l.exprs(n)
	return init
}

func (l *lowerer) lambda(n *sitter.Node) ast.Expr {
	lam := at(l, &ast.LambdaExpr{}, n)
	params := n.ChildByFieldName("parameters")
	switch {
	case params == nil:
	case params.Type() == "identifier":
		lam.Params = []*ast.Parameter{l.inferredParam(params)}
	case params.Type() == "inferred_parameters":
		lam.Parens = true
		for _, c := range named(params) {
			lam.Params = append(lam.Params, l.inferredParam(c))
		}
	default:
		lam.Parens = true
		_, lam.Params = l.params(params)
	}
	body := n.ChildByFieldName("body")
	if body != nil && body.Type() == "block" {
		lam.Body = l.block(body)
	} else if body != nil {
		lam.Body = at(l, &ast.ExprStmt{X: l.expr(body)}, body)
	}
	return lam
}

func (l *lowerer) inferredParam(n *sitter.Node) *ast.Parameter {
	return at(l, &ast.Parameter{Type: &ast.UnknownType{}, Name: l.text(n)}, n)
}

// typeNodes are the tree-sitter node types that only occur as types.
var typeNodes = map[string]bool{
	"integral_type":          true,
	"floating_point_type":    true,
	"boolean_type":           true,
	"void_type":              true,
	"generic_type":           true,
	"array_type":             true,
	"scoped_type_identifier": true,
	"type_identifier":        true,
	"annotated_type":         true,
}

func (l *lowerer) methodRef(n *sitter.Node) ast.Expr {
	m := at(l, &ast.MethodRefExpr{}, n)
	parts := named(n)
	if len(parts) > 0 {
		if scope := parts[0]; typeNodes[scope.Type()] {
			m.Scope = at(l, &ast.TypeExpr{Type: l.typ(scope)}, scope)
		} else {
			m.Scope = l.expr(scope)
		}
	}
	m.TypeArgs = l.typeArgs(childOfType(n, "type_arguments"))
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		c := n.Child(i)
		if c.Type() == "new" || c.Type() == "identifier" {
			m.Ident = l.text(c)
			break
		}
	}
	return m
}

// typ lowers a type node.
func (l *lowerer) typ(n *sitter.Node) ast.Type {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "integral_type", "floating_point_type", "boolean_type":
		return at(l, &ast.PrimitiveType{Name: l.text(n)}, n)
	case "void_type":
		return at(l, &ast.VoidType{}, n)
	case "type_identifier", "identifier":
		if l.text(n) == "var" {
			return at(l, &ast.VarType{}, n)
		}
		return at(l, &ast.ClassType{Name: l.text(n)}, n)
	case "scoped_type_identifier":
		return l.scopedType(n)
	case "scoped_identifier":
		return l.qualifiedType(n, l.text(n))
	case "generic_type":
		t := at(l, &ast.ClassType{}, n)
		for _, c := range named(n) {
			if c.Type() == "type_arguments" {
				t.TypeArgs = l.typeArgs(c)
				t.Diamond = len(t.TypeArgs) == 0
				continue
			}
			if base, ok := l.typ(c).(*ast.ClassType); ok {
				t.Scope, t.Name, t.Annotations = base.Scope, base.Name, base.Annotations
			}
		}
		return t
	case "array_type":
		return arrayOf(l.typ(n.ChildByFieldName("element")), dimensions(n.ChildByFieldName("dimensions")))
	case "annotated_type":
		var anns []*ast.Annotation
		var t ast.Type
		for _, c := range named(n) {
			switch c.Type() {
			case "annotation", "marker_annotation":
				anns = append(anns, l.annotation(c))
			default:
				t = l.typ(c)
			}
		}
		annotateType(t, anns)
		return t
	case "wildcard":
		w := at(l, &ast.WildcardType{}, n)
		parts := named(n)
		for _, c := range parts {
			if c.Type() == "annotation" || c.Type() == "marker_annotation" {
				w.Annotations = append(w.Annotations, l.annotation(c))
			}
		}
		if len(parts) == 0 {
			return w
		}
		bound := parts[len(parts)-1]
		switch {
		case hasToken(n, "extends"):
			w.Extends = l.typ(bound)
		case hasToken(n, "super"):
			w.Super = l.typ(bound)
		}
		return w
	}
	return at(l, &ast.ClassType{Name: collapse(l.text(n))}, n)
}

func (l *lowerer) scopedType(n *sitter.Node) ast.Type {
	t := at(l, &ast.ClassType{}, n)
	parts := named(n)
	for i, c := range parts {
		switch {
		case c.Type() == "annotation" || c.Type() == "marker_annotation":
			t.Annotations = append(t.Annotations, l.annotation(c))
		case i == len(parts)-1:
			t.Name = l.text(c)
		default:
			if scope, ok := l.typ(c).(*ast.ClassType); ok {
				t.Scope = scope
			}
		}
	}
	return t
}

// qualifiedType turns a dotted name into nested class types.
func (l *lowerer) qualifiedType(n *sitter.Node, name string) ast.Type {
	var t *ast.ClassType
	for _, part := range strings.Split(name, ".") {
		t = &ast.ClassType{Scope: t, Name: strings.TrimSpace(part)}
	}
	return at(l, t, n)
}

func (l *lowerer) typeArgs(n *sitter.Node) []ast.Type {
	var out []ast.Type
	for _, c := range named(n) {
		out = append(out, l.typ(c))
	}
	return out
}

func arrayOf(t ast.Type, dims int) ast.Type {
	if t == nil {
		return nil
	}
	for i := 0; i < dims; i++ {
		t = &ast.ArrayType{Component: t}
	}
	return t
}

func annotateType(t ast.Type, anns []*ast.Annotation) {
	switch t := t.(type) {
	case *ast.ClassType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.PrimitiveType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.ArrayType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.VoidType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.VarType:
		t.Annotations = append(anns, t.Annotations...)
	}
}
