package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dhamidi/srcview/java/ast"
)

// lowerer converts one tree-sitter tree into an ast tree.
type lowerer struct {
	src      []byte
	comments []*ast.Comment
	partial  bool
	compact  map[*ast.ConstructorDecl]bool
}

func newLowerer(src []byte) *lowerer {
	return &lowerer{src: src, compact: make(map[*ast.ConstructorDecl]bool)}
}

func (l *lowerer) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(l.src)
}

func (l *lowerer) span(n *sitter.Node) ast.Span {
	start, end := n.StartPoint(), n.EndPoint()
	return ast.Span{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

// at records the position of n on x.
func at[T ast.Node](l *lowerer, x T, n *sitter.Node) T {
	ast.SetSpan(x, l.span(n))
	return x
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

// named returns the named children of n without comments.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if !isComment(c) {
			out = append(out, c)
		}
	}
	return out
}

// childOfType returns the first direct child of n of type typ.
func childOfType(n *sitter.Node, typ string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

func childrenOfType(n *sitter.Node, typ string) []*sitter.Node {
	var out []*sitter.Node
	for _, c := range named(n) {
		if c.Type() == typ {
			out = append(out, c)
		}
	}
	return out
}

func hasToken(n *sitter.Node, token string) bool {
	return childOfType(n, token) != nil
}

// dimensions counts the "[" tokens of a dimensions node.
func dimensions(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "[" {
			count++
		}
	}
	return count
}

func (l *lowerer) unit(root *sitter.Node) *ast.CompilationUnit {
	unit := at(l, &ast.CompilationUnit{}, root)
	for _, c := range named(root) {
		switch c.Type() {
		case "package_declaration":
			unit.Package = l.packageDecl(c)
		case "import_declaration":
			unit.Imports = append(unit.Imports, l.importDecl(c))
		case "module_declaration":
			unit.Module = l.moduleDecl(c)
		case "ERROR":
			l.partial = true
			unit.Types = append(unit.Types, l.recoverTypes(c)...)
		default:
			if td := l.typeDecl(c); td != nil {
				unit.Types = append(unit.Types, td)
			} else {
				l.partial = true
			}
		}
	}
	return unit
}

// recoverTypes returns the well-formed type declarations inside an ERROR
// node.
func (l *lowerer) recoverTypes(n *sitter.Node) []ast.TypeDecl {
	var out []ast.TypeDecl
	for _, c := range named(n) {
		if td := l.typeDecl(c); td != nil && !c.HasError() {
			out = append(out, td)
		}
	}
	return out
}

func (l *lowerer) packageDecl(n *sitter.Node) *ast.PackageDecl {
	d := at(l, &ast.PackageDecl{}, n)
	for _, c := range named(n) {
		switch c.Type() {
		case "annotation", "marker_annotation":
			d.Annotations = append(d.Annotations, l.annotation(c))
		case "identifier", "scoped_identifier":
			d.Name = l.text(c)
		}
	}
	return d
}

func (l *lowerer) importDecl(n *sitter.Node) *ast.ImportDecl {
	d := at(l, &ast.ImportDecl{
		Static:   hasToken(n, "static"),
		Asterisk: hasToken(n, "asterisk"),
	}, n)
	for _, c := range named(n) {
		if c.Type() == "identifier" || c.Type() == "scoped_identifier" {
			d.Name = l.text(c)
		}
	}
	return d
}

func (l *lowerer) moduleDecl(n *sitter.Node) *ast.ModuleDecl {
	d := at(l, &ast.ModuleDecl{Open: hasToken(n, "open")}, n)
	for _, c := range named(n) {
		switch c.Type() {
		case "annotation", "marker_annotation":
			d.Annotations = append(d.Annotations, l.annotation(c))
		case "identifier", "scoped_identifier":
			d.Name = l.text(c)
		case "module_body":
			for _, dir := range named(c) {
				if md := l.moduleDirective(dir); md != nil {
					d.Directives = append(d.Directives, md)
				}
			}
		}
	}
	return d
}

var directiveKinds = map[string]ast.DirectiveKind{
	"requires_module_directive": ast.DirectiveRequires,
	"exports_module_directive":  ast.DirectiveExports,
	"opens_module_directive":    ast.DirectiveOpens,
	"uses_module_directive":     ast.DirectiveUses,
	"provides_module_directive": ast.DirectiveProvides,
}

func (l *lowerer) moduleDirective(n *sitter.Node) *ast.ModuleDirective {
	kind, ok := directiveKinds[n.Type()]
	if !ok {
		return nil
	}
	d := at(l, &ast.ModuleDirective{Directive: kind}, n)
	for _, c := range named(n) {
		switch c.Type() {
		case "requires_modifier":
			if m, ok := ast.ParseModifier(l.text(c)); ok {
				d.Modifiers |= m
			}
		case "identifier", "scoped_identifier", "type_identifier", "scoped_type_identifier":
			if d.Name == "" {
				d.Name = l.text(c)
			} else {
				d.Targets = append(d.Targets, l.text(c))
			}
		}
	}
	return d
}

// modifiers returns the keywords and annotations of n's modifiers child.
func (l *lowerer) modifiers(n *sitter.Node) (ast.Modifiers, []*ast.Annotation) {
	mods := childOfType(n, "modifiers")
	if mods == nil {
		return 0, nil
	}
	var ms ast.Modifiers
	var anns []*ast.Annotation
	for i := 0; i < int(mods.ChildCount()); i++ {
		c := mods.Child(i)
		switch c.Type() {
		case "annotation", "marker_annotation":
			anns = append(anns, l.annotation(c))
		default:
			if m, ok := ast.ParseModifier(c.Type()); ok {
				ms |= m
			}
		}
	}
	return ms, anns
}

func (l *lowerer) typeDecl(n *sitter.Node) ast.TypeDecl {
	switch n.Type() {
	case "class_declaration":
		return l.classDecl(n, false)
	case "interface_declaration":
		return l.classDecl(n, true)
	case "enum_declaration":
		return l.enumDecl(n)
	case "annotation_type_declaration":
		return l.annotationDecl(n)
	case "record_declaration":
		return l.recordDecl(n)
	}
	return nil
}

func (l *lowerer) classDecl(n *sitter.Node, iface bool) *ast.ClassDecl {
	d := at(l, &ast.ClassDecl{
		Interface: iface,
		Name:      l.text(n.ChildByFieldName("name")),
	}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.TypeParams = l.typeParams(childOfType(n, "type_parameters"))
	if sc := childOfType(n, "superclass"); sc != nil {
		d.Extends = l.classTypes(sc)
	}
	if ext := childOfType(n, "extends_interfaces"); ext != nil {
		d.Extends = l.classTypes(childOfType(ext, "type_list"))
	}
	if si := childOfType(n, "super_interfaces"); si != nil {
		d.Implements = l.classTypes(childOfType(si, "type_list"))
	}
	if pm := childOfType(n, "permits"); pm != nil {
		d.Permits = l.classTypes(childOfType(pm, "type_list"))
	}
	d.Members = l.members(n.ChildByFieldName("body"))
	return d
}

func (l *lowerer) enumDecl(n *sitter.Node) *ast.EnumDecl {
	d := at(l, &ast.EnumDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	if si := childOfType(n, "super_interfaces"); si != nil {
		d.Implements = l.classTypes(childOfType(si, "type_list"))
	}
	for _, c := range named(n.ChildByFieldName("body")) {
		switch c.Type() {
		case "enum_constant":
			d.Constants = append(d.Constants, l.enumConstant(c))
		case "enum_body_declarations":
			d.Members = append(d.Members, l.members(c)...)
		case "ERROR":
			l.partial = true
		}
	}
	return d
}

func (l *lowerer) enumConstant(n *sitter.Node) *ast.EnumConstant {
	e := at(l, &ast.EnumConstant{Name: l.text(n.ChildByFieldName("name"))}, n)
	_, e.Annotations = l.modifiers(n)
	if args := n.ChildByFieldName("arguments"); args != nil {
		e.Args = l.exprs(args)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		e.Body = l.members(body)
		if e.Body == nil {
			e.Body = []ast.Member{}
		}
	}
	return e
}

func (l *lowerer) annotationDecl(n *sitter.Node) *ast.AnnotationDecl {
	d := at(l, &ast.AnnotationDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.Members = l.members(n.ChildByFieldName("body"))
	return d
}

func (l *lowerer) recordDecl(n *sitter.Node) *ast.RecordDecl {
	d := at(l, &ast.RecordDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.TypeParams = l.typeParams(childOfType(n, "type_parameters"))
	_, d.Components = l.params(n.ChildByFieldName("parameters"))
	if si := childOfType(n, "super_interfaces"); si != nil {
		d.Implements = l.classTypes(childOfType(si, "type_list"))
	}
	d.Members = l.members(n.ChildByFieldName("body"))
	// A compact constructor takes the record components as parameters.
	for _, m := range d.Members {
		if c, ok := m.(*ast.ConstructorDecl); ok && l.compact[c] {
			_, c.Params = l.params(n.ChildByFieldName("parameters"))
		}
	}
	return d
}

// members lowers the declarations of a class, interface, enum or
// annotation body.
func (l *lowerer) members(body *sitter.Node) []ast.Member {
	var out []ast.Member
	for _, c := range named(body) {
		if m := l.member(c); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func (l *lowerer) member(n *sitter.Node) ast.Member {
	switch n.Type() {
	case "field_declaration", "constant_declaration":
		return l.fieldDecl(n)
	case "method_declaration":
		return l.methodDecl(n)
	case "constructor_declaration":
		return l.constructorDecl(n)
	case "compact_constructor_declaration":
		c := at(l, &ast.ConstructorDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
		c.Modifiers, c.Annotations = l.modifiers(n)
		c.Body = l.block(n.ChildByFieldName("body"))
		l.compact[c] = true
		return c
	case "static_initializer":
		return at(l, &ast.InitializerDecl{Static: true, Body: l.block(childOfType(n, "block"))}, n)
	case "block":
		return at(l, &ast.InitializerDecl{Body: l.block(n)}, n)
	case "annotation_type_element_declaration":
		return l.annotationMember(n)
	case "ERROR":
		l.partial = true
		return nil
	}
	if td := l.typeDecl(n); td != nil {
		return td
	}
	l.partial = true
	return nil
}

func (l *lowerer) fieldDecl(n *sitter.Node) *ast.FieldDecl {
	d := at(l, &ast.FieldDecl{}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.Variables = l.declarators(n, n.ChildByFieldName("type"))
	return d
}

// declarators lowers the variable_declarator children of n. Each gets its
// own copy of the base type, extended by its own dimensions.
func (l *lowerer) declarators(n, typ *sitter.Node) []*ast.VariableDeclarator {
	var out []*ast.VariableDeclarator
	for _, c := range childrenOfType(n, "variable_declarator") {
		v := at(l, &ast.VariableDeclarator{Name: l.text(c.ChildByFieldName("name"))}, c)
		v.Type = arrayOf(l.typ(typ), dimensions(c.ChildByFieldName("dimensions")))
		if val := c.ChildByFieldName("value"); val != nil {
			v.Init = l.expr(val)
		}
		out = append(out, v)
	}
	return out
}

func (l *lowerer) methodDecl(n *sitter.Node) *ast.MethodDecl {
	d := at(l, &ast.MethodDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.TypeParams = l.typeParams(childOfType(n, "type_parameters"))
	d.Type = arrayOf(l.typ(n.ChildByFieldName("type")), dimensions(n.ChildByFieldName("dimensions")))
	d.Receiver, d.Params = l.params(n.ChildByFieldName("parameters"))
	d.Throws = l.throws(childOfType(n, "throws"))
	if body := n.ChildByFieldName("body"); body != nil {
		d.Body = l.block(body)
	}
	return d
}

func (l *lowerer) constructorDecl(n *sitter.Node) *ast.ConstructorDecl {
	d := at(l, &ast.ConstructorDecl{Name: l.text(n.ChildByFieldName("name"))}, n)
	d.Modifiers, d.Annotations = l.modifiers(n)
	d.TypeParams = l.typeParams(childOfType(n, "type_parameters"))
	_, d.Params = l.params(n.ChildByFieldName("parameters"))
	d.Throws = l.throws(childOfType(n, "throws"))
	d.Body = l.block(n.ChildByFieldName("body"))
	return d
}

func (l *lowerer) annotationMember(n *sitter.Node) *ast.AnnotationMember {
	m := at(l, &ast.AnnotationMember{Name: l.text(n.ChildByFieldName("name"))}, n)
	m.Modifiers, m.Annotations = l.modifiers(n)
	m.Type = arrayOf(l.typ(n.ChildByFieldName("type")), dimensions(n.ChildByFieldName("dimensions")))
	if v := n.ChildByFieldName("value"); v != nil {
		m.Default = l.elementValue(v)
	}
	return m
}

func (l *lowerer) throws(n *sitter.Node) []ast.Type {
	var out []ast.Type
	for _, c := range named(n) {
		out = append(out, l.typ(c))
	}
	return out
}

// params lowers formal_parameters into an optional receiver and the
// parameter list.
func (l *lowerer) params(n *sitter.Node) (*ast.ReceiverParameter, []*ast.Parameter) {
	var recv *ast.ReceiverParameter
	var out []*ast.Parameter
	for _, c := range named(n) {
		switch c.Type() {
		case "receiver_parameter":
			recv = l.receiver(c)
		case "formal_parameter":
			p := at(l, &ast.Parameter{Name: l.text(c.ChildByFieldName("name"))}, c)
			p.Modifiers, p.Annotations = l.modifiers(c)
			p.Type = arrayOf(l.typ(c.ChildByFieldName("type")), dimensions(c.ChildByFieldName("dimensions")))
			out = append(out, p)
		case "spread_parameter":
			out = append(out, l.spreadParam(c))
		}
	}
	return recv, out
}

func (l *lowerer) spreadParam(n *sitter.Node) *ast.Parameter {
	p := at(l, &ast.Parameter{VarArgs: true}, n)
	p.Modifiers, p.Annotations = l.modifiers(n)
	for _, c := range named(n) {
		switch c.Type() {
		case "modifiers":
		case "variable_declarator":
			p.Name = l.text(c.ChildByFieldName("name"))
			if d := dimensions(c.ChildByFieldName("dimensions")); d > 0 {
				p.Type = arrayOf(p.Type, d)
			}
		case "annotation", "marker_annotation":
			p.VarArgsAnnotations = append(p.VarArgsAnnotations, l.annotation(c))
		default:
			if p.Type == nil {
				p.Type = l.typ(c)
			}
		}
	}
	return p
}

func (l *lowerer) receiver(n *sitter.Node) *ast.ReceiverParameter {
	r := at(l, &ast.ReceiverParameter{Name: "this"}, n)
	for _, c := range named(n) {
		switch c.Type() {
		case "annotation", "marker_annotation":
			r.Annotations = append(r.Annotations, l.annotation(c))
		case "identifier":
			r.Name = l.text(c) + ".this"
		case "this":
		default:
			if r.Type == nil {
				r.Type = l.typ(c)
			}
		}
	}
	return r
}

func (l *lowerer) typeParams(n *sitter.Node) []*ast.TypeParameter {
	var out []*ast.TypeParameter
	for _, c := range childrenOfType(n, "type_parameter") {
		tp := at(l, &ast.TypeParameter{}, c)
		for _, part := range named(c) {
			switch part.Type() {
			case "annotation", "marker_annotation":
				tp.Annotations = append(tp.Annotations, l.annotation(part))
			case "type_identifier", "identifier":
				tp.Name = l.text(part)
			case "type_bound":
				tp.Bounds = l.classTypes(part)
			}
		}
		out = append(out, tp)
	}
	return out
}

// classTypes lowers the types listed under n. Types that are not class
// types are kept as a class type named by their source text.
func (l *lowerer) classTypes(n *sitter.Node) []*ast.ClassType {
	var out []*ast.ClassType
	for _, c := range named(n) {
		switch t := l.typ(c).(type) {
		case *ast.ClassType:
			out = append(out, t)
		default:
			out = append(out, at(l, &ast.ClassType{Name: collapse(l.text(c))}, c))
		}
	}
	return out
}

func (l *lowerer) annotation(n *sitter.Node) *ast.Annotation {
	a := at(l, &ast.Annotation{Name: l.text(n.ChildByFieldName("name"))}, n)
	args := n.ChildByFieldName("arguments")
	for _, c := range named(args) {
		if c.Type() == "element_value_pair" {
			p := at(l, &ast.MemberValuePair{Name: l.text(c.ChildByFieldName("key"))}, c)
			p.Value = l.elementValue(c.ChildByFieldName("value"))
			a.Pairs = append(a.Pairs, p)
			continue
		}
		a.Value = l.elementValue(c)
	}
	return a
}

func (l *lowerer) elementValue(n *sitter.Node) ast.Expr {
	switch n.Type() {
	case "element_value_array_initializer":
		init := at(l, &ast.ArrayInit{}, n)
		for _, c := range named(n) {
			init.Values = append(init.Values, l.elementValue(c))
		}
		return init
	case "annotation", "marker_annotation":
		return l.annotation(n)
	}
	return l.expr(n)
}

// collapse joins the lines of s with single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
