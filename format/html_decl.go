package format

import (
	"github.com/dhamidi/srcview/java/ast"
)

func (p *printer) packageDecl(n *ast.PackageDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.keyword("package")
	p.out.Print(" " + Escape(n.Name))
	p.out.PrintLine(";")
	p.out.Println()
}

func (p *printer) importDecl(n *ast.ImportDecl) {
	p.attached(n)
	p.keyword("import")
	p.out.Print(" ")
	if n.Static {
		p.keyword("static")
		p.out.Print(" ")
	}
	p.out.Print(Escape(n.Name))
	if n.Asterisk {
		p.out.Print(".*")
	}
	p.out.PrintLine(";")
}

func (p *printer) typeList(kw string, ts []*ast.ClassType) {
	if len(ts) == 0 {
		return
	}
	p.out.Print(" ")
	p.keyword(kw)
	p.out.Print(" ")
	printList(p, ts, ", ")
}

// body prints the braces and members of a type declaration. The opening
// brace ends the header line.
func (p *printer) body(n ast.Node, members []ast.Member) {
	p.out.PrintLine(" {")
	p.out.Indent()
	p.members(members)
	p.endOrphans(n)
	p.out.Unindent()
	p.out.Print("}")
}

func (p *printer) classDecl(n *ast.ClassDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	if n.Interface {
		p.keyword("interface")
	} else {
		p.keyword("class")
	}
	p.out.Print(" " + Escape(n.Name))
	p.typeParams(n.TypeParams)
	p.typeList("extends", n.Extends)
	p.typeList("implements", n.Implements)
	p.typeList("permits", n.Permits)
	p.body(n, n.Members)
}

func (p *printer) recordDecl(n *ast.RecordDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.keyword("record")
	p.out.Print(" " + Escape(n.Name))
	p.typeParams(n.TypeParams)
	p.out.Print("(")
	printList(p, n.Components, ", ")
	p.out.Print(")")
	p.typeList("implements", n.Implements)
	p.body(n, n.Members)
}

func (p *printer) annotationDecl(n *ast.AnnotationDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.keyword("@interface")
	p.out.Print(` <span class="annotation">` + Escape(n.Name) + `</span>`)
	p.body(n, n.Members)
}

// enumDecl prints the constants on one line, or one per line when there are
// more than the configured maximum or any of them carries a comment.
func (p *printer) enumDecl(n *ast.EnumDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.keyword("enum")
	p.out.Print(" " + Escape(n.Name))
	p.typeList("implements", n.Implements)
	p.out.PrintLine(" {")
	p.out.Indent()

	vertical := len(n.Constants) > p.opts.MaxEnumConstantsAlignedHorizontally
	for _, c := range n.Constants {
		if ast.CommentOf(c) != nil {
			vertical = true
		}
	}
	for i, c := range n.Constants {
		p.node(c)
		if i == len(n.Constants)-1 {
			break
		}
		if vertical {
			p.out.PrintLine(",")
		} else {
			p.out.Print(", ")
		}
	}
	if len(n.Members) > 0 {
		p.out.PrintLine(";")
		p.out.Println()
		p.members(n.Members)
	} else if len(n.Constants) > 0 {
		p.out.Println()
	}

	p.endOrphans(n)
	p.out.Unindent()
	p.out.Print("}")
}

func (p *printer) enumConstant(n *ast.EnumConstant) {
	anchored := p.openAnchor(n)
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.out.Print(`<span class="enum name">` + Escape(n.Name) + `</span>`)
	if len(n.Args) > 0 {
		p.arguments(n.Args)
	}
	if n.Body != nil {
		p.body(n, n.Body)
	}
	if anchored {
		p.out.CloseAnchor()
	}
}

// fieldDecl prints the common type once and then each declarator. A single
// declarator's anchor wraps the whole declaration; with several, each
// anchor wraps only its own declarator.
func (p *printer) fieldDecl(n *ast.FieldDecl) {
	single := len(n.Variables) == 1
	wrapped := single && p.openAnchor(n.Variables[0])

	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	if t, ok := ast.CommonType(n.Variables); ok {
		p.node(t)
	} else {
		p.out.Print("???")
	}
	p.out.Print(" ")
	for i, v := range n.Variables {
		if i > 0 {
			p.out.Print(", ")
		}
		own := !single && p.openAnchor(v)
		p.node(v)
		if own {
			p.out.CloseAnchor()
		}
	}
	p.out.Print(";")

	if wrapped {
		p.out.CloseAnchor()
	}
}

// variable prints a declarator of a field or local variable declaration.
// The array dimensions beyond the declaration's common type follow the
// name.
func (p *printer) variable(n *ast.VariableDeclarator) {
	p.attached(n)
	class := "variable"
	var siblings []*ast.VariableDeclarator
	switch parent := p.parents.Parent(n).(type) {
	case *ast.FieldDecl:
		class = "field"
		siblings = parent.Variables
	case *ast.VarDeclExpr:
		siblings = parent.Variables
	}
	p.out.Print(`<span class="` + class + `">` + Escape(n.Name) + `</span>`)

	if common, ok := ast.CommonType(siblings); ok {
		t := n.Type
		for i := ast.ArrayDepth(common); i < ast.ArrayDepth(n.Type); i++ {
			a := t.(*ast.ArrayType)
			p.annotations(a.Annotations, true)
			p.out.Print("[]")
			t = a.Component
		}
	}

	if n.Init != nil {
		p.out.Print(" = ")
		p.node(n.Init)
	}
}

// varDecl prints a local variable declaration. Annotations go on their own
// lines only when the declaration is a statement.
func (p *printer) varDecl(n *ast.VarDeclExpr) {
	p.attached(n)
	if _, stmt := p.parents.Parent(n).(*ast.ExprStmt); stmt {
		p.memberAnnotations(n.Annotations)
	} else {
		p.annotations(n.Annotations, false)
	}
	p.modifiers(n.Modifiers)
	if t, ok := ast.CommonType(n.Variables); ok {
		p.node(t)
	} else {
		p.out.Print("???")
	}
	p.out.Print(" ")
	printList(p, n.Variables, ", ")
}

func (p *printer) throws(ts []ast.Type) {
	if len(ts) == 0 {
		return
	}
	p.out.Print(" ")
	p.keyword("throws")
	p.out.Print(" ")
	printList(p, ts, ", ")
}

func (p *printer) methodDecl(n *ast.MethodDecl) {
	anchored := p.openAnchor(n)
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	if len(n.TypeParams) > 0 {
		p.typeParams(n.TypeParams)
		p.out.Print(" ")
	}
	p.node(n.Type)
	p.out.Print(` <span class="method name">` + Escape(n.Name) + `</span>`)

	p.out.Print("(")
	if n.Receiver != nil {
		p.node(n.Receiver)
		if len(n.Params) > 0 {
			p.out.Print(", ")
		}
	}
	printList(p, n.Params, ", ")
	p.out.Print(")")
	p.throws(n.Throws)

	if n.Body == nil {
		p.out.Print(";")
	} else {
		p.out.Print(" ")
		p.node(n.Body)
	}
	if anchored {
		p.out.CloseAnchor()
	}
}

func (p *printer) constructorDecl(n *ast.ConstructorDecl) {
	anchored := p.openAnchor(n)
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	if len(n.TypeParams) > 0 {
		p.typeParams(n.TypeParams)
		p.out.Print(" ")
	}
	p.out.Print(`<span class="constructor method name">` + Escape(n.Name) + `</span>`)
	p.out.Print("(")
	printList(p, n.Params, ", ")
	p.out.Print(")")
	p.throws(n.Throws)
	p.out.Print(" ")
	p.node(n.Body)
	if anchored {
		p.out.CloseAnchor()
	}
}

func (p *printer) annotationMember(n *ast.AnnotationMember) {
	anchored := p.openAnchor(n)
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.node(n.Type)
	p.out.Print(` <span class="method name">` + Escape(n.Name) + `</span>()`)
	if n.Default != nil {
		p.out.Print(" ")
		p.keyword("default")
		p.out.Print(" ")
		p.node(n.Default)
	}
	p.out.Print(";")
	if anchored {
		p.out.CloseAnchor()
	}
}

func (p *printer) initializer(n *ast.InitializerDecl) {
	p.attached(n)
	if n.Static {
		p.keyword("static")
		p.out.Print(" ")
	}
	p.node(n.Body)
}

func (p *printer) parameter(n *ast.Parameter) {
	p.attached(n)
	p.annotations(n.Annotations, false)
	p.modifiers(n.Modifiers)
	p.node(n.Type)
	if n.VarArgs {
		p.annotations(n.VarArgsAnnotations, false)
		p.out.Print("...")
	}
	if _, unknown := n.Type.(*ast.UnknownType); !unknown {
		p.out.Print(" ")
	}
	p.out.Print(`<span class="variable">` + Escape(n.Name) + `</span>`)
}

func (p *printer) receiver(n *ast.ReceiverParameter) {
	p.attached(n)
	p.annotations(n.Annotations, false)
	p.node(n.Type)
	p.out.Print(" " + Escape(n.Name))
}

func (p *printer) typeParameter(n *ast.TypeParameter) {
	p.attached(n)
	p.annotations(n.Annotations, false)
	p.out.Print(Escape(n.Name))
	if len(n.Bounds) > 0 {
		p.out.Print(" ")
		p.keyword("extends")
		p.out.Print(" ")
		printList(p, n.Bounds, " &amp; ")
	}
}

func (p *printer) moduleDecl(n *ast.ModuleDecl) {
	p.attached(n)
	p.memberAnnotations(n.Annotations)
	p.out.Println()
	if n.Open {
		p.keyword("open")
		p.out.Print(" ")
	}
	p.keyword("module")
	p.out.PrintLine(" " + Escape(n.Name) + " {")
	p.out.Indent()
	for _, d := range n.Directives {
		p.node(d)
	}
	p.endOrphans(n)
	p.out.Unindent()
	p.out.PrintLine("}")
}

func (p *printer) moduleDirective(n *ast.ModuleDirective) {
	p.attached(n)
	kw := string(n.Directive)
	if kw == "" {
		kw = "???"
	}
	p.keyword(kw)
	p.out.Print(" ")
	if n.Directive == ast.DirectiveRequires {
		p.modifiers(n.Modifiers)
	}
	p.out.Print(Escape(n.Name))
	if len(n.Targets) > 0 || n.Directive == ast.DirectiveProvides {
		sep := " to "
		if n.Directive == ast.DirectiveProvides {
			sep = " with "
		}
		p.out.Print(sep)
		for i, t := range n.Targets {
			if i > 0 {
				p.out.Print(", ")
			}
			p.out.Print(Escape(t))
		}
	}
	p.out.PrintLine(";")
}
