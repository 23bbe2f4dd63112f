package format

import (
	"github.com/dhamidi/srcview/java/ast"
)

func (p *printer) primitiveType(n *ast.PrimitiveType) {
	p.attached(n)
	p.annotations(n.Annotations, true)
	p.keyword(Escape(n.Name))
}

func (p *printer) keywordType(n ast.Type, as []*ast.Annotation, kw string) {
	p.attached(n)
	p.annotations(as, false)
	p.keyword(kw)
}

func (p *printer) classType(n *ast.ClassType) {
	p.attached(n)
	if n.Scope != nil {
		p.node(n.Scope)
		p.out.Print(".")
	}
	p.annotations(n.Annotations, false)
	p.out.Print(Escape(n.Name))
	if n.Diamond {
		p.out.Print("&lt;&gt;")
		return
	}
	p.typeArgs(n.TypeArgs)
}

// arrayType prints the element type followed by one "[]" per dimension,
// each preceded by the annotations of its level.
func (p *printer) arrayType(n *ast.ArrayType) {
	p.attached(n)
	var levels []*ast.ArrayType
	var t ast.Type = n
	for {
		a, ok := t.(*ast.ArrayType)
		if !ok || a == nil {
			break
		}
		levels = append(levels, a)
		t = a.Component
	}
	p.node(t)
	for _, a := range levels {
		if a != n {
			p.attached(a)
		}
		p.annotations(a.Annotations, true)
		p.out.Print("[]")
	}
}

func (p *printer) wildcardType(n *ast.WildcardType) {
	p.attached(n)
	p.annotations(n.Annotations, false)
	p.out.Print("?")
	if n.Extends != nil {
		p.out.Print(" ")
		p.keyword("extends")
		p.out.Print(" ")
		p.node(n.Extends)
	}
	if n.Super != nil {
		p.out.Print(" ")
		p.keyword("super")
		p.out.Print(" ")
		p.node(n.Super)
	}
}
