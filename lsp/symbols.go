package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/java/ast"
)

func typeSymbol(t ast.TypeDecl, resolver anchor.Resolver) protocol.DocumentSymbol {
	kind := protocol.SymbolKindClass
	switch d := t.(type) {
	case *ast.ClassDecl:
		if d.Interface {
			kind = protocol.SymbolKindInterface
		}
	case *ast.EnumDecl:
		kind = protocol.SymbolKindEnum
	case *ast.AnnotationDecl:
		kind = protocol.SymbolKindInterface
	case *ast.RecordDecl:
		kind = protocol.SymbolKindStruct
	}

	sym := symbol(t.TypeName(), kind, t)
	if e, ok := t.(*ast.EnumDecl); ok {
		for _, c := range e.Constants {
			sym.Children = append(sym.Children, member(c.Name, protocol.SymbolKindEnumMember, c, resolver))
		}
	}
	for _, m := range ast.MembersOf(t) {
		switch m := m.(type) {
		case ast.TypeDecl:
			sym.Children = append(sym.Children, typeSymbol(m, resolver))
		case *ast.FieldDecl:
			for _, v := range m.Variables {
				sym.Children = append(sym.Children, member(v.Name, protocol.SymbolKindField, v, resolver))
			}
		case *ast.MethodDecl:
			sym.Children = append(sym.Children, member(m.Name, protocol.SymbolKindMethod, m, resolver))
		case *ast.ConstructorDecl:
			sym.Children = append(sym.Children, member(m.Name, protocol.SymbolKindConstructor, m, resolver))
		case *ast.AnnotationMember:
			sym.Children = append(sym.Children, member(m.Name, protocol.SymbolKindMethod, m, resolver))
		}
	}
	return sym
}

// member returns the symbol of a declaration. Its detail is the anchor
// the declaration gets in rendered output, when it has one.
func member(name string, kind protocol.SymbolKind, n ast.Node, resolver anchor.Resolver) protocol.DocumentSymbol {
	sym := symbol(name, kind, n)
	if resolver != nil {
		if id, ok := resolver.Resolve(n); ok {
			sym.Detail = &id
		}
	}
	return sym
}

func symbol(name string, kind protocol.SymbolKind, n ast.Node) protocol.DocumentSymbol {
	r := toRange(ast.SpanOf(n))
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
}

// toRange converts a 1-based span to a 0-based protocol range.
func toRange(s *ast.Span) protocol.Range {
	if s == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: position(s.Start),
		End:   position(s.End),
	}
}

func position(p ast.Position) protocol.Position {
	line, col := p.Line-1, p.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}
