package format

import (
	"sort"

	"github.com/dhamidi/srcview/java/ast"
)

// Category is the primary ordering class of a type member.
type Category int

const (
	CategoryEnumConstant Category = iota
	CategoryStatic                // static fields and static initializers
	CategoryInstance              // instance fields and instance initializers
	CategoryCallable              // methods, constructors, annotation members
	CategoryInstanceType          // inner (non-static) classes
	CategoryStaticType            // static nested types and interfaces
)

// LayoutKey orders members: by category, then by original position.
// Fields and initializers of the same static-ness share a category, so their
// execution order is never changed.
type LayoutKey struct {
	Category Category
	Index    int
}

// Less reports whether k sorts before o.
func (k LayoutKey) Less(o LayoutKey) bool {
	if k.Category != o.Category {
		return k.Category < o.Category
	}
	return k.Index < o.Index
}

// MemberCategory returns the ordering class of m.
func MemberCategory(m ast.Member) Category {
	switch m := m.(type) {
	case *ast.EnumConstant:
		return CategoryEnumConstant
	case *ast.MethodDecl, *ast.ConstructorDecl, *ast.AnnotationMember:
		return CategoryCallable
	case *ast.FieldDecl:
		if m.Modifiers.Has(ast.ModStatic) {
			return CategoryStatic
		}
		return CategoryInstance
	case *ast.InitializerDecl:
		if m.Static {
			return CategoryStatic
		}
		return CategoryInstance
	case *ast.ClassDecl:
		if m.Interface || m.Modifiers.Has(ast.ModStatic) {
			return CategoryStaticType
		}
		return CategoryInstanceType
	case ast.TypeDecl:
		if m.Mods().Has(ast.ModStatic) {
			return CategoryStaticType
		}
		return CategoryInstanceType
	}
	return CategoryCallable
}

// Key returns the layout key of m at position index.
func Key(m ast.Member, index int) LayoutKey {
	return LayoutKey{Category: MemberCategory(m), Index: index}
}

// OrderMembers returns the members in print order. The input is not
// modified. Members are stably sorted by LayoutKey; then each constructor
// moves up past the non-static methods directly before it. Constructors keep
// their relative order, as do methods.
func OrderMembers(members []ast.Member) []ast.Member {
	keys := make(map[ast.Member]LayoutKey, len(members))
	out := make([]ast.Member, len(members))
	for i, m := range members {
		keys[m] = Key(m, i)
		out[i] = m
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]].Less(keys[out[j]])
	})
	for i, m := range out {
		if _, ok := m.(*ast.ConstructorDecl); !ok {
			continue
		}
		for j := i; j > 0 && isInstanceMethod(out[j-1]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// NeedsBlankLine reports whether a blank line separates prev and cur.
// Consecutive fields stay together unless the run switches from static to
// instance fields.
func NeedsBlankLine(prev, cur ast.Member) bool {
	if prev == nil {
		return false
	}
	pf, ok := prev.(*ast.FieldDecl)
	if !ok {
		return true
	}
	cf, ok := cur.(*ast.FieldDecl)
	if !ok {
		return true
	}
	return pf.Modifiers.Has(ast.ModStatic) && !cf.Modifiers.Has(ast.ModStatic)
}

func isInstanceMethod(m ast.Member) bool {
	md, ok := m.(*ast.MethodDecl)
	return ok && !md.Modifiers.Has(ast.ModStatic)
}
