package ast

import "strings"

type PrimitiveType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Name        string        `json:"name"`
}

type VoidType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
}

// VarType is the "var" of a local variable with an inferred type.
type VarType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
}

// ClassType is a possibly qualified class or interface type. Scope holds
// the qualifier for nested or fully qualified names.
type ClassType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Scope       *ClassType    `json:"scope,omitempty"`
	Name        string        `json:"name"`
	TypeArgs    []Type        `json:"typeArgs,omitempty"`
	Diamond     bool          `json:"diamond,omitempty"`
}

type ArrayType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Component   Type          `json:"component"`
}

// UnionType is the type of a multi-catch parameter.
type UnionType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Elements    []Type        `json:"elements"`
}

type IntersectionType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Elements    []Type        `json:"elements"`
}

type WildcardType struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Extends     Type          `json:"extends,omitempty"`
	Super       Type          `json:"super,omitempty"`
}

// UnknownType is the missing type of an implicitly typed lambda parameter.
type UnknownType struct {
	Base
}

func (*PrimitiveType) typeNode()    {}
func (*VoidType) typeNode()         {}
func (*VarType) typeNode()          {}
func (*ClassType) typeNode()        {}
func (*ArrayType) typeNode()        {}
func (*UnionType) typeNode()        {}
func (*IntersectionType) typeNode() {}
func (*WildcardType) typeNode()     {}
func (*UnknownType) typeNode()      {}

// QualifiedName returns the dotted name of t including its scope.
func (t *ClassType) QualifiedName() string {
	if t.Scope == nil {
		return t.Name
	}
	return t.Scope.QualifiedName() + "." + t.Name
}

// ArrayDepth returns the number of array dimensions of t.
func ArrayDepth(t Type) int {
	level := 0
	for {
		a, ok := t.(*ArrayType)
		if !ok {
			return level
		}
		level++
		t = a.Component
	}
}

// StripArray removes n array dimensions from t.
func StripArray(t Type, n int) Type {
	for i := 0; i < n; i++ {
		a, ok := t.(*ArrayType)
		if !ok {
			break
		}
		t = a.Component
	}
	return t
}

// TypeString renders t as plain Java text without annotations.
func TypeString(t Type) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case nil:
	case *PrimitiveType:
		sb.WriteString(t.Name)
	case *VoidType:
		sb.WriteString("void")
	case *VarType:
		sb.WriteString("var")
	case *ClassType:
		if t.Scope != nil {
			writeType(sb, t.Scope)
			sb.WriteByte('.')
		}
		sb.WriteString(t.Name)
		if t.Diamond {
			sb.WriteString("<>")
		} else if len(t.TypeArgs) > 0 {
			sb.WriteByte('<')
			for i, a := range t.TypeArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeType(sb, a)
			}
			sb.WriteByte('>')
		}
	case *ArrayType:
		writeType(sb, t.Component)
		sb.WriteString("[]")
	case *UnionType:
		for i, e := range t.Elements {
			if i > 0 {
				sb.WriteString(" | ")
			}
			writeType(sb, e)
		}
	case *IntersectionType:
		for i, e := range t.Elements {
			if i > 0 {
				sb.WriteString(" & ")
			}
			writeType(sb, e)
		}
	case *WildcardType:
		sb.WriteByte('?')
		if t.Extends != nil {
			sb.WriteString(" extends ")
			writeType(sb, t.Extends)
		}
		if t.Super != nil {
			sb.WriteString(" super ")
			writeType(sb, t.Super)
		}
	case *UnknownType:
	}
}
