package ast

// CompilationUnit is the root of a tree. Unparsable is set when the
// decompiler output could not be turned into a tree at all; Partial is set
// when declarations that could not be parsed were left out.
type CompilationUnit struct {
	Base
	Package    *PackageDecl  `json:"package,omitempty"`
	Imports    []*ImportDecl `json:"imports,omitempty"`
	Types      []TypeDecl    `json:"types,omitempty"`
	Module     *ModuleDecl   `json:"module,omitempty"`
	Unparsable bool          `json:"unparsable,omitempty"`
	Partial    bool          `json:"partial,omitempty"`
}

type PackageDecl struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Name        string        `json:"name"`
}

type ImportDecl struct {
	Base
	Name     string `json:"name"`
	Static   bool   `json:"static,omitempty"`
	Asterisk bool   `json:"asterisk,omitempty"`
}

// ClassDecl is a class or interface declaration.
type ClassDecl struct {
	Base
	Modifiers   Modifiers        `json:"modifiers,omitempty"`
	Annotations []*Annotation    `json:"annotations,omitempty"`
	Interface   bool             `json:"interface,omitempty"`
	Name        string           `json:"name"`
	TypeParams  []*TypeParameter `json:"typeParams,omitempty"`
	Extends     []*ClassType     `json:"extends,omitempty"`
	Implements  []*ClassType     `json:"implements,omitempty"`
	Permits     []*ClassType     `json:"permits,omitempty"`
	Members     []Member         `json:"members,omitempty"`
}

type EnumDecl struct {
	Base
	Modifiers   Modifiers       `json:"modifiers,omitempty"`
	Annotations []*Annotation   `json:"annotations,omitempty"`
	Name        string          `json:"name"`
	Implements  []*ClassType    `json:"implements,omitempty"`
	Constants   []*EnumConstant `json:"constants,omitempty"`
	Members     []Member        `json:"members,omitempty"`
}

type AnnotationDecl struct {
	Base
	Modifiers   Modifiers     `json:"modifiers,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Name        string        `json:"name"`
	Members     []Member      `json:"members,omitempty"`
}

type RecordDecl struct {
	Base
	Modifiers   Modifiers        `json:"modifiers,omitempty"`
	Annotations []*Annotation    `json:"annotations,omitempty"`
	Name        string           `json:"name"`
	TypeParams  []*TypeParameter `json:"typeParams,omitempty"`
	Components  []*Parameter     `json:"components,omitempty"`
	Implements  []*ClassType     `json:"implements,omitempty"`
	Members     []Member         `json:"members,omitempty"`
}

// FieldDecl declares one or more fields sharing modifiers and a base type.
// Each declarator carries its full type, including its own array suffixes.
type FieldDecl struct {
	Base
	Modifiers   Modifiers             `json:"modifiers,omitempty"`
	Annotations []*Annotation         `json:"annotations,omitempty"`
	Variables   []*VariableDeclarator `json:"variables"`
}

type VariableDeclarator struct {
	Base
	Name string `json:"name"`
	Type Type   `json:"type"`
	Init Expr   `json:"init,omitempty"`
}

type MethodDecl struct {
	Base
	Modifiers   Modifiers          `json:"modifiers,omitempty"`
	Annotations []*Annotation      `json:"annotations,omitempty"`
	TypeParams  []*TypeParameter   `json:"typeParams,omitempty"`
	Type        Type               `json:"type"`
	Name        string             `json:"name"`
	Receiver    *ReceiverParameter `json:"receiver,omitempty"`
	Params      []*Parameter       `json:"params,omitempty"`
	Throws      []Type             `json:"throws,omitempty"`
	Body        *BlockStmt         `json:"body,omitempty"`
}

type ConstructorDecl struct {
	Base
	Modifiers   Modifiers        `json:"modifiers,omitempty"`
	Annotations []*Annotation    `json:"annotations,omitempty"`
	TypeParams  []*TypeParameter `json:"typeParams,omitempty"`
	Name        string           `json:"name"`
	Params      []*Parameter     `json:"params,omitempty"`
	Throws      []Type           `json:"throws,omitempty"`
	Body        *BlockStmt       `json:"body"`
}

type Parameter struct {
	Base
	Modifiers          Modifiers     `json:"modifiers,omitempty"`
	Annotations        []*Annotation `json:"annotations,omitempty"`
	Type               Type          `json:"type"`
	VarArgs            bool          `json:"varArgs,omitempty"`
	VarArgsAnnotations []*Annotation `json:"varArgsAnnotations,omitempty"`
	Name               string        `json:"name"`
}

type ReceiverParameter struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Type        Type          `json:"type"`
	Name        string        `json:"name"`
}

// InitializerDecl is a static or instance initializer block.
type InitializerDecl struct {
	Base
	Static bool       `json:"static,omitempty"`
	Body   *BlockStmt `json:"body"`
}

// EnumConstant is one constant of an enum. Body is non-nil when the
// constant has a class body, even an empty one.
type EnumConstant struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Name        string        `json:"name"`
	Args        []Expr        `json:"args,omitempty"`
	Body        []Member      `json:"body,omitempty"`
}

type AnnotationMember struct {
	Base
	Modifiers   Modifiers     `json:"modifiers,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Type        Type          `json:"type"`
	Name        string        `json:"name"`
	Default     Expr          `json:"default,omitempty"`
}

type TypeParameter struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Name        string        `json:"name"`
	Bounds      []*ClassType  `json:"bounds,omitempty"`
}

type ModuleDecl struct {
	Base
	Annotations []*Annotation      `json:"annotations,omitempty"`
	Open        bool               `json:"open,omitempty"`
	Name        string             `json:"name"`
	Directives  []*ModuleDirective `json:"directives,omitempty"`
}

// DirectiveKind selects the keyword of a module directive.
type DirectiveKind string

const (
	DirectiveRequires DirectiveKind = "requires"
	DirectiveExports  DirectiveKind = "exports"
	DirectiveOpens    DirectiveKind = "opens"
	DirectiveUses     DirectiveKind = "uses"
	DirectiveProvides DirectiveKind = "provides"
)

// ModuleDirective is a single directive of a module declaration. Targets
// holds the "to" modules of exports/opens and the "with" types of provides.
type ModuleDirective struct {
	Base
	Directive DirectiveKind `json:"directive"`
	Modifiers Modifiers     `json:"modifiers,omitempty"`
	Name      string        `json:"name"`
	Targets   []string      `json:"targets,omitempty"`
}

func (*ClassDecl) memberNode()        {}
func (*EnumDecl) memberNode()         {}
func (*AnnotationDecl) memberNode()   {}
func (*RecordDecl) memberNode()       {}
func (*FieldDecl) memberNode()        {}
func (*MethodDecl) memberNode()       {}
func (*ConstructorDecl) memberNode()  {}
func (*InitializerDecl) memberNode()  {}
func (*EnumConstant) memberNode()     {}
func (*AnnotationMember) memberNode() {}

func (d *ClassDecl) TypeName() string      { return d.Name }
func (d *EnumDecl) TypeName() string       { return d.Name }
func (d *AnnotationDecl) TypeName() string { return d.Name }
func (d *RecordDecl) TypeName() string     { return d.Name }

func (d *ClassDecl) Mods() Modifiers      { return d.Modifiers }
func (d *EnumDecl) Mods() Modifiers       { return d.Modifiers }
func (d *AnnotationDecl) Mods() Modifiers { return d.Modifiers }
func (d *RecordDecl) Mods() Modifiers     { return d.Modifiers }

// MembersOf returns the body members of a type declaration.
func MembersOf(d TypeDecl) []Member {
	switch d := d.(type) {
	case *ClassDecl:
		return d.Members
	case *EnumDecl:
		return d.Members
	case *AnnotationDecl:
		return d.Members
	case *RecordDecl:
		return d.Members
	}
	return nil
}

// CommonType returns the maximum common type of the declarators: the type
// shared by all of them with the smallest array depth. It reports false
// when the declarators do not share an element type.
func CommonType(vars []*VariableDeclarator) (Type, bool) {
	if len(vars) == 0 || vars[0].Type == nil {
		return nil, false
	}
	minLevel := ArrayDepth(vars[0].Type)
	for _, v := range vars[1:] {
		if v.Type == nil {
			return nil, false
		}
		if l := ArrayDepth(v.Type); l < minLevel {
			minLevel = l
		}
	}
	common := StripArray(vars[0].Type, ArrayDepth(vars[0].Type)-minLevel)
	key := TypeString(common)
	for _, v := range vars[1:] {
		t := StripArray(v.Type, ArrayDepth(v.Type)-minLevel)
		if TypeString(t) != key {
			return nil, false
		}
	}
	return common, true
}
