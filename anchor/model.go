package anchor

import (
	"strings"

	"github.com/dhamidi/srcview/classfile"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/java/ast"
)

// ClassLookup finds class models by internal name. *java.Registry
// implements it.
type ClassLookup interface {
	Class(name string) (*java.ClassModel, bool)
}

// javaLang lists the java.lang types that decompiled code refers to
// without an import.
var javaLang = map[string]bool{
	"Object": true, "String": true, "Class": true, "Enum": true, "Record": true,
	"Boolean": true, "Byte": true, "Character": true, "Short": true, "Integer": true,
	"Long": true, "Float": true, "Double": true, "Number": true, "Void": true,
	"Math": true, "System": true, "Thread": true, "Runnable": true, "Iterable": true,
	"Comparable": true, "CharSequence": true, "StringBuilder": true, "StringBuffer": true,
	"Throwable": true, "Exception": true, "Error": true, "RuntimeException": true,
	"IllegalArgumentException": true, "IllegalStateException": true,
	"NullPointerException": true, "UnsupportedOperationException": true,
	"IndexOutOfBoundsException": true, "ClassCastException": true,
	"InterruptedException": true, "CloneNotSupportedException": true,
	"AutoCloseable": true, "Cloneable": true, "Override": true, "Deprecated": true,
	"SuppressWarnings": true, "FunctionalInterface": true, "SafeVarargs": true,
	"ClassLoader": true, "ThreadLocal": true, "Process": true, "Runtime": true,
}

// ModelResolver derives each declaration's model ID from its source form
// and resolves it against the class models. Types are resolved through the
// declaring unit's nested types, imports, package and java.lang; type
// variables erase to their first bound. When no member matches the
// computed descriptor, a member that is the only one of its name is used.
type ModelResolver struct {
	classes ClassLookup
	parents *ast.Parents

	pkg      string
	imports  map[string]string
	wildcard []string
	declared map[ast.TypeDecl]string
	nested   map[string]string
}

// NewModelResolver prepares a resolver for the declarations of unit.
func NewModelResolver(unit *ast.CompilationUnit, classes ClassLookup) *ModelResolver {
	r := &ModelResolver{
		classes:  classes,
		parents:  ast.NewParents(unit),
		imports:  make(map[string]string),
		declared: make(map[ast.TypeDecl]string),
		nested:   make(map[string]string),
	}
	if unit.Package != nil {
		r.pkg = classfile.SourceToInternalName(unit.Package.Name)
	}
	for _, imp := range unit.Imports {
		if imp.Static {
			continue
		}
		if imp.Asterisk {
			r.wildcard = append(r.wildcard, imp.Name)
			continue
		}
		simple := imp.Name[strings.LastIndexByte(imp.Name, '.')+1:]
		r.imports[simple] = importedName(imp.Name)
	}
	for _, t := range unit.Types {
		r.declare(t, r.qualify(t.TypeName()))
	}
	return r
}

func (r *ModelResolver) qualify(simple string) string {
	if r.pkg == "" {
		return simple
	}
	return r.pkg + "/" + simple
}

// declare records the internal names of t and the member types below it.
func (r *ModelResolver) declare(t ast.TypeDecl, name string) {
	r.declared[t] = name
	if _, ok := r.nested[t.TypeName()]; !ok {
		r.nested[t.TypeName()] = name
	}
	for _, m := range members(t) {
		if inner, ok := m.(ast.TypeDecl); ok {
			r.declare(inner, name+"$"+inner.TypeName())
		}
	}
}

func members(t ast.TypeDecl) []ast.Member {
	switch t := t.(type) {
	case *ast.ClassDecl:
		return t.Members
	case *ast.EnumDecl:
		return t.Members
	case *ast.RecordDecl:
		return t.Members
	case *ast.AnnotationDecl:
		return t.Members
	}
	return nil
}

// importedName turns a dotted import into an internal name, treating
// segments after the first capitalized one as nested classes.
func importedName(dotted string) string {
	parts := strings.Split(dotted, ".")
	for i, p := range parts {
		if p != "" && p[0] >= 'A' && p[0] <= 'Z' {
			return strings.Join(parts[:i], "/") + sep(i) + strings.Join(parts[i:], "$")
		}
	}
	return strings.Join(parts, "/")
}

func sep(i int) string {
	if i == 0 {
		return ""
	}
	return "/"
}

// Resolve implements Resolver.
func (r *ModelResolver) Resolve(n ast.Node) (string, bool) {
	owner, model, ok := r.owner(n)
	if !ok {
		return "", false
	}
	switch n := n.(type) {
	case *ast.VariableDeclarator:
		if _, isField := r.parents.Parent(n).(*ast.FieldDecl); !isField {
			return "", false
		}
		desc, _ := r.descriptor(n, n.Type)
		return r.field(model, n.Name, desc)
	case *ast.EnumConstant:
		return r.field(model, n.Name, "L"+owner+";")
	case *ast.MethodDecl:
		ret, ok := r.descriptor(n, n.Type)
		params, pok := r.params(n, n.Params)
		if !ok || !pok {
			return r.method(model, n.Name, "")
		}
		return r.method(model, n.Name, "("+params+")"+ret)
	case *ast.ConstructorDecl:
		params, ok := r.params(n, n.Params)
		if !ok {
			return r.method(model, "<init>", "")
		}
		if id, ok := r.method(model, "<init>", "("+r.implicitParams(n)+params+")V"); ok {
			return id, true
		}
		return r.method(model, "<init>", "")
	case *ast.AnnotationMember:
		ret, ok := r.descriptor(n, n.Type)
		if !ok {
			return r.method(model, n.Name, "")
		}
		return r.method(model, n.Name, "()"+ret)
	}
	return "", false
}

// owner returns the internal name and model of the type declaring n.
// Members of local and anonymous classes have no owner.
func (r *ModelResolver) owner(n ast.Node) (string, *java.ClassModel, bool) {
	if r.classes == nil {
		return "", nil, false
	}
	for a := r.parents.Parent(n); a != nil; a = r.parents.Parent(a) {
		switch a := a.(type) {
		case *ast.ObjectCreationExpr, *ast.EnumConstant:
			return "", nil, false
		case ast.TypeDecl:
			name, ok := r.declared[a]
			if !ok {
				return "", nil, false
			}
			model, ok := r.classes.Class(name)
			return name, model, ok
		}
	}
	return "", nil, false
}

// field returns the anchor of the field called name. An empty or unknown
// descriptor falls back to a field that is the only one of its name.
func (r *ModelResolver) field(c *java.ClassModel, name, desc string) (string, bool) {
	if desc != "" {
		if f, ok := c.Field(name, desc); ok {
			return FieldAnchor(f.ID()), true
		}
	}
	if fs := c.FieldsNamed(name); len(fs) == 1 {
		return FieldAnchor(fs[0].ID()), true
	}
	return "", false
}

func (r *ModelResolver) method(c *java.ClassModel, name, desc string) (string, bool) {
	if desc != "" {
		if m, ok := c.Method(name, desc); ok {
			return MethodAnchor(m.ID()), true
		}
	}
	if ms := c.MethodsNamed(name); len(ms) == 1 {
		return MethodAnchor(ms[0].ID()), true
	}
	return "", false
}

// implicitParams returns the descriptors the compiler prepends to a
// constructor's parameters: name and ordinal for enums, the enclosing
// instance for inner classes.
func (r *ModelResolver) implicitParams(n *ast.ConstructorDecl) string {
	switch t := r.parents.Parent(n).(type) {
	case *ast.EnumDecl:
		return "Ljava/lang/String;I"
	case *ast.ClassDecl:
		if t.Interface || t.Modifiers.Has(ast.ModStatic) {
			return ""
		}
		outer, ok := r.parents.Parent(t).(ast.TypeDecl)
		if !ok {
			return ""
		}
		switch o := outer.(type) {
		case *ast.ClassDecl:
			if o.Interface {
				return ""
			}
		case *ast.EnumDecl:
		default:
			return ""
		}
		return "L" + r.declared[outer] + ";"
	}
	return ""
}

func (r *ModelResolver) params(at ast.Node, ps []*ast.Parameter) (string, bool) {
	var sb strings.Builder
	for _, p := range ps {
		d, ok := r.descriptor(at, p.Type)
		if !ok {
			return "", false
		}
		if p.VarArgs {
			sb.WriteByte('[')
		}
		sb.WriteString(d)
	}
	return sb.String(), true
}

// descriptor returns the erased descriptor of t as used inside at.
func (r *ModelResolver) descriptor(at ast.Node, t ast.Type) (string, bool) {
	switch t := t.(type) {
	case *ast.PrimitiveType:
		c, ok := classfile.BaseDescriptor(t.Name)
		return string(c), ok
	case *ast.VoidType:
		return "V", true
	case *ast.ArrayType:
		d, ok := r.descriptor(at, t.Component)
		return "[" + d, ok
	case *ast.IntersectionType:
		if len(t.Elements) > 0 {
			return r.descriptor(at, t.Elements[0])
		}
	case *ast.ClassType:
		if t == nil {
			return "", false
		}
		if t.Scope == nil {
			if bound, ok := r.typeVariable(at, t.Name); ok {
				if bound == nil {
					return "Ljava/lang/Object;", true
				}
				return r.descriptor(at, bound)
			}
		}
		name, ok := r.className(t)
		if !ok {
			return "", false
		}
		return "L" + name + ";", true
	}
	return "", false
}

// typeVariable looks name up among the type parameters in scope at at and
// returns its first bound, which is nil for an unbounded variable.
func (r *ModelResolver) typeVariable(at ast.Node, name string) (*ast.ClassType, bool) {
	for a := ast.Node(at); a != nil; a = r.parents.Parent(a) {
		var tps []*ast.TypeParameter
		switch a := a.(type) {
		case *ast.MethodDecl:
			tps = a.TypeParams
		case *ast.ConstructorDecl:
			tps = a.TypeParams
		case *ast.ClassDecl:
			tps = a.TypeParams
		case *ast.RecordDecl:
			tps = a.TypeParams
		}
		for _, tp := range tps {
			if tp.Name != name {
				continue
			}
			if len(tp.Bounds) == 0 {
				return nil, true
			}
			return tp.Bounds[0], true
		}
	}
	return nil, false
}

// className resolves a possibly qualified class type to an internal name.
func (r *ModelResolver) className(t *ast.ClassType) (string, bool) {
	var parts []string
	for c := t; c != nil; c = c.Scope {
		parts = append([]string{c.Name}, parts...)
	}
	if name, ok := r.simpleName(parts[0]); ok {
		for _, p := range parts[1:] {
			name += "$" + p
		}
		return name, true
	}
	if len(parts) == 1 {
		return "", false
	}
	return importedName(strings.Join(parts, ".")), true
}

func (r *ModelResolver) known(name string) bool {
	_, ok := r.classes.Class(name)
	return ok
}

// simpleName resolves an unqualified type name the way the compiler
// would, except that a name nothing else explains is taken to be in the
// unit's package.
func (r *ModelResolver) simpleName(simple string) (string, bool) {
	if name, ok := r.nested[simple]; ok {
		return name, true
	}
	if name, ok := r.imports[simple]; ok {
		return name, true
	}
	// A lower-case first segment is a package name.
	if simple == "" || simple[0] < 'A' || simple[0] > 'Z' {
		return "", false
	}
	if local := r.qualify(simple); r.known(local) {
		return local, true
	}
	for _, w := range r.wildcard {
		if name := importedName(w + "." + simple); r.known(name) {
			return name, true
		}
	}
	if javaLang[simple] {
		return "java/lang/" + simple, true
	}
	return r.qualify(simple), true
}
