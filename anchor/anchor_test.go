package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/java/ast"
)

func TestEscapeID(t *testing.T) {
	tests := []struct {
		id      string
		escaped string
	}{
		{"count;;I", "count_3b_3bI"},
		{"<init>(I)V", "_3cinit_3e_28I_29V"},
		{"a_b", "a_5fb"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.escaped, EscapeID(tt.id))
			back, err := UnescapeID(tt.escaped)
			require.NoError(t, err)
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestUnescapeIDErrors(t *testing.T) {
	for _, s := range []string{"a-b", "_3", "_zz", "_3B"} {
		_, err := UnescapeID(s)
		assert.Error(t, err, s)
	}
}

func TestParseAnchor(t *testing.T) {
	kind, id, err := ParseAnchor(MethodAnchor("run()V"))
	require.NoError(t, err)
	assert.Equal(t, KindMethod, kind)
	assert.Equal(t, "run()V", id)

	kind, id, err = ParseAnchor(FieldAnchor("x;;J"))
	require.NoError(t, err)
	assert.Equal(t, KindField, kind)
	assert.Equal(t, "x;;J", id)

	for _, bad := range []string{"nokind", "class-A", "field-a;b"} {
		_, _, err := ParseAnchor(bad)
		assert.Error(t, err, bad)
	}
}

func TestMapResolver(t *testing.T) {
	n := &ast.FieldDecl{}
	r := MapResolver{n: "field-x"}

	id, ok := r.Resolve(n)
	assert.True(t, ok)
	assert.Equal(t, "field-x", id)

	_, ok = r.Resolve(&ast.FieldDecl{})
	assert.False(t, ok)

	_, ok = None.Resolve(n)
	assert.False(t, ok)
}

type sample struct {
	unit *ast.CompilationUnit

	count, names, list *ast.VariableDeclarator
	items, overInt     *ast.MethodDecl
	overString, local  *ast.MethodDecl
	anonymous          *ast.MethodDecl
	ctor, innerCtor    *ast.ConstructorDecl
	colorCtor          *ast.ConstructorDecl
	red                *ast.EnumConstant
	value              *ast.AnnotationMember
	lonely             *ast.MethodDecl
}

func classType(name string) *ast.ClassType { return &ast.ClassType{Name: name} }

func prim(name string) *ast.PrimitiveType { return &ast.PrimitiveType{Name: name} }

func param(t ast.Type, name string) *ast.Parameter { return &ast.Parameter{Type: t, Name: name} }

func void(name string, params ...*ast.Parameter) *ast.MethodDecl {
	return &ast.MethodDecl{Type: &ast.VoidType{}, Name: name, Params: params, Body: &ast.BlockStmt{}}
}

// newSample builds
//
//	package com.example;
//	import java.util.List;
//	class Outer<T extends Number> {
//		int count; String[] names; List<T> list;
//		List<T> items(T x, int... rest) {}
//		Outer(int a) {}
//		void over(int a) {} void over(String s) {}
//		void lonely(Unknown u) {}
//		void local() { class L { void hidden() {} } }
//		void anon() { new Runnable() { public void run() {} }; }
//		class Inner { Inner(String s) {} }
//		enum Color { RED; Color() {} }
//		@interface Tag { int value(); }
//	}
func newSample() *sample {
	s := &sample{
		count: &ast.VariableDeclarator{Name: "count", Type: prim("int")},
		names: &ast.VariableDeclarator{Name: "names", Type: &ast.ArrayType{Component: classType("String")}},
		list:  &ast.VariableDeclarator{Name: "list", Type: &ast.ClassType{Name: "List", TypeArgs: []ast.Type{classType("T")}}},
	}
	s.items = &ast.MethodDecl{
		Type: &ast.ClassType{Name: "List", TypeArgs: []ast.Type{classType("T")}},
		Name: "items",
		Params: []*ast.Parameter{
			param(classType("T"), "x"),
			{Type: prim("int"), Name: "rest", VarArgs: true},
		},
		Body: &ast.BlockStmt{},
	}
	s.ctor = &ast.ConstructorDecl{Name: "Outer", Params: []*ast.Parameter{param(prim("int"), "a")}, Body: &ast.BlockStmt{}}
	s.overInt = void("over", param(prim("int"), "a"))
	s.overString = void("over", param(classType("String"), "s"))
	s.lonely = void("lonely", param(classType("Unknown"), "u"))

	hidden := void("hidden")
	s.local = hidden
	localHost := void("local")
	localHost.Body.Stmts = []ast.Stmt{&ast.LocalClassStmt{Decl: &ast.ClassDecl{Name: "L", Members: []ast.Member{hidden}}}}

	s.anonymous = void("run")
	anonHost := void("anon")
	anonHost.Body.Stmts = []ast.Stmt{&ast.ExprStmt{X: &ast.ObjectCreationExpr{
		Type:      classType("Runnable"),
		Anonymous: true,
		Body:      []ast.Member{s.anonymous},
	}}}

	s.innerCtor = &ast.ConstructorDecl{Name: "Inner", Params: []*ast.Parameter{param(classType("String"), "s")}, Body: &ast.BlockStmt{}}
	s.red = &ast.EnumConstant{Name: "RED"}
	s.colorCtor = &ast.ConstructorDecl{Name: "Color", Body: &ast.BlockStmt{}}
	s.value = &ast.AnnotationMember{Type: prim("int"), Name: "value"}

	outer := &ast.ClassDecl{
		Name:       "Outer",
		TypeParams: []*ast.TypeParameter{{Name: "T", Bounds: []*ast.ClassType{classType("Number")}}},
		Members: []ast.Member{
			&ast.FieldDecl{Variables: []*ast.VariableDeclarator{s.count}},
			&ast.FieldDecl{Variables: []*ast.VariableDeclarator{s.names}},
			&ast.FieldDecl{Variables: []*ast.VariableDeclarator{s.list}},
			s.items, s.ctor, s.overInt, s.overString, s.lonely, localHost, anonHost,
			&ast.ClassDecl{Name: "Inner", Members: []ast.Member{s.innerCtor}},
			&ast.EnumDecl{Name: "Color", Constants: []*ast.EnumConstant{s.red}, Members: []ast.Member{s.colorCtor}},
			&ast.AnnotationDecl{Name: "Tag", Members: []ast.Member{s.value}},
		},
	}
	s.unit = &ast.CompilationUnit{
		Package: &ast.PackageDecl{Name: "com.example"},
		Imports: []*ast.ImportDecl{{Name: "java.util.List"}},
		Types:   []ast.TypeDecl{outer},
	}
	return s
}

func sampleRegistry() *java.Registry {
	r := java.NewRegistry()
	r.Add(&java.ClassModel{
		Name: "com/example/Outer",
		Fields: []java.FieldModel{
			{Name: "count", Descriptor: "I"},
			{Name: "names", Descriptor: "[Ljava/lang/String;"},
			{Name: "list", Descriptor: "Ljava/util/List;"},
		},
		Methods: []java.MethodModel{
			{Name: "items", Descriptor: "(Ljava/lang/Number;[I)Ljava/util/List;"},
			{Name: "<init>", Descriptor: "(I)V"},
			{Name: "over", Descriptor: "(I)V"},
			{Name: "over", Descriptor: "(Ljava/lang/String;)V"},
			{Name: "lonely", Descriptor: "(Lcom/other/Unknown;)V"},
			{Name: "local", Descriptor: "()V"},
			{Name: "anon", Descriptor: "()V"},
		},
	})
	r.Add(&java.ClassModel{
		Name:    "com/example/Outer$Inner",
		Methods: []java.MethodModel{{Name: "<init>", Descriptor: "(Lcom/example/Outer;Ljava/lang/String;)V"}},
	})
	r.Add(&java.ClassModel{
		Name:    "com/example/Outer$Color",
		Fields:  []java.FieldModel{{Name: "RED", Descriptor: "Lcom/example/Outer$Color;"}},
		Methods: []java.MethodModel{{Name: "<init>", Descriptor: "(Ljava/lang/String;I)V"}},
	})
	r.Add(&java.ClassModel{
		Name:    "com/example/Outer$Tag",
		Methods: []java.MethodModel{{Name: "value", Descriptor: "()I"}},
	})
	return r
}

func TestModelResolver(t *testing.T) {
	s := newSample()
	r := NewModelResolver(s.unit, sampleRegistry())

	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{"primitive field", s.count, FieldAnchor("count;;I")},
		{"java.lang array field", s.names, FieldAnchor("names;;[Ljava/lang/String;")},
		{"imported generic field", s.list, FieldAnchor("list;;Ljava/util/List;")},
		{"erased type variable and varargs", s.items, MethodAnchor("items(Ljava/lang/Number;[I)Ljava/util/List;")},
		{"constructor", s.ctor, MethodAnchor("<init>(I)V")},
		{"overload by int", s.overInt, MethodAnchor("over(I)V")},
		{"overload by String", s.overString, MethodAnchor("over(Ljava/lang/String;)V")},
		{"unique name fallback", s.lonely, MethodAnchor("lonely(Lcom/other/Unknown;)V")},
		{"inner class constructor", s.innerCtor, MethodAnchor("<init>(Lcom/example/Outer;Ljava/lang/String;)V")},
		{"enum constructor", s.colorCtor, MethodAnchor("<init>(Ljava/lang/String;I)V")},
		{"enum constant", s.red, FieldAnchor("RED;;Lcom/example/Outer$Color;")},
		{"annotation member", s.value, MethodAnchor("value()I")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.node)
			require.True(t, ok)
			assert.Equal(t, tt.expected, id)
		})
	}

	t.Run("local class member", func(t *testing.T) {
		_, ok := r.Resolve(s.local)
		assert.False(t, ok)
	})

	t.Run("anonymous class member", func(t *testing.T) {
		_, ok := r.Resolve(s.anonymous)
		assert.False(t, ok)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, ok := NewModelResolver(s.unit, java.NewRegistry()).Resolve(s.count)
		assert.False(t, ok)
	})
}

func TestExtract(t *testing.T) {
	rendered := `<span class="keyword">int</span> <span id="field-a_3b_3bI">a</span>;` + "\n" +
		`<span id="method-run_28_29V">void run() {}</span>` + "\n" +
		`<span id="other">x</span>`

	ids, err := Extract(rendered)
	require.NoError(t, err)
	assert.Equal(t, []string{"field-a_3b_3bI", "method-run_28_29V"}, ids)
}
