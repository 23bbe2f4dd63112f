package java

import (
	"sync"
	"testing"

	"github.com/dhamidi/srcview/classfile"
)

func TestIDs(t *testing.T) {
	if got := FieldID("count", "I"); got != "count;;I" {
		t.Errorf("FieldID = %q", got)
	}
	if got := MethodID("run", "()V"); got != "run()V" {
		t.Errorf("MethodID = %q", got)
	}
}

func TestClassModelFromClassFile(t *testing.T) {
	cf := &classfile.ClassFile{
		AccessFlags: classfile.AccPublic | classfile.AccEnum | classfile.AccFinal,
		Name:        "com/example/Color",
		SuperName:   "java/lang/Enum",
		Fields: []classfile.Member{
			{AccessFlags: classfile.AccPublic | classfile.AccStatic | classfile.AccEnum, Name: "RED", Descriptor: "Lcom/example/Color;"},
			{AccessFlags: classfile.AccPrivate | classfile.AccStatic | classfile.AccSynthetic, Name: "$VALUES", Descriptor: "[Lcom/example/Color;"},
		},
		Methods: []classfile.Member{
			{AccessFlags: classfile.AccPrivate, Name: "<init>", Descriptor: "(Ljava/lang/String;I)V"},
			{AccessFlags: classfile.AccPublic | classfile.AccBridge | classfile.AccSynthetic, Name: "compareTo", Descriptor: "(Ljava/lang/Object;)I"},
		},
	}

	m := ClassModelFromClassFile(cf)
	if m.Kind != ClassKindEnum {
		t.Errorf("Kind = %q", m.Kind)
	}
	if m.SimpleName() != "Color" || m.Package() != "com/example" || m.SourceName() != "com.example.Color" {
		t.Errorf("names = %q %q %q", m.SimpleName(), m.Package(), m.SourceName())
	}
	if len(m.Fields) != 1 || m.Fields[0].ID() != "RED;;Lcom/example/Color;" {
		t.Errorf("Fields = %+v", m.Fields)
	}
	if len(m.Methods) != 1 || m.Methods[0].ID() != "<init>(Ljava/lang/String;I)V" {
		t.Errorf("Methods = %+v", m.Methods)
	}
	if m.Methods[0].Visibility != VisibilityPrivate {
		t.Errorf("Visibility = %q", m.Methods[0].Visibility)
	}
}

func TestClassModelLookups(t *testing.T) {
	c := &ClassModel{
		Name: "p/A",
		Fields: []FieldModel{
			{Name: "x", Descriptor: "I"},
			{Name: "x", Descriptor: "J"},
		},
		Methods: []MethodModel{
			{Name: "f", Descriptor: "()V"},
			{Name: "f", Descriptor: "(I)V"},
			{Name: "g", Descriptor: "()V"},
		},
	}

	tests := []struct {
		name  string
		found bool
		got   func() bool
	}{
		{"field by descriptor", true, func() bool { _, ok := c.Field("x", "J"); return ok }},
		{"field wrong descriptor", false, func() bool { _, ok := c.Field("x", "Z"); return ok }},
		{"method overload", true, func() bool { _, ok := c.Method("f", "(I)V"); return ok }},
		{"missing method", false, func() bool { _, ok := c.Method("h", "()V"); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.found {
				t.Errorf("found = %v, want %v", got, tt.found)
			}
		})
	}

	if n := len(c.FieldsNamed("x")); n != 2 {
		t.Errorf("FieldsNamed = %d", n)
	}
	if n := len(c.MethodsNamed("f")); n != 2 {
		t.Errorf("MethodsNamed = %d", n)
	}
}

func TestRegistryInnerClasses(t *testing.T) {
	r := NewRegistry()
	r.Add(&ClassModel{Name: "p/Outer$Inner$Deep"})
	r.Add(&ClassModel{Name: "p/Outer$Inner", Fields: []FieldModel{{Name: "f", Descriptor: "I"}}})
	r.Add(&ClassModel{Name: "p/Outer"})

	outer, ok := r.Class("p.Outer")
	if !ok {
		t.Fatal("outer not registered")
	}
	if len(outer.Inner) != 1 || outer.Inner[0].Name != "p/Outer$Inner" {
		t.Fatalf("outer.Inner = %v", outer.Inner)
	}
	inner := outer.Inner[0]
	if len(inner.Fields) != 1 {
		t.Error("placeholder was not replaced by the real inner class")
	}
	if len(inner.Inner) != 1 || inner.Inner[0].Name != "p/Outer$Inner$Deep" {
		t.Errorf("inner.Inner = %v", inner.Inner)
	}

	want := []string{"p/Outer", "p/Outer$Inner", "p/Outer$Inner$Deep"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Add(&ClassModel{Name: "p/C" + string(rune('a'+i))})
			r.Class("p/Ca")
			r.Names()
		}(i)
	}
	wg.Wait()
	if r.Len() != 8 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func TestLoadDirMissing(t *testing.T) {
	if err := NewRegistry().LoadDir(t.TempDir() + "/missing"); err == nil {
		t.Error("LoadDir on a missing directory succeeded")
	}
}
