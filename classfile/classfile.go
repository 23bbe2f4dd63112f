// Package classfile reads the parts of a JVM class file that the viewer
// shows: the header, the constant pool, fields, methods and a few
// attributes.
package classfile

import "strings"

// ClassFile is a parsed class file. Class names are internal names
// ("java/lang/String").
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	Name         string
	SuperName    string
	Interfaces   []string
	Fields       []Member
	Methods      []Member
	Attributes   []Attribute
}

// Member is a field or method.
type Member struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Attributes  []Attribute
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.Has(AccAnnotation)
}

func (cf *ClassFile) IsAnnotation() bool { return cf.AccessFlags.Has(AccAnnotation) }

func (cf *ClassFile) IsEnum() bool { return cf.AccessFlags.IsEnum() }

// Field returns the field called name.
func (cf *ClassFile) Field(name string) *Member {
	for i := range cf.Fields {
		if cf.Fields[i].Name == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

// Method returns the method with the given name and descriptor. An empty
// descriptor matches the first method of that name.
func (cf *ClassFile) Method(name, descriptor string) *Member {
	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.Name == name && (descriptor == "" || m.Descriptor == descriptor) {
			return m
		}
	}
	return nil
}

// SourceFile returns the value of the SourceFile attribute.
func (cf *ClassFile) SourceFile() string {
	idx, ok := decodeIndex(findAttribute(cf.Attributes, "SourceFile"))
	if !ok {
		return ""
	}
	return cf.ConstantPool.Utf8(idx)
}

// InnerClasses returns the entries of the InnerClasses attribute.
func (cf *ClassFile) InnerClasses() []InnerClass {
	return decodeInnerClasses(findAttribute(cf.Attributes, "InnerClasses"), cf.ConstantPool)
}

// NestedClasses returns the internal names of the classes declared directly
// inside cf.
func (cf *ClassFile) NestedClasses() []string {
	var out []string
	for _, ic := range cf.InnerClasses() {
		if ic.OuterName == cf.Name && ic.Name != cf.Name {
			out = append(out, ic.Name)
		}
	}
	return out
}

// PackageName returns the package of cf in internal form ("java/lang").
func (cf *ClassFile) PackageName() string {
	if i := strings.LastIndexByte(cf.Name, '/'); i >= 0 {
		return cf.Name[:i]
	}
	return ""
}

// Attribute returns the member attribute called name.
func (m *Member) Attribute(name string) *Attribute {
	return findAttribute(m.Attributes, name)
}

// ConstantValue returns the source text of a static final field's initial
// value.
func (m *Member) ConstantValue(cp ConstantPool) (string, bool) {
	idx, ok := decodeIndex(m.Attribute("ConstantValue"))
	if !ok {
		return "", false
	}
	return cp.Literal(idx)
}

// CodeLength returns the bytecode size of a method, or false for methods
// without a body.
func (m *Member) CodeLength() (int, bool) {
	return decodeCodeLength(m.Attribute("Code"))
}

func (m *Member) IsConstructor() bool { return m.Name == "<init>" }
