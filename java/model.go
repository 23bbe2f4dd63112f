// Package java holds the class models that anchors point at: each class
// with its fields and methods, keyed the way the viewer identifies them.
package java

import (
	"strings"

	"github.com/dhamidi/srcview/classfile"
)

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// ClassModel is a class as seen by the viewer. Name is the internal name
// ("com/example/Outer$Inner").
type ClassModel struct {
	Name        string
	SuperClass  string
	Interfaces  []string
	Visibility  Visibility
	Kind        ClassKind
	SourceFile  string
	Fields      []FieldModel
	Methods     []MethodModel
	Inner       []*ClassModel
	AccessFlags classfile.AccessFlags
}

// FieldModel is a field of a class. AccessFlags is zero for models not read
// from a class file.
type FieldModel struct {
	Name          string
	Descriptor    string
	Visibility    Visibility
	IsStatic      bool
	ConstantValue string
	AccessFlags   classfile.AccessFlags
}

type MethodModel struct {
	Name        string
	Descriptor  string
	Visibility  Visibility
	IsStatic    bool
	CodeLength  int
	AccessFlags classfile.AccessFlags
}

// FieldID returns the identifier of a field: its name and descriptor
// joined by ";;".
func FieldID(name, desc string) string { return name + ";;" + desc }

// MethodID returns the identifier of a method: its name followed directly
// by its descriptor.
func MethodID(name, desc string) string { return name + desc }

func (f FieldModel) ID() string { return FieldID(f.Name, f.Descriptor) }

func (m MethodModel) ID() string { return MethodID(m.Name, m.Descriptor) }

// SourceName returns the dotted name ("com.example.Outer$Inner").
func (c *ClassModel) SourceName() string { return classfile.InternalToSourceName(c.Name) }

// SimpleName returns the name after the package and any enclosing class.
func (c *ClassModel) SimpleName() string {
	name := c.Name[strings.LastIndexByte(c.Name, '/')+1:]
	return name[strings.LastIndexByte(name, '$')+1:]
}

// Package returns the package in internal form.
func (c *ClassModel) Package() string {
	if i := strings.LastIndexByte(c.Name, '/'); i >= 0 {
		return c.Name[:i]
	}
	return ""
}

// FieldsNamed returns the fields called name. Class files may hold several
// fields of one name with different descriptors.
func (c *ClassModel) FieldsNamed(name string) []FieldModel {
	var out []FieldModel
	for _, f := range c.Fields {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// Field returns the field with the given name and descriptor.
func (c *ClassModel) Field(name, desc string) (FieldModel, bool) {
	for _, f := range c.Fields {
		if f.Name == name && f.Descriptor == desc {
			return f, true
		}
	}
	return FieldModel{}, false
}

// MethodsNamed returns the overloads of name.
func (c *ClassModel) MethodsNamed(name string) []MethodModel {
	var out []MethodModel
	for _, m := range c.Methods {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// Method returns the method with the given name and descriptor.
func (c *ClassModel) Method(name, desc string) (MethodModel, bool) {
	for _, m := range c.Methods {
		if m.Name == name && m.Descriptor == desc {
			return m, true
		}
	}
	return MethodModel{}, false
}
