package java

import (
	"github.com/dhamidi/srcview/classfile"
)

// ClassModelFromFile parses the class file at path.
func ClassModelFromFile(path string) (*ClassModel, error) {
	cf, err := classfile.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ClassModelFromClassFile(cf), nil
}

// ClassModelFromClassFile builds the model of cf. Synthetic and bridge
// members have no source declaration and are left out.
func ClassModelFromClassFile(cf *classfile.ClassFile) *ClassModel {
	model := &ClassModel{
		Name:        cf.Name,
		SuperClass:  cf.SuperName,
		Interfaces:  cf.Interfaces,
		Visibility:  visibilityFromAccessFlags(cf.AccessFlags),
		Kind:        classKindFromClassFile(cf),
		SourceFile:  cf.SourceFile(),
		AccessFlags: cf.AccessFlags,
	}

	for i := range cf.Fields {
		f := &cf.Fields[i]
		if f.AccessFlags.IsSynthetic() {
			continue
		}
		value, _ := f.ConstantValue(cf.ConstantPool)
		model.Fields = append(model.Fields, FieldModel{
			Name:          f.Name,
			Descriptor:    f.Descriptor,
			Visibility:    visibilityFromAccessFlags(f.AccessFlags),
			IsStatic:      f.AccessFlags.IsStatic(),
			ConstantValue: value,
			AccessFlags:   f.AccessFlags,
		})
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.AccessFlags.IsSynthetic() || m.AccessFlags.Has(classfile.AccBridge) {
			continue
		}
		length, _ := m.CodeLength()
		model.Methods = append(model.Methods, MethodModel{
			Name:        m.Name,
			Descriptor:  m.Descriptor,
			Visibility:  visibilityFromAccessFlags(m.AccessFlags),
			IsStatic:    m.AccessFlags.IsStatic(),
			CodeLength:  length,
			AccessFlags: m.AccessFlags,
		})
	}

	return model
}

func visibilityFromAccessFlags(flags classfile.AccessFlags) Visibility {
	switch {
	case flags.IsPublic():
		return VisibilityPublic
	case flags.IsProtected():
		return VisibilityProtected
	case flags.IsPrivate():
		return VisibilityPrivate
	}
	return VisibilityPackage
}

func classKindFromClassFile(cf *classfile.ClassFile) ClassKind {
	switch {
	case cf.IsAnnotation():
		return ClassKindAnnotation
	case cf.IsEnum():
		return ClassKindEnum
	case cf.IsInterface():
		return ClassKindInterface
	}
	return ClassKindClass
}
