package classfile

import (
	"fmt"
	"strings"
)

// FieldType is a parsed field descriptor. Exactly one of BaseType and
// ClassName is set.
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// BaseDescriptor returns the descriptor character of a primitive type name.
func BaseDescriptor(name string) (byte, bool) {
	for c, n := range baseTypes {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// String returns the type as written in Java source, with dots in class
// names and "[]" per dimension.
func (ft FieldType) String() string {
	name := ft.BaseType
	if name == "" {
		name = InternalToSourceName(ft.ClassName)
	}
	return name + strings.Repeat("[]", ft.ArrayDepth)
}

// Descriptor encodes ft back into descriptor form.
func (ft FieldType) Descriptor() string {
	prefix := strings.Repeat("[", ft.ArrayDepth)
	if c, ok := BaseDescriptor(ft.BaseType); ok {
		return prefix + string(c)
	}
	return prefix + "L" + ft.ClassName + ";"
}

// MethodDescriptor is a parsed method descriptor. Return is nil for void.
type MethodDescriptor struct {
	Params []FieldType
	Return *FieldType
}

// String renders the descriptor as "(int, java.lang.String) void".
func (md *MethodDescriptor) String() string {
	params := make([]string, len(md.Params))
	for i, p := range md.Params {
		params[i] = p.String()
	}
	ret := "void"
	if md.Return != nil {
		ret = md.Return.String()
	}
	return "(" + strings.Join(params, ", ") + ") " + ret
}

// ParseFieldDescriptor parses a field descriptor such as "[Ljava/lang/String;".
func ParseFieldDescriptor(desc string) (FieldType, error) {
	ft, n := parseFieldType(desc, 0)
	if n == 0 || n != len(desc) {
		return FieldType{}, fmt.Errorf("invalid field descriptor %q", desc)
	}
	return ft, nil
}

// ParseMethodDescriptor parses a method descriptor such as "(II)V".
func ParseMethodDescriptor(desc string) (*MethodDescriptor, error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, fmt.Errorf("invalid method descriptor %q", desc)
	}
	md := &MethodDescriptor{}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		ft, n := parseFieldType(desc, i)
		if n == 0 {
			return nil, fmt.Errorf("invalid parameter in method descriptor %q at %d", desc, i)
		}
		md.Params = append(md.Params, ft)
		i += n
	}
	if i >= len(desc) {
		return nil, fmt.Errorf("unterminated method descriptor %q", desc)
	}
	i++
	if desc[i:] == "V" {
		return md, nil
	}
	ret, n := parseFieldType(desc, i)
	if n == 0 || i+n != len(desc) {
		return nil, fmt.Errorf("invalid return type in method descriptor %q", desc)
	}
	md.Return = &ret
	return md, nil
}

// parseFieldType parses one type at start and returns it with the number of
// bytes consumed, which is 0 on failure.
func parseFieldType(desc string, start int) (FieldType, int) {
	var ft FieldType
	i := start
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return FieldType{}, 0
	}
	if name, ok := baseTypes[desc[i]]; ok {
		ft.BaseType = name
		return ft, i - start + 1
	}
	if desc[i] != 'L' {
		return FieldType{}, 0
	}
	semi := strings.IndexByte(desc[i:], ';')
	if semi < 2 {
		return FieldType{}, 0
	}
	ft.ClassName = desc[i+1 : i+semi]
	return ft, i - start + semi + 1
}

// InternalToSourceName turns "java/util/Map$Entry" into "java.util.Map$Entry".
func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// SourceToInternalName turns "java.util.Map" into "java/util/Map".
func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
