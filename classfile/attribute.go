package classfile

import (
	"encoding/binary"
)

// Attribute is a named attribute with its undecoded payload.
type Attribute struct {
	Name string
	Data []byte
}

// InnerClass is one entry of an InnerClasses attribute. Names are internal
// names; OuterName and InnerName are empty for local and anonymous classes.
type InnerClass struct {
	Name        string
	OuterName   string
	InnerName   string
	AccessFlags AccessFlags
}

func findAttribute(as []Attribute, name string) *Attribute {
	for i := range as {
		if as[i].Name == name {
			return &as[i]
		}
	}
	return nil
}

func u2At(b []byte, off int) (uint16, bool) {
	if off+2 > len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint16(b[off:]), true
}

// decodeIndex reads an attribute whose payload is a single constant pool
// index, such as SourceFile or ConstantValue.
func decodeIndex(a *Attribute) (uint16, bool) {
	if a == nil {
		return 0, false
	}
	return u2At(a.Data, 0)
}

func decodeInnerClasses(a *Attribute, cp ConstantPool) []InnerClass {
	if a == nil {
		return nil
	}
	n, ok := u2At(a.Data, 0)
	if !ok || len(a.Data) < 2+int(n)*8 {
		return nil
	}
	out := make([]InnerClass, 0, n)
	for i := 0; i < int(n); i++ {
		off := 2 + i*8
		inner, _ := u2At(a.Data, off)
		outer, _ := u2At(a.Data, off+2)
		name, _ := u2At(a.Data, off+4)
		flags, _ := u2At(a.Data, off+6)
		out = append(out, InnerClass{
			Name:        cp.ClassName(inner),
			OuterName:   cp.ClassName(outer),
			InnerName:   cp.Utf8(name),
			AccessFlags: AccessFlags(flags),
		})
	}
	return out
}

// decodeCodeLength returns the bytecode length of a Code attribute.
func decodeCodeLength(a *Attribute) (int, bool) {
	if a == nil || len(a.Data) < 8 {
		return 0, false
	}
	return int(binary.BigEndian.Uint32(a.Data[4:8])), true
}
