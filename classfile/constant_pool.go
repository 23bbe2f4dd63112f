package classfile

import (
	"strconv"
)

// ConstantPoolEntry is one slot of the constant pool.
type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct{ Value string }

type ConstantIntegerInfo struct{ Value int32 }

type ConstantFloatInfo struct{ Value float32 }

type ConstantLongInfo struct{ Value int64 }

type ConstantDoubleInfo struct{ Value float64 }

type ConstantClassInfo struct{ NameIndex uint16 }

type ConstantStringInfo struct{ StringIndex uint16 }

// ConstantRefInfo is a field, method or interface method reference.
type ConstantRefInfo struct {
	RefTag           ConstantTag
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

type ConstantMethodHandleInfo struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

type ConstantMethodTypeInfo struct{ DescriptorIndex uint16 }

// ConstantDynamicInfo is a dynamic constant or an invokedynamic call site.
type ConstantDynamicInfo struct {
	DynTag                   ConstantTag
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

// ConstantNamedInfo is a module or package entry.
type ConstantNamedInfo struct {
	NamedTag  ConstantTag
	NameIndex uint16
}

func (*ConstantUtf8Info) Tag() ConstantTag         { return ConstantUtf8 }
func (*ConstantIntegerInfo) Tag() ConstantTag      { return ConstantInteger }
func (*ConstantFloatInfo) Tag() ConstantTag        { return ConstantFloat }
func (*ConstantLongInfo) Tag() ConstantTag         { return ConstantLong }
func (*ConstantDoubleInfo) Tag() ConstantTag       { return ConstantDouble }
func (*ConstantClassInfo) Tag() ConstantTag        { return ConstantClass }
func (*ConstantStringInfo) Tag() ConstantTag       { return ConstantString }
func (c *ConstantRefInfo) Tag() ConstantTag        { return c.RefTag }
func (*ConstantNameAndTypeInfo) Tag() ConstantTag  { return ConstantNameAndType }
func (*ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }
func (*ConstantMethodTypeInfo) Tag() ConstantTag   { return ConstantMethodType }
func (c *ConstantDynamicInfo) Tag() ConstantTag    { return c.DynTag }
func (c *ConstantNamedInfo) Tag() ConstantTag      { return c.NamedTag }

// ConstantPool is indexed from 1 as in the class file. The slot after a
// long or double is nil.
type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) ConstantPoolEntry {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

// Utf8 returns the string at index, or "" when index is not a Utf8 entry.
func (cp ConstantPool) Utf8(index uint16) string {
	if e, ok := cp.entry(index).(*ConstantUtf8Info); ok {
		return e.Value
	}
	return ""
}

// ClassName returns the internal name of the class entry at index.
func (cp ConstantPool) ClassName(index uint16) string {
	if e, ok := cp.entry(index).(*ConstantClassInfo); ok {
		return cp.Utf8(e.NameIndex)
	}
	return ""
}

// Literal returns the Java source text of a loadable constant, as used by
// ConstantValue attributes.
func (cp ConstantPool) Literal(index uint16) (string, bool) {
	switch e := cp.entry(index).(type) {
	case *ConstantIntegerInfo:
		return strconv.FormatInt(int64(e.Value), 10), true
	case *ConstantLongInfo:
		return strconv.FormatInt(e.Value, 10) + "L", true
	case *ConstantFloatInfo:
		return strconv.FormatFloat(float64(e.Value), 'g', -1, 32) + "f", true
	case *ConstantDoubleInfo:
		return strconv.FormatFloat(e.Value, 'g', -1, 64), true
	case *ConstantStringInfo:
		return strconv.Quote(cp.Utf8(e.StringIndex)), true
	}
	return "", false
}
