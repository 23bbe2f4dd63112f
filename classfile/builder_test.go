package classfile

import (
	"bytes"
	"encoding/binary"
	"math"
)

// classBuilder assembles class files for tests.
type classBuilder struct {
	pool    bytes.Buffer
	count   uint16
	utf8s   map[string]uint16
	classes map[string]uint16

	access     AccessFlags
	name       string
	super      string
	interfaces []string
	fields     []builtMember
	methods    []builtMember
	attrs      []builtAttr
}

type builtMember struct {
	access AccessFlags
	name   string
	desc   string
	attrs  []builtAttr
}

type builtAttr struct {
	name string
	data []byte
}

func newClassBuilder(name string) *classBuilder {
	return &classBuilder{
		count:   1,
		utf8s:   make(map[string]uint16),
		classes: make(map[string]uint16),
		access:  AccPublic | AccSuper,
		name:    name,
		super:   "java/lang/Object",
	}
}

func (b *classBuilder) add(tag ConstantTag, payload ...any) uint16 {
	idx := b.count
	b.pool.WriteByte(byte(tag))
	for _, p := range payload {
		binary.Write(&b.pool, binary.BigEndian, p)
	}
	b.count++
	if tag == ConstantLong || tag == ConstantDouble {
		b.count++
	}
	return idx
}

func (b *classBuilder) utf8(s string) uint16 {
	if idx, ok := b.utf8s[s]; ok {
		return idx
	}
	idx := b.add(ConstantUtf8, uint16(len(s)), []byte(s))
	b.utf8s[s] = idx
	return idx
}

func (b *classBuilder) class(name string) uint16 {
	if idx, ok := b.classes[name]; ok {
		return idx
	}
	idx := b.add(ConstantClass, b.utf8(name))
	b.classes[name] = idx
	return idx
}

func (b *classBuilder) integer(v int32) uint16 { return b.add(ConstantInteger, v) }

func (b *classBuilder) long(v int64) uint16 { return b.add(ConstantLong, v) }

func (b *classBuilder) double(v float64) uint16 {
	return b.add(ConstantDouble, math.Float64bits(v))
}

func (b *classBuilder) str(s string) uint16 { return b.add(ConstantString, b.utf8(s)) }

func u2(v uint16) []byte { return binary.BigEndian.AppendUint16(nil, v) }

func (b *classBuilder) field(access AccessFlags, name, desc string, attrs ...builtAttr) *classBuilder {
	b.utf8(name)
	b.utf8(desc)
	b.fields = append(b.fields, builtMember{access, name, desc, attrs})
	return b
}

func (b *classBuilder) method(access AccessFlags, name, desc string, attrs ...builtAttr) *classBuilder {
	b.utf8(name)
	b.utf8(desc)
	b.methods = append(b.methods, builtMember{access, name, desc, attrs})
	return b
}

func (b *classBuilder) constantValue(idx uint16) builtAttr {
	b.utf8("ConstantValue")
	return builtAttr{"ConstantValue", u2(idx)}
}

func (b *classBuilder) code(length int) builtAttr {
	b.utf8("Code")
	var data bytes.Buffer
	binary.Write(&data, binary.BigEndian, uint16(1))
	binary.Write(&data, binary.BigEndian, uint16(1))
	binary.Write(&data, binary.BigEndian, uint32(length))
	data.Write(make([]byte, length))
	data.Write([]byte{0, 0, 0, 0})
	return builtAttr{"Code", data.Bytes()}
}

func (b *classBuilder) sourceFile(name string) *classBuilder {
	b.utf8("SourceFile")
	b.attrs = append(b.attrs, builtAttr{"SourceFile", u2(b.utf8(name))})
	return b
}

func (b *classBuilder) innerClass(inner, outer, simple string) *classBuilder {
	b.utf8("InnerClasses")
	var entry []byte
	entry = append(entry, u2(b.class(inner))...)
	if outer == "" {
		entry = append(entry, u2(0)...)
	} else {
		entry = append(entry, u2(b.class(outer))...)
	}
	if simple == "" {
		entry = append(entry, u2(0)...)
	} else {
		entry = append(entry, u2(b.utf8(simple))...)
	}
	entry = append(entry, u2(uint16(AccStatic))...)

	for i := range b.attrs {
		if b.attrs[i].name == "InnerClasses" {
			a := &b.attrs[i]
			n := binary.BigEndian.Uint16(a.data) + 1
			a.data = append(append(u2(n), a.data[2:]...), entry...)
			return b
		}
	}
	b.attrs = append(b.attrs, builtAttr{"InnerClasses", append(u2(1), entry...)})
	return b
}

func writeAttrs(out *bytes.Buffer, b *classBuilder, attrs []builtAttr) {
	out.Write(u2(uint16(len(attrs))))
	for _, a := range attrs {
		out.Write(u2(b.utf8s[a.name]))
		binary.Write(out, binary.BigEndian, uint32(len(a.data)))
		out.Write(a.data)
	}
}

func writeMembers(out *bytes.Buffer, b *classBuilder, ms []builtMember) {
	out.Write(u2(uint16(len(ms))))
	for _, m := range ms {
		out.Write(u2(uint16(m.access)))
		out.Write(u2(b.utf8s[m.name]))
		out.Write(u2(b.utf8s[m.desc]))
		writeAttrs(out, b, m.attrs)
	}
}

func (b *classBuilder) bytes() []byte {
	this := b.class(b.name)
	var super uint16
	if b.super != "" {
		super = b.class(b.super)
	}
	var ifaces []uint16
	for _, i := range b.interfaces {
		ifaces = append(ifaces, b.class(i))
	}

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(Magic))
	out.Write(u2(0))
	out.Write(u2(61))
	out.Write(u2(b.count))
	out.Write(b.pool.Bytes())
	out.Write(u2(uint16(b.access)))
	out.Write(u2(this))
	out.Write(u2(super))
	out.Write(u2(uint16(len(ifaces))))
	for _, i := range ifaces {
		out.Write(u2(i))
	}
	writeMembers(&out, b, b.fields)
	writeMembers(&out, b, b.methods)
	writeAttrs(&out, b, b.attrs)
	return out.Bytes()
}
