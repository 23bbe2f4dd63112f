package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// FormatError reports a class file that is truncated or malformed.
type FormatError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("class file offset %d: %s: %v", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("class file offset %d: %s", e.Offset, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

// reader reads big-endian values and remembers the first failure, so that
// a run of reads can be checked once.
type reader struct {
	data []byte
	pos  int
	err  *FormatError
}

func (r *reader) fail(msg string, err error) {
	if r.err == nil {
		r.err = &FormatError{Offset: r.pos, Msg: msg, Err: err}
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.fail(fmt.Sprintf("need %d bytes", n), io.ErrUnexpectedEOF)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u1() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u2() uint16 {
	if b := r.take(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (r *reader) u4() uint32 {
	if b := r.take(4); b != nil {
		return binary.BigEndian.Uint32(b)
	}
	return 0
}

// ParseFile reads and parses the class file at path.
func ParseFile(path string) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return ParseBytes(data)
}

// Parse reads a class file from rd.
func Parse(rd io.Reader) (*ClassFile, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return ParseBytes(buf.Bytes())
}

// ParseBytes parses a class file held in memory. Malformed input yields a
// *FormatError.
func ParseBytes(data []byte) (*ClassFile, error) {
	r := &reader{data: data}

	if magic := r.u4(); r.err == nil && magic != Magic {
		return nil, &FormatError{Msg: fmt.Sprintf("invalid magic number 0x%X", magic)}
	}
	cf := &ClassFile{
		MinorVersion: r.u2(),
		MajorVersion: r.u2(),
	}

	count := r.u2()
	if r.err == nil && count == 0 {
		r.fail("constant pool count is zero", nil)
	}
	if r.err != nil {
		return nil, r.err
	}
	cf.ConstantPool = make(ConstantPool, count-1)
	for i := uint16(1); i < count; i++ {
		entry := readConstant(r)
		if r.err != nil {
			return nil, r.err
		}
		cf.ConstantPool[i-1] = entry
		switch entry.(type) {
		case *ConstantLongInfo, *ConstantDoubleInfo:
			i++
		}
	}

	cf.AccessFlags = AccessFlags(r.u2())
	cf.Name = cf.ConstantPool.ClassName(r.u2())
	cf.SuperName = cf.ConstantPool.ClassName(r.u2())
	n := r.u2()
	for i := uint16(0); i < n && r.err == nil; i++ {
		cf.Interfaces = append(cf.Interfaces, cf.ConstantPool.ClassName(r.u2()))
	}
	cf.Fields = readMembers(r, cf.ConstantPool)
	cf.Methods = readMembers(r, cf.ConstantPool)
	cf.Attributes = readAttributes(r, cf.ConstantPool)
	if r.err != nil {
		return nil, r.err
	}
	if cf.Name == "" {
		return nil, &FormatError{Offset: 10, Msg: "this_class is not a class entry"}
	}
	return cf, nil
}

func readConstant(r *reader) ConstantPoolEntry {
	tag := ConstantTag(r.u1())
	switch tag {
	case ConstantUtf8:
		return &ConstantUtf8Info{Value: decodeModifiedUtf8(r.take(int(r.u2())))}
	case ConstantInteger:
		return &ConstantIntegerInfo{Value: int32(r.u4())}
	case ConstantFloat:
		return &ConstantFloatInfo{Value: math.Float32frombits(r.u4())}
	case ConstantLong:
		high, low := r.u4(), r.u4()
		return &ConstantLongInfo{Value: int64(high)<<32 | int64(low)}
	case ConstantDouble:
		high, low := r.u4(), r.u4()
		return &ConstantDoubleInfo{Value: math.Float64frombits(uint64(high)<<32 | uint64(low))}
	case ConstantClass:
		return &ConstantClassInfo{NameIndex: r.u2()}
	case ConstantString:
		return &ConstantStringInfo{StringIndex: r.u2()}
	case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref:
		return &ConstantRefInfo{RefTag: tag, ClassIndex: r.u2(), NameAndTypeIndex: r.u2()}
	case ConstantNameAndType:
		return &ConstantNameAndTypeInfo{NameIndex: r.u2(), DescriptorIndex: r.u2()}
	case ConstantMethodHandle:
		return &ConstantMethodHandleInfo{ReferenceKind: r.u1(), ReferenceIndex: r.u2()}
	case ConstantMethodType:
		return &ConstantMethodTypeInfo{DescriptorIndex: r.u2()}
	case ConstantDynamic, ConstantInvokeDynamic:
		return &ConstantDynamicInfo{DynTag: tag, BootstrapMethodAttrIndex: r.u2(), NameAndTypeIndex: r.u2()}
	case ConstantModule, ConstantPackage:
		return &ConstantNamedInfo{NamedTag: tag, NameIndex: r.u2()}
	}
	if r.err == nil {
		r.pos--
		r.fail(fmt.Sprintf("unknown constant pool tag %d", tag), nil)
	}
	return nil
}

func readMembers(r *reader, cp ConstantPool) []Member {
	n := r.u2()
	var out []Member
	for i := uint16(0); i < n && r.err == nil; i++ {
		m := Member{
			AccessFlags: AccessFlags(r.u2()),
			Name:        cp.Utf8(r.u2()),
			Descriptor:  cp.Utf8(r.u2()),
		}
		m.Attributes = readAttributes(r, cp)
		out = append(out, m)
	}
	return out
}

func readAttributes(r *reader, cp ConstantPool) []Attribute {
	n := r.u2()
	var out []Attribute
	for i := uint16(0); i < n && r.err == nil; i++ {
		name := cp.Utf8(r.u2())
		data := r.take(int(r.u4()))
		out = append(out, Attribute{Name: name, Data: data})
	}
	return out
}

// decodeModifiedUtf8 decodes the class file's variant of UTF-8, in which
// NUL is two bytes and supplementary characters are surrogate pairs.
func decodeModifiedUtf8(b []byte) string {
	runes := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			runes = append(runes, rune(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			runes = append(runes, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF && i+5 < len(b) && b[i+3] == 0xED {
				low := rune(b[i+3]&0x0F)<<12 | rune(b[i+4]&0x3F)<<6 | rune(b[i+5]&0x3F)
				if low >= 0xDC00 && low <= 0xDFFF {
					runes = append(runes, 0x10000+(r-0xD800)<<10+(low-0xDC00))
					i += 6
					continue
				}
			}
			runes = append(runes, r)
			i += 3
		default:
			runes = append(runes, rune(c))
			i++
		}
	}
	return string(runes)
}
