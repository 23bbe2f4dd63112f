package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

var (
	nodeType      = reflect.TypeOf((*Node)(nil)).Elem()
	modifiersType = reflect.TypeOf(Modifiers(0))
	baseType      = reflect.TypeOf(Base{})
)

// Encode writes the tree rooted at n as indented JSON. Every node is an
// object with a "kind" member naming its Kind, followed by its fields.
func Encode(w io.Writer, n Node) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the JSON form of the tree rooted at n.
func Marshal(n Node) ([]byte, error) {
	return json.MarshalIndent(encodeNode(n), "", "  ")
}

// Decode reads a compilation unit written by Encode.
func Decode(r io.Reader) (*CompilationUnit, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	n, err := Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	unit, ok := n.(*CompilationUnit)
	if !ok {
		return nil, fmt.Errorf("decode tree: root is %s, want CompilationUnit", n.Kind())
	}
	return unit, nil
}

// Unmarshal decodes a single node of any kind.
func Unmarshal(data []byte) (Node, error) {
	return decodeNode(data)
}

type jsonObject = map[string]any

func encodeNode(n Node) any {
	if n == nil {
		return nil
	}
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	obj := jsonObject{"kind": n.Kind().String()}
	encodeFields(obj, v.Elem())
	return obj
}

func encodeFields(obj jsonObject, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous && f.Type == baseType {
			encodeFields(obj, fv)
			continue
		}
		name, omitEmpty := jsonName(f)
		if name == "" {
			continue
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		if omitEmpty && fv.Kind() == reflect.Slice && fv.Len() == 0 {
			continue
		}
		obj[name] = encodeValue(fv)
	}
}

func encodeValue(v reflect.Value) any {
	switch {
	case v.Type() == modifiersType:
		return Modifiers(v.Uint()).Keywords()
	case v.Type().Implements(nodeType):
		if v.IsNil() {
			return nil
		}
		return encodeNode(v.Interface().(Node))
	case v.Kind() == reflect.Slice && v.Type().Elem().Implements(nodeType):
		out := make([]any, v.Len())
		for i := range out {
			out[i] = encodeValue(v.Index(i))
		}
		return out
	}
	return v.Interface()
}

func decodeNode(data []byte) (Node, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	if fields == nil {
		return nil, nil
	}
	var kindName string
	if err := json.Unmarshal(fields["kind"], &kindName); err != nil {
		return nil, fmt.Errorf("decode node: missing kind: %w", err)
	}
	kind, ok := ParseKind(kindName)
	if !ok {
		return nil, fmt.Errorf("decode node: unknown kind %q", kindName)
	}
	n := New(kind)
	if err := decodeFields(fields, reflect.ValueOf(n).Elem()); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kindName, err)
	}
	return n, nil
}

func decodeFields(fields map[string]json.RawMessage, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous && f.Type == baseType {
			if err := decodeFields(fields, fv); err != nil {
				return err
			}
			continue
		}
		name, _ := jsonName(f)
		raw, ok := fields[name]
		if name == "" || !ok || string(raw) == "null" {
			continue
		}
		if err := decodeValue(raw, fv); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
	}
	return nil
}

func decodeValue(raw json.RawMessage, v reflect.Value) error {
	switch {
	case v.Type() == modifiersType:
		var words []string
		if err := json.Unmarshal(raw, &words); err != nil {
			return err
		}
		var mods Modifiers
		for _, w := range words {
			m, ok := ParseModifier(w)
			if !ok {
				return fmt.Errorf("unknown modifier %q", w)
			}
			mods |= m
		}
		v.SetUint(uint64(mods))
		return nil
	case v.Type().Implements(nodeType):
		n, err := decodeNode(raw)
		if err != nil {
			return err
		}
		if n == nil {
			return nil
		}
		nv := reflect.ValueOf(n)
		if !nv.Type().AssignableTo(v.Type()) {
			return fmt.Errorf("%s cannot be used as %s", n.Kind(), v.Type())
		}
		v.Set(nv)
		return nil
	case v.Kind() == reflect.Slice && v.Type().Elem().Implements(nodeType):
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		out := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return err
			}
		}
		v.Set(out)
		return nil
	}
	return json.Unmarshal(raw, v.Addr().Interface())
}

func jsonName(f reflect.StructField) (name string, omitEmpty bool) {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return "", false
	}
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts == "omitempty"
}
