package format

import (
	"fmt"
	"strings"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/classfile"
	"github.com/dhamidi/srcview/java"
)

// Listing renders the members of a class as seen in its class file. Each
// member line is a <div> carrying the same anchor ID the source view uses,
// so a jump target works in both views.
func Listing(c *java.ClassModel, opts Options) string {
	s := NewSink(opts)

	for _, kw := range classKeywords(c) {
		s.Print(`<span class="keyword">` + kw + `</span> `)
	}
	s.Print(`<span class="type">` + Escape(c.SourceName()) + `</span>`)
	if c.SuperClass != "" && c.SuperClass != "java/lang/Object" {
		s.Print(` <span class="keyword">extends</span> ` + Escape(classfile.InternalToSourceName(c.SuperClass)))
	}
	if len(c.Interfaces) > 0 {
		kw := "implements"
		if c.Kind == java.ClassKindInterface {
			kw = "extends"
		}
		names := make([]string, len(c.Interfaces))
		for i, iface := range c.Interfaces {
			names[i] = Escape(classfile.InternalToSourceName(iface))
		}
		s.Print(` <span class="keyword">` + kw + `</span> ` + strings.Join(names, ", "))
	}
	s.PrintLine(" {")
	s.Indent()

	if c.SourceFile != "" {
		s.PrintLine(`<span class="comment">// source: ` + Escape(c.SourceFile) + `</span>`)
	}

	for i, f := range c.Fields {
		if i == 0 {
			s.Println()
		}
		s.Print(`<div id="` + anchor.FieldAnchor(f.ID()) + `">`)
		listingModifiers(s, fieldKeywords(f))
		s.Print(Escape(fieldTypeName(f.Descriptor)) + ` <span class="variable">` + Escape(f.Name) + `</span>`)
		if f.ConstantValue != "" {
			s.Print(" = " + literalSpan(f.ConstantValue))
		}
		s.Print(`; <span class="comment">// ` + Escape(f.Descriptor) + `</span>`)
		s.PrintLine(`</div>`)
	}

	for _, m := range c.Methods {
		s.Println()
		s.Print(`<div id="` + anchor.MethodAnchor(m.ID()) + `">`)
		listingMethod(s, c, m)
		s.PrintLine(`</div>`)
	}

	for i, inner := range c.Inner {
		if i == 0 {
			s.Println()
		}
		s.PrintLine(`<span class="comment">// inner class ` + Escape(inner.SourceName()) + `</span>`)
	}

	s.Unindent()
	s.PrintLine("}")
	return s.String()
}

func classKeywords(c *java.ClassModel) []string {
	var kws []string
	if c.Visibility != java.VisibilityPackage && c.Visibility != "" {
		kws = append(kws, string(c.Visibility))
	}
	switch c.Kind {
	case java.ClassKindInterface:
		kws = append(kws, "interface")
	case java.ClassKindEnum:
		kws = append(kws, "enum")
	case java.ClassKindAnnotation:
		kws = append(kws, "@interface")
	default:
		if c.AccessFlags.IsAbstract() {
			kws = append(kws, "abstract")
		}
		if c.AccessFlags.IsFinal() {
			kws = append(kws, "final")
		}
		kws = append(kws, "class")
	}
	return kws
}

func listingModifiers(s *Sink, keywords []string) {
	for _, kw := range keywords {
		s.Print(`<span class="keyword">` + kw + `</span> `)
	}
}

// modelKeywords is the fallback for models built without access flags.
func modelKeywords(v java.Visibility, static bool) []string {
	var kws []string
	if v != java.VisibilityPackage && v != "" {
		kws = append(kws, string(v))
	}
	if static {
		kws = append(kws, "static")
	}
	return kws
}

func fieldKeywords(f java.FieldModel) []string {
	if f.AccessFlags == 0 {
		return modelKeywords(f.Visibility, f.IsStatic)
	}
	return f.AccessFlags.FieldKeywords()
}

func methodKeywords(m java.MethodModel) []string {
	if m.AccessFlags == 0 {
		return modelKeywords(m.Visibility, m.IsStatic)
	}
	return m.AccessFlags.MethodKeywords()
}

func listingMethod(s *Sink, c *java.ClassModel, m java.MethodModel) {
	if m.Name == "<clinit>" {
		s.Print(`<span class="keyword">static</span> {}`)
	} else {
		listingModifiers(s, methodKeywords(m))
		md, err := classfile.ParseMethodDescriptor(m.Descriptor)
		if err != nil {
			s.Print(`<span class="method name">` + Escape(m.Name) + `</span>` + Escape(m.Descriptor))
		} else {
			name := m.Name
			if name == "<init>" {
				name = c.SimpleName()
			} else {
				ret := "void"
				if md.Return != nil {
					ret = md.Return.String()
				}
				s.Print(Escape(ret) + " ")
			}
			s.Print(`<span class="method name">` + Escape(name) + `</span>(`)
			for i, p := range md.Params {
				if i > 0 {
					s.Print(", ")
				}
				s.Print(fmt.Sprintf(`%s <span class="variable">arg%d</span>`, Escape(p.String()), i))
			}
			s.Print(")")
		}
	}
	comment := m.Descriptor
	if m.CodeLength > 0 {
		comment += fmt.Sprintf(", %d bytes", m.CodeLength)
	}
	s.Print(` <span class="comment">// ` + Escape(comment) + `</span>`)
}

func fieldTypeName(desc string) string {
	ft, err := classfile.ParseFieldDescriptor(desc)
	if err != nil {
		return desc
	}
	return ft.String()
}

func literalSpan(v string) string {
	if strings.HasPrefix(v, `"`) {
		return `<span class="string">` + Escape(v) + `</span>`
	}
	return `<span class="number">` + Escape(v) + `</span>`
}
