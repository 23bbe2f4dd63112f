package classfile

import "testing"

func TestParseFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		java string
	}{
		{"I", "int"},
		{"Z", "boolean"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"[I", "int[]"},
		{"[[D", "double[][]"},
		{"[Ljava/util/Map$Entry;", "java.util.Map$Entry[]"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			ft, err := ParseFieldDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("ParseFieldDescriptor(%q): %v", tt.desc, err)
			}
			if got := ft.String(); got != tt.java {
				t.Errorf("String() = %q, want %q", got, tt.java)
			}
			if got := ft.Descriptor(); got != tt.desc {
				t.Errorf("Descriptor() = %q, want %q", got, tt.desc)
			}
		})
	}
}

func TestParseFieldDescriptorErrors(t *testing.T) {
	for _, desc := range []string{"", "[", "X", "L;", "Ljava/lang/String", "II"} {
		t.Run(desc, func(t *testing.T) {
			if _, err := ParseFieldDescriptor(desc); err == nil {
				t.Errorf("ParseFieldDescriptor(%q) succeeded", desc)
			}
		})
	}
}

func TestParseMethodDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		java string
	}{
		{"()V", "() void"},
		{"(II)I", "(int, int) int"},
		{"(Ljava/lang/String;[J)[Ljava/lang/Object;", "(java.lang.String, long[]) java.lang.Object[]"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			md, err := ParseMethodDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("ParseMethodDescriptor(%q): %v", tt.desc, err)
			}
			if got := md.String(); got != tt.java {
				t.Errorf("String() = %q, want %q", got, tt.java)
			}
		})
	}

	for _, bad := range []string{"", "V", "(I", "(I)", "(Q)V", "()VV"} {
		if _, err := ParseMethodDescriptor(bad); err == nil {
			t.Errorf("ParseMethodDescriptor(%q) succeeded", bad)
		}
	}
}
