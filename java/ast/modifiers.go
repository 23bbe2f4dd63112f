package ast

import "strings"

// Modifiers is a set of Java modifiers. Bits are declared in the order in
// which modifiers are printed.
type Modifiers uint32

const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModAbstract
	ModStatic
	ModFinal
	ModTransient
	ModVolatile
	ModSynchronized
	ModNative
	ModStrictfp
	ModTransitive
	ModDefault
	ModSealed
	ModNonSealed
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrictfp, "strictfp"},
	{ModTransitive, "transitive"},
	{ModDefault, "default"},
	{ModSealed, "sealed"},
	{ModNonSealed, "non-sealed"},
}

// Has reports whether all modifiers in m are set.
func (ms Modifiers) Has(m Modifiers) bool { return ms&m == m }

// Keywords returns the modifier keywords in print order.
func (ms Modifiers) Keywords() []string {
	var out []string
	for _, e := range modifierNames {
		if ms&e.mod != 0 {
			out = append(out, e.name)
		}
	}
	return out
}

func (ms Modifiers) String() string {
	return strings.Join(ms.Keywords(), " ")
}

// ParseModifier returns the modifier for a keyword.
func ParseModifier(keyword string) (Modifiers, bool) {
	for _, e := range modifierNames {
		if e.name == keyword {
			return e.mod, true
		}
	}
	return 0, false
}
