package format

import "fmt"

// IndentStyle selects how one indentation level is written.
type IndentStyle string

const (
	IndentTabs   IndentStyle = "tabs"
	IndentSpaces IndentStyle = "spaces"
)

// Options controls the layout of rendered source.
//
// With IndentTabs one level is a single tab and IndentWidth is the display
// width of a tab, used when aligning to a column. With IndentSpaces one level
// is IndentWidth spaces.
type Options struct {
	IndentStyle                         IndentStyle
	IndentWidth                         int
	PrintComments                       bool
	PrintJavadoc                        bool
	OrderImports                        bool
	MaxEnumConstantsAlignedHorizontally int
	ColumnAlignParameters               bool
	ColumnAlignFirstMethodChain         bool
}

// DefaultOptions returns tab indentation with comments and javadoc enabled.
func DefaultOptions() Options {
	return Options{
		IndentStyle:                         IndentTabs,
		IndentWidth:                         4,
		PrintComments:                       true,
		PrintJavadoc:                        true,
		MaxEnumConstantsAlignedHorizontally: 5,
	}
}

// Fingerprint returns a stable string identifying o, suitable as part of a
// cache key.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("%s/%d/c%t/j%t/i%t/e%d/p%t/m%t",
		o.IndentStyle, o.IndentWidth, o.PrintComments, o.PrintJavadoc,
		o.OrderImports, o.MaxEnumConstantsAlignedHorizontally,
		o.ColumnAlignParameters, o.ColumnAlignFirstMethodChain)
}

func (o Options) indentUnit() string {
	if o.IndentStyle == IndentSpaces {
		return spaces(o.tabWidth())
	}
	return "\t"
}

func (o Options) tabWidth() int {
	if o.IndentWidth <= 0 {
		return 4
	}
	return o.IndentWidth
}
