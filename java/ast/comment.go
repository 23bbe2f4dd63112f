package ast

// CommentStyle distinguishes line, block and doc comments.
type CommentStyle string

const (
	LineComment    CommentStyle = "line"
	BlockComment   CommentStyle = "block"
	JavadocComment CommentStyle = "javadoc"
)

// Comment holds the comment text without its delimiters: the text after
// "//", or between "/*" (or "/**") and "*/".
type Comment struct {
	Base
	Style CommentStyle `json:"style"`
	Text  string       `json:"text"`
}

// Comments returns every comment in the tree rooted at n, attached and
// orphan, in walk order.
func Comments(n Node) []*Comment {
	var out []*Comment
	Inspect(n, func(n Node) bool {
		if c, ok := n.(*Comment); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}
