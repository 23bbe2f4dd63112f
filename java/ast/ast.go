// Package ast defines the syntax tree of a decompiled Java compilation unit.
//
// The node set is closed: every node type embeds Base and is listed in the
// Kind enum. Consumers dispatch with a type switch over Node.
package ast

// Position is a 1-based line and column in the original source text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether p sorts before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Span is the original source range of a node.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Base carries the data shared by every node: an optional source span, the
// comment attached to the node, and orphan comments that belong to the node
// but could not be attached to any of its children.
type Base struct {
	Span    *Span      `json:"span,omitempty"`
	Comment *Comment   `json:"comment,omitempty"`
	Orphans []*Comment `json:"orphans,omitempty"`
}

func (b *Base) base() *Base { return b }

// Node is implemented by all syntax tree nodes.
type Node interface {
	Kind() Kind
	base() *Base
}

// SpanOf returns the span of n, or nil when n has no position.
func SpanOf(n Node) *Span {
	if n == nil {
		return nil
	}
	return n.base().Span
}

// CommentOf returns the comment attached to n.
func CommentOf(n Node) *Comment {
	if n == nil {
		return nil
	}
	return n.base().Comment
}

// OrphansOf returns the orphan comments owned by n.
func OrphansOf(n Node) []*Comment {
	if n == nil {
		return nil
	}
	return n.base().Orphans
}

// SetSpan records the source range of n.
func SetSpan(n Node, s Span) {
	n.base().Span = &s
}

// Attach sets the comment attached to n.
func Attach(n Node, c *Comment) {
	n.base().Comment = c
}

// AddOrphan appends c to the orphan comments of n.
func AddOrphan(n Node, c *Comment) {
	b := n.base()
	b.Orphans = append(b.Orphans, c)
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Type is implemented by type reference nodes.
type Type interface {
	Node
	typeNode()
}

// Member is implemented by nodes that can appear in a type body.
type Member interface {
	Node
	memberNode()
}

// TypeDecl is implemented by class, interface, enum, annotation and record
// declarations.
type TypeDecl interface {
	Member
	TypeName() string
	Mods() Modifiers
}
