package ast

// LiteralKind classifies a literal for styling.
type LiteralKind string

const (
	LitInt    LiteralKind = "int"
	LitLong   LiteralKind = "long"
	LitDouble LiteralKind = "double"
	LitChar   LiteralKind = "char"
	LitString LiteralKind = "string"
	LitText   LiteralKind = "text"
	LitBool   LiteralKind = "bool"
	LitNull   LiteralKind = "null"
)

// Literal holds the literal's source value. For strings and chars Value is
// the content between the quotes, still in escaped Java form.
type Literal struct {
	Base
	Lit   LiteralKind `json:"lit"`
	Value string      `json:"value"`
}

// NameExpr is a simple or qualified name used as an expression.
type NameExpr struct {
	Base
	Name string `json:"name"`
}

type BinaryExpr struct {
	Base
	X  Expr   `json:"x"`
	Op string `json:"op"`
	Y  Expr   `json:"y"`
}

type UnaryExpr struct {
	Base
	Op      string `json:"op"`
	Postfix bool   `json:"postfix,omitempty"`
	X       Expr   `json:"x"`
}

type AssignExpr struct {
	Base
	Target Expr   `json:"target"`
	Op     string `json:"op"`
	Value  Expr   `json:"value"`
}

type ConditionalExpr struct {
	Base
	Cond Expr `json:"cond"`
	Then Expr `json:"then"`
	Else Expr `json:"else"`
}

type CastExpr struct {
	Base
	Type Type `json:"type"`
	X    Expr `json:"x"`
}

type InstanceOfExpr struct {
	Base
	X    Expr `json:"x"`
	Type Type `json:"type"`
}

// MethodCallExpr is a method invocation. Scope is the receiver and is nil
// for unqualified calls.
type MethodCallExpr struct {
	Base
	Scope    Expr   `json:"scope,omitempty"`
	TypeArgs []Type `json:"typeArgs,omitempty"`
	Name     string `json:"name"`
	Args     []Expr `json:"args,omitempty"`
}

type FieldAccessExpr struct {
	Base
	Scope Expr   `json:"scope"`
	Name  string `json:"name"`
}

type ArrayAccessExpr struct {
	Base
	X     Expr `json:"x"`
	Index Expr `json:"index"`
}

type ArrayCreationExpr struct {
	Base
	Elem   Type          `json:"elem"`
	Levels []*ArrayLevel `json:"levels"`
	Init   *ArrayInit    `json:"init,omitempty"`
}

// ArrayLevel is one "[dim]" of an array creation. Dim is nil for "[]".
type ArrayLevel struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Dim         Expr          `json:"dim,omitempty"`
}

type ArrayInit struct {
	Base
	Values []Expr `json:"values,omitempty"`
}

// ObjectCreationExpr is a "new" expression. Anonymous is set when the
// expression has a class body.
type ObjectCreationExpr struct {
	Base
	Scope     Expr       `json:"scope,omitempty"`
	TypeArgs  []Type     `json:"typeArgs,omitempty"`
	Type      *ClassType `json:"type"`
	Args      []Expr     `json:"args,omitempty"`
	Anonymous bool       `json:"anonymous,omitempty"`
	Body      []Member   `json:"body,omitempty"`
}

// LambdaExpr has either an ExprStmt body for expression lambdas or a
// BlockStmt body.
type LambdaExpr struct {
	Base
	Params []*Parameter `json:"params,omitempty"`
	Parens bool         `json:"parens,omitempty"`
	Body   Stmt         `json:"body"`
}

type MethodRefExpr struct {
	Base
	Scope    Expr   `json:"scope"`
	TypeArgs []Type `json:"typeArgs,omitempty"`
	Ident    string `json:"ident"`
}

// ClassExpr is a class literal such as String.class.
type ClassExpr struct {
	Base
	Type Type `json:"type"`
}

type ThisExpr struct {
	Base
	Qualifier Expr `json:"qualifier,omitempty"`
}

type SuperExpr struct {
	Base
	Qualifier Expr `json:"qualifier,omitempty"`
}

// EnclosedExpr is a parenthesized expression.
type EnclosedExpr struct {
	Base
	X Expr `json:"x"`
}

// VarDeclExpr declares local variables, in statements, for headers and
// try resources.
type VarDeclExpr struct {
	Base
	Modifiers   Modifiers             `json:"modifiers,omitempty"`
	Annotations []*Annotation         `json:"annotations,omitempty"`
	Variables   []*VariableDeclarator `json:"variables"`
}

// TypeExpr is a type in expression position, the scope of a method
// reference such as List::of.
type TypeExpr struct {
	Base
	Type Type `json:"type"`
}

// Annotation is a marker, single-member or normal annotation, depending on
// whether Value or Pairs is set.
type Annotation struct {
	Base
	Name  string             `json:"name"`
	Value Expr               `json:"value,omitempty"`
	Pairs []*MemberValuePair `json:"pairs,omitempty"`
}

type MemberValuePair struct {
	Base
	Name  string `json:"name"`
	Value Expr   `json:"value"`
}

func (*Literal) exprNode()            {}
func (*NameExpr) exprNode()           {}
func (*BinaryExpr) exprNode()         {}
func (*UnaryExpr) exprNode()          {}
func (*AssignExpr) exprNode()         {}
func (*ConditionalExpr) exprNode()    {}
func (*CastExpr) exprNode()           {}
func (*InstanceOfExpr) exprNode()     {}
func (*MethodCallExpr) exprNode()     {}
func (*FieldAccessExpr) exprNode()    {}
func (*ArrayAccessExpr) exprNode()    {}
func (*ArrayCreationExpr) exprNode()  {}
func (*ArrayInit) exprNode()          {}
func (*ObjectCreationExpr) exprNode() {}
func (*LambdaExpr) exprNode()         {}
func (*MethodRefExpr) exprNode()      {}
func (*ClassExpr) exprNode()          {}
func (*ThisExpr) exprNode()           {}
func (*SuperExpr) exprNode()          {}
func (*EnclosedExpr) exprNode()       {}
func (*VarDeclExpr) exprNode()        {}
func (*TypeExpr) exprNode()           {}
func (*Annotation) exprNode()         {}

// Scope returns the receiver of a method call or field access. It is the
// link walked when following a fluent call chain.
func Scope(e Node) Expr {
	switch e := e.(type) {
	case *MethodCallExpr:
		return e.Scope
	case *FieldAccessExpr:
		return e.Scope
	}
	return nil
}
