package ast

type BlockStmt struct {
	Base
	Stmts []Stmt `json:"stmts,omitempty"`
}

type ExprStmt struct {
	Base
	X Expr `json:"x"`
}

type IfStmt struct {
	Base
	Cond Expr `json:"cond"`
	Then Stmt `json:"then"`
	Else Stmt `json:"else,omitempty"`
}

type WhileStmt struct {
	Base
	Cond Expr `json:"cond"`
	Body Stmt `json:"body"`
}

type DoStmt struct {
	Base
	Body Stmt `json:"body"`
	Cond Expr `json:"cond"`
}

type ForStmt struct {
	Base
	Init   []Expr `json:"init,omitempty"`
	Cond   Expr   `json:"cond,omitempty"`
	Update []Expr `json:"update,omitempty"`
	Body   Stmt   `json:"body"`
}

type ForEachStmt struct {
	Base
	Var      *VarDeclExpr `json:"var"`
	Iterable Expr         `json:"iterable"`
	Body     Stmt         `json:"body"`
}

type TryStmt struct {
	Base
	Resources []Expr         `json:"resources,omitempty"`
	Body      *BlockStmt     `json:"body"`
	Catches   []*CatchClause `json:"catches,omitempty"`
	Finally   *BlockStmt     `json:"finally,omitempty"`
}

type CatchClause struct {
	Base
	Param *Parameter `json:"param"`
	Body  *BlockStmt `json:"body"`
}

type SwitchStmt struct {
	Base
	Selector Expr           `json:"selector"`
	Entries  []*SwitchEntry `json:"entries,omitempty"`
}

// SwitchEntry is a case group. An entry without labels is the default
// entry. Arrow entries ("case X ->") hold a single statement and do not
// fall through.
type SwitchEntry struct {
	Base
	Labels []Expr `json:"labels,omitempty"`
	Arrow  bool   `json:"arrow,omitempty"`
	Stmts  []Stmt `json:"stmts,omitempty"`
}

type ThrowStmt struct {
	Base
	X Expr `json:"x"`
}

type ReturnStmt struct {
	Base
	X Expr `json:"x,omitempty"`
}

type BreakStmt struct {
	Base
	Label string `json:"label,omitempty"`
}

type ContinueStmt struct {
	Base
	Label string `json:"label,omitempty"`
}

type LabeledStmt struct {
	Base
	Label string `json:"label"`
	Stmt  Stmt   `json:"stmt"`
}

type LocalClassStmt struct {
	Base
	Decl TypeDecl `json:"decl"`
}

// ExplicitCtorStmt is a this(...) or super(...) call at the start of a
// constructor body.
type ExplicitCtorStmt struct {
	Base
	This     bool   `json:"this,omitempty"`
	Scope    Expr   `json:"scope,omitempty"`
	TypeArgs []Type `json:"typeArgs,omitempty"`
	Args     []Expr `json:"args,omitempty"`
}

type SynchronizedStmt struct {
	Base
	X    Expr       `json:"x"`
	Body *BlockStmt `json:"body"`
}

type AssertStmt struct {
	Base
	Check   Expr `json:"check"`
	Message Expr `json:"message,omitempty"`
}

type EmptyStmt struct {
	Base
}

// UnparsableStmt stands in for a region the decompiler or parser could not
// turn into a statement. Text keeps the raw source when it is known.
type UnparsableStmt struct {
	Base
	Text string `json:"text,omitempty"`
}

func (*BlockStmt) stmtNode()        {}
func (*ExprStmt) stmtNode()         {}
func (*IfStmt) stmtNode()           {}
func (*WhileStmt) stmtNode()        {}
func (*DoStmt) stmtNode()           {}
func (*ForStmt) stmtNode()          {}
func (*ForEachStmt) stmtNode()      {}
func (*TryStmt) stmtNode()          {}
func (*SwitchStmt) stmtNode()       {}
func (*ThrowStmt) stmtNode()        {}
func (*ReturnStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()        {}
func (*ContinueStmt) stmtNode()     {}
func (*LabeledStmt) stmtNode()      {}
func (*LocalClassStmt) stmtNode()   {}
func (*ExplicitCtorStmt) stmtNode() {}
func (*SynchronizedStmt) stmtNode() {}
func (*AssertStmt) stmtNode()       {}
func (*EmptyStmt) stmtNode()        {}
func (*UnparsableStmt) stmtNode()   {}

// IsBraced reports whether s is a statement whose body is delimited by
// braces on its own: blocks, loops, if, switch and try.
func IsBraced(s Node) bool {
	switch s := s.(type) {
	case *BlockStmt, *DoStmt, *ForStmt, *ForEachStmt, *IfStmt, *SwitchStmt, *TryStmt, *WhileStmt:
		return true
	case *LabeledStmt:
		return s != nil && IsBraced(s.Stmt)
	}
	return false
}
