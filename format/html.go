package format

import (
	"reflect"
	"sort"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/java/ast"
)

// printer holds the state of a single render. It is created by Render and
// discarded afterwards; nothing in it is shared between renders.
type printer struct {
	out     *Sink
	opts    Options
	anchors anchor.Resolver
	parents *ast.Parents

	sorted  map[ast.Node][]ast.Node
	printed map[*ast.Comment]bool
}

func newPrinter(root ast.Node, opts Options, anchors anchor.Resolver) *printer {
	if anchors == nil {
		anchors = anchor.None
	}
	return &printer{
		out:     NewSink(opts),
		opts:    opts,
		anchors: anchors,
		parents: ast.NewParents(root),
		sorted:  make(map[ast.Node][]ast.Node),
		printed: make(map[*ast.Comment]bool),
	}
}

// Render prints unit as syntax highlighted HTML. Declarations for which
// anchors resolves an ID are wrapped in <span id="ID">. The tree is not
// modified.
//
// A tree whose structure contradicts itself yields a *StructuralError and
// no output.
func Render(unit *ast.CompilationUnit, opts Options, anchors anchor.Resolver) (string, error) {
	if unit == nil {
		return "", structural(nil, "nil compilation unit")
	}
	p := newPrinter(unit, opts, anchors)
	if err := p.run(unit); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

// run prints n and converts an aborted render into an error.
func (p *printer) run(n ast.Node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*StructuralError)
			if !ok {
				panic(r)
			}
			err = se
		}
	}()
	p.node(n)
	if err := p.out.Err(); err != nil {
		return err
	}
	if d := p.out.Depth(); d != 0 {
		return structural(n, "%d indentation levels left open", d)
	}
	return nil
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// node prints n with the orphan comments that precede it in its parent and
// the ones left at its own end. A missing node prints a placeholder.
func (p *printer) node(n ast.Node) {
	if isNil(n) {
		p.out.Print("???")
		return
	}
	if c, ok := n.(*ast.Comment); ok {
		p.comment(c)
		return
	}
	p.leadingOrphans(n)

	switch n := n.(type) {
	case *ast.CompilationUnit:
		p.compilationUnit(n)
	case *ast.PackageDecl:
		p.packageDecl(n)
	case *ast.ImportDecl:
		p.importDecl(n)
	case *ast.ClassDecl:
		p.classDecl(n)
	case *ast.EnumDecl:
		p.enumDecl(n)
	case *ast.AnnotationDecl:
		p.annotationDecl(n)
	case *ast.RecordDecl:
		p.recordDecl(n)
	case *ast.FieldDecl:
		p.fieldDecl(n)
	case *ast.VariableDeclarator:
		p.variable(n)
	case *ast.MethodDecl:
		p.methodDecl(n)
	case *ast.ConstructorDecl:
		p.constructorDecl(n)
	case *ast.Parameter:
		p.parameter(n)
	case *ast.ReceiverParameter:
		p.receiver(n)
	case *ast.InitializerDecl:
		p.initializer(n)
	case *ast.EnumConstant:
		p.enumConstant(n)
	case *ast.AnnotationMember:
		p.annotationMember(n)
	case *ast.TypeParameter:
		p.typeParameter(n)
	case *ast.ModuleDecl:
		p.moduleDecl(n)
	case *ast.ModuleDirective:
		p.moduleDirective(n)

	case *ast.PrimitiveType:
		p.primitiveType(n)
	case *ast.VoidType:
		p.keywordType(n, n.Annotations, "void")
	case *ast.VarType:
		p.keywordType(n, n.Annotations, "var")
	case *ast.ClassType:
		p.classType(n)
	case *ast.ArrayType:
		p.arrayType(n)
	case *ast.UnionType:
		p.attached(n)
		p.annotations(n.Annotations, true)
		printList(p, n.Elements, " | ")
	case *ast.IntersectionType:
		p.attached(n)
		p.annotations(n.Annotations, false)
		printList(p, n.Elements, " &amp; ")
	case *ast.WildcardType:
		p.wildcardType(n)
	case *ast.UnknownType:

	case *ast.BlockStmt:
		p.block(n)
	case *ast.ExprStmt:
		p.attached(n)
		p.node(n.X)
		p.out.Print(";")
	case *ast.IfStmt:
		p.ifStmt(n)
	case *ast.WhileStmt:
		p.whileStmt(n)
	case *ast.DoStmt:
		p.doStmt(n)
	case *ast.ForStmt:
		p.forStmt(n)
	case *ast.ForEachStmt:
		p.forEachStmt(n)
	case *ast.TryStmt:
		p.tryStmt(n)
	case *ast.CatchClause:
		p.catchClause(n)
	case *ast.SwitchStmt:
		p.switchStmt(n)
	case *ast.SwitchEntry:
		p.switchEntry(n)
	case *ast.ThrowStmt:
		p.attached(n)
		p.keyword("throw")
		p.out.Print(" ")
		p.node(n.X)
		p.out.Print(";")
	case *ast.ReturnStmt:
		p.attached(n)
		p.keyword("return")
		if n.X != nil {
			p.out.Print(" ")
			p.node(n.X)
		}
		p.out.Print(";")
	case *ast.BreakStmt:
		p.jump(n, "break", n.Label)
	case *ast.ContinueStmt:
		p.jump(n, "continue", n.Label)
	case *ast.LabeledStmt:
		p.loop(n, func() {
			p.out.Print(Escape(n.Label) + ": ")
			p.node(n.Stmt)
		})
	case *ast.LocalClassStmt:
		p.attached(n)
		p.node(n.Decl)
	case *ast.ExplicitCtorStmt:
		p.explicitCtor(n)
	case *ast.SynchronizedStmt:
		p.attached(n)
		p.keyword("synchronized")
		p.out.Print(" (")
		p.node(n.X)
		p.out.Print(") ")
		p.node(n.Body)
	case *ast.AssertStmt:
		p.assertStmt(n)
	case *ast.EmptyStmt:
		p.attached(n)
		p.out.Print(";")
	case *ast.UnparsableStmt:
		p.attached(n)
		p.out.Print("???;")

	case *ast.Literal:
		p.literal(n)
	case *ast.NameExpr:
		p.attached(n)
		p.out.Print(Escape(n.Name))
	case *ast.BinaryExpr:
		p.attached(n)
		p.node(n.X)
		p.out.Print(" " + Escape(n.Op) + " ")
		p.node(n.Y)
	case *ast.UnaryExpr:
		p.unary(n)
	case *ast.AssignExpr:
		p.attached(n)
		p.node(n.Target)
		p.out.Print(" " + Escape(n.Op) + " ")
		p.node(n.Value)
	case *ast.ConditionalExpr:
		p.attached(n)
		p.node(n.Cond)
		p.out.Print(" ? ")
		p.node(n.Then)
		p.out.Print(" : ")
		p.node(n.Else)
	case *ast.CastExpr:
		p.attached(n)
		p.out.Print("(")
		p.node(n.Type)
		p.out.Print(") ")
		p.node(n.X)
	case *ast.InstanceOfExpr:
		p.attached(n)
		p.node(n.X)
		p.out.Print(" ")
		p.keyword("instanceof")
		p.out.Print(" ")
		p.node(n.Type)
	case *ast.MethodCallExpr:
		p.methodCall(n)
	case *ast.FieldAccessExpr:
		p.fieldAccess(n)
	case *ast.ArrayAccessExpr:
		p.attached(n)
		p.node(n.X)
		p.out.Print("[")
		p.node(n.Index)
		p.out.Print("]")
	case *ast.ArrayCreationExpr:
		p.arrayCreation(n)
	case *ast.ArrayLevel:
		p.attached(n)
		p.annotations(n.Annotations, true)
		p.out.Print("[")
		if n.Dim != nil {
			p.node(n.Dim)
		}
		p.out.Print("]")
	case *ast.ArrayInit:
		p.arrayInit(n)
	case *ast.ObjectCreationExpr:
		p.objectCreation(n)
	case *ast.LambdaExpr:
		p.lambda(n)
	case *ast.MethodRefExpr:
		p.attached(n)
		if n.Scope != nil {
			p.node(n.Scope)
		}
		p.out.Print("::")
		p.typeArgs(n.TypeArgs)
		p.out.Print(Escape(n.Ident))
	case *ast.ClassExpr:
		p.attached(n)
		p.node(n.Type)
		p.out.Print(`<span class="keyword">.class</span>`)
	case *ast.ThisExpr:
		p.qualified(n, n.Qualifier, "this")
	case *ast.SuperExpr:
		p.qualified(n, n.Qualifier, "super")
	case *ast.EnclosedExpr:
		p.attached(n)
		p.out.Print("(")
		p.node(n.X)
		p.out.Print(")")
	case *ast.VarDeclExpr:
		p.varDecl(n)
	case *ast.TypeExpr:
		p.attached(n)
		p.node(n.Type)
	case *ast.Annotation:
		p.annotation(n)
	case *ast.MemberValuePair:
		p.attached(n)
		p.out.Print(Escape(n.Name) + " = ")
		p.node(n.Value)

	default:
		fail(n, "no print routine for %T", n)
	}

	p.endOrphans(n)
}

// printList prints items separated by sep.
func printList[T ast.Node](p *printer, items []T, sep string) {
	for i, item := range items {
		if i > 0 {
			p.out.Print(sep)
		}
		p.node(item)
	}
}

func (p *printer) keyword(kw string) {
	p.out.Print(`<span class="keyword">` + kw + `</span>`)
}

func (p *printer) modifiers(m ast.Modifiers) {
	for _, kw := range m.Keywords() {
		p.keyword(kw)
		p.out.Print(" ")
	}
}

// memberAnnotations prints each annotation on a line of its own.
func (p *printer) memberAnnotations(as []*ast.Annotation) {
	for _, a := range as {
		p.node(a)
		p.out.Println()
	}
}

// annotations prints annotations inline, each followed by a space.
func (p *printer) annotations(as []*ast.Annotation, leadingSpace bool) {
	if len(as) == 0 {
		return
	}
	if leadingSpace {
		p.out.Print(" ")
	}
	for _, a := range as {
		p.node(a)
		p.out.Print(" ")
	}
}

func (p *printer) typeArgs(ts []ast.Type) {
	if len(ts) == 0 {
		return
	}
	p.out.Print("&lt;")
	printList(p, ts, ", ")
	p.out.Print("&gt;")
}

func (p *printer) typeParams(ts []*ast.TypeParameter) {
	if len(ts) == 0 {
		return
	}
	p.out.Print("&lt;")
	printList(p, ts, ", ")
	p.out.Print("&gt;")
}

// arguments prints a parenthesized argument list. With column aligned
// parameters every argument after the first starts a new line at the
// column of the first.
func (p *printer) arguments(args []ast.Expr) {
	p.out.Print("(")
	align := len(args) > 1 && p.opts.ColumnAlignParameters
	if align {
		p.out.IndentWithAlignTo(p.out.Column())
	}
	for i, a := range args {
		p.node(a)
		if i == len(args)-1 {
			break
		}
		p.out.Print(",")
		if align {
			p.out.Println()
		} else {
			p.out.Print(" ")
		}
	}
	if align {
		p.out.Unindent()
	}
	p.out.Print(")")
}

// openAnchor opens the anchor of n if it has one.
func (p *printer) openAnchor(n ast.Node) bool {
	id, ok := p.anchors.Resolve(n)
	if !ok {
		return false
	}
	p.out.OpenAnchor(id)
	return true
}

// members prints the body of a type in layout order.
func (p *printer) members(ms []ast.Member) {
	var prev ast.Member
	for _, m := range OrderMembers(ms) {
		if NeedsBlankLine(prev, m) {
			p.out.Println()
		}
		p.node(m)
		p.out.Println()
		prev = m
	}
}

func (p *printer) compilationUnit(n *ast.CompilationUnit) {
	p.attached(n)
	if n.Unparsable {
		p.out.PrintLine("???")
		return
	}
	if n.Package != nil {
		p.node(n.Package)
	}

	imports := n.Imports
	if p.opts.OrderImports {
		imports = append([]*ast.ImportDecl(nil), imports...)
		sort.SliceStable(imports, func(i, j int) bool {
			a, b := imports[i], imports[j]
			if a.Static != b.Static {
				return a.Static
			}
			return a.Name < b.Name
		})
	}
	for _, imp := range imports {
		p.node(imp)
	}
	if len(imports) > 0 {
		p.out.Println()
	}

	for i, t := range n.Types {
		p.node(t)
		p.out.Println()
		if i < len(n.Types)-1 {
			p.out.Println()
		}
	}
	if n.Module != nil {
		p.node(n.Module)
	}

	// Comments of nodes that are never printed on their own, such as the
	// types of all but the first declarator of a field, go last.
	p.endOrphans(n)
	for _, c := range ast.Comments(n) {
		p.comment(c)
	}
}
