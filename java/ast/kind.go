package ast

// Kind identifies the concrete type of a node.
type Kind int

const (
	KindInvalid Kind = iota

	// Compilation unit and declarations
	KindCompilationUnit
	KindPackageDecl
	KindImportDecl
	KindClassDecl
	KindEnumDecl
	KindAnnotationDecl
	KindRecordDecl
	KindFieldDecl
	KindVariableDeclarator
	KindMethodDecl
	KindConstructorDecl
	KindParameter
	KindReceiverParameter
	KindInitializerDecl
	KindEnumConstant
	KindAnnotationMember
	KindTypeParameter
	KindModuleDecl
	KindModuleDirective

	// Types
	KindPrimitiveType
	KindVoidType
	KindVarType
	KindClassType
	KindArrayType
	KindUnionType
	KindIntersectionType
	KindWildcardType
	KindUnknownType

	// Statements
	KindBlockStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindDoStmt
	KindForStmt
	KindForEachStmt
	KindTryStmt
	KindCatchClause
	KindSwitchStmt
	KindSwitchEntry
	KindThrowStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindLabeledStmt
	KindLocalClassStmt
	KindExplicitCtorStmt
	KindSynchronizedStmt
	KindAssertStmt
	KindEmptyStmt
	KindUnparsableStmt

	// Expressions
	KindLiteral
	KindNameExpr
	KindBinaryExpr
	KindUnaryExpr
	KindAssignExpr
	KindConditionalExpr
	KindCastExpr
	KindInstanceOfExpr
	KindMethodCallExpr
	KindFieldAccessExpr
	KindArrayAccessExpr
	KindArrayCreationExpr
	KindArrayLevel
	KindArrayInit
	KindObjectCreationExpr
	KindLambdaExpr
	KindMethodRefExpr
	KindClassExpr
	KindThisExpr
	KindSuperExpr
	KindEnclosedExpr
	KindVarDeclExpr
	KindTypeExpr
	KindAnnotation
	KindMemberValuePair

	// Comments
	KindLineComment
	KindBlockComment
	KindJavadocComment
)

var kindNames = map[Kind]string{
	KindCompilationUnit:    "CompilationUnit",
	KindPackageDecl:        "PackageDecl",
	KindImportDecl:         "ImportDecl",
	KindClassDecl:          "ClassDecl",
	KindEnumDecl:           "EnumDecl",
	KindAnnotationDecl:     "AnnotationDecl",
	KindRecordDecl:         "RecordDecl",
	KindFieldDecl:          "FieldDecl",
	KindVariableDeclarator: "VariableDeclarator",
	KindMethodDecl:         "MethodDecl",
	KindConstructorDecl:    "ConstructorDecl",
	KindParameter:          "Parameter",
	KindReceiverParameter:  "ReceiverParameter",
	KindInitializerDecl:    "InitializerDecl",
	KindEnumConstant:       "EnumConstant",
	KindAnnotationMember:   "AnnotationMember",
	KindTypeParameter:      "TypeParameter",
	KindModuleDecl:         "ModuleDecl",
	KindModuleDirective:    "ModuleDirective",
	KindPrimitiveType:      "PrimitiveType",
	KindVoidType:           "VoidType",
	KindVarType:            "VarType",
	KindClassType:          "ClassType",
	KindArrayType:          "ArrayType",
	KindUnionType:          "UnionType",
	KindIntersectionType:   "IntersectionType",
	KindWildcardType:       "WildcardType",
	KindUnknownType:        "UnknownType",
	KindBlockStmt:          "BlockStmt",
	KindExprStmt:           "ExprStmt",
	KindIfStmt:             "IfStmt",
	KindWhileStmt:          "WhileStmt",
	KindDoStmt:             "DoStmt",
	KindForStmt:            "ForStmt",
	KindForEachStmt:        "ForEachStmt",
	KindTryStmt:            "TryStmt",
	KindCatchClause:        "CatchClause",
	KindSwitchStmt:         "SwitchStmt",
	KindSwitchEntry:        "SwitchEntry",
	KindThrowStmt:          "ThrowStmt",
	KindReturnStmt:         "ReturnStmt",
	KindBreakStmt:          "BreakStmt",
	KindContinueStmt:       "ContinueStmt",
	KindLabeledStmt:        "LabeledStmt",
	KindLocalClassStmt:     "LocalClassStmt",
	KindExplicitCtorStmt:   "ExplicitCtorStmt",
	KindSynchronizedStmt:   "SynchronizedStmt",
	KindAssertStmt:         "AssertStmt",
	KindEmptyStmt:          "EmptyStmt",
	KindUnparsableStmt:     "UnparsableStmt",
	KindLiteral:            "Literal",
	KindNameExpr:           "NameExpr",
	KindBinaryExpr:         "BinaryExpr",
	KindUnaryExpr:          "UnaryExpr",
	KindAssignExpr:         "AssignExpr",
	KindConditionalExpr:    "ConditionalExpr",
	KindCastExpr:           "CastExpr",
	KindInstanceOfExpr:     "InstanceOfExpr",
	KindMethodCallExpr:     "MethodCallExpr",
	KindFieldAccessExpr:    "FieldAccessExpr",
	KindArrayAccessExpr:    "ArrayAccessExpr",
	KindArrayCreationExpr:  "ArrayCreationExpr",
	KindArrayLevel:         "ArrayLevel",
	KindArrayInit:          "ArrayInit",
	KindObjectCreationExpr: "ObjectCreationExpr",
	KindLambdaExpr:         "LambdaExpr",
	KindMethodRefExpr:      "MethodRefExpr",
	KindClassExpr:          "ClassExpr",
	KindThisExpr:           "ThisExpr",
	KindSuperExpr:          "SuperExpr",
	KindEnclosedExpr:       "EnclosedExpr",
	KindVarDeclExpr:        "VarDeclExpr",
	KindTypeExpr:           "TypeExpr",
	KindAnnotation:         "Annotation",
	KindMemberValuePair:    "MemberValuePair",
	KindLineComment:        "LineComment",
	KindBlockComment:       "BlockComment",
	KindJavadocComment:     "JavadocComment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindInvalid, false
}

func (*CompilationUnit) Kind() Kind    { return KindCompilationUnit }
func (*PackageDecl) Kind() Kind        { return KindPackageDecl }
func (*ImportDecl) Kind() Kind         { return KindImportDecl }
func (*ClassDecl) Kind() Kind          { return KindClassDecl }
func (*EnumDecl) Kind() Kind           { return KindEnumDecl }
func (*AnnotationDecl) Kind() Kind     { return KindAnnotationDecl }
func (*RecordDecl) Kind() Kind         { return KindRecordDecl }
func (*FieldDecl) Kind() Kind          { return KindFieldDecl }
func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }
func (*MethodDecl) Kind() Kind         { return KindMethodDecl }
func (*ConstructorDecl) Kind() Kind    { return KindConstructorDecl }
func (*Parameter) Kind() Kind          { return KindParameter }
func (*ReceiverParameter) Kind() Kind  { return KindReceiverParameter }
func (*InitializerDecl) Kind() Kind    { return KindInitializerDecl }
func (*EnumConstant) Kind() Kind       { return KindEnumConstant }
func (*AnnotationMember) Kind() Kind   { return KindAnnotationMember }
func (*TypeParameter) Kind() Kind      { return KindTypeParameter }
func (*ModuleDecl) Kind() Kind         { return KindModuleDecl }
func (*ModuleDirective) Kind() Kind    { return KindModuleDirective }
func (*PrimitiveType) Kind() Kind      { return KindPrimitiveType }
func (*VoidType) Kind() Kind           { return KindVoidType }
func (*VarType) Kind() Kind            { return KindVarType }
func (*ClassType) Kind() Kind          { return KindClassType }
func (*ArrayType) Kind() Kind          { return KindArrayType }
func (*UnionType) Kind() Kind          { return KindUnionType }
func (*IntersectionType) Kind() Kind   { return KindIntersectionType }
func (*WildcardType) Kind() Kind       { return KindWildcardType }
func (*UnknownType) Kind() Kind        { return KindUnknownType }
func (*BlockStmt) Kind() Kind          { return KindBlockStmt }
func (*ExprStmt) Kind() Kind           { return KindExprStmt }
func (*IfStmt) Kind() Kind             { return KindIfStmt }
func (*WhileStmt) Kind() Kind          { return KindWhileStmt }
func (*DoStmt) Kind() Kind             { return KindDoStmt }
func (*ForStmt) Kind() Kind            { return KindForStmt }
func (*ForEachStmt) Kind() Kind        { return KindForEachStmt }
func (*TryStmt) Kind() Kind            { return KindTryStmt }
func (*CatchClause) Kind() Kind        { return KindCatchClause }
func (*SwitchStmt) Kind() Kind         { return KindSwitchStmt }
func (*SwitchEntry) Kind() Kind        { return KindSwitchEntry }
func (*ThrowStmt) Kind() Kind          { return KindThrowStmt }
func (*ReturnStmt) Kind() Kind         { return KindReturnStmt }
func (*BreakStmt) Kind() Kind          { return KindBreakStmt }
func (*ContinueStmt) Kind() Kind       { return KindContinueStmt }
func (*LabeledStmt) Kind() Kind        { return KindLabeledStmt }
func (*LocalClassStmt) Kind() Kind     { return KindLocalClassStmt }
func (*ExplicitCtorStmt) Kind() Kind   { return KindExplicitCtorStmt }
func (*SynchronizedStmt) Kind() Kind   { return KindSynchronizedStmt }
func (*AssertStmt) Kind() Kind         { return KindAssertStmt }
func (*EmptyStmt) Kind() Kind          { return KindEmptyStmt }
func (*UnparsableStmt) Kind() Kind     { return KindUnparsableStmt }
func (*Literal) Kind() Kind            { return KindLiteral }
func (*NameExpr) Kind() Kind           { return KindNameExpr }
func (*BinaryExpr) Kind() Kind         { return KindBinaryExpr }
func (*UnaryExpr) Kind() Kind          { return KindUnaryExpr }
func (*AssignExpr) Kind() Kind         { return KindAssignExpr }
func (*ConditionalExpr) Kind() Kind    { return KindConditionalExpr }
func (*CastExpr) Kind() Kind           { return KindCastExpr }
func (*InstanceOfExpr) Kind() Kind     { return KindInstanceOfExpr }
func (*MethodCallExpr) Kind() Kind     { return KindMethodCallExpr }
func (*FieldAccessExpr) Kind() Kind    { return KindFieldAccessExpr }
func (*ArrayAccessExpr) Kind() Kind    { return KindArrayAccessExpr }
func (*ArrayCreationExpr) Kind() Kind  { return KindArrayCreationExpr }
func (*ArrayLevel) Kind() Kind         { return KindArrayLevel }
func (*ArrayInit) Kind() Kind          { return KindArrayInit }
func (*ObjectCreationExpr) Kind() Kind { return KindObjectCreationExpr }
func (*LambdaExpr) Kind() Kind         { return KindLambdaExpr }
func (*MethodRefExpr) Kind() Kind      { return KindMethodRefExpr }
func (*ClassExpr) Kind() Kind          { return KindClassExpr }
func (*ThisExpr) Kind() Kind           { return KindThisExpr }
func (*SuperExpr) Kind() Kind          { return KindSuperExpr }
func (*EnclosedExpr) Kind() Kind       { return KindEnclosedExpr }
func (*VarDeclExpr) Kind() Kind        { return KindVarDeclExpr }
func (*TypeExpr) Kind() Kind           { return KindTypeExpr }
func (*Annotation) Kind() Kind         { return KindAnnotation }
func (*MemberValuePair) Kind() Kind    { return KindMemberValuePair }

// Kind reports the comment kind matching the comment's style.
func (c *Comment) Kind() Kind {
	switch c.Style {
	case BlockComment:
		return KindBlockComment
	case JavadocComment:
		return KindJavadocComment
	}
	return KindLineComment
}

// New allocates an empty node of kind k. It returns nil for KindInvalid.
func New(k Kind) Node {
	switch k {
	case KindCompilationUnit:
		return &CompilationUnit{}
	case KindPackageDecl:
		return &PackageDecl{}
	case KindImportDecl:
		return &ImportDecl{}
	case KindClassDecl:
		return &ClassDecl{}
	case KindEnumDecl:
		return &EnumDecl{}
	case KindAnnotationDecl:
		return &AnnotationDecl{}
	case KindRecordDecl:
		return &RecordDecl{}
	case KindFieldDecl:
		return &FieldDecl{}
	case KindVariableDeclarator:
		return &VariableDeclarator{}
	case KindMethodDecl:
		return &MethodDecl{}
	case KindConstructorDecl:
		return &ConstructorDecl{}
	case KindParameter:
		return &Parameter{}
	case KindReceiverParameter:
		return &ReceiverParameter{}
	case KindInitializerDecl:
		return &InitializerDecl{}
	case KindEnumConstant:
		return &EnumConstant{}
	case KindAnnotationMember:
		return &AnnotationMember{}
	case KindTypeParameter:
		return &TypeParameter{}
	case KindModuleDecl:
		return &ModuleDecl{}
	case KindModuleDirective:
		return &ModuleDirective{}
	case KindPrimitiveType:
		return &PrimitiveType{}
	case KindVoidType:
		return &VoidType{}
	case KindVarType:
		return &VarType{}
	case KindClassType:
		return &ClassType{}
	case KindArrayType:
		return &ArrayType{}
	case KindUnionType:
		return &UnionType{}
	case KindIntersectionType:
		return &IntersectionType{}
	case KindWildcardType:
		return &WildcardType{}
	case KindUnknownType:
		return &UnknownType{}
	case KindBlockStmt:
		return &BlockStmt{}
	case KindExprStmt:
		return &ExprStmt{}
	case KindIfStmt:
		return &IfStmt{}
	case KindWhileStmt:
		return &WhileStmt{}
	case KindDoStmt:
		return &DoStmt{}
	case KindForStmt:
		return &ForStmt{}
	case KindForEachStmt:
		return &ForEachStmt{}
	case KindTryStmt:
		return &TryStmt{}
	case KindCatchClause:
		return &CatchClause{}
	case KindSwitchStmt:
		return &SwitchStmt{}
	case KindSwitchEntry:
		return &SwitchEntry{}
	case KindThrowStmt:
		return &ThrowStmt{}
	case KindReturnStmt:
		return &ReturnStmt{}
	case KindBreakStmt:
		return &BreakStmt{}
	case KindContinueStmt:
		return &ContinueStmt{}
	case KindLabeledStmt:
		return &LabeledStmt{}
	case KindLocalClassStmt:
		return &LocalClassStmt{}
	case KindExplicitCtorStmt:
		return &ExplicitCtorStmt{}
	case KindSynchronizedStmt:
		return &SynchronizedStmt{}
	case KindAssertStmt:
		return &AssertStmt{}
	case KindEmptyStmt:
		return &EmptyStmt{}
	case KindUnparsableStmt:
		return &UnparsableStmt{}
	case KindLiteral:
		return &Literal{}
	case KindNameExpr:
		return &NameExpr{}
	case KindBinaryExpr:
		return &BinaryExpr{}
	case KindUnaryExpr:
		return &UnaryExpr{}
	case KindAssignExpr:
		return &AssignExpr{}
	case KindConditionalExpr:
		return &ConditionalExpr{}
	case KindCastExpr:
		return &CastExpr{}
	case KindInstanceOfExpr:
		return &InstanceOfExpr{}
	case KindMethodCallExpr:
		return &MethodCallExpr{}
	case KindFieldAccessExpr:
		return &FieldAccessExpr{}
	case KindArrayAccessExpr:
		return &ArrayAccessExpr{}
	case KindArrayCreationExpr:
		return &ArrayCreationExpr{}
	case KindArrayLevel:
		return &ArrayLevel{}
	case KindArrayInit:
		return &ArrayInit{}
	case KindObjectCreationExpr:
		return &ObjectCreationExpr{}
	case KindLambdaExpr:
		return &LambdaExpr{}
	case KindMethodRefExpr:
		return &MethodRefExpr{}
	case KindClassExpr:
		return &ClassExpr{}
	case KindThisExpr:
		return &ThisExpr{}
	case KindSuperExpr:
		return &SuperExpr{}
	case KindEnclosedExpr:
		return &EnclosedExpr{}
	case KindVarDeclExpr:
		return &VarDeclExpr{}
	case KindTypeExpr:
		return &TypeExpr{}
	case KindAnnotation:
		return &Annotation{}
	case KindMemberValuePair:
		return &MemberValuePair{}
	case KindLineComment:
		return &Comment{Style: LineComment}
	case KindBlockComment:
		return &Comment{Style: BlockComment}
	case KindJavadocComment:
		return &Comment{Style: JavadocComment}
	}
	return nil
}
