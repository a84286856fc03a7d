package ast

type Expr interface {
	Node
	isExpr()
}

func (*NumberLit) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*ParenExpr) isExpr() {}

type BinaryOp string

const (
	ADD BinaryOp = "+"
	SUB BinaryOp = "-"
	MUL BinaryOp = "*"
)

// Declaration is a top-level construct of a Document.
type Declaration interface {
	Node
	isDeclaration()
}

func (*EventDecl) isDeclaration() {}

func (*LetDecl) isDeclaration() {}

func (*FunctionDecl) isDeclaration() {}

// Stmt is anything that may appear inside a function block.
type Stmt interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt()    {}
func (*AssignStmt) isStmt() {}
func (*EmitStmt) isStmt()   {}
func (*ReturnStmt) isStmt() {}
func (*ExprStmt) isStmt()   {}
