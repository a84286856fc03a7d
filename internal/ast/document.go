package ast

import "math/big"

// Document represents a whole .sig source unit
// Example: "event Started;\nlet limit = 3;\nstart() { emit Started; }"
type Document struct {
	Pos          Position
	EndPos       Position
	Declarations []Declaration
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like event names, bindings and parameters
// Example: "Started", "limit", "amount"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// EventDecl declares a named event
// Example: "event Started;"
type EventDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// LetDecl binds a name to a constant expression
// Example: "let limit = 100;"
type LetDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// FunctionDecl declares a state-transition function
// Example: "transfer(from, to) { emit Moved; }"
type FunctionDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []Ident
	Body   *Block
}

// Block is the braced statement list of a function
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// LetStmt introduces a local binding
// Example: "let total = a + b;"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// AssignStmt rebinds a name
// Example: "state = 2;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Target Ident
	Value  Expr
}

// EmitStmt raises a declared event
// Example: "emit Started;"
type EmitStmt struct {
	Pos    Position
	EndPos Position
	Event  Ident
}

// ReturnStmt leaves the function, optionally with a value
// Example: "return;", "return count + 1;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

// ExprStmt evaluates an expression for its effect
// Example: "notify(owner);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// NumberLit is a decimal integer literal of any length
// Example: "100"
type NumberLit struct {
	Pos    Position
	EndPos Position
	Raw    string
	Value  *big.Int
}

// IdentExpr references a binding or parameter
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// BinaryExpr applies an arithmetic operator
// Example: "a + b * 2"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Left   Expr
	Op     BinaryOp
	Right  Expr
}

// CallExpr invokes a function by name
// Example: "max(a, 10)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Ident
	Args   []Expr
}

// ParenExpr keeps explicit grouping
// Example: "(a + b)"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}
