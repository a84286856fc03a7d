package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	// High-level constructs
	DOCUMENT
	IDENT

	// Declarations
	EVENT_DECL
	LET_DECL
	FUNCTION_DECL

	// Statements
	BLOCK
	LET_STMT
	ASSIGN_STMT
	EMIT_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	NUMBER_LIT
	IDENT_EXPR
	BINARY_EXPR
	CALL_EXPR
	PAREN_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	DOCUMENT:      "DOCUMENT",
	IDENT:         "IDENT",
	EVENT_DECL:    "EVENT_DECL",
	LET_DECL:      "LET_DECL",
	FUNCTION_DECL: "FUNCTION_DECL",
	BLOCK:         "BLOCK",
	LET_STMT:      "LET_STMT",
	ASSIGN_STMT:   "ASSIGN_STMT",
	EMIT_STMT:     "EMIT_STMT",
	RETURN_STMT:   "RETURN_STMT",
	EXPR_STMT:     "EXPR_STMT",
	NUMBER_LIT:    "NUMBER_LIT",
	IDENT_EXPR:    "IDENT_EXPR",
	BINARY_EXPR:   "BINARY_EXPR",
	CALL_EXPR:     "CALL_EXPR",
	PAREN_EXPR:    "PAREN_EXPR",
}

func (nt NodeType) String() string {
	if nt >= 0 && int(nt) < len(nodeTypeNames) {
		return nodeTypeNames[nt]
	}
	return fmt.Sprintf("NodeType(%d)", int(nt))
}
