package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	doc := &Document{
		Declarations: []Declaration{
			&EventDecl{Name: Ident{Value: "Moved"}},
			&FunctionDecl{
				Name:   Ident{Value: "move"},
				Params: []Ident{{Value: "to"}},
				Body: &Block{Stmts: []Stmt{
					&AssignStmt{
						Target: Ident{Value: "pos"},
						Value: &CallExpr{
							Callee: Ident{Value: "clamp"},
							Args:   []Expr{&IdentExpr{Name: Ident{Value: "to"}}},
						},
					},
					&EmitStmt{Event: Ident{Value: "Moved"}},
				}},
			},
		},
	}

	var idents []string
	Inspect(doc, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			idents = append(idents, id.Value)
		}
		return true
	})

	assert.Equal(t, []string{"Moved", "move", "to", "pos", "clamp", "to", "Moved"}, idents)
}

func TestInspectSkipsChildren(t *testing.T) {
	doc := &Document{
		Declarations: []Declaration{
			&LetDecl{Name: Ident{Value: "x"}, Value: &NumberLit{Raw: "1"}},
		},
	}

	var types []NodeType
	Inspect(doc, func(n Node) bool {
		types = append(types, n.NodeType())
		return n.NodeType() != LET_DECL
	})

	assert.Equal(t, []NodeType{DOCUMENT, LET_DECL}, types)
}

func TestChildrenOfBareReturn(t *testing.T) {
	assert.Empty(t, Children(&ReturnStmt{}))
}
