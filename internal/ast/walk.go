package ast

// Inspect traverses the tree rooted at node in source order, calling f for
// every node. Children of a node are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var children []Node

	switch n := node.(type) {
	case *Document:
		for _, decl := range n.Declarations {
			children = append(children, decl)
		}

	case *EventDecl:
		children = append(children, &n.Name)

	case *LetDecl:
		children = append(children, &n.Name)
		children = appendExpr(children, n.Value)

	case *FunctionDecl:
		children = append(children, &n.Name)
		for i := range n.Params {
			children = append(children, &n.Params[i])
		}
		if n.Body != nil {
			children = append(children, n.Body)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			children = append(children, stmt)
		}

	case *LetStmt:
		children = append(children, &n.Name)
		children = appendExpr(children, n.Value)

	case *AssignStmt:
		children = append(children, &n.Target)
		children = appendExpr(children, n.Value)

	case *EmitStmt:
		children = append(children, &n.Event)

	case *ReturnStmt:
		children = appendExpr(children, n.Value)

	case *ExprStmt:
		children = appendExpr(children, n.Expr)

	case *IdentExpr:
		children = append(children, &n.Name)

	case *BinaryExpr:
		children = appendExpr(children, n.Left)
		children = appendExpr(children, n.Right)

	case *CallExpr:
		children = append(children, &n.Callee)
		for _, arg := range n.Args {
			children = appendExpr(children, arg)
		}

	case *ParenExpr:
		children = appendExpr(children, n.Expr)
	}

	return children
}

func appendExpr(children []Node, expr Expr) []Node {
	if expr == nil {
		return children
	}
	return append(children, expr)
}
