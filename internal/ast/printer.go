package ast

import (
	"fmt"
	"strings"
)

func (d *Document) String() string {
	var b strings.Builder
	for i, decl := range d.Declarations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (e *EventDecl) String() string {
	return fmt.Sprintf("event %s;", e.Name.Value)
}

func (l *LetDecl) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.Value, l.Value.String())
}

func (f *FunctionDecl) String() string {
	var b strings.Builder

	b.WriteString(f.Name.Value)
	b.WriteString("(")
	b.WriteString(joinIdents(f.Params))
	b.WriteString(") ")
	if f.Body != nil {
		b.WriteString(f.Body.String())
	} else {
		b.WriteString("{}")
	}

	return b.String()
}

func (bl *Block) String() string {
	if len(bl.Stmts) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range bl.Stmts {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.Value, l.Value.String())
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", a.Target.Value, a.Value.String())
}

func (e *EmitStmt) String() string {
	return fmt.Sprintf("emit %s;", e.Event.Value)
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (n *NumberLit) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	if n.Value != nil {
		return n.Value.String()
	}
	return "0"
}

func (i *IdentExpr) String() string {
	return i.Name.Value
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.Value, strings.Join(args, ", "))
}

func (p *ParenExpr) String() string {
	return "(" + p.Expr.String() + ")"
}

func joinIdents(idents []Ident) string {
	names := make([]string, len(idents))
	for i, ident := range idents {
		names[i] = ident.Value
	}
	return strings.Join(names, ", ")
}
