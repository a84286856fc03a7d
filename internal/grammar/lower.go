package grammar

import (
	"math/big"

	"github.com/alecthomas/participle/v2/lexer"

	"sigil/internal/ast"
)

// Document lowers the parse tree to the AST shared with the hand-written
// parser. Binary operators fold to the left.
func (f *File) Document() *ast.Document {
	var decls []ast.Declaration
	for _, d := range f.Decls {
		decls = append(decls, d.lower())
	}
	return &ast.Document{
		Pos:          pos(f.Pos),
		EndPos:       pos(f.EndPos),
		Declarations: decls,
	}
}

func pos(p lexer.Position) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

func (n Name) ident() ast.Ident {
	return ast.Ident{Pos: pos(n.Pos), EndPos: pos(n.EndPos), Value: n.Value}
}

func (d *Decl) lower() ast.Declaration {
	switch {
	case d.Event != nil:
		return &ast.EventDecl{
			Pos:    pos(d.Event.Pos),
			EndPos: pos(d.Event.EndPos),
			Name:   d.Event.Name.ident(),
		}
	case d.Let != nil:
		return &ast.LetDecl{
			Pos:    pos(d.Let.Pos),
			EndPos: pos(d.Let.EndPos),
			Name:   d.Let.Name.ident(),
			Value:  d.Let.Value.lower(),
		}
	default:
		fn := d.Function
		var params []ast.Ident
		for _, p := range fn.Params {
			params = append(params, p.ident())
		}
		return &ast.FunctionDecl{
			Pos:    pos(fn.Pos),
			EndPos: pos(fn.EndPos),
			Name:   fn.Name.ident(),
			Params: params,
			Body:   fn.Body.lower(),
		}
	}
}

func (b *Block) lower() *ast.Block {
	var stmts []ast.Stmt
	for _, s := range b.Stmts {
		stmts = append(stmts, s.lower())
	}
	return &ast.Block{Pos: pos(b.Pos), EndPos: pos(b.EndPos), Stmts: stmts}
}

func (s *Stmt) lower() ast.Stmt {
	switch {
	case s.Let != nil:
		return &ast.LetStmt{
			Pos:    pos(s.Let.Pos),
			EndPos: pos(s.Let.EndPos),
			Name:   s.Let.Name.ident(),
			Value:  s.Let.Value.lower(),
		}
	case s.Emit != nil:
		return &ast.EmitStmt{
			Pos:    pos(s.Emit.Pos),
			EndPos: pos(s.Emit.EndPos),
			Event:  s.Emit.Event.ident(),
		}
	case s.Return != nil:
		ret := &ast.ReturnStmt{Pos: pos(s.Return.Pos), EndPos: pos(s.Return.EndPos)}
		if s.Return.Value != nil {
			ret.Value = s.Return.Value.lower()
		}
		return ret
	case s.Assign != nil:
		return &ast.AssignStmt{
			Pos:    pos(s.Assign.Pos),
			EndPos: pos(s.Assign.EndPos),
			Target: s.Assign.Target.ident(),
			Value:  s.Assign.Value.lower(),
		}
	default:
		return &ast.ExprStmt{Pos: pos(s.Pos), EndPos: pos(s.EndPos), Expr: s.Expr.lower()}
	}
}

var binaryOps = map[string]ast.BinaryOp{
	"+": ast.ADD,
	"-": ast.SUB,
	"*": ast.MUL,
}

func (e *Expr) lower() ast.Expr {
	expr := e.Left.lower()
	for _, rest := range e.Rest {
		right := rest.Term.lower()
		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   expr,
			Op:     binaryOps[rest.Op],
			Right:  right,
		}
	}
	return expr
}

func (t *Term) lower() ast.Expr {
	expr := t.Left.lower()
	for _, rest := range t.Rest {
		right := rest.Factor.lower()
		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   expr,
			Op:     binaryOps[rest.Op],
			Right:  right,
		}
	}
	return expr
}

func (f *Factor) lower() ast.Expr {
	switch {
	case f.Number != nil:
		value, _ := new(big.Int).SetString(*f.Number, 10)
		return &ast.NumberLit{Pos: pos(f.Pos), EndPos: pos(f.EndPos), Raw: *f.Number, Value: value}
	case f.Call != nil:
		var args []ast.Expr
		for _, arg := range f.Call.Args {
			args = append(args, arg.lower())
		}
		return &ast.CallExpr{
			Pos:    pos(f.Call.Pos),
			EndPos: pos(f.Call.EndPos),
			Callee: f.Call.Callee.ident(),
			Args:   args,
		}
	case f.Ident != nil:
		name := f.Ident.ident()
		return &ast.IdentExpr{Pos: name.Pos, EndPos: name.EndPos, Name: name}
	default:
		return &ast.ParenExpr{Pos: pos(f.Pos), EndPos: pos(f.EndPos), Expr: f.Paren.lower()}
	}
}
