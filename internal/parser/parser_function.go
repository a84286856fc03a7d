package parser

import "sigil/internal/ast"

// parseFunctionDecl parses: name(a, b) { ... }
func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	const context = "function declaration"

	name, err := p.expectIdent(context)
	if err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}

	body, err := p.parseFunctionBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Pos:    name.Pos,
		EndPos: body.EndPos,
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

// parseFunctionParameters parses the parameter list in parentheses
func (p *Parser) parseFunctionParameters() ([]ast.Ident, error) {
	const context = "parameter list"

	if _, err := p.expect(LEFT_PAREN, "function declaration"); err != nil {
		return nil, err
	}

	var params []ast.Ident
	if !p.check(RIGHT_PAREN) {
		list, err := p.parseIdentifierList(context)
		if err != nil {
			return nil, err
		}
		params = list
	}

	if _, err := p.expect(RIGHT_PAREN, context); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseFunctionBlock() (*ast.Block, error) {
	const context = "function body"

	start, err := p.expect(LEFT_BRACE, context)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.check(RIGHT_BRACE) {
		if p.isAtEnd() {
			return nil, p.errorAtCurrent(context, RIGHT_BRACE)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	end := p.advance()
	return &ast.Block{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Stmts:  stmts,
	}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	var (
		stmt ast.Stmt
		err  error
	)

	switch {
	case p.check(LET):
		stmt, err = p.parseLetStmt()
	case p.check(EMIT):
		stmt, err = p.parseEmitStmt()
	case p.check(RETURN):
		stmt, err = p.parseReturnStmt()
	case p.check(IDENTIFIER) && p.peekNext().Type == EQUAL:
		stmt, err = p.parseAssignStmt()
	default:
		stmt, err = p.parseExprStmt()
	}

	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	const context = "let statement"
	start := p.advance()

	name, err := p.expectIdent(context)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EQUAL, context); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, context)
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Value:  value,
	}, nil
}

func (p *Parser) parseAssignStmt() (ast.Stmt, error) {
	const context = "assignment"

	target, err := p.expectIdent(context)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EQUAL, context); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, context)
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{
		Pos:    target.Pos,
		EndPos: p.makeEndPos(end),
		Target: target,
		Value:  value,
	}, nil
}

func (p *Parser) parseEmitStmt() (ast.Stmt, error) {
	const context = "emit statement"
	start := p.advance()

	event, err := p.expectIdent(context)
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, context)
	if err != nil {
		return nil, err
	}

	return &ast.EmitStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Event:  event,
	}, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	const context = "return statement"
	start := p.advance()

	var value ast.Expr
	if !p.check(SEMICOLON) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		value = expr
	}

	end, err := p.expect(SEMICOLON, context)
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Value:  value,
	}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, "expression statement")
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(end),
		Expr:   expr,
	}, nil
}
