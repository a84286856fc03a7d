package parser

import (
	"math/big"

	"sigil/internal/ast"
)

var binaryPrecedence = map[TokenType]int{
	PLUS:  1,
	MINUS: 1,
	STAR:  2,
}

var binaryOperators = map[TokenType]ast.BinaryOp{
	PLUS:  ast.ADD,
	MINUS: ast.SUB,
	STAR:  ast.MUL,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parsePrattExpr(0)
}

// parsePrattExpr folds operators of at least minPrec left-associatively.
func (p *Parser) parsePrattExpr(minPrec int) (ast.Expr, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right, err := p.parsePrattExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   expr,
			Op:     binaryOperators[tok.Type],
			Right:  right,
		}
	}

	return expr, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case NUMBER:
		p.advance()
		value, ok := new(big.Int).SetString(tok.Lexeme, 10)
		if !ok {
			return nil, &ParseError{
				Kind:     UnexpectedToken,
				Expected: []TokenType{NUMBER},
				Context:  "numeric literal",
				Found:    tok,
				Position: tok.Position,
			}
		}
		return &ast.NumberLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Raw:    tok.Lexeme,
			Value:  value,
		}, nil

	case IDENTIFIER:
		p.advance()
		name := p.makeIdent(tok)
		if p.check(LEFT_PAREN) {
			return p.parseCallExpr(name)
		}
		return &ast.IdentExpr{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
		}, nil

	case LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(RIGHT_PAREN, "parenthesized expression")
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(end),
			Expr:   inner,
		}, nil

	default:
		return nil, p.errorAtCurrent("expression", NUMBER, IDENTIFIER, LEFT_PAREN)
	}
}

func (p *Parser) parseCallExpr(callee ast.Ident) (ast.Expr, error) {
	const context = "call arguments"
	p.advance() // (

	var args []ast.Expr
	if !p.check(RIGHT_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(COMMA) {
				break
			}
		}
	}

	end, err := p.expect(RIGHT_PAREN, context)
	if err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		Pos:    callee.Pos,
		EndPos: p.makeEndPos(end),
		Callee: callee,
		Args:   args,
	}, nil
}
