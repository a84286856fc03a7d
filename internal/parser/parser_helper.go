package parser

import (
	"unicode/utf8"

	"sigil/internal/ast"
)

func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type tt and reports an error
// naming context otherwise.
func (p *Parser) expect(tt TokenType, context string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent(context, tt)
}

func (p *Parser) peek() Token {
	return p.at(p.current)
}

func (p *Parser) peekNext() Token {
	return p.at(p.current + 1)
}

// at clamps to the trailing EOF token so lookahead never runs off the buffer.
func (p *Parser) at(i int) Token {
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(context string, expected ...TokenType) *ParseError {
	tok := p.peek()
	kind := UnexpectedToken
	if tok.Type == EOF {
		kind = UnexpectedEndOfInput
	}
	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Context:  context,
		Found:    tok,
		Position: tok.Position,
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	end := endPosition(tok)
	return ast.Position{
		Filename: p.filename,
		Offset:   end.Offset,
		Line:     end.Line,
		Column:   end.Column,
	}
}

// endPosition is the position just past the token. Lexemes never span lines.
func endPosition(tok Token) Position {
	return Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + utf8.RuneCountInString(tok.Lexeme),
		Offset: tok.Position.Offset + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// expectIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) expectIdent(context string) (ast.Ident, error) {
	tok, err := p.expect(IDENTIFIER, context)
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(tok), nil
}

// parseIdentifierList parses a comma-separated list of identifiers
func (p *Parser) parseIdentifierList(context string) ([]ast.Ident, error) {
	var idents []ast.Ident

	for {
		ident, err := p.expectIdent(context)
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)

		if !p.match(COMMA) {
			return idents, nil
		}
	}
}
