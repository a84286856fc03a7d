package parser

import "sigil/internal/ast"

// Parser is a recursive-descent parser over an immutable token buffer. The
// only state is the index of the current token, so lookahead never consumes.
type Parser struct {
	filename string
	tokens   []Token
	current  int
}

func NewParser(filename string, tokens []Token) *Parser {
	buf := make([]Token, len(tokens), len(tokens)+1)
	copy(buf, tokens)

	if len(buf) == 0 || buf[len(buf)-1].Type != EOF {
		end := Position{Line: 1, Column: 1}
		if len(buf) > 0 {
			last := buf[len(buf)-1]
			end = endPosition(last)
		}
		buf = append(buf, Token{Type: EOF, Position: end})
	}

	return &Parser{
		filename: filename,
		tokens:   buf,
	}
}

// Parse builds a Document from a token buffer produced by the Scanner.
func Parse(tokens []Token) (*ast.Document, error) {
	return NewParser("", tokens).ParseDocument()
}

// ParseDocument parses declarations until EOF. It stops at the first error,
// which is always a *ParseError.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	start := p.peek()
	var decls []ast.Declaration

	for !p.isAtEnd() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return &ast.Document{
		Pos:          p.makePos(start),
		EndPos:       p.makePos(p.peek()),
		Declarations: decls,
	}, nil
}

func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	switch p.peek().Type {
	case EVENT:
		decl, err := p.parseEventDecl()
		if err != nil {
			return nil, err
		}
		return decl, nil
	case LET:
		decl, err := p.parseLetDecl()
		if err != nil {
			return nil, err
		}
		return decl, nil
	case IDENTIFIER:
		decl, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		return decl, nil
	default:
		tok := p.peek()
		return nil, &ParseError{
			Kind:     UnexpectedDeclaration,
			Expected: []TokenType{EVENT, LET, IDENTIFIER},
			Found:    tok,
			Position: tok.Position,
		}
	}
}

// parseEventDecl parses: event Name;
func (p *Parser) parseEventDecl() (*ast.EventDecl, error) {
	const context = "event declaration"
	start := p.advance()

	name, err := p.expectIdent(context)
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, context)
	if err != nil {
		return nil, err
	}

	return &ast.EventDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
	}, nil
}

// parseLetDecl parses: let name = expr;
func (p *Parser) parseLetDecl() (*ast.LetDecl, error) {
	const context = "let declaration"
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

	return &ast.LetDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Value:  value,
	}, nil
}
