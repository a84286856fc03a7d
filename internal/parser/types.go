package parser

import "fmt"

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER

	// Keywords
	EVENT
	LET
	EMIT
	RETURN

	// Operators
	EQUAL
	PLUS
	MINUS
	STAR

	// Separators
	COMMA
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var tokenTypeNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	EVENT:       "EVENT",
	LET:         "LET",
	EMIT:        "EMIT",
	RETURN:      "RETURN",
	EQUAL:       "EQUAL",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	COMMA:       "COMMA",
	SEMICOLON:   "SEMICOLON",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	LEFT_BRACE:  "LEFT_BRACE",
	RIGHT_BRACE: "RIGHT_BRACE",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt >= EVENT && tt <= RETURN
}

// Describe renders the token type the way it should appear in error messages:
// the literal spelling for keywords and punctuation, a noun for the rest.
func (tt TokenType) Describe() string {
	switch tt {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return "identifier"
	case NUMBER:
		return "numeric literal"
	}
	for spelling, kw := range KEYWORDS {
		if kw == tt {
			return "'" + spelling + "'"
		}
	}
	for r, punct := range PUNCTUATION {
		if punct == tt {
			return "'" + string(r) + "'"
		}
	}
	return tt.String()
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based byte index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p comes strictly before other in the source.
func (p Position) Less(other Position) bool {
	return p.Offset < other.Offset
}
