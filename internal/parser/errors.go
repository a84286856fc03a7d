package parser

import (
	"fmt"
	"strings"
)

type ScanErrorKind int

const (
	// ScanUnexpectedEndOfInput is reported when a multi-character lexeme is
	// cut short by the end of the input.
	ScanUnexpectedEndOfInput ScanErrorKind = iota
	// ScanUnrecognizedCharacter is reported when no rule accepts a character.
	ScanUnrecognizedCharacter
)

func (k ScanErrorKind) String() string {
	switch k {
	case ScanUnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case ScanUnrecognizedCharacter:
		return "UnrecognizedCharacter"
	default:
		return fmt.Sprintf("ScanErrorKind(%d)", int(k))
	}
}

type ScanError struct {
	Kind     ScanErrorKind
	Char     rune     // offending character, zero for end of input
	Position Position // line, column, offset
	Length   int      // how many characters the error covers
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message())
}

// Message is the error text without position information.
func (e *ScanError) Message() string {
	switch e.Kind {
	case ScanUnexpectedEndOfInput:
		return "unexpected end of input: '/' must be followed by '/' to start a comment"
	case ScanUnrecognizedCharacter:
		return fmt.Sprintf("unrecognized character %q", e.Char)
	default:
		return e.Kind.String()
	}
}

type ParseErrorKind int

const (
	// UnexpectedToken: a required token did not match.
	UnexpectedToken ParseErrorKind = iota
	// UnexpectedEndOfInput: the tokens ran out in the middle of a construct.
	UnexpectedEndOfInput
	// UnexpectedDeclaration: the leading token cannot start a declaration.
	UnexpectedDeclaration
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case UnexpectedDeclaration:
		return "UnexpectedDeclaration"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

type ParseError struct {
	Kind     ParseErrorKind
	Expected []TokenType
	Context  string // construct being parsed, e.g. "let declaration"
	Found    Token
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message())
}

// Message is the error text without position information.
func (e *ParseError) Message() string {
	var b strings.Builder
	switch e.Kind {
	case UnexpectedEndOfInput:
		b.WriteString("unexpected end of input")
	case UnexpectedDeclaration:
		fmt.Fprintf(&b, "expected a declaration, found %s", describeToken(e.Found))
		return b.String()
	default:
		fmt.Fprintf(&b, "unexpected %s", describeToken(e.Found))
	}
	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		b.WriteString(describeExpected(e.Expected))
	}
	if e.Context != "" {
		b.WriteString(" in ")
		b.WriteString(e.Context)
	}
	return b.String()
}

// ExpectedOneOf reports whether tt is among the token types the parser would
// have accepted.
func (e *ParseError) ExpectedOneOf(tt TokenType) bool {
	for _, exp := range e.Expected {
		if exp == tt {
			return true
		}
	}
	return false
}

func describeToken(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Lexeme)
	case NUMBER:
		return fmt.Sprintf("numeric literal '%s'", tok.Lexeme)
	default:
		return "'" + tok.Lexeme + "'"
	}
}

func describeExpected(types []TokenType) string {
	parts := make([]string, len(types))
	for i, tt := range types {
		parts[i] = tt.Describe()
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}
