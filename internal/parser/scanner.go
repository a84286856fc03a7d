package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("%s %s", t.Position, t.Type)
	}
	return fmt.Sprintf("%s %s %q", t.Position, t.Type, t.Lexeme)
}

// Scanner turns a rune source into tokens. It reads one rune ahead at most,
// so any io.RuneScanner (strings.Reader, bufio.Reader) can feed it.
type Scanner struct {
	reader  io.RuneScanner
	tokens  []Token
	lexeme  strings.Builder
	start   Position
	line    int
	column  int
	offset  int
	readErr error
}

func NewScanner(source string) *Scanner {
	return NewReaderScanner(strings.NewReader(source))
}

func NewReaderScanner(r io.RuneScanner) *Scanner {
	return &Scanner{
		reader: r,
		line:   1,
		column: 1,
	}
}

// Scan tokenizes everything r yields. The returned slice always ends with an
// EOF token. On failure the error is a *ScanError, or the read error of r.
func Scan(r io.RuneScanner) ([]Token, error) {
	return NewReaderScanner(r).ScanTokens()
}

func (s *Scanner) ScanTokens() ([]Token, error) {
	for {
		if err := s.skipTrivia(); err != nil {
			return nil, err
		}
		if s.isAtEnd() {
			break
		}
		s.start = s.position()
		s.lexeme.Reset()
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	if s.readErr != nil {
		return nil, s.readErr
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: s.position()})
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch {
	case isIdentifierStart(c):
		s.scanIdentifier()
	case isDigit(c):
		s.scanNumber()
	default:
		tt, ok := PUNCTUATION[c]
		if !ok {
			return s.errorAtStart(ScanUnrecognizedCharacter, c)
		}
		s.addToken(tt)
	}
	return nil
}

// skipTrivia consumes whitespace and line comments.
func (s *Scanner) skipTrivia() error {
	for {
		c, ok := s.peek()
		switch {
		case !ok:
			return nil
		case unicode.IsSpace(c):
			s.advance()
		case c == '/':
			if err := s.scanLineComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// scanLineComment discards "//" and everything up to, not including, the
// next newline.
func (s *Scanner) scanLineComment() error {
	s.start = s.position()
	s.advance()

	next, ok := s.peek()
	if !ok {
		if s.readErr != nil {
			return s.readErr
		}
		return s.errorAtStart(ScanUnexpectedEndOfInput, 0)
	}
	if next != '/' {
		return s.errorAtStart(ScanUnrecognizedCharacter, '/')
	}

	for {
		c, ok := s.peek()
		if !ok || c == '\n' {
			return nil
		}
		s.advance()
	}
}

func (s *Scanner) scanIdentifier() {
	for {
		c, ok := s.peek()
		if !ok || !isIdentifierPart(c) {
			break
		}
		s.advance()
	}
	s.addToken(lookupIdentifier(s.lexeme.String()))
}

func (s *Scanner) scanNumber() {
	for {
		c, ok := s.peek()
		if !ok || !isDigit(c) {
			break
		}
		s.advance()
	}
	s.addToken(NUMBER)
}

func (s *Scanner) advance() rune {
	c, size, err := s.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.readErr = err
		}
		return 0
	}
	s.offset += size
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.lexeme.WriteRune(c)
	return c
}

func (s *Scanner) peek() (rune, bool) {
	if s.readErr != nil {
		return 0, false
	}
	c, _, err := s.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.readErr = err
		}
		return 0, false
	}
	if err := s.reader.UnreadRune(); err != nil {
		s.readErr = err
		return 0, false
	}
	return c, true
}

func (s *Scanner) isAtEnd() bool {
	_, ok := s.peek()
	return !ok
}

func (s *Scanner) position() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:     tokenType,
		Lexeme:   s.lexeme.String(),
		Position: s.start,
	})
}

func (s *Scanner) errorAtStart(kind ScanErrorKind, c rune) *ScanError {
	return &ScanError{
		Kind:     kind,
		Char:     c,
		Position: s.start,
		Length:   1,
	}
}

// Helper functions.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentifierPart(c rune) bool {
	return isIdentifierStart(c) || unicode.IsDigit(c)
}
