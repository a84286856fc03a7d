// Package grammar is a declarative participle grammar for sigil sources. It
// accepts the same language as the hand-written parser and lowers to the same
// AST, which makes it a cross-check for that parser.
package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spf13/afero"

	"sigil/internal/ast"
)

var sigilParser = participle.MustBuild[File](
	participle.Lexer(SigilLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Map(markKeywords, "Ident"),
	participle.UseLookahead(3),
)

// Parse parses source, attributing positions to filename.
func Parse(filename, source string) (*File, error) {
	return sigilParser.ParseString(filename, source)
}

// ParseDocument parses source and lowers it to an ast.Document.
func ParseDocument(filename, source string) (*ast.Document, error) {
	file, err := Parse(filename, source)
	if err != nil {
		return nil, err
	}
	return file.Document(), nil
}

// ParseFile reads path from fs and parses it.
func ParseFile(fs afero.Fs, path string) (*File, error) {
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// ErrorPosition extracts the source position of a participle error.
func ErrorPosition(err error) (lexer.Position, bool) {
	var pe participle.Error
	if errors.As(err, &pe) {
		return pe.Position(), true
	}
	return lexer.Position{}, false
}
