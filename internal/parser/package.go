package parser

import (
	"io"
	"strings"

	"sigil/internal/ast"
)

// ParseSource scans and parses source, attributing positions to path.
func ParseSource(path string, source string) (*ast.Document, error) {
	return ParseReader(path, strings.NewReader(source))
}

// ParseReader scans r to completion and parses the resulting tokens. A scan
// failure short-circuits parsing.
func ParseReader(path string, r io.RuneScanner) (*ast.Document, error) {
	tokens, err := Scan(r)
	if err != nil {
		return nil, err
	}
	return NewParser(path, tokens).ParseDocument()
}
