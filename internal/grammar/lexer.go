package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SigilLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Identifiers; keywords are re-typed by markKeywords
		{"Ident", `[\p{L}_][\p{L}\p{Nd}_]*`, nil},

		// Never matched directly, declares the Keyword symbol
		{"Keyword", `(event|let|emit|return)`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Operators and punctuation
		{"Punct", `[;=(){},+\-*]`, nil},

		// Whitespace
		{"Whitespace", `[\s\v\x{85}\p{Z}]+`, nil},
	},
})

var keywordType = SigilLexer.Symbols()["Keyword"]

var keywords = map[string]bool{
	"event":  true,
	"let":    true,
	"emit":   true,
	"return": true,
}

// markKeywords re-types reserved words so @Ident never captures them.
func markKeywords(tok lexer.Token) (lexer.Token, error) {
	if keywords[tok.Value] {
		tok.Type = keywordType
	}
	return tok, nil
}
