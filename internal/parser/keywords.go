package parser

var KEYWORDS = map[string]TokenType{
	"event":  EVENT,
	"let":    LET,
	"emit":   EMIT,
	"return": RETURN,
}

var PUNCTUATION = map[rune]TokenType{
	';': SEMICOLON,
	'=': EQUAL,
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	',': COMMA,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
