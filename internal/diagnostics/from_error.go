package diagnostics

import (
	"errors"
	"unicode/utf8"

	"sigil/internal/ast"
	"sigil/internal/parser"
)

// FromError converts a failure from any stage into a Diagnostic. Scan and
// parse errors are found through wrapping; anything else is reported as I/O.
func FromError(path string, err error) Diagnostic {
	var scanErr *parser.ScanError
	if errors.As(err, &scanErr) {
		return fromScanError(path, scanErr)
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return fromParseError(path, parseErr)
	}

	return NewError(ErrorIO, err.Error(), ast.Position{Filename: path}).
		WithHelp("check that the file exists and is readable").
		Build()
}

func fromScanError(path string, err *parser.ScanError) Diagnostic {
	pos := toASTPosition(path, err.Position)

	switch err.Kind {
	case parser.ScanUnexpectedEndOfInput:
		return NewError(ErrorUnexpectedEndOfInputLexical, err.Message(), pos).
			WithReplacement("start a line comment", "//").
			Build()
	default:
		return NewError(ErrorUnrecognizedCharacter, err.Message(), pos).
			WithNote("only letters, digits, '_', whitespace, comments and ; = ( ) { } , + - * may appear in source").
			Build()
	}
}

func fromParseError(path string, err *parser.ParseError) Diagnostic {
	pos := toASTPosition(path, err.Position)
	length := max(1, utf8.RuneCountInString(err.Found.Lexeme))

	switch err.Kind {
	case parser.UnexpectedDeclaration:
		return NewError(ErrorUnexpectedDeclaration, err.Message(), pos).
			WithLength(length).
			WithHelp("a declaration starts with 'event', 'let' or a function name").
			Build()
	case parser.UnexpectedEndOfInput:
		return NewError(ErrorUnexpectedEndOfInput, err.Message(), pos).
			Build()
	default:
		b := NewError(ErrorUnexpectedToken, err.Message(), pos).WithLength(length)
		if err.Found.Type.IsKeyword() && err.ExpectedOneOf(parser.IDENTIFIER) {
			b = b.WithNote("'" + err.Found.Lexeme + "' is a reserved keyword and cannot be used as a name")
		}
		return b.Build()
	}
}

func toASTPosition(path string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: path,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
