package diagnostics

// Diagnostic codes for the sigil toolchain.
//
// Code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0109: Lexical errors
// E0110-E0199: Syntax errors
// E0900-E0999: Tooling and I/O errors
// W0001-W0099: Warnings

const (
	// E0001: Reference to a name that is not declared
	ErrorUndefinedName = "E0001"

	// E0009: Duplicate declaration errors
	ErrorDuplicateDeclaration = "E0009"

	// E0013: Function call argument errors
	ErrorInvalidArguments = "E0013"

	// E0021: emit of an event that is not declared
	ErrorUndeclaredEvent = "E0021"

	// E0100: '/' at end of input
	ErrorUnexpectedEndOfInputLexical = "E0100"

	// E0101: Character that cannot start any token
	ErrorUnrecognizedCharacter = "E0101"

	// E0110: Token does not match the grammar
	ErrorUnexpectedToken = "E0110"

	// E0111: Input ended where a token was required
	ErrorUnexpectedEndOfInput = "E0111"

	// E0112: Token cannot start a declaration
	ErrorUnexpectedDeclaration = "E0112"

	// E0900: Source could not be read
	ErrorIO = "E0900"

	// W0001: Function parameter is never referenced
	WarningUnusedParameter = "W0001"
)

// Description returns a human-readable description of the code
func Description(code string) string {
	switch code {
	case ErrorUndefinedName:
		return "Name is used but not declared"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorInvalidArguments:
		return "Function call has the wrong number of arguments"
	case ErrorUndeclaredEvent:
		return "Emitted event is not declared"
	case ErrorUnexpectedEndOfInputLexical:
		return "Input ended inside a token"
	case ErrorUnrecognizedCharacter:
		return "Character is not part of the language"
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar here"
	case ErrorUnexpectedEndOfInput:
		return "Input ended before the construct was complete"
	case ErrorUnexpectedDeclaration:
		return "Token cannot start a declaration"
	case ErrorIO:
		return "Source file could not be read"
	case WarningUnusedParameter:
		return "Parameter is declared but never used"
	default:
		return "Unknown diagnostic code"
	}
}

// IsWarning returns true if the code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// Category returns the category of the diagnostic based on its code
func Category(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0110":
		return "Lexical"
	case code >= "E0110" && code < "E0200":
		return "Syntax"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
