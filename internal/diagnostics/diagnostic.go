package diagnostics

import "sigil/internal/ast"

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// Diagnostic is a structured, renderable report about a source location.
type Diagnostic struct {
	Level       Level
	Code        string       // Code like E0001
	Message     string       // Primary message
	Position    ast.Position // Location in source; Line 0 means no location
	Length      int          // Length of the problematic region in runes
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string
	Replacement string // optional
}

func (d Diagnostic) IsError() bool {
	return d.Level == Error
}

// Builder provides a fluent interface for assembling diagnostics.
type Builder struct {
	d Diagnostic
}

// NewError starts an error diagnostic.
func NewError(code, message string, pos ast.Position) *Builder {
	return &Builder{d: Diagnostic{
		Level:    Error,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	}}
}

// NewWarning starts a warning diagnostic.
func NewWarning(code, message string, pos ast.Position) *Builder {
	b := NewError(code, message, pos)
	b.d.Level = Warning
	return b
}

func (b *Builder) WithLength(length int) *Builder {
	b.d.Length = length
	return b
}

func (b *Builder) WithSuggestion(message string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

func (b *Builder) WithReplacement(message, replacement string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.d.HelpText = help
	return b
}

func (b *Builder) Build() Diagnostic {
	return b.d
}

// HasErrors reports whether any diagnostic is an error rather than a warning.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}
