package diagnostics

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"sigil/internal/ast"
)

// UndefinedName reports a reference to a name with no declaration in scope.
func UndefinedName(kind, name string, pos ast.Position, candidates []string) Diagnostic {
	b := NewError(ErrorUndefinedName, fmt.Sprintf("undefined %s '%s'", kind, name), pos).
		WithLength(utf8.RuneCountInString(name))

	if similar := SimilarNames(name, candidates); len(similar) > 0 {
		b = b.WithSuggestion(didYouMean(similar))
	} else {
		b = b.WithSuggestion(fmt.Sprintf("declare '%s' before using it", name)).
			WithNote("values are introduced with 'let' or as function parameters")
	}
	return b.Build()
}

// DuplicateDeclaration reports a second declaration of the same name in one scope.
func DuplicateDeclaration(name string, pos, previous ast.Position) Diagnostic {
	return NewError(ErrorDuplicateDeclaration, fmt.Sprintf("duplicate declaration: %s", name), pos).
		WithLength(utf8.RuneCountInString(name)).
		WithSuggestion(fmt.Sprintf("rename the duplicate '%s' to a unique name", name)).
		WithNote(fmt.Sprintf("'%s' was first declared at %d:%d", name, previous.Line, previous.Column)).
		Build()
}

// UndeclaredEvent reports an emit whose event has no 'event' declaration.
func UndeclaredEvent(name string, pos ast.Position, events []string) Diagnostic {
	b := NewError(ErrorUndeclaredEvent, fmt.Sprintf("cannot emit undeclared event '%s'", name), pos).
		WithLength(utf8.RuneCountInString(name))

	if similar := SimilarNames(name, events); len(similar) > 0 {
		b = b.WithSuggestion(didYouMean(similar))
	}
	return b.WithReplacement("declare the event at the top level", fmt.Sprintf("event %s;", name)).Build()
}

// InvalidArguments reports a call whose argument count differs from the parameter count.
func InvalidArguments(function string, expected, actual int, pos ast.Position) Diagnostic {
	return NewError(ErrorInvalidArguments,
		fmt.Sprintf("function '%s' expects %d arguments, got %d", function, expected, actual), pos).
		WithLength(utf8.RuneCountInString(function)).
		WithSuggestion(fmt.Sprintf("provide exactly %d argument(s)", expected)).
		Build()
}

// UnusedParameter warns about a parameter never referenced in its body.
func UnusedParameter(name string, pos ast.Position) Diagnostic {
	return NewWarning(WarningUnusedParameter, fmt.Sprintf("parameter '%s' is never used", name), pos).
		WithLength(utf8.RuneCountInString(name)).
		WithSuggestion(fmt.Sprintf("if this is intentional, prefix it with an underscore: '_%s'", name)).
		Build()
}

func didYouMean(similar []string) string {
	if len(similar) == 1 {
		return fmt.Sprintf("did you mean '%s'?", similar[0])
	}
	return fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '"))
}

// SimilarNames returns the candidates within edit distance 2 of target.
func SimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate == target || utf8.RuneCountInString(candidate) <= 2 {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance counts rune edits between a and b.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
