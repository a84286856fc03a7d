package diagnostics

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"sigil/internal/ast"
)

func init() {
	color.NoColor = true
}

func TestReporterFormat(t *testing.T) {
	source := "event Started;\nrun() {\n  emit Stoped;\n}"
	reporter := NewReporter("test.sig", source)

	d := UndeclaredEvent("Stoped", ast.Position{Line: 3, Column: 8}, []string{"Started", "Stopped"})
	formatted := reporter.Format(d)

	assert.Contains(t, formatted, "error["+ErrorUndeclaredEvent+"]: cannot emit undeclared event 'Stoped'")
	assert.Contains(t, formatted, "--> test.sig:3:8")
	assert.Contains(t, formatted, "  2 │ run() {")
	assert.Contains(t, formatted, "  3 │   emit Stoped;")
	assert.Contains(t, formatted, "  4 │ }")
	assert.Contains(t, formatted, "    │        ^^^^^^\n")
	assert.Contains(t, formatted, "did you mean 'Stopped'?")
	assert.Contains(t, formatted, "event Stoped;")
}

func TestReporterFirstLineHasNoPrecedingContext(t *testing.T) {
	reporter := NewReporter("test.sig", "let x = ;\nevent A;")
	formatted := reporter.Format(NewError(ErrorUnexpectedToken, "unexpected ';'", ast.Position{Line: 1, Column: 9}).Build())

	lines := strings.Split(formatted, "\n")
	assert.Equal(t, "error[E0110]: unexpected ';'", lines[0])
	assert.Equal(t, "    --> test.sig:1:9", lines[1])
	assert.Equal(t, "    │", lines[2])
	assert.Equal(t, "  1 │ let x = ;", lines[3])
	assert.Equal(t, "    │         ^", lines[4])
	assert.Equal(t, "  2 │ event A;", lines[5])
}

func TestReporterWithoutLocation(t *testing.T) {
	reporter := NewReporter("missing.sig", "")
	formatted := reporter.Format(NewError(ErrorIO, "open missing.sig: file does not exist", ast.Position{}).Build())

	assert.Contains(t, formatted, "error[E0900]")
	assert.Contains(t, formatted, "--> missing.sig\n")
	assert.NotContains(t, formatted, "^")
}

func TestWarningFormatting(t *testing.T) {
	reporter := NewReporter("test.sig", "step(unused) {}")
	formatted := reporter.Format(UnusedParameter("unused", ast.Position{Line: 1, Column: 6}))

	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "never used")
	assert.Contains(t, formatted, "prefix it with an underscore")
}

func TestErrorMarkerCreation(t *testing.T) {
	marker := createMarker(5, 8, Error)

	assert.Equal(t, 4, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))
}

func TestFormatAll(t *testing.T) {
	reporter := NewReporter("test.sig", "a() {}\na() {}")
	diags := []Diagnostic{
		DuplicateDeclaration("a", ast.Position{Line: 2, Column: 1}, ast.Position{Line: 1, Column: 1}),
		UnusedParameter("x", ast.Position{Line: 1, Column: 3}),
	}

	formatted := reporter.FormatAll(diags)
	assert.Equal(t, 1, strings.Count(formatted, "error[E0009]"))
	assert.Equal(t, 1, strings.Count(formatted, "warning[W0001]"))
	assert.Contains(t, formatted, "'a' was first declared at 1:1")
}

func TestErrorLevels(t *testing.T) {
	reporter := NewReporter("test.sig", "test")
	pos := ast.Position{Line: 1, Column: 1}

	assert.Contains(t, reporter.Format(Diagnostic{Level: Error, Message: "test error", Position: pos}), "error: test error")
	assert.Contains(t, reporter.Format(Diagnostic{Level: Warning, Message: "test warning", Position: pos}), "warning: test warning")
}
