package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestEvalPrintsDocument(t *testing.T) {
	out, ok := Eval("event Started; let x = 1+2*3;")
	require.True(t, ok)
	assert.Equal(t, "event Started;\nlet x = 1 + 2 * 3;", out)
}

func TestEvalEmptyInput(t *testing.T) {
	out, ok := Eval("   // nothing")
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestEvalRendersParseError(t *testing.T) {
	out, ok := Eval("let x = ;")
	require.False(t, ok)

	assert.Contains(t, out, "error[E0110]: unexpected ';'")
	assert.Contains(t, out, "--> <repl>:1:9")
	assert.Contains(t, out, "1 │ let x = ;")
}

func TestEvalRendersScanError(t *testing.T) {
	out, ok := Eval("event A$;")
	require.False(t, ok)
	assert.Contains(t, out, "error[E0101]: unrecognized character '$'")
}

func TestEvalTokens(t *testing.T) {
	out, ok := Eval(":tokens let x = 1;")
	require.True(t, ok)
	assert.Equal(t, strings.Join([]string{
		`1:1 LET "let"`,
		`1:5 IDENTIFIER "x"`,
		`1:7 EQUAL "="`,
		`1:9 NUMBER "1"`,
		`1:10 SEMICOLON ";"`,
		`1:11 EOF`,
	}, "\n"), out)
}

func TestRun(t *testing.T) {
	in := strings.NewReader("event A;\n\nlet = 1;\n:quit\nevent B;\n")
	var out bytes.Buffer

	require.NoError(t, Run(in, &out))

	text := out.String()
	assert.Equal(t, 4, strings.Count(text, PROMPT))
	assert.Contains(t, text, ">> event A;\n")
	assert.Contains(t, text, "error[E0110]")
	assert.NotContains(t, text, "event B;")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader("event A;"), &out))
	assert.Equal(t, ">> event A;\n>> \n", out.String())
}
