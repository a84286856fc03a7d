package compiler

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigil/internal/ast"
	"sigil/internal/parser"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestCompile(t *testing.T) {
	c := New(memFs(t, map[string]string{
		"app/counter.sig": "// counter\nevent Bumped;\nlet start = 1;\nbump(n) { emit Bumped; return n + 1; }\n",
	}))

	doc, err := c.Compile("app/counter.sig")
	require.NoError(t, err)
	require.Len(t, doc.Declarations, 3)

	assert.Equal(t, ast.EVENT_DECL, doc.Declarations[0].NodeType())
	assert.Equal(t, "app/counter.sig", doc.Declarations[0].NodePos().Filename)
	assert.Equal(t, 2, doc.Declarations[0].NodePos().Line)
}

func TestCompileEmptyFile(t *testing.T) {
	c := New(memFs(t, map[string]string{"empty.sig": ""}))

	doc, err := c.Compile("empty.sig")
	require.NoError(t, err)
	assert.Empty(t, doc.Declarations)
}

func TestCompileMissingFile(t *testing.T) {
	c := New(afero.NewMemMapFs())

	doc, err := c.Compile("nowhere.sig")
	assert.Nil(t, doc)

	var cerr *CompilerError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, IOError, cerr.Kind)
	assert.Equal(t, "nowhere.sig", cerr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, ok := cerr.Position()
	assert.False(t, ok)
}

func TestCompileLexError(t *testing.T) {
	c := New(memFs(t, map[string]string{"bad.sig": "event Sta$rted;"}))

	_, err := c.Compile("bad.sig")

	var cerr *CompilerError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, LexError, cerr.Kind)

	var scanErr *parser.ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, parser.ScanUnrecognizedCharacter, scanErr.Kind)

	pos, ok := cerr.Position()
	require.True(t, ok)
	assert.Equal(t, parser.Position{Line: 1, Column: 10, Offset: 9}, pos)
	assert.Equal(t, "bad.sig:1:10: unrecognized character '$'", err.Error())
}

func TestCompileParseError(t *testing.T) {
	c := New(memFs(t, map[string]string{"bad.sig": "event A;\nlet x = ;\n"}))

	_, err := c.Compile("bad.sig")

	var cerr *CompilerError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ParseError, cerr.Kind)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, parser.UnexpectedToken, parseErr.Kind)
	assert.Equal(t, parser.SEMICOLON, parseErr.Found.Type)

	pos, ok := cerr.Position()
	require.True(t, ok)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 9, pos.Column)
}

func TestValidatePath(t *testing.T) {
	fs := memFs(t, map[string]string{"src/main.sig": "event A;"})
	require.NoError(t, fs.MkdirAll("src/nested", 0o755))
	c := New(fs)

	assert.NoError(t, c.ValidatePath("src/main.sig"))
	assert.EqualError(t, c.ValidatePath(""), "no source file given")

	var cerr *CompilerError
	require.ErrorAs(t, c.ValidatePath("src/missing.sig"), &cerr)
	assert.Equal(t, IOError, cerr.Kind)

	err := c.ValidatePath("src/nested")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestReadSource(t *testing.T) {
	c := New(memFs(t, map[string]string{"a.sig": "event A;\n"}))

	source, err := c.ReadSource("a.sig")
	require.NoError(t, err)
	assert.Equal(t, "event A;\n", source)

	_, err = c.ReadSource("b.sig")
	assert.Error(t, err)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "IOError", IOError.String())
	assert.Equal(t, "LexError", LexError.String())
	assert.Equal(t, "ParseError", ParseError.String())
	assert.Equal(t, "ErrorKind(7)", ErrorKind(7).String())
}
