package parser

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigil/internal/ast"
)

// ignorePositions compares node shapes only.
var ignorePositions = cmp.Options{
	cmpopts.IgnoreTypes(ast.Position{}),
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

func ident(name string) ast.Ident {
	return ast.Ident{Value: name}
}

func number(n int64) *ast.NumberLit {
	return &ast.NumberLit{Raw: big.NewInt(n).String(), Value: big.NewInt(n)}
}

func mustParse(t *testing.T, source string) *ast.Document {
	t.Helper()
	doc, err := ParseSource("test.sig", source)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func requireParseError(t *testing.T, source string) *ParseError {
	t.Helper()
	_, err := ParseSource("test.sig", source)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	return parseErr
}

func TestParseEventDeclaration(t *testing.T) {
	doc := mustParse(t, "event Started;")

	expected := &ast.Document{Declarations: []ast.Declaration{
		&ast.EventDecl{Name: ident("Started")},
	}}
	if diff := cmp.Diff(expected, doc, ignorePositions); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseLetDeclaration(t *testing.T) {
	doc := mustParse(t, "let x = 100;")

	expected := &ast.Document{Declarations: []ast.Declaration{
		&ast.LetDecl{Name: ident("x"), Value: number(100)},
	}}
	if diff := cmp.Diff(expected, doc, ignorePositions); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseLetDeclarationLargeLiteral(t *testing.T) {
	doc := mustParse(t, "let big = 340282366920938463463374607431768211456;")

	let := doc.Declarations[0].(*ast.LetDecl)
	lit, ok := let.Value.(*ast.NumberLit)
	require.True(t, ok)

	want, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	assert.Zero(t, want.Cmp(lit.Value))
}

func TestParseLetDeclarationIdentifierValue(t *testing.T) {
	doc := mustParse(t, "let y = x;")

	let := doc.Declarations[0].(*ast.LetDecl)
	ref, ok := let.Value.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "x", ref.Name.Value)
}

func TestParseFunctionDeclaration(t *testing.T) {
	doc := mustParse(t, "foo(a, b) { }")

	expected := &ast.Document{Declarations: []ast.Declaration{
		&ast.FunctionDecl{
			Name:   ident("foo"),
			Params: []ast.Ident{ident("a"), ident("b")},
			Body:   &ast.Block{},
		},
	}}
	if diff := cmp.Diff(expected, doc, ignorePositions); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseFunctionWithoutParameters(t *testing.T) {
	doc := mustParse(t, "reset() {}")

	fn := doc.Declarations[0].(*ast.FunctionDecl)
	assert.Equal(t, "reset", fn.Name.Value)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Body.Stmts)
}

func TestParseFunctionBody(t *testing.T) {
	source := `transfer(from, to) {
    let amount = balance(from) * 2;
    total = total + amount;
    emit Moved;
    notify(to, amount);
    return;
}`
	doc := mustParse(t, source)

	expected := &ast.Document{Declarations: []ast.Declaration{
		&ast.FunctionDecl{
			Name:   ident("transfer"),
			Params: []ast.Ident{ident("from"), ident("to")},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.LetStmt{
					Name: ident("amount"),
					Value: &ast.BinaryExpr{
						Left: &ast.CallExpr{
							Callee: ident("balance"),
							Args:   []ast.Expr{&ast.IdentExpr{Name: ident("from")}},
						},
						Op:    ast.MUL,
						Right: number(2),
					},
				},
				&ast.AssignStmt{
					Target: ident("total"),
					Value: &ast.BinaryExpr{
						Left:  &ast.IdentExpr{Name: ident("total")},
						Op:    ast.ADD,
						Right: &ast.IdentExpr{Name: ident("amount")},
					},
				},
				&ast.EmitStmt{Event: ident("Moved")},
				&ast.ExprStmt{Expr: &ast.CallExpr{
					Callee: ident("notify"),
					Args: []ast.Expr{
						&ast.IdentExpr{Name: ident("to")},
						&ast.IdentExpr{Name: ident("amount")},
					},
				}},
				&ast.ReturnStmt{},
			}},
		},
	}}
	if diff := cmp.Diff(expected, doc, ignorePositions); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseReturnWithValue(t *testing.T) {
	doc := mustParse(t, "next(state) { return state + 1; }")

	fn := doc.Declarations[0].(*ast.FunctionDecl)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	assert.Equal(t, "state + 1", ret.Value.String())
}

func TestParseDeclarationsInSourceOrder(t *testing.T) {
	doc := mustParse(t, "event A;\nlet b = 1;\nc() {}\nevent D;")

	require.Len(t, doc.Declarations, 4)
	assert.Equal(t, ast.EVENT_DECL, doc.Declarations[0].NodeType())
	assert.Equal(t, ast.LET_DECL, doc.Declarations[1].NodeType())
	assert.Equal(t, ast.FUNCTION_DECL, doc.Declarations[2].NodeType())
	assert.Equal(t, ast.EVENT_DECL, doc.Declarations[3].NodeType())
}

func TestParseEmptyDocument(t *testing.T) {
	for _, source := range []string{"", "\n", "   \t\n\n", "// just a comment\n", "// a\n// b"} {
		doc, err := ParseSource("test.sig", source)
		require.NoError(t, err, "%q", source)
		require.NotNil(t, doc)
		assert.Empty(t, doc.Declarations, "%q", source)
	}
}

func TestParseCommentLineIsTransparent(t *testing.T) {
	plain := mustParse(t, "let x = 100;")
	commented := mustParse(t, "// anything-without-newline\nlet x = 100;")

	if diff := cmp.Diff(plain, commented, ignorePositions); diff != "" {
		t.Errorf("comment changed the AST (-plain +commented):\n%s", diff)
	}
}

func TestParsePositions(t *testing.T) {
	doc := mustParse(t, "event A;\n  let limit = 42;")

	event := doc.Declarations[0].(*ast.EventDecl)
	assert.Equal(t, ast.Position{Filename: "test.sig", Offset: 0, Line: 1, Column: 1}, event.Pos)
	assert.Equal(t, ast.Position{Filename: "test.sig", Offset: 8, Line: 1, Column: 9}, event.EndPos)
	assert.Equal(t, ast.Position{Filename: "test.sig", Offset: 6, Line: 1, Column: 7}, event.Name.Pos)

	let := doc.Declarations[1].(*ast.LetDecl)
	assert.Equal(t, 2, let.Pos.Line)
	assert.Equal(t, 3, let.Pos.Column)
	assert.Equal(t, 7, let.Name.Pos.Column)
	assert.Equal(t, 15, let.Value.NodePos().Column)
	assert.Equal(t, 18, let.EndPos.Column)
}

func TestParseTruncatedEvent(t *testing.T) {
	parseErr := requireParseError(t, "event")

	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
	assert.Equal(t, EOF, parseErr.Found.Type)
	assert.True(t, parseErr.ExpectedOneOf(IDENTIFIER))
	assert.Equal(t, Position{Line: 1, Column: 6, Offset: 5}, parseErr.Position)
}

func TestParseMissingSemicolonAtEnd(t *testing.T) {
	parseErr := requireParseError(t, "event Started")

	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
	assert.Equal(t, []TokenType{SEMICOLON}, parseErr.Expected)
}

func TestParseMissingLiteral(t *testing.T) {
	parseErr := requireParseError(t, "let x = ;")

	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.True(t, parseErr.ExpectedOneOf(NUMBER))
	assert.True(t, parseErr.ExpectedOneOf(IDENTIFIER))
	assert.Equal(t, SEMICOLON, parseErr.Found.Type)
	assert.Equal(t, Position{Line: 1, Column: 9, Offset: 8}, parseErr.Position)
	assert.Equal(t,
		"1:9: unexpected ';', expected numeric literal, identifier or '(' in expression",
		parseErr.Error())
}

func TestParseUnexpectedDeclaration(t *testing.T) {
	parseErr := requireParseError(t, "event A;\n42;")

	assert.Equal(t, UnexpectedDeclaration, parseErr.Kind)
	assert.Equal(t, NUMBER, parseErr.Found.Type)
	assert.Equal(t, "42", parseErr.Found.Lexeme)
	assert.Equal(t, 2, parseErr.Position.Line)
	assert.Equal(t, "2:1: expected a declaration, found numeric literal '42'", parseErr.Error())
}

func TestParseKeywordIsNotAnIdentifier(t *testing.T) {
	parseErr := requireParseError(t, "event let;")

	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, LET, parseErr.Found.Type)
	assert.Equal(t, "event declaration", parseErr.Context)
}

func TestParseUnclosedFunctionBody(t *testing.T) {
	parseErr := requireParseError(t, "f() { emit A;")

	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
	assert.Equal(t, []TokenType{RIGHT_BRACE}, parseErr.Expected)
}

func TestParseFunctionMissingParenthesis(t *testing.T) {
	parseErr := requireParseError(t, "foo;")

	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, []TokenType{LEFT_PAREN}, parseErr.Expected)
	assert.Equal(t, SEMICOLON, parseErr.Found.Type)
}

func TestParseTrailingCommaInParameters(t *testing.T) {
	parseErr := requireParseError(t, "foo(a,) {}")

	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, RIGHT_PAREN, parseErr.Found.Type)
	assert.Equal(t, "parameter list", parseErr.Context)
}

func TestParseStopsAtFirstError(t *testing.T) {
	parseErr := requireParseError(t, "event;\nlet = 1;")

	assert.Equal(t, 1, parseErr.Position.Line)
}

func TestScanErrorShortCircuitsParsing(t *testing.T) {
	_, err := ParseSource("test.sig", "event A; @")

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, ScanUnrecognizedCharacter, scanErr.Kind)

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	tokens := []Token{
		{Type: EVENT, Lexeme: "event", Position: Position{Line: 1, Column: 1}},
		{Type: IDENTIFIER, Lexeme: "A", Position: Position{Line: 1, Column: 7, Offset: 6}},
	}

	_, err := Parse(tokens)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, UnexpectedEndOfInput, parseErr.Kind)
	assert.Equal(t, Position{Line: 1, Column: 8, Offset: 7}, parseErr.Position)
	assert.Len(t, tokens, 2, "caller's buffer must not grow")
}

func TestParseNilTokens(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Declarations)
}

func TestPrinterRoundTrip(t *testing.T) {
	source := `// header
event Started;
let limit = 10 * (2 + 3);
step(a, b) {
  let c = max(a, b) - 1;
  state = c;
  emit Started;
  tick();
  return c * 2;
}
idle() {}`

	first := mustParse(t, source)
	second := mustParse(t, first.String())

	assert.Equal(t, first.String(), second.String())
	if diff := cmp.Diff(first, second, ignorePositions); diff != "" {
		t.Errorf("round trip changed the AST (-first +second):\n%s", diff)
	}
}
