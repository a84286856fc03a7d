package lsp

import (
	"strings"
	"unicode/utf16"

	"sigil/internal/ast"
	"sigil/internal/parser"
)

// Token legend advertised in the initialize response.
var SemanticTokenTypes = []string{
	"keyword",
	"event",
	"function",
	"parameter",
	"variable",
	"number",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

type identRole struct {
	tokenType   string
	declaration bool
}

// collectSemanticTokens scans text for keywords, numbers and operators and
// uses doc, when the text parsed, to give identifiers their role. Text that
// fails to scan yields no tokens.
func collectSemanticTokens(text string, doc *ast.Document) []SemanticToken {
	tokens, err := parser.NewScanner(text).ScanTokens()
	if err != nil {
		return nil
	}

	roles := identifierRoles(doc)
	lines := strings.Split(text, "\n")

	var result []SemanticToken
	for _, tok := range tokens {
		var tokenType string
		modifiers := 0

		switch {
		case tok.Type == parser.EOF:
			continue
		case tok.Type.IsKeyword():
			tokenType = "keyword"
		case tok.Type == parser.NUMBER:
			tokenType = "number"
		case tok.Type == parser.IDENTIFIER:
			role, ok := roles[tok.Position.Offset]
			if !ok {
				role = identRole{tokenType: "variable"}
			}
			tokenType = role.tokenType
			if role.declaration {
				modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
			}
		case tok.Type == parser.EQUAL || tok.Type == parser.PLUS || tok.Type == parser.MINUS || tok.Type == parser.STAR:
			tokenType = "operator"
		default:
			continue
		}

		line := tok.Position.Line - 1
		var lineText string
		if line < len(lines) {
			lineText = lines[line]
		}
		start := utf16Column(lineText, tok.Position.Column-1)

		result = append(result, SemanticToken{
			Line:           uint32(line),
			StartChar:      start,
			Length:         uint32(len(utf16.Encode([]rune(tok.Lexeme)))),
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}

	return result
}

// identifierRoles maps the byte offset of every identifier in doc to its role.
func identifierRoles(doc *ast.Document) map[int]identRole {
	roles := make(map[int]identRole)
	if doc == nil {
		return roles
	}

	params := map[string]bool{}
	valueRole := func(name ast.Ident) identRole {
		if params[name.Value] {
			return identRole{tokenType: "parameter"}
		}
		return identRole{tokenType: "variable"}
	}

	ast.Inspect(doc, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.EventDecl:
			params = map[string]bool{}
			roles[n.Name.Pos.Offset] = identRole{"event", true}
		case *ast.LetDecl:
			params = map[string]bool{}
			roles[n.Name.Pos.Offset] = identRole{"variable", true}
		case *ast.FunctionDecl:
			params = map[string]bool{}
			roles[n.Name.Pos.Offset] = identRole{"function", true}
			for _, p := range n.Params {
				params[p.Value] = true
				roles[p.Pos.Offset] = identRole{"parameter", true}
			}
		case *ast.LetStmt:
			delete(params, n.Name.Value)
			roles[n.Name.Pos.Offset] = identRole{"variable", true}
		case *ast.AssignStmt:
			roles[n.Target.Pos.Offset] = valueRole(n.Target)
		case *ast.EmitStmt:
			roles[n.Event.Pos.Offset] = identRole{"event", false}
		case *ast.CallExpr:
			roles[n.Callee.Pos.Offset] = identRole{"function", false}
		case *ast.IdentExpr:
			roles[n.Name.Pos.Offset] = valueRole(n.Name)
		}
		return true
	})

	return roles
}

// encodeSemanticTokens produces the LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
