// Package semantic resolves names in a parsed Document. It reports
// duplicate declarations, references to undeclared names, emits of
// undeclared events, call arity mismatches and unused parameters.
package semantic

import (
	"strings"

	"sigil/internal/ast"
	"sigil/internal/diagnostics"
)

type Analyzer struct {
	diagnostics []diagnostics.Diagnostic
	globals     *SymbolTable
	scope       *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze checks doc and returns every finding in discovery order. The
// Analyzer may be reused; each call starts from an empty state.
func (a *Analyzer) Analyze(doc *ast.Document) []diagnostics.Diagnostic {
	a.diagnostics = nil
	a.globals = NewSymbolTable(nil)
	a.scope = a.globals

	// Pass 1: every top-level name is visible everywhere, regardless of order
	for _, decl := range doc.Declarations {
		switch node := decl.(type) {
		case *ast.EventDecl:
			a.declare(node.Name, SymbolEvent, node)
		case *ast.LetDecl:
			a.declare(node.Name, SymbolConstant, node)
		case *ast.FunctionDecl:
			a.declare(node.Name, SymbolFunction, node)
		}
	}

	// Pass 2: bodies and initializers
	for _, decl := range doc.Declarations {
		switch node := decl.(type) {
		case *ast.LetDecl:
			a.analyzeExpr(node.Value)
		case *ast.FunctionDecl:
			a.analyzeFunction(node)
		}
	}

	return a.diagnostics
}

// Diagnostics returns the findings of the last Analyze call.
func (a *Analyzer) Diagnostics() []diagnostics.Diagnostic {
	return a.diagnostics
}

func (a *Analyzer) report(d diagnostics.Diagnostic) {
	a.diagnostics = append(a.diagnostics, d)
}

// declare defines name in the current scope unless it is already defined
// there, in which case the first declaration wins.
func (a *Analyzer) declare(name ast.Ident, kind SymbolKind, node ast.Node) *Symbol {
	if existing := a.scope.LookupLocal(name.Value); existing != nil {
		a.report(diagnostics.DuplicateDeclaration(name.Value, name.Pos, existing.Position))
		return existing
	}
	return a.scope.Define(name.Value, kind, node, name.Pos)
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionDecl) {
	a.scope = NewSymbolTable(a.globals)
	defer func() { a.scope = a.globals }()

	params := make([]*Symbol, 0, len(fn.Params))
	for _, param := range fn.Params {
		if a.scope.LookupLocal(param.Value) != nil {
			a.declare(param, SymbolParameter, fn)
			continue
		}
		params = append(params, a.declare(param, SymbolParameter, fn))
	}

	if fn.Body != nil {
		for _, stmt := range fn.Body.Stmts {
			a.analyzeStmt(stmt)
		}
	}

	for _, param := range params {
		if !param.Used && !strings.HasPrefix(param.Name, "_") {
			a.report(diagnostics.UnusedParameter(param.Name, param.Position))
		}
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		// The initializer sees the outer binding, not the one being introduced
		a.analyzeExpr(s.Value)
		a.declare(s.Name, SymbolVariable, s)

	case *ast.AssignStmt:
		a.analyzeExpr(s.Value)
		a.resolveValue(s.Target)

	case *ast.EmitStmt:
		a.resolveEvent(s.Event)

	case *ast.ReturnStmt:
		if s.Value != nil {
			a.analyzeExpr(s.Value)
		}

	case *ast.ExprStmt:
		a.analyzeExpr(s.Expr)
	}
}

func (a *Analyzer) resolveEvent(name ast.Ident) {
	symbol := a.globals.LookupLocal(name.Value)
	if symbol != nil && symbol.Kind == SymbolEvent {
		symbol.Used = true
		return
	}
	a.report(diagnostics.UndeclaredEvent(name.Value, name.Pos, a.globals.Names(ofKind(SymbolEvent))))
}
