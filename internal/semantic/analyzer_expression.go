package semantic

import (
	"fmt"
	"unicode/utf8"

	"sigil/internal/ast"
	"sigil/internal/diagnostics"
)

func (a *Analyzer) analyzeExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		// nothing to resolve
	case *ast.IdentExpr:
		a.resolveValue(e.Name)
	case *ast.BinaryExpr:
		a.analyzeExpr(e.Left)
		a.analyzeExpr(e.Right)
	case *ast.ParenExpr:
		a.analyzeExpr(e.Expr)
	case *ast.CallExpr:
		a.analyzeCall(e)
	}
}

// resolveValue marks the binding for name as used, reporting names that are
// undeclared or that denote an event or function rather than a value.
func (a *Analyzer) resolveValue(name ast.Ident) {
	symbol := a.scope.Lookup(name.Value)
	if symbol == nil {
		a.report(diagnostics.UndefinedName("name", name.Value, name.Pos, a.scope.Names(isValue)))
		return
	}

	symbol.Used = true
	if !symbol.Kind.IsValue() {
		a.report(diagnostics.NewError(diagnostics.ErrorUndefinedName,
			fmt.Sprintf("'%s' is not a value (declared as %s)", name.Value, symbol.Kind), name.Pos).
			WithLength(utf8.RuneCountInString(name.Value)).
			WithNote(fmt.Sprintf("'%s' is declared at %d:%d", name.Value, symbol.Position.Line, symbol.Position.Column)).
			Build())
	}
}

func (a *Analyzer) analyzeCall(call *ast.CallExpr) {
	for _, arg := range call.Args {
		a.analyzeExpr(arg)
	}

	symbol := a.scope.Lookup(call.Callee.Value)
	if symbol == nil || symbol.Kind != SymbolFunction {
		a.report(diagnostics.UndefinedName("function", call.Callee.Value, call.Callee.Pos,
			a.globals.Names(ofKind(SymbolFunction))))
		return
	}

	symbol.Used = true
	fn, ok := symbol.Node.(*ast.FunctionDecl)
	if ok && len(fn.Params) != len(call.Args) {
		a.report(diagnostics.InvalidArguments(call.Callee.Value, len(fn.Params), len(call.Args), call.Callee.Pos))
	}
}

func isValue(s *Symbol) bool {
	return s.Kind.IsValue()
}

func ofKind(kind SymbolKind) func(*Symbol) bool {
	return func(s *Symbol) bool { return s.Kind == kind }
}
