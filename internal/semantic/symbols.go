package semantic

import (
	"sort"

	"sigil/internal/ast"
)

type SymbolKind int

const (
	SymbolEvent SymbolKind = iota
	SymbolConstant
	SymbolFunction
	SymbolParameter
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolEvent:
		return "event"
	case SymbolConstant:
		return "constant"
	case SymbolFunction:
		return "function"
	case SymbolParameter:
		return "parameter"
	default:
		return "variable"
	}
}

// IsValue reports whether symbols of this kind may appear in expressions.
func (k SymbolKind) IsValue() bool {
	return k == SymbolConstant || k == SymbolParameter || k == SymbolVariable
}

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Node     ast.Node
	Position ast.Position
	Used     bool
}

type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, node ast.Node, pos ast.Position) *Symbol {
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Node:     node,
		Position: pos,
	}
	st.symbols[name] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

func (st *SymbolTable) LookupLocal(name string) *Symbol {
	return st.symbols[name]
}

// Names lists the visible names accepted by keep, sorted, innermost first
// on conflicts.
func (st *SymbolTable) Names(keep func(*Symbol) bool) []string {
	seen := make(map[string]bool)
	var names []string
	for table := st; table != nil; table = table.parent {
		for name, symbol := range table.symbols {
			if seen[name] {
				continue
			}
			seen[name] = true
			if keep(symbol) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
