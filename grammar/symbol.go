package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind tells variables (non-terminals) from terminals.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	VariableKind SymbolKind = iota + 1
	TerminalKind
)

func (k SymbolKind) String() string {
	switch k {
	case VariableKind:
		return "variable"
	case TerminalKind:
		return "terminal"
	}
	return "<undefined>"
}

// Symbol is a grammar symbol. Symbols are comparable and may be used as
// map keys. A variable and a terminal with identical names are different symbols.
//
// For terminals, Name is the literal token value it matches.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Var creates a variable symbol.
func Var(name string) Symbol {
	return Symbol{Name: name, Kind: VariableKind}
}

// Term creates a terminal symbol for a literal token value.
func Term(value string) Symbol {
	return Symbol{Name: value, Kind: TerminalKind}
}

// IsTerminal is true for terminal symbols.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

// IsVariable is true for variables (non-terminals).
func (s Symbol) IsVariable() bool {
	return s.Kind == VariableKind
}

// IsNull is true for the zero symbol.
func (s Symbol) IsNull() bool {
	return s.Kind == 0
}

// String returns the name of variables and the quoted value of terminals, which
// is the notation understood by the grammar loader.
func (s Symbol) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("'%s'", s.Name)
	}
	return s.Name
}

// key is a canonical string key for a symbol.
func (s Symbol) key() string {
	if s.IsTerminal() {
		return "t:" + s.Name
	}
	return "v:" + s.Name
}

// symbolComparator orders symbols by name, variables first for equal names.
// We need this for sorted symbol sets.
func symbolComparator(a, b interface{}) int {
	s1 := a.(Symbol)
	s2 := b.(Symbol)
	if c := utils.StringComparator(s1.Name, s2.Name); c != 0 {
		return c
	}
	return utils.Int8Comparator(int8(s1.Kind), int8(s2.Kind))
}

// newSymbolSet creates an empty ordered symbol set.
func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbolComparator)
}

// symbolsOf returns the contents of an ordered symbol set as a slice.
func symbolsOf(set *treeset.Set) []Symbol {
	syms := make([]Symbol, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}
