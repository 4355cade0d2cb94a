package grammar

import (
	"errors"
	"fmt"
)

// ErrKindConflict is reported by a builder if a name is used both as a
// variable and as a terminal.
var ErrKindConflict = errors.New("symbol used as variable and as terminal")

// --- Symbol table ----------------------------------------------------------

// SymbolTable binds symbol names to symbols. Within a symbol table, every
// name is bound to exactly one kind.
type SymbolTable struct {
	table map[string]Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]Symbol)}
}

// Resolve checks for a symbol in the symbol table.
func (t *SymbolTable) Resolve(name string) (Symbol, bool) {
	sym, ok := t.table[name]
	return sym, ok
}

// ResolveOrDefine finds a symbol in the table, inserting a new one of kind
// kind if it is not found. If the name is bound to a symbol of a different
// kind, the existing symbol is returned together with ErrKindConflict.
func (t *SymbolTable) ResolveOrDefine(name string, kind SymbolKind) (Symbol, error) {
	if sym, ok := t.table[name]; ok {
		if sym.Kind != kind {
			return sym, fmt.Errorf("%q: %w", name, ErrKindConflict)
		}
		return sym, nil
	}
	sym := Symbol{Name: name, Kind: kind}
	t.table[name] = sym
	return sym, nil
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// === Grammar Builder =======================================================

// Builder is a type for constructing grammars. Create one with
// NewGrammarBuilder. The builder checks that every symbol name is used with a
// single kind; violations are reported by Grammar().
//
//    b := grammar.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S  ->  A 'a'
//    b.LHS("A").T("b").End()          // A  ->  'b'
//    g, err := b.Grammar()
//
type Builder struct {
	name   string
	start  string
	symtab *SymbolTable
	rules  []Rule
	errs   []error
	lhs    Symbol   // rule under construction
	rhs    []Symbol // RHS of rule under construction
	open   bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *Builder {
	return &Builder{
		name:   gname,
		symtab: NewSymbolTable(),
	}
}

// StartSymbol sets the start variable. If not set, the first left hand side
// symbol will be the start variable.
func (b *Builder) StartSymbol(name string) *Builder {
	b.start = name
	return b
}

// LHS starts a rule given the name of the left hand side variable.
func (b *Builder) LHS(name string) *Builder {
	if b.open {
		b.End()
	}
	b.lhs = b.define(name, VariableKind)
	b.rhs = nil
	b.open = true
	if b.start == "" {
		b.start = name
	}
	return b
}

// N appends a variable to the RHS of the rule under construction.
func (b *Builder) N(name string) *Builder {
	b.checkOpen("N")
	b.rhs = append(b.rhs, b.define(name, VariableKind))
	return b
}

// T appends a terminal to the RHS of the rule under construction. value is
// the literal token value the terminal matches.
func (b *Builder) T(value string) *Builder {
	b.checkOpen("T")
	b.rhs = append(b.rhs, b.define(value, TerminalKind))
	return b
}

// End closes the rule under construction and returns it.
// Ending a rule without RHS symbols creates an epsilon production.
func (b *Builder) End() Rule {
	b.checkOpen("End")
	r := NewRule(b.lhs, b.rhs...)
	b.rules = append(b.rules, r)
	b.open = false
	b.rhs = nil
	tracer().Debugf("builder: %v", r)
	return r
}

// Epsilon closes the rule under construction as an epsilon production.
func (b *Builder) Epsilon() Rule {
	b.rhs = nil
	return b.End()
}

// Grammar returns the grammar built so far. If a symbol name has been used
// with conflicting kinds, the grammar is returned together with an error.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.open {
		b.End()
	}
	if b.start == "" {
		return nil, errors.New("grammar has no rules and no start symbol")
	}
	start, err := b.symtab.ResolveOrDefine(b.start, VariableKind)
	if err != nil {
		b.errs = append(b.errs, err)
	}
	g := NewGrammar(b.name, start)
	for _, r := range b.rules {
		g.AddRule(r.LHS, r.rhs...)
	}
	if len(b.errs) > 0 {
		return g, fmt.Errorf("grammar %s: %d error(s), first: %w", b.name, len(b.errs), b.errs[0])
	}
	return g, nil
}

func (b *Builder) define(name string, kind SymbolKind) Symbol {
	sym, err := b.symtab.ResolveOrDefine(name, kind)
	if err != nil {
		tracer().Errorf("builder: %v", err)
		b.errs = append(b.errs, err)
		return Symbol{Name: name, Kind: kind}
	}
	return sym
}

func (b *Builder) checkOpen(op string) {
	if !b.open {
		panic(fmt.Sprintf("grammar builder: %s() called without LHS()", op))
	}
}
