package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
)

// === Rules =================================================================

// Rule is a grammar rule  LHS ➞ RHS. Rules are values and are never modified
// after creation. A rule with an empty RHS is an epsilon production; grammars
// may carry them, but normalization rejects them.
type Rule struct {
	LHS Symbol
	rhs []Symbol
}

// NewRule creates a rule. The RHS symbols are copied.
func NewRule(lhs Symbol, rhs ...Symbol) Rule {
	return Rule{
		LHS: lhs,
		rhs: append([]Symbol(nil), rhs...),
	}
}

// RHS returns a copy of the right hand side symbols of a rule.
func (r Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the length of the RHS.
func (r Rule) Len() int {
	return len(r.rhs)
}

// At returns the RHS symbol at position i.
func (r Rule) At(i int) Symbol {
	return r.rhs[i]
}

// IsEpsilon is true for rules with an empty RHS.
func (r Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// IsUnit is true for rules  A ➞ B  with B a variable.
func (r Rule) IsUnit() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsVariable()
}

// IsTerminalRule is true for rules  A ➞ t  with t a terminal.
func (r Rule) IsTerminalRule() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsTerminal()
}

// IsBinary is true for rules  A ➞ B C  with B and C variables.
func (r Rule) IsBinary() bool {
	return len(r.rhs) == 2 && r.rhs[0].IsVariable() && r.rhs[1].IsVariable()
}

// Equal compares two rules structurally.
func (r Rule) Equal(other Rule) bool {
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, s := range r.rhs {
		if s != other.rhs[i] {
			return false
		}
	}
	return true
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.String())
	b.WriteString(" ->")
	for _, s := range r.rhs {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	return b.String()
}

// RHSKey is a canonical string key for a sequence of symbols. Variables and
// terminals of equal names have different keys.
func RHSKey(rhs []Symbol) string {
	var b strings.Builder
	for i, s := range rhs {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(s.key())
	}
	return b.String()
}

// === Grammar ===============================================================

// productions is the set of distinct right hand sides of a variable, in order
// of declaration.
type productions struct {
	index map[string]int
	rhss  [][]Symbol
}

func (p *productions) add(rhs []Symbol) bool {
	k := RHSKey(rhs)
	if _, ok := p.index[k]; ok {
		return false
	}
	p.index[k] = len(p.rhss)
	p.rhss = append(p.rhss, rhs)
	return true
}

// Grammar is a context-free grammar: a start variable, the sets of known
// variables and terminals, and a map from each variable to the set of right
// hand sides it produces.
//
// Every symbol occuring in a right hand side is a member of either the
// variable set or the terminal set.
type Grammar struct {
	Name      string
	start     Symbol
	variables *treeset.Set
	terminals *treeset.Set
	lhs       []Symbol                // variables in order of their first rule
	prod      map[Symbol]*productions // production map
	rules     []Rule                  // distinct rules in order of declaration
}

// NewGrammar creates an empty grammar with start variable start.
func NewGrammar(name string, start Symbol) *Grammar {
	g := &Grammar{
		Name:      name,
		start:     start,
		variables: newSymbolSet(),
		terminals: newSymbolSet(),
		prod:      make(map[Symbol]*productions),
	}
	g.variables.Add(start)
	return g
}

// Start returns the start variable.
func (g *Grammar) Start() Symbol {
	return g.start
}

// AddRule registers lhs as a variable, registers each RHS symbol as a variable
// or a terminal according to its kind, and inserts the rule into the
// production set. Adding a rule which is already present is a no-op.
// AddRule returns true if the rule is new.
func (g *Grammar) AddRule(lhs Symbol, rhs ...Symbol) bool {
	if !lhs.IsVariable() {
		panic(fmt.Sprintf("grammar: left hand side of rule must be a variable, is %v", lhs))
	}
	g.variables.Add(lhs)
	for _, s := range rhs {
		if s.IsTerminal() {
			g.terminals.Add(s)
		} else {
			g.variables.Add(s)
		}
	}
	p, ok := g.prod[lhs]
	if !ok {
		p = &productions{index: make(map[string]int)}
		g.prod[lhs] = p
		g.lhs = append(g.lhs, lhs)
	}
	rule := NewRule(lhs, rhs...)
	if !p.add(rule.rhs) {
		return false
	}
	g.rules = append(g.rules, rule)
	return true
}

// Variables returns all variables of the grammar, sorted by name.
func (g *Grammar) Variables() []Symbol {
	return symbolsOf(g.variables)
}

// Terminals returns all terminals of the grammar, sorted by value.
func (g *Grammar) Terminals() []Symbol {
	return symbolsOf(g.terminals)
}

// HasVariable is true if A is a known variable.
func (g *Grammar) HasVariable(A Symbol) bool {
	return A.IsVariable() && g.variables.Contains(A)
}

// HasTerminal is true if t is a known terminal.
func (g *Grammar) HasTerminal(t Symbol) bool {
	return t.IsTerminal() && g.terminals.Contains(t)
}

// HasName is true if any symbol of the grammar, variable or terminal, is
// spelled name.
func (g *Grammar) HasName(name string) bool {
	return g.variables.Contains(Var(name)) || g.terminals.Contains(Term(name))
}

// Productions returns the right hand sides produced by variable A, in order
// of declaration. The slices returned are copies.
func (g *Grammar) Productions(A Symbol) [][]Symbol {
	p, ok := g.prod[A]
	if !ok {
		return nil
	}
	rhss := make([][]Symbol, len(p.rhss))
	for i, rhs := range p.rhss {
		rhss[i] = append([]Symbol(nil), rhs...)
	}
	return rhss
}

// Produces is true if A ➞ rhs is a rule of the grammar.
func (g *Grammar) Produces(A Symbol, rhs ...Symbol) bool {
	if p, ok := g.prod[A]; ok {
		_, found := p.index[RHSKey(rhs)]
		return found
	}
	return false
}

// LHSVariables returns the variables having at least one rule, in order of
// their first rule.
func (g *Grammar) LHSVariables() []Symbol {
	return append([]Symbol(nil), g.lhs...)
}

// Size returns the number of distinct rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns the distinct rules of the grammar in order of declaration.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// EachRule calls a mapper function for every rule of the grammar, grouped by
// left hand side. Iteration stops as soon as the mapper returns false.
func (g *Grammar) EachRule(mapper func(r Rule) bool) {
	it := g.AllRules()
	for it.Next() {
		if !mapper(it.Rule()) {
			return
		}
	}
}

// --- Iterating over rules --------------------------------------------------

// RuleIterator is a lazy iterator over the rules of a grammar, grouped by
// left hand side. Rules are not collected in advance: the iterator reads the
// production map while advancing. It may be restarted with IterateOnce.
//
//    it := g.AllRules()
//    for it.Next() {
//        r := it.Rule()
//        …
//    }
//
type RuleIterator struct {
	g       *Grammar
	lhs     int // index into g.lhs
	rhs     int // index into the productions of g.lhs[lhs]
	current Rule
}

// AllRules returns an iterator over all rules of g.
func (g *Grammar) AllRules() *RuleIterator {
	return &RuleIterator{g: g, rhs: -1}
}

// IterateOnce restarts the iteration.
func (it *RuleIterator) IterateOnce() {
	it.lhs, it.rhs = 0, -1
	it.current = Rule{}
}

// Next advances the iterator and returns false when all rules have been visited.
func (it *RuleIterator) Next() bool {
	it.rhs++
	for it.lhs < len(it.g.lhs) {
		A := it.g.lhs[it.lhs]
		p := it.g.prod[A]
		if it.rhs < len(p.rhss) {
			it.current = Rule{LHS: A, rhs: p.rhss[it.rhs]}
			return true
		}
		it.lhs++
		it.rhs = 0
	}
	it.current = Rule{}
	return false
}

// Rule returns the current rule.
func (it *RuleIterator) Rule() Rule {
	return NewRule(it.current.LHS, it.current.rhs...)
}

// --- Debugging and comparing -----------------------------------------------

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start %v ------------------", g.Name, g.start)
	for i, r := range g.rules {
		tracer().Debugf("%3d: %s", i, r)
	}
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// ruleSetSignature is the input for structural hashing of a grammar.
type ruleSetSignature struct {
	Start string
	Rules []string
}

// Fingerprint returns a hash of the start symbol and the set of rules of a
// grammar. Two grammars with equal fingerprints have identical rule sets,
// independent of the order in which rules have been declared.
func (g *Grammar) Fingerprint() (string, error) {
	sorted := treeset.NewWithStringComparator()
	for _, r := range g.rules {
		sorted.Add(r.LHS.key() + "\x01" + RHSKey(r.rhs))
	}
	sig := ruleSetSignature{Start: g.start.key()}
	for _, x := range sorted.Values() {
		sig.Rules = append(sig.Rules, x.(string))
	}
	return structhash.Hash(sig, 1)
}
