package cnf

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cyk/grammar"
)

// ErrNotCNF is returned by FromGrammar for grammars containing rules which
// are not in Chomsky Normal Form.
var ErrNotCNF = errors.New("rule not in Chomsky Normal Form")

// Grammar is a grammar in Chomsky Normal Form, indexed for recognition.
// A CNF grammar is read-only and may be shared between goroutines.
type Grammar struct {
	g        *grammar.Grammar
	binary   map[grammar.Symbol]map[grammar.Symbol][]grammar.Symbol // B ➞ C ➞ { A | A ➞ B C }
	terminal map[string][]grammar.Symbol                           // t ➞ { A | A ➞ t }
}

// FromGrammar wraps a grammar which is already in CNF. If g contains a rule
// of a different form, ErrNotCNF is returned, wrapped with the offending rule.
func FromGrammar(g *grammar.Grammar) (*Grammar, error) {
	cg := &Grammar{
		g:        g,
		binary:   make(map[grammar.Symbol]map[grammar.Symbol][]grammar.Symbol),
		terminal: make(map[string][]grammar.Symbol),
	}
	var err error
	g.EachRule(func(r grammar.Rule) bool {
		switch {
		case r.IsBinary():
			B, c := r.At(0), r.At(1)
			if cg.binary[B] == nil {
				cg.binary[B] = make(map[grammar.Symbol][]grammar.Symbol)
			}
			cg.binary[B][c] = append(cg.binary[B][c], r.LHS)
		case r.IsTerminalRule():
			t := r.At(0).Name
			cg.terminal[t] = append(cg.terminal[t], r.LHS)
		default:
			err = fmt.Errorf("%w: %v", ErrNotCNF, r)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return cg, nil
}

// Start returns the start variable.
func (cg *Grammar) Start() grammar.Symbol {
	return cg.g.Start()
}

// Grammar returns the underlying grammar. Clients must not add rules to it.
func (cg *Grammar) Grammar() *grammar.Grammar {
	return cg.g
}

// Size returns the number of rules.
func (cg *Grammar) Size() int {
	return cg.g.Size()
}

// Rules returns the rules of the grammar.
func (cg *Grammar) Rules() []grammar.Rule {
	return cg.g.Rules()
}

// Binary returns all variables A with a rule  A ➞ B C, in the order in
// which the rules have been visited when indexing.
func (cg *Grammar) Binary(B, c grammar.Symbol) []grammar.Symbol {
	if m, ok := cg.binary[B]; ok {
		return m[c]
	}
	return nil
}

// HasLeftCorner is true if B is the left variable of any binary rule.
func (cg *Grammar) HasLeftCorner(B grammar.Symbol) bool {
	_, ok := cg.binary[B]
	return ok
}

// Terminal returns all variables A with a rule  A ➞ t  for terminal value t.
func (cg *Grammar) Terminal(t string) []grammar.Symbol {
	return cg.terminal[t]
}

// Fingerprint returns a structural hash of the grammar's rule set, see
// grammar.Fingerprint.
func (cg *Grammar) Fingerprint() (string, error) {
	return cg.g.Fingerprint()
}

// Dump is a debugging helper, tracing all rules at debug level.
func (cg *Grammar) Dump() {
	cg.g.Dump()
}

func (cg *Grammar) String() string {
	return cg.g.String()
}
