package cnf

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cyk/grammar"
)

// ErrEpsilonProduction is returned by Normalize for grammars containing
// epsilon productions.
var ErrEpsilonProduction = errors.New("epsilon productions are not supported")

// Normalize transforms g into an equivalent grammar in Chomsky Normal Form.
// g is not modified. If g contains a rule  A ➞ ε, Normalize returns
// ErrEpsilonProduction, wrapped with the offending rule.
//
// Helper variables introduced by normalization are named T_t for terminal t and
// A_BIN_n for the binarization of rules of A. If a name is already taken by a
// symbol of g, a numeric suffix is appended.
func Normalize(g *grammar.Grammar) (*Grammar, error) {
	if g == nil {
		return nil, errors.New("cannot normalize nil grammar")
	}
	var err error
	g.EachRule(func(r grammar.Rule) bool {
		if r.IsEpsilon() {
			err = fmt.Errorf("%w: %v", ErrEpsilonProduction, r)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	s := newSession(g)
	P := collect(g)
	tracer().Debugf("normalizing grammar %s with %d rules", g.Name, P.size())
	P = s.eliminateUnits(P)
	tracer().Debugf("after unit elimination: %d rules", P.size())
	P = s.liftTerminals(P)
	tracer().Debugf("after terminal lifting: %d rules, %d helpers", P.size(), len(s.helpers))
	P = s.binarize(P)
	tracer().Debugf("after binarization: %d rules", P.size())
	P = s.prune(P)
	cnfg := grammar.NewGrammar(g.Name+"-CNF", g.Start())
	P.each(func(A grammar.Symbol, rhs []grammar.Symbol) {
		cnfg.AddRule(A, rhs...)
	})
	tracer().Infof("grammar %s normalized: %d rules ➞ %d rules in CNF", g.Name, g.Size(), cnfg.Size())
	return FromGrammar(cnfg)
}

// === Normalization session =================================================

// session holds the state of a single call to Normalize: the names in use and
// the helper variables created so far.
type session struct {
	start   grammar.Symbol
	names   map[string]bool           // all symbol names in use
	helpers map[string]grammar.Symbol // terminal value ➞ helper variable
	counter int                       // counter for binarization variables
}

func newSession(g *grammar.Grammar) *session {
	s := &session{
		start:   g.Start(),
		names:   make(map[string]bool),
		helpers: make(map[string]grammar.Symbol),
	}
	for _, A := range g.Variables() {
		s.names[A.Name] = true
	}
	for _, t := range g.Terminals() {
		s.names[t.Name] = true
	}
	return s
}

// fresh returns a new variable named base, or base with a numeric suffix if
// base is already in use.
func (s *session) fresh(base string) grammar.Symbol {
	name := base
	for i := 1; s.names[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	s.names[name] = true
	return grammar.Var(name)
}

// helper returns the helper variable T_t for terminal t, creating it together
// with its rule  T_t ➞ t  on first use.
func (s *session) helper(t grammar.Symbol, P *prodset) grammar.Symbol {
	if T, ok := s.helpers[t.Name]; ok {
		return T
	}
	T := s.fresh("T_" + t.Name)
	s.helpers[t.Name] = T
	P.add(T, []grammar.Symbol{t})
	tracer().Debugf("new helper rule %v", grammar.NewRule(T, t))
	return T
}

// --- Stage 1: unit productions ---------------------------------------------

// eliminateUnits replaces unit productions. For every variable A, it collects
// the set of variables reachable from A by unit productions (the unit closure
// of A) and gives A every non-unit production of a variable in this closure.
// Self-units  A ➞ A  are dropped beforehand.
func (s *session) eliminateUnits(P *prodset) *prodset {
	selfUnits := 0
	for _, A := range P.order {
		selfUnits += P.remove(A, []grammar.Symbol{A})
	}
	if selfUnits > 0 {
		tracer().Debugf("removed %d self-unit production(s)", selfUnits)
	}
	Q := newProdset()
	for _, A := range P.order {
		for _, B := range P.unitClosure(A) {
			for _, rhs := range P.rhss[B] {
				if !isUnit(rhs) {
					Q.add(A, rhs)
				}
			}
		}
	}
	return Q
}

// --- Stage 2: terminals ----------------------------------------------------

// liftTerminals replaces every terminal t in a right hand side of length ≥ 2 by
// the helper variable T_t.
func (s *session) liftTerminals(P *prodset) *prodset {
	Q := newProdset()
	P.each(func(A grammar.Symbol, rhs []grammar.Symbol) {
		if len(rhs) < 2 {
			Q.add(A, rhs)
			return
		}
		lifted := make([]grammar.Symbol, len(rhs))
		for i, X := range rhs {
			if X.IsTerminal() {
				X = s.helper(X, Q)
			}
			lifted[i] = X
		}
		Q.add(A, lifted)
	})
	return Q
}

// --- Stage 3: binarization -------------------------------------------------

// binarize replaces every rule  A ➞ X1 X2 … Xk  with k > 2 by a right branching
// chain of rules
//
//     A        ➞ X1 A_BIN_1
//     A_BIN_1  ➞ X2 A_BIN_2
//     …
//     A_BIN_m  ➞ Xk-1 Xk
//
// The numbering of binarization variables is unique within the session.
func (s *session) binarize(P *prodset) *prodset {
	Q := newProdset()
	P.each(func(A grammar.Symbol, rhs []grammar.Symbol) {
		if len(rhs) <= 2 {
			Q.add(A, rhs)
			return
		}
		lhs := A
		for i := 0; i < len(rhs)-2; i++ {
			s.counter++
			Y := s.fresh(fmt.Sprintf("%s_BIN_%d", A.Name, s.counter))
			Q.add(lhs, []grammar.Symbol{rhs[i], Y})
			lhs = Y
		}
		Q.add(lhs, rhs[len(rhs)-2:])
	})
	return Q
}

// --- Stage 4: reachability -------------------------------------------------

// prune removes all variables not reachable from the start variable,
// together with their rules.
func (s *session) prune(P *prodset) *prodset {
	reachable := map[grammar.Symbol]bool{s.start: true}
	worklist := arraylist.New()
	worklist.Add(s.start)
	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		for _, rhs := range P.rhss[v.(grammar.Symbol)] {
			for _, X := range rhs {
				if X.IsVariable() && !reachable[X] {
					reachable[X] = true
					worklist.Add(X)
				}
			}
		}
	}
	Q := newProdset()
	pruned := 0
	P.each(func(A grammar.Symbol, rhs []grammar.Symbol) {
		if reachable[A] {
			Q.add(A, rhs)
		} else {
			pruned++
		}
	})
	if pruned > 0 {
		tracer().Debugf("pruned %d rule(s) of unreachable variables", pruned)
	}
	return Q
}

// === Production sets =======================================================

// prodset is the working set of productions during normalization. It keeps
// left hand sides and right hand sides in order of insertion.
type prodset struct {
	order []grammar.Symbol
	rhss  map[grammar.Symbol][][]grammar.Symbol
	keys  map[grammar.Symbol]map[string]bool
	count int
}

func newProdset() *prodset {
	return &prodset{
		rhss: make(map[grammar.Symbol][][]grammar.Symbol),
		keys: make(map[grammar.Symbol]map[string]bool),
	}
}

// collect copies the productions of a grammar into a production set.
func collect(g *grammar.Grammar) *prodset {
	P := newProdset()
	g.EachRule(func(r grammar.Rule) bool {
		P.add(r.LHS, r.RHS())
		return true
	})
	return P
}

func (P *prodset) add(A grammar.Symbol, rhs []grammar.Symbol) bool {
	k := grammar.RHSKey(rhs)
	if P.keys[A] == nil {
		P.keys[A] = make(map[string]bool)
		P.order = append(P.order, A)
	}
	if P.keys[A][k] {
		return false
	}
	P.keys[A][k] = true
	P.rhss[A] = append(P.rhss[A], rhs)
	P.count++
	return true
}

// remove deletes a production and returns the number of productions removed.
func (P *prodset) remove(A grammar.Symbol, rhs []grammar.Symbol) int {
	k := grammar.RHSKey(rhs)
	if !P.keys[A][k] {
		return 0
	}
	delete(P.keys[A], k)
	rhss := P.rhss[A][:0]
	for _, r := range P.rhss[A] {
		if grammar.RHSKey(r) != k {
			rhss = append(rhss, r)
		}
	}
	P.rhss[A] = rhss
	P.count--
	return 1
}

func (P *prodset) each(f func(A grammar.Symbol, rhs []grammar.Symbol)) {
	for _, A := range P.order {
		for _, rhs := range P.rhss[A] {
			f(A, rhs)
		}
	}
}

func (P *prodset) size() int {
	return P.count
}

// unitClosure returns A and all variables reachable from A by unit
// productions, in breadth-first order. Cycles of unit productions terminate
// the search, as every variable is visited once.
func (P *prodset) unitClosure(A grammar.Symbol) []grammar.Symbol {
	closure := []grammar.Symbol{A}
	seen := map[grammar.Symbol]bool{A: true}
	worklist := arraylist.New()
	worklist.Add(A)
	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		for _, rhs := range P.rhss[v.(grammar.Symbol)] {
			if isUnit(rhs) && !seen[rhs[0]] {
				seen[rhs[0]] = true
				closure = append(closure, rhs[0])
				worklist.Add(rhs[0])
			}
		}
	}
	return closure
}

func isUnit(rhs []grammar.Symbol) bool {
	return len(rhs) == 1 && rhs[0].IsVariable()
}
