package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeGrammar builds the small English grammar used throughout the tests:
//
//     S   -> NP VP
//     VP  -> V NP | V NP PP
//     PP  -> P NP
//     NP  -> Det N | 'she' | 'he'
//     Det -> 'a' | 'the'
//     N   -> 'cake' | 'meat' | 'knife'
//     V   -> 'eats' | 'cuts'
//     P   -> 'with'
//
func makeGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("English")
	b.LHS("S").N("NP").N("VP").End()
	b.LHS("VP").N("V").N("NP").End()
	b.LHS("VP").N("V").N("NP").N("PP").End()
	b.LHS("PP").N("P").N("NP").End()
	b.LHS("NP").N("Det").N("N").End()
	b.LHS("NP").T("she").End()
	b.LHS("NP").T("he").End()
	b.LHS("Det").T("a").End()
	b.LHS("Det").T("the").End()
	b.LHS("N").T("cake").End()
	b.LHS("N").T("meat").End()
	b.LHS("N").T("knife").End()
	b.LHS("V").T("eats").End()
	b.LHS("V").T("cuts").End()
	b.LHS("P").T("with").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	g := makeGrammar(t)
	g.Dump()
	if g.Start() != Var("S") {
		t.Errorf("expected first LHS to be start symbol, is %v", g.Start())
	}
	if g.Size() != 15 {
		t.Errorf("expected 15 rules, got %d", g.Size())
	}
	if len(g.Variables()) != 8 {
		t.Errorf("expected 8 variables, got %v", g.Variables())
	}
	if len(g.Terminals()) != 10 {
		t.Errorf("expected 10 terminals, got %v", g.Terminals())
	}
	if !g.HasTerminal(Term("knife")) || g.HasVariable(Term("knife")) {
		t.Errorf("expected 'knife' to be a terminal only")
	}
	rhss := g.Productions(Var("VP"))
	if len(rhss) != 2 || len(rhss[1]) != 3 {
		t.Errorf("expected VP to have 2 productions in order of declaration, got %v", rhss)
	}
	if lhs := g.LHSVariables(); len(lhs) != 8 || lhs[0] != Var("S") || lhs[7] != Var("P") {
		t.Errorf("expected LHS variables in order of first rule, got %v", lhs)
	}
}

func TestStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G").StartSymbol("B")
	b.LHS("A").N("B").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != Var("B") {
		t.Errorf("expected start symbol B, is %v", g.Start())
	}
	if _, err = NewGrammarBuilder("empty").Grammar(); err == nil {
		t.Errorf("expected grammar without rules and start symbol to be an error")
	}
}

func TestAddRuleIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	g := NewGrammar("G", Var("S"))
	if !g.AddRule(Var("S"), Var("A"), Term("a")) {
		t.Errorf("expected first AddRule to add the rule")
	}
	if g.AddRule(Var("S"), Var("A"), Term("a")) {
		t.Errorf("expected second AddRule to be a no-op")
	}
	g.AddRule(Var("S"), Var("A"), Var("a")) // variable a differs from terminal 'a'
	if g.Size() != 2 {
		t.Errorf("expected 2 rules, got %d:\n%s", g.Size(), g)
	}
	if !g.HasVariable(Var("A")) || !g.HasVariable(Var("a")) || !g.HasTerminal(Term("a")) {
		t.Errorf("expected RHS symbols to be registered according to their kind")
	}
	if !g.HasName("a") || g.HasName("b") {
		t.Errorf("HasName does not work as expected")
	}
}

func TestAddRulePanicsForTerminalLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected AddRule to panic for terminal LHS")
		}
	}()
	g := NewGrammar("G", Var("S"))
	g.AddRule(Term("s"), Term("a"))
}

func TestRuleIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	g := makeGrammar(t)
	it := g.AllRules()
	count := 0
	for it.Next() {
		if it.Rule().IsEpsilon() {
			t.Errorf("unexpected epsilon rule %v", it.Rule())
		}
		count++
	}
	if count != g.Size() {
		t.Errorf("expected iterator to visit %d rules, visited %d", g.Size(), count)
	}
	if it.Next() {
		t.Errorf("expected exhausted iterator to stay exhausted")
	}
	it.IterateOnce()
	if !it.Next() || !it.Rule().Equal(NewRule(Var("S"), Var("NP"), Var("VP"))) {
		t.Errorf("expected restarted iterator to start with S -> NP VP, is %v", it.Rule())
	}
	n := 0
	g.EachRule(func(r Rule) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("expected EachRule to stop after 3 rules, stopped after %d", n)
	}
}

func TestIteratorIsLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	g := NewGrammar("G", Var("S"))
	g.AddRule(Var("S"), Term("a"))
	it := g.AllRules()
	g.AddRule(Var("S"), Term("b"))
	count := 0
	for it.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("expected iterator to see rule added after its creation, saw %d rules", count)
	}
}

func TestRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	r := NewRule(Var("A"), Var("B"), Term("c"))
	if r.String() != "A -> B 'c'" {
		t.Errorf("unexpected rule string %q", r.String())
	}
	rhs := r.RHS()
	rhs[0] = Var("X")
	if r.At(0) != Var("B") {
		t.Errorf("expected rule to be immutable")
	}
	if !NewRule(Var("A"), Var("B")).IsUnit() || !NewRule(Var("A"), Term("b")).IsTerminalRule() {
		t.Errorf("rule classification is wrong")
	}
	if !NewRule(Var("A"), Var("B"), Var("C")).IsBinary() || r.IsBinary() {
		t.Errorf("binary rule classification is wrong")
	}
	if r.Equal(NewRule(Var("A"), Var("B"), Var("c"))) {
		t.Errorf("expected rules with terminal and variable 'c' to differ")
	}
}

func TestKindConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("x").End()
	b.LHS("A").T("S").End()
	_, err := b.Grammar()
	if !errors.Is(err, ErrKindConflict) {
		t.Errorf("expected kind conflict error, got %v", err)
	}
}

func TestEpsilonRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Produces(Var("S")) {
		t.Errorf("expected grammar to contain epsilon rule S ->")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	g1 := NewGrammar("G1", Var("S"))
	g1.AddRule(Var("S"), Var("A"), Var("B"))
	g1.AddRule(Var("A"), Term("a"))
	g1.AddRule(Var("B"), Term("b"))
	g2 := NewGrammar("G2", Var("S"))
	g2.AddRule(Var("B"), Term("b"))
	g2.AddRule(Var("A"), Term("a"))
	g2.AddRule(Var("S"), Var("A"), Var("B"))
	g2.AddRule(Var("A"), Term("a"))
	f1, err1 := g1.Fingerprint()
	f2, err2 := g2.Fingerprint()
	if err1 != nil || err2 != nil {
		t.Fatalf("fingerprinting failed: %v, %v", err1, err2)
	}
	if f1 != f2 {
		t.Errorf("expected fingerprints to be independent of rule order")
	}
	g2.AddRule(Var("B"), Term("c"))
	if f3, _ := g2.Fingerprint(); f3 == f1 {
		t.Errorf("expected fingerprint to change with rule set")
	}
	g3 := NewGrammar("G3", Var("A"))
	g3.AddRule(Var("S"), Var("A"), Var("B"))
	g3.AddRule(Var("A"), Term("a"))
	g3.AddRule(Var("B"), Term("b"))
	if f4, _ := g3.Fingerprint(); f4 == f1 {
		t.Errorf("expected fingerprint to depend on start symbol")
	}
}

func TestRHSKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	var inputs = []struct {
		a, b  []Symbol
		equal bool
	}{
		{[]Symbol{Var("a")}, []Symbol{Term("a")}, false},
		{[]Symbol{Var("A"), Term("b")}, []Symbol{Var("A"), Term("b")}, true},
		{[]Symbol{Var("A"), Term("b")}, []Symbol{Var("A"), Var("b")}, false},
		{[]Symbol{Term("a"), Term("b")}, []Symbol{Term("b"), Term("a")}, false},
		{[]Symbol{Term("ab")}, []Symbol{Term("a"), Term("b")}, false},
	}
	for i, input := range inputs {
		if eq := RHSKey(input.a) == RHSKey(input.b); eq != input.equal {
			t.Errorf("#%d: expected keys of %v and %v to be equal=%v", i, input.a, input.b, input.equal)
		}
	}
}
