package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbolKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	if Var("a") == Term("a") {
		t.Errorf("expected variable and terminal of same name to differ")
	}
	if Term("a").String() != "'a'" || Var("A").String() != "A" {
		t.Errorf("unexpected symbol notation: %v %v", Term("a"), Var("A"))
	}
	if !(Symbol{}).IsNull() || Var("A").IsNull() {
		t.Errorf("null symbol not detected")
	}
	set := newSymbolSet()
	set.Add(Term("b"), Var("b"), Var("A"), Term("a"))
	syms := symbolsOf(set)
	expected := []Symbol{Var("A"), Term("a"), Var("b"), Term("b")}
	for i, s := range expected {
		if syms[i] != s {
			t.Errorf("expected sorted symbols %v, got %v", expected, syms)
			break
		}
	}
}

func TestSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.grammar")
	defer teardown()
	//
	symtab := NewSymbolTable()
	A, err := symtab.ResolveOrDefine("A", VariableKind)
	if err != nil || A != Var("A") {
		t.Fatalf("expected to define variable A, got %v, %v", A, err)
	}
	if _, err = symtab.ResolveOrDefine("A", VariableKind); err != nil {
		t.Errorf("expected second definition of A to resolve, got %v", err)
	}
	if _, err = symtab.ResolveOrDefine("A", TerminalKind); !errors.Is(err, ErrKindConflict) {
		t.Errorf("expected kind conflict, got %v", err)
	}
	if sym, ok := symtab.Resolve("A"); !ok || sym != A {
		t.Errorf("expected to resolve A")
	}
	if symtab.Size() != 1 {
		t.Errorf("expected symbol table to hold 1 symbol, has %d", symtab.Size())
	}
}
