package lexmach

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

const (
	tokBar cyk.TokType = iota + 1
	tokString
	tokID
)

var inputStrings = []string{
	"A",
	"A | B",
	"Hello # World | X",
	`x "my string" y`,
	"a|b|c",
}

var tokenCounts = []int{1, 3, 1, 3, 5}

func testInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`#[^\n]*`), Skip)
	lexer.Add([]byte(`\|`), MakeToken(tokBar))
	lexer.Add([]byte(`\"[^"]*\"`), MakeValueToken(tokString, func(s string) (interface{}, error) {
		return strings.Trim(s, `"`), nil
	}))
	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(tokID))
	lexer.Add([]byte(`( |\t|\r)+`), Skip)
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testInit)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testInit)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner(`x "my string"`)
	sc.NextToken()
	token := sc.NextToken()
	if token.TokType() != tokString {
		t.Fatalf("expected string token, got %d", token.TokType())
	}
	if v, ok := token.Value().(string); !ok || v != "my string" {
		t.Errorf("expected value 'my string', got %v", token.Value())
	}
	if token.Span() != (cyk.Span{2, 13}) {
		t.Errorf("expected span (2…13), got %v", token.Span())
	}
}

func TestLMErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testInit)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a $ b")
	var errs []error
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if len(errs) == 0 {
		t.Errorf("expected error handler to be called for '$'")
	}
	if count != 2 {
		t.Errorf("expected scanning to resume behind error, got %d tokens", count)
	}
}

func TestLMConversionError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	failing := errors.New("no numbers")
	LM, err := NewLMAdapter(func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeValueToken(tokID, func(string) (interface{}, error) {
			return nil, failing
		}))
		lexer.Add([]byte(`( )+`), Skip)
	})
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("12 34")
	var last error
	sc.SetErrorHandler(func(e error) {
		last = e
	})
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
	}
	if !errors.Is(last, failing) {
		t.Errorf("expected conversion error to be reported, got %v", last)
	}
}
