package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSentenceTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	tok := NewSentenceTokenizer(strings.NewReader("She eats a cake."))
	tokens := Tokenize(tok)
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	if tokens[0].Lexeme() != "she" || tokens[0].TokType() != Word {
		t.Errorf("expected first token to be word 'she', is %v", tokens[0])
	}
	if tokens[3].Span() != (cyk.Span{11, 15}) {
		t.Errorf("expected 'cake' at (11…15), is at %v", tokens[3].Span())
	}
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	var inputs = []struct {
		sentence string
		words    string
	}{
		{"She eats a cake", "she eats a cake"},
		{"  He cuts\tthe MEAT with a knife!  ", "he cuts the meat with a knife"},
		{"She eats a cake, doesn't she?", "she eats a cake doesn t she"},
		{"snake_case and 42 numbers", "snake_case and 42 numbers"},
		{"Öl und Wasser", "öl und wasser"},
		{"", ""},
		{"?!.", ""},
	}
	for i, x := range inputs {
		words := strings.Join(Words(x.sentence), " ")
		if words != x.words {
			t.Errorf("#%d: expected %q, got %q", i, x.words, words)
		}
	}
}

func TestTokenizerEOFRepeats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cyk.scanner")
	defer teardown()
	//
	tok := NewSentenceTokenizer(strings.NewReader("cake"))
	tok.NextToken()
	for i := 0; i < 3; i++ {
		if tt := tok.NextToken().TokType(); tt != EOF {
			t.Errorf("expected EOF after input, got %d", tt)
		}
	}
}
