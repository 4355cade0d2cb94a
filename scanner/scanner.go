/*
Package scanner defines an interface for scanners to be used with the CYK recognizer,
together with a tokenizer for natural language sentences.

The sentence tokenizer normalizes its input: all words are lower-cased and
punctuation is removed. Every rune which is neither a letter, a digit, an
underscore nor white space separates words. Thus

    "She eats a cake, doesn't she?"

results in the tokens

    she  eats  a  cake  doesn  t  she

An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF  = scanner.EOF
	Word = scanner.Ident
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cyk.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used for sentence words as
// well as for the lexmachine scanner.
type DefaultToken struct {
	kind   cyk.TokType
	lexeme string
	Val    interface{}
	span   cyk.Span
}

var _ cyk.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ cyk.TokType, lexeme string, span cyk.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface cyk.Token.
func (t DefaultToken) TokType() cyk.TokType {
	return t.kind
}

// Value is part of interface cyk.Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface cyk.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface cyk.Token.
func (t DefaultToken) Span() cyk.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q|%d%v", t.lexeme, t.kind, t.span)
}

// --- Sentence tokenizer ----------------------------------------------------

// Category codes for sentence input.
const (
	catWord CatCode = iota + 1
	catSpace
	catPunct
)

type sentenceCategorizer struct{}

func (sentenceCategorizer) Cat(r rune) (CatCode, bool) {
	switch {
	case isWordRune(r):
		return catWord, false
	case isSpace(r):
		return catSpace, false
	}
	return catPunct, true
}

// SentenceTokenizer splits a sentence into lower-cased words.
// Create one with NewSentenceTokenizer.
type SentenceTokenizer struct {
	input *CatSeqReader
	Error func(error) // error handler
}

var _ Tokenizer = (*SentenceTokenizer)(nil)

// NewSentenceTokenizer creates a tokenizer for a sentence to be read from input.
func NewSentenceTokenizer(input io.RuneReader) *SentenceTokenizer {
	return &SentenceTokenizer{
		input: NewCatSeqReader(input),
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *SentenceTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. Words are returned with token type
// Word, and at the end of input a token of type EOF is returned.
func (t *SentenceTokenizer) NextToken() cyk.Token {
	for {
		t.input.ResetOutput()
		csq, err := t.input.Next(sentenceCategorizer{})
		if err == io.EOF {
			tracer().Debugf("SentenceTokenizer reached end of input")
			return MakeDefaultToken(EOF, "", t.input.Span())
		} else if err != nil {
			t.Error(err)
			return MakeDefaultToken(EOF, "", t.input.Span())
		}
		if csq.Cat == catWord {
			lexeme := strings.ToLower(t.input.OutputString())
			tracer().Debugf("word %q at %v", lexeme, t.input.Span())
			return MakeDefaultToken(Word, lexeme, t.input.Span())
		}
	}
}

// Tokenize reads all tokens from a tokenizer, up to (but not including) EOF.
func Tokenize(t Tokenizer) []cyk.Token {
	var tokens []cyk.Token
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		tokens = append(tokens, token)
	}
	return tokens
}

// Words normalizes a sentence and returns its words, ready to be handed to
// the recognizer.
func Words(sentence string) []string {
	t := NewSentenceTokenizer(strings.NewReader(sentence))
	return cyk.Lexemes(Tokenize(t))
}
