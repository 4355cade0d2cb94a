package cyk

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a word of a natural language sentence:
//
//    TokType = Word        // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "cake"      // lexeme, normalized by the scanner
//    Value   = nil         // not used for words
//    Span    = 12…16       // occured from byte position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Lexemes collects the lexemes of a run of tokens. This is the form in
// which tokens are handed to the recognizer.
func Lexemes(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Lexeme()
	}
	return words
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. Derivation
// trees track which input positions a symbol covers. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
