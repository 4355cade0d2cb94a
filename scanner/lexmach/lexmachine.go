package lexmach

import (
	"fmt"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'cyk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer
// function, which adds patterns and actions to the lexer.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
// The handler is called for input the lexer is unable to consume; scanning
// then resumes behind the offending input.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() cyk.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", cyk.Span{})
	}
	tc := lms.scanner.TC
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		if lms.scanner.TC <= tc && tc < len(lms.scanner.Text) {
			lms.scanner.TC = tc + 1 // always make progress
		}
		tc = lms.scanner.TC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", cyk.Span{pos, pos})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	t := scanner.MakeDefaultToken(
		cyk.TokType(token.Type),
		string(token.Lexeme),
		cyk.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's value is the matched text.
func MakeToken(id cyk.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// MakeValueToken is a pre-defined action which wraps a scanned match into a token,
// using a conversion function to compute the token's value from the matched text.
// If conv returns an error, the scanner reports it for the match.
func MakeValueToken(id cyk.TokType, conv func(string) (interface{}, error)) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		v, err := conv(string(m.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%q at %d: %w", m.Bytes, m.TC, err)
		}
		return s.Token(int(id), v, m), nil
	}
}
