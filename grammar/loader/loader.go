package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/cyk/scanner"
	"github.com/npillmayer/cyk/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// DefaultStart is the start variable used if none is given.
const DefaultStart = "S"

// ErrNoRules is returned if an input does not contain a single valid rule.
var ErrNoRules = errors.New("grammar input contains no rules")

// Token types of rule lines.
const (
	tokBar cyk.TokType = iota + 1
	tokQuoted
	tokSymbol
)

// arrows are the accepted separators between left and right hand side.
var arrows = []string{"->", "→", "−>", "—>", "::="}

func initLexer(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
	lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
	lexer.Add([]byte(`\|`), lexmach.MakeToken(tokBar))
	lexer.Add([]byte(`'[^']*'`), lexmach.MakeValueToken(tokQuoted, unquote))
	lexer.Add([]byte(`"[^"]*"`), lexmach.MakeValueToken(tokQuoted, unquote))
	lexer.Add([]byte(`[^ \t\r\n\|'"#]+`), lexmach.MakeToken(tokSymbol))
}

func unquote(s string) (interface{}, error) {
	if len(s) <= 2 {
		return nil, errors.New("empty terminal")
	}
	return s[1 : len(s)-1], nil
}

// Loader reads grammars from text. A loader may be used for more than one
// input, but not concurrently.
type Loader struct {
	Name    string // name of grammars to create
	Start   string // start variable
	Skipped []int  // line numbers of malformed lines of the most recent input
	lm      *lexmach.LMAdapter
}

// New creates a loader for grammars named name with start variable start.
// If start is empty, DefaultStart is used.
func New(name, start string) (*Loader, error) {
	if start == "" {
		start = DefaultStart
	}
	lm, err := lexmach.NewLMAdapter(initLexer)
	if err != nil {
		return nil, fmt.Errorf("cannot create grammar lexer: %w", err)
	}
	return &Loader{Name: name, Start: start, lm: lm}, nil
}

// Load reads a grammar from r. Malformed lines are skipped. An error is
// returned if reading fails, if no valid rule has been found, or if a symbol
// name is used for a variable as well as for a terminal.
func (l *Loader) Load(r io.Reader) (*grammar.Grammar, error) {
	return l.load(r, l.Name)
}

// load reads a grammar named name from r. Every call starts a new Skipped
// slice.
func (l *Loader) load(r io.Reader, name string) (*grammar.Grammar, error) {
	l.Skipped = nil
	b := grammar.NewGrammarBuilder(name).StartSymbol(l.Start)
	lines := bufio.NewScanner(r)
	lineno, rules := 0, 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lhs, alts, ok := l.parseLine(line)
		if !ok {
			tracer().Infof("warning: skipping malformed grammar line %d: %q", lineno, line)
			l.Skipped = append(l.Skipped, lineno)
			continue
		}
		for _, alt := range alts {
			b.LHS(lhs)
			for _, sym := range alt {
				if sym.IsVariable() {
					b.N(sym.Name)
				} else {
					b.T(sym.Name)
				}
			}
			b.End()
			rules++
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	if rules == 0 {
		return nil, fmt.Errorf("grammar %s: %w", name, ErrNoRules)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s loaded: %d rules, %d lines skipped", name, g.Size(), len(l.Skipped))
	return g, nil
}

// LoadFile reads a grammar from a file. If the loader has no name, the
// grammar is named after the file.
func (l *Loader) LoadFile(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := l.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l.load(f, name)
}

// LoadString is a convenience function to read a grammar from a string.
func LoadString(text, start string) (*grammar.Grammar, error) {
	l, err := New("G", start)
	if err != nil {
		return nil, err
	}
	return l.Load(strings.NewReader(text))
}

// --- Parsing rule lines ----------------------------------------------------

// parseLine splits a line into the left hand side variable and a list of
// alternatives. Empty alternatives are dropped.
func (l *Loader) parseLine(line string) (string, [][]grammar.Symbol, bool) {
	at, width := splitArrow(line)
	if at < 0 {
		return "", nil, false
	}
	left, ok := l.lexSymbols(line[:at])
	if !ok || len(left) != 1 || len(left[0]) != 1 || !left[0][0].IsVariable() {
		return "", nil, false
	}
	right, ok := l.lexSymbols(line[at+width:])
	if !ok {
		return "", nil, false
	}
	var alts [][]grammar.Symbol
	for _, alt := range right {
		if len(alt) > 0 {
			alts = append(alts, alt)
		}
	}
	if len(alts) == 0 {
		return "", nil, false
	}
	return left[0][0].Name, alts, true
}

// splitArrow finds the leftmost arrow in a line and returns its byte position
// and width, or -1.
func splitArrow(line string) (int, int) {
	at, width := -1, 0
	for _, arrow := range arrows {
		if i := strings.Index(line, arrow); i >= 0 && (at < 0 || i < at) {
			at, width = i, len(arrow)
		}
	}
	return at, width
}

// lexSymbols tokenizes a part of a rule line into symbol sequences separated
// by bars.
func (l *Loader) lexSymbols(part string) ([][]grammar.Symbol, bool) {
	sc, err := l.lm.Scanner(part)
	if err != nil {
		tracer().Errorf("grammar lexer: %v", err)
		return nil, false
	}
	valid := true
	sc.SetErrorHandler(func(e error) {
		tracer().Debugf("grammar lexer: %v", e)
		valid = false
	})
	alts := [][]grammar.Symbol{nil}
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		last := len(alts) - 1
		switch token.TokType() {
		case tokBar:
			alts = append(alts, nil)
		case tokQuoted:
			alts[last] = append(alts[last], grammar.Term(token.Value().(string)))
		case tokSymbol:
			alts[last] = append(alts[last], classify(token.Lexeme()))
		}
	}
	return alts, valid
}

// classify creates a variable for names starting with an upper-case letter,
// and a terminal otherwise.
func classify(name string) grammar.Symbol {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return grammar.Var(name)
	}
	return grammar.Term(name)
}
