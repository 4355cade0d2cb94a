package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/chart"
	"github.com/npillmayer/cyk/cnf"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/cyk/grammar/loader"
	"github.com/npillmayer/cyk/scanner"
	"github.com/npillmayer/cyk/tree"
)

// We provide a small English grammar as a default. It has the rules of
// testdata/english.cfg.
const englishGrammar = `
S    -> NP VP
VP   -> V NP | V NP PP
PP   -> P NP
NP   -> Det N | Det Adj N | Pron
Pron -> she | he
Det  -> a | the
Adj  -> big | small | sharp
N    -> cake | meat | knife | beer | cat | fork
V    -> eats | cuts | drinks
P    -> with | in
`

var traceKeys = []string{"cyk.cli", "cyk.grammar", "cyk.cnf", "cyk.chart", "cyk.tree", "cyk.scanner"}

// ErrTooLong is reported for sentences exceeding the maximum number of tokens.
var ErrTooLong = errors.New("sentence too long")

// main() starts the CYK command line tool. Sentences given with -s are
// parsed, otherwise the tool enters interactive mode.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var gfile, sent string
	flag.StringVar(&gfile, "grammar", "", "Grammar file")
	flag.StringVar(&gfile, "g", "", "Grammar file (shorthand)")
	flag.StringVar(&sent, "sent", "", "Sentence to parse")
	flag.StringVar(&sent, "s", "", "Sentence to parse (shorthand)")
	start := flag.String("start", loader.DefaultStart, "Start variable")
	showCNF := flag.Bool("show-cnf", false, "Print grammar in CNF")
	debug := flag.Bool("debug", false, "Print chart cells")
	dotfile := flag.String("export-dot", "", "Export derivation tree to Graphviz DOT file")
	maxTokens := flag.Int("max-tokens", 64, "Maximum number of words per sentence")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to the CYK parser")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar
	g, err := loadGrammar(gfile, *start)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	C, err := cnf.Normalize(g)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	C.Dump()                           // only visible in debug mode
	if *showCNF {
		printCNF(C)
	}
	intp := &Intp{
		C:         C,
		debug:     *debug,
		dotfile:   *dotfile,
		maxTokens: *maxTokens,
	}
	input := strings.TrimSpace(sent)
	if input == "" {
		input = strings.TrimSpace(strings.Join(flag.Args(), " "))
	}
	if input != "" {
		if _, err = intp.Eval(input); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("cyk> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

func loadGrammar(gfile, start string) (*grammar.Grammar, error) {
	l, err := loader.New("", start)
	if err != nil {
		return nil, err
	}
	if gfile == "" {
		l.Name = "english"
		return l.Load(strings.NewReader(englishGrammar))
	}
	g, err := l.LoadFile(gfile)
	if err != nil {
		return nil, err
	}
	for _, lineno := range l.Skipped {
		pterm.Warning.Printf("%s: skipped malformed line %d\n", gfile, lineno)
	}
	return g, nil
}

// Intp is our interpreter object.
type Intp struct {
	C         *cnf.Grammar
	repl      *readline.Instance
	debug     bool
	dotfile   string
	maxTokens int
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval parses a sentence and prints the result.
// It returns true if the sentence has been accepted.
func (intp *Intp) Eval(sentence string) (bool, error) {
	tokens := scanner.Tokenize(scanner.NewSentenceTokenizer(strings.NewReader(sentence)))
	if len(tokens) > intp.maxTokens {
		return false, fmt.Errorf("%w: %d words, maximum is %d", ErrTooLong, len(tokens), intp.maxTokens)
	}
	words := cyk.Lexemes(tokens)
	tracer().Infof("Input is %q", strings.Join(words, " "))
	intp.lexicalReport(tokens)
	//
	started := time.Now()
	ch, accepted := chart.Parse(intp.C, words)
	elapsed := time.Since(started)
	if intp.debug {
		printChart(ch)
	}
	result := "NO"
	if accepted {
		result = "YES"
	}
	pterm.Info.Printf("Accepted: %s   (%.3f ms)\n", result, float64(elapsed.Microseconds())/1000.0)
	if !accepted {
		return false, nil
	}
	root, err := tree.Extract(ch, words, intp.C.Start())
	if err != nil {
		return true, err
	}
	pterm.Println(root.String())
	printTree(root)
	if intp.dotfile != "" {
		if err = exportDot(root, intp.dotfile); err != nil {
			return true, err
		}
		pterm.Info.Printf("Derivation tree written to %s\n", intp.dotfile)
	}
	return true, nil
}

// lexicalReport warns about words unknown to the grammar.
func (intp *Intp) lexicalReport(tokens []cyk.Token) {
	for i, t := range tokens {
		A := intp.C.Terminal(t.Lexeme())
		if len(A) == 0 {
			pterm.Warning.Printf("word %d %q at %v is not in the grammar's vocabulary\n", i+1, t.Lexeme(), t.Span())
			continue
		}
		tracer().Debugf("word %d %q ➞ %v", i+1, t.Lexeme(), A)
	}
}

// --- Output ----------------------------------------------------------------

func printCNF(C *cnf.Grammar) {
	data := pterm.TableData{{"#", "LHS", "", "RHS"}}
	for i, r := range C.Rules() {
		rhs := make([]string, r.Len())
		for j := range rhs {
			rhs[j] = r.At(j).String()
		}
		data = append(data, []string{fmt.Sprintf("%d", i+1), r.LHS.Name, "->", strings.Join(rhs, " ")})
	}
	pterm.Info.Printf("Grammar %s in CNF, start %v, %d rules\n", C.Grammar().Name, C.Start(), C.Size())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if fp, err := C.Fingerprint(); err == nil {
		pterm.Info.Printf("Fingerprint %s\n", fp)
	}
}

func printChart(ch *chart.Chart) {
	data := pterm.TableData{{"i", "word", "variables"}}
	for i := 1; i <= ch.Size(); i++ {
		data = append(data, []string{fmt.Sprintf("%d", i), ch.Token(i), ch.Cell(i, 1).String()})
	}
	pterm.Info.Println("Chart cells of span 1")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	data = pterm.TableData{{"i", "span", "fragment", "variables"}}
	ch.Each(func(i, span int, cell *chart.Cell) {
		if !cell.IsEmpty() {
			data = append(data, []string{fmt.Sprintf("%d", i), fmt.Sprintf("%d", span),
				ch.Fragment(i, span), cell.String()})
		}
	})
	pterm.Info.Println("Non-empty chart cells")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTree(root *tree.Node) {
	var ll pterm.LeveledList
	root.Walk(func(n *tree.Node, depth int) bool {
		text := n.Label().Name
		if n.IsLeaf() {
			text = fmt.Sprintf("%s  %q", text, n.Text())
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func exportDot(root *tree.Node, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = tree.ToDot(root, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
