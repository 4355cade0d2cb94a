package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cyk/cnf"
	"github.com/npillmayer/cyk/grammar"
)

// ErrInvalidWitness is returned by Chart.Add for witnesses which do not fit
// the cell they are added to.
var ErrInvalidWitness = errors.New("invalid witness")

// === Witnesses =============================================================

// WitnessKind tells leaf witnesses from binary witnesses.
type WitnessKind int8

// Kinds of witnesses.
const (
	LeafWitness WitnessKind = iota + 1
	BinaryWitness
)

// Witness records one way a variable has been derived for a cell.
// For leaf witnesses, Terminal is the token matched. For binary witnesses,
// Left derives the first Split tokens of the cell's span and Right derives the
// rest.
type Witness struct {
	Kind     WitnessKind
	Terminal string
	Left     grammar.Symbol
	Split    int
	Right    grammar.Symbol
}

// Leaf creates a leaf witness for terminal value t.
func Leaf(t string) Witness {
	return Witness{Kind: LeafWitness, Terminal: t}
}

// Binary creates a binary witness (B, k, C).
func Binary(B grammar.Symbol, k int, C grammar.Symbol) Witness {
	return Witness{Kind: BinaryWitness, Left: B, Split: k, Right: C}
}

// IsLeaf is true for leaf witnesses.
func (w Witness) IsLeaf() bool {
	return w.Kind == LeafWitness
}

func (w Witness) String() string {
	if w.IsLeaf() {
		return fmt.Sprintf("%q", w.Terminal)
	}
	return fmt.Sprintf("(%v,%d,%v)", w.Left, w.Split, w.Right)
}

// === Cells =================================================================

// Cell holds the variables deriving a run of input tokens, each together with
// its witnesses. Variables are kept in order of their first witness.
type Cell struct {
	vars      []grammar.Symbol
	witnesses map[grammar.Symbol][]Witness
}

func newCell() *Cell {
	return &Cell{witnesses: make(map[grammar.Symbol][]Witness)}
}

func (c *Cell) add(A grammar.Symbol, w Witness) {
	if _, ok := c.witnesses[A]; !ok {
		c.vars = append(c.vars, A)
	}
	c.witnesses[A] = append(c.witnesses[A], w)
}

// Variables returns the variables of a cell in order of their first witness.
func (c *Cell) Variables() []grammar.Symbol {
	if c == nil {
		return nil
	}
	return append([]grammar.Symbol(nil), c.vars...)
}

// Has is true if variable A derives the cell's span.
func (c *Cell) Has(A grammar.Symbol) bool {
	if c == nil {
		return false
	}
	_, ok := c.witnesses[A]
	return ok
}

// Witnesses returns the witnesses for A, in order of discovery.
func (c *Cell) Witnesses(A grammar.Symbol) []Witness {
	if c == nil {
		return nil
	}
	return append([]Witness(nil), c.witnesses[A]...)
}

// Size returns the number of variables in a cell.
func (c *Cell) Size() int {
	if c == nil {
		return 0
	}
	return len(c.vars)
}

// IsEmpty is true for cells without variables.
func (c *Cell) IsEmpty() bool {
	return c.Size() == 0
}

// String lists the variables of a cell, sorted by name.
func (c *Cell) String() string {
	if c.IsEmpty() {
		return "{ }"
	}
	names := treeset.NewWithStringComparator()
	for _, A := range c.vars {
		names.Add(A.Name)
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, name := range names.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name.(string))
	}
	b.WriteString(" }")
	return b.String()
}

// === Chart =================================================================

// Chart is the triangular CYK chart for a sequence of n tokens. Positions i
// are 1-based, spans range from 1 to n-i+1.
type Chart struct {
	tokens []string
	cells  [][]*Cell // cells[i-1][span-1]
}

// New creates an empty chart for a sequence of tokens. Usually clients will
// not call this but use Parse.
func New(tokens []string) *Chart {
	n := len(tokens)
	ch := &Chart{
		tokens: append([]string(nil), tokens...),
		cells:  make([][]*Cell, n),
	}
	for i := 0; i < n; i++ {
		ch.cells[i] = make([]*Cell, n-i)
		for j := range ch.cells[i] {
			ch.cells[i][j] = newCell()
		}
	}
	return ch
}

// Size returns the number of tokens n.
func (ch *Chart) Size() int {
	return len(ch.tokens)
}

// Tokens returns the tokens the chart has been created for.
func (ch *Chart) Tokens() []string {
	return append([]string(nil), ch.tokens...)
}

// Token returns the token at 1-based position i.
func (ch *Chart) Token(i int) string {
	return ch.tokens[i-1]
}

func (ch *Chart) inRange(i, span int) bool {
	return i >= 1 && span >= 1 && i+span-1 <= len(ch.tokens)
}

// Cell returns the cell for (i, span), or nil if (i, span) is outside of the
// chart.
func (ch *Chart) Cell(i, span int) *Cell {
	if !ch.inRange(i, span) {
		return nil
	}
	return ch.cells[i-1][span-1]
}

// Has is true if variable A derives the tokens of (i, span).
func (ch *Chart) Has(i, span int, A grammar.Symbol) bool {
	return ch.Cell(i, span).Has(A)
}

// Witnesses returns the witnesses for variable A in cell (i, span).
func (ch *Chart) Witnesses(i, span int, A grammar.Symbol) []Witness {
	return ch.Cell(i, span).Witnesses(A)
}

// Accepts is true if start derives the complete input. Charts for empty
// inputs accept nothing.
func (ch *Chart) Accepts(start grammar.Symbol) bool {
	if ch.Size() == 0 {
		return false
	}
	return ch.Has(1, ch.Size(), start)
}

// Add adds a witness for A to cell (i, span). Leaf witnesses are valid for
// cells of span 1 only, binary witnesses need 1 ≤ Split < span.
func (ch *Chart) Add(i, span int, A grammar.Symbol, w Witness) error {
	if !ch.inRange(i, span) {
		return fmt.Errorf("%w: cell (%d,%d) outside of chart", ErrInvalidWitness, i, span)
	}
	switch w.Kind {
	case LeafWitness:
		if span != 1 {
			return fmt.Errorf("%w: leaf %v in cell (%d,%d)", ErrInvalidWitness, w, i, span)
		}
	case BinaryWitness:
		if w.Split < 1 || w.Split >= span {
			return fmt.Errorf("%w: split %v in cell (%d,%d)", ErrInvalidWitness, w, i, span)
		}
	default:
		return fmt.Errorf("%w: unknown witness kind %d", ErrInvalidWitness, w.Kind)
	}
	ch.cells[i-1][span-1].add(A, w)
	return nil
}

// Each calls f for every cell of the chart, ordered by span first and by
// position second.
func (ch *Chart) Each(f func(i, span int, cell *Cell)) {
	n := ch.Size()
	for span := 1; span <= n; span++ {
		for i := 1; i <= n-span+1; i++ {
			f(i, span, ch.cells[i-1][span-1])
		}
	}
}

// Fragment returns the tokens of (i, span), separated by blanks.
func (ch *Chart) Fragment(i, span int) string {
	if !ch.inRange(i, span) {
		return ""
	}
	return strings.Join(ch.tokens[i-1:i-1+span], " ")
}

// === Recognizer ============================================================

// Parse runs the CYK recognizer for a sequence of tokens, which must be
// normalized the way the grammar's terminals are. It returns the filled
// chart and true if the start variable of g derives the complete input.
// An empty token sequence is never accepted.
//
// A token not matched by any terminal rule leaves its cell of span 1 empty,
// which usually results in rejection.
func Parse(g *cnf.Grammar, tokens []string) (*Chart, bool) {
	ch := New(tokens)
	n := ch.Size()
	if n == 0 {
		tracer().Debugf("empty input, nothing to do")
		return ch, false
	}
	for i := 1; i <= n; i++ {
		t := tokens[i-1]
		for _, A := range g.Terminal(t) {
			ch.cells[i-1][0].add(A, Leaf(t))
		}
		if ch.cells[i-1][0].IsEmpty() {
			tracer().Infof("token %d %q is not matched by any terminal rule", i, t)
		}
	}
	for span := 2; span <= n; span++ {
		for i := 1; i <= n-span+1; i++ {
			cell := ch.cells[i-1][span-1]
			for k := 1; k < span; k++ {
				left, right := ch.cells[i-1][k-1], ch.cells[i+k-1][span-k-1]
				if left.IsEmpty() || right.IsEmpty() {
					continue
				}
				for _, B := range left.vars {
					if !g.HasLeftCorner(B) {
						continue
					}
					for _, C := range right.vars {
						for _, A := range g.Binary(B, C) {
							cell.add(A, Binary(B, k, C))
						}
					}
				}
			}
		}
	}
	accepted := ch.Accepts(g.Start())
	tracer().Debugf("CYK chart for %d tokens filled, accepted = %v", n, accepted)
	return ch, accepted
}

// === Debugging =============================================================

// Dump is a debugging helper, tracing all non-empty cells at debug level,
// together with the input fragment they cover.
func (ch *Chart) Dump() {
	tracer().Debugf("--- CYK chart, %d tokens --------------------------", ch.Size())
	ch.Each(func(i, span int, cell *Cell) {
		if cell.IsEmpty() {
			return
		}
		tracer().Debugf("[i=%d, span=%d] '%s' -> %s", i, span, ch.Fragment(i, span), cell)
	})
	tracer().Debugf("--------------------------------------------------")
}

// DumpUnaries is a debugging helper, tracing the cells of span 1 at debug
// level, including empty ones. This shows which tokens are known to the
// grammar.
func (ch *Chart) DumpUnaries() {
	tracer().Debugf("--- CYK chart, span 1 -----------------------------")
	for i := 1; i <= ch.Size(); i++ {
		tracer().Debugf("[i=%d] '%s' -> %s", i, ch.Token(i), ch.Cell(i, 1))
	}
	tracer().Debugf("--------------------------------------------------")
}
