package tree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cyk/chart"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// ConsistencyFault is the error returned by Extract if a chart accepts its
// input, but no derivation tree can be extracted from it. This happens for
// charts constructed by hand and if Extract is called with tokens different
// from those the chart has been created for.
type ConsistencyFault struct {
	Start  grammar.Symbol
	Tokens []string
}

func (f *ConsistencyFault) Error() string {
	return fmt.Sprintf("chart accepts %q as %v, but no derivation can be extracted",
		strings.Join(f.Tokens, " "), f.Start)
}

// Extract returns a derivation tree for tokens, rooted at variable start.
// tokens must be the sequence ch has been created for. Tokens of a length
// different from the chart's are rejected.
//
// If ch does not derive the tokens from start, Extract returns nil and no error.
// If ch claims to derive them but extraction fails, a *ConsistencyFault is
// returned (or raised as a panic, depending on configuration flag
// "panic-on-chart-fault").
func Extract(ch *chart.Chart, tokens []string, start grammar.Symbol) (*Node, error) {
	n := len(tokens)
	if ch == nil || n == 0 || n != ch.Size() || !ch.Has(1, n, start) {
		tracer().Debugf("chart does not accept input, no tree")
		return nil, nil
	}
	x := extractor{ch: ch, tokens: tokens}
	root := x.extract(1, n, start)
	if root == nil {
		return nil, fault(&ConsistencyFault{Start: start, Tokens: append([]string(nil), tokens...)})
	}
	tracer().Debugf("extracted tree %v", root)
	return root, nil
}

type extractor struct {
	ch     *chart.Chart
	tokens []string
}

// extract finds a derivation of (i, span) from A. It tries the binary witnesses
// in order, and for cells of span 1 falls back to a leaf witness matching the
// input token.
func (x extractor) extract(i, span int, A grammar.Symbol) *Node {
	witnesses := x.ch.Witnesses(i, span, A)
	for _, w := range witnesses {
		if w.IsLeaf() {
			continue
		}
		left := x.extract(i, w.Split, w.Left)
		if left == nil {
			continue
		}
		right := x.extract(i+w.Split, span-w.Split, w.Right)
		if right == nil {
			continue
		}
		return newInner(A, left, right)
	}
	if span == 1 {
		for _, w := range witnesses {
			if w.IsLeaf() && w.Terminal == x.tokens[i-1] {
				return newLeaf(A, w.Terminal, x.tokens[i-1], uint64(i-1))
			}
		}
	}
	tracer().Debugf("no derivation for %v at (%d,%d)", A, i, span)
	return nil
}

// panicOnFault reads the configuration flag which turns faults into panics.
var panicOnFault = func() bool {
	return gconf.GetBool("panic-on-chart-fault")
}

func fault(f *ConsistencyFault) error {
	tracer().Errorf("%v", f)
	if panicOnFault() {
		panic(`CYK chart is inconsistent.

Configuration flag panic-on-chart-fault is set to true. It is aimed at helping
to debug a recognizer and do a post-mortem of why its chart is broken. However,
if this is a production environment and you did not expect this to panic,
please unset panic-on-chart-fault to its default (false).

` + f.Error())
	}
	return f
}
