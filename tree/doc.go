/*
Package tree extracts derivation trees from CYK charts.

A chart (see package chart) holds every derivation of its input. Extract
selects one of them, deterministically: starting with the start variable for
the complete input, it walks down the chart and, for every variable, uses the
first witness whose sub-derivations can be extracted themselves.

    ch, accepted := chart.Parse(C, tokens)
    root, err := tree.Extract(ch, tokens, C.Start())
    if err != nil {
        … // chart is inconsistent
    } else if root != nil {
        fmt.Println(root)   // (S (NP she) (VP (V eats) (NP (Det a) (N cake))))
    }

Rejection of an input is not an error: Extract returns a nil tree. However,
if a chart claims to accept an input but no derivation can be extracted, the
chart is internally inconsistent. Extract then returns a *ConsistencyFault.
If the global configuration flag "panic-on-chart-fault" is set, Extract
panics instead.

Trees may be exported in Graphviz DOT format with ToDot.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.tree")
}
