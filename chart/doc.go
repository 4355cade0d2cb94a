/*
Package chart implements the CYK (Cocke–Younger–Kasami) recognizer for
grammars in Chomsky Normal Form.

The recognizer fills a triangular chart. Cell (i, span) holds every variable
deriving the run of tokens starting at position i (1-based) of length span.
For every variable, a cell records how it has been derived, as an ordered
list of witnesses:

    leaf witness     A ➞ t          for cells of span 1, t = token[i]
    binary witness   A ➞ B C, k     B derives (i, k), C derives (i+k, span-k)

All witnesses are retained, making the chart a compact representation of all
derivations of the input. Package tree extracts a single derivation tree
from a chart.

    C, _ := cnf.Normalize(g)
    ch, accepted := chart.Parse(C, []string{"she", "eats", "a", "cake"})
    if accepted {
        ch.Dump()
    }

Filling the chart is O(n³·|G|) for n tokens. Witnesses are recorded in a fixed
order, so charts for equal inputs are identical.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.chart'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.chart")
}
