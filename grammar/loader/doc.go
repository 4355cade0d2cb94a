/*
Package loader reads context-free grammars from a line-oriented text format.

Every line holds the rules for one left hand side variable, with alternatives
separated by '|':

    # comments start with '#'
    S   -> NP VP
    VP  -> V NP | V NP PP
    NP  -> Det N | she | 'he'

Arrows may be given as "->", "→", "−>", "—>" or "::=". Symbols are classified
by their spelling: a symbol in single or double quotes is a terminal, a symbol
starting with an upper-case letter is a variable, every other symbol is a
terminal.

Malformed lines are skipped and reported as warnings to the trace with key
'cyk.grammar'. The line numbers of skipped lines are recorded in
Loader.Skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.grammar")
}
