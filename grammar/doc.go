/*
Package grammar implements context-free grammars: symbols, rules and a
grammar's production map.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of variables (non-terminals) and terminals. Whether a symbol
is a variable or a terminal is fixed when the symbol is created, never
derived from its spelling.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").N("NP").N("VP").End()      // S   ->  NP VP
    b.LHS("NP").N("Det").N("N").End()     // NP  ->  Det N
    b.LHS("NP").T("she").End()            // NP  ->  'she'
    b.LHS("Det").T("a").End()             // Det ->  'a'
    ...
    g, err := b.Grammar()

This results in the following grammar:

   g.Dump()

   0: S -> NP VP
   1: NP -> Det N
   2: NP -> 'she'
   3: Det -> 'a'

The first left hand side symbol is the start symbol, unless the builder is told
otherwise. Grammars are usually not built by hand, but loaded from a text file,
see sub-package loader.

Grammars are append-only. Adding a rule a second time is a no-op.
Once handed to the normalizer or to parsers, a grammar should be treated as
read-only; it may then be shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.grammar")
}
