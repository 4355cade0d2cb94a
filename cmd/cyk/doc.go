/*
Command cyk is a command line tool for recognizing and parsing sentences
with a context-free grammar, using the CYK algorithm.

The grammar is read from a text file (see package grammar/loader) and
transformed into Chomsky Normal Form. Sentences are normalized (lower-cased,
punctuation removed) and split into words, which are the input tokens.

    cyk -g testdata/english.cfg -s "She eats a cake."
    cyk -g testdata/english.cfg -show-cnf -debug -export-dot tree.dot -s "He cuts the meat with a knife"

If no sentence is given, cyk enters interactive mode and reads sentences
line by line. Quit with <ctrl>D.

Flags:

    -grammar, -g     grammar file (default: a small built-in English grammar)
    -start           start variable (default "S")
    -sent, -s        sentence to parse
    -show-cnf        print the rules of the grammar in CNF
    -debug           print the span-1 cells and all non-empty cells of the chart
    -export-dot      write the derivation tree to a Graphviz DOT file
    -max-tokens      maximum number of words per sentence (default 64)
    -trace           trace level [Debug|Info|Error]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.cli'
func tracer() tracing.Trace {
	return tracing.Select("cyk.cli")
}
