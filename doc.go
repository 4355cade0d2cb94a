/*
Package cyk is a small toolbox for recognizing sentences of context-free
languages with the Cocke–Younger–Kasami algorithm.

Grammars are rewritten into Chomsky Normal Form and then used to fill a
triangular parse chart for a sequence of input tokens. From an accepting chart
a single derivation tree may be extracted. Package structure is as follows:

■ grammar: Package grammar implements symbols, rules and grammars, together with a
builder and a loader for a line-oriented grammar notation.

■ cnf: Package cnf rewrites a grammar into an equivalent grammar in Chomsky
Normal Form.

■ chart: Package chart implements the CYK parse chart and the recognizer filling it.

■ tree: Package tree extracts a derivation tree from a parse chart.

■ scanner: Package scanner splits natural language sentences into tokens.

■ cmd/cyk: Command cyk is a command line tool and REPL for parsing sentences.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk
