/*
Package cnf transforms context-free grammars into Chomsky Normal Form (CNF).

A grammar is in CNF if every rule has one of the forms

    A ➞ B C      (B and C variables)
    A ➞ t        (t a terminal)

Normalize transforms an arbitrary grammar without epsilon productions into an
equivalent grammar in CNF. The transformation consists of four stages,
always applied in this order:

    1. elimination of unit productions  A ➞ B
    2. lifting of terminals out of longer right hand sides, using helper
       variables  T_t ➞ t
    3. binarization of right hand sides longer than 2, using fresh
       variables  A_BIN_n
    4. pruning of variables not reachable from the start variable

Normalize never modifies its input. The resulting CNF grammar is indexed for the
CYK recognizer: binary rules by their pair of right hand side variables and
terminal rules by terminal value.

    g, err := loader.LoadString(text, "S")
    …
    C, err := cnf.Normalize(g)
    …
    C.Dump()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cyk.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("cyk.cnf")
}
