/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the tokenizer interface of package scanner.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing regular expressions together with
actions. Please refer to the lexmachine documentation on how to instruct lexmachine.

	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`\|`), lexmach.MakeToken(Bar))
		lexer.Add([]byte(`( |\t)+`), lexmach.Skip)
	}

lexmach.Skip is a pre-defined action which ignores the scanned match,
lexmach.MakeToken wraps a scanned match into a cyk.Token and
lexmach.MakeValueToken additionally attaches a value computed from the match.

Having that, clients use `NewLMAdapter` to compile the DFA.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := lexmach.NewLMAdapter(init)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface; tokens are read until EOF.

	scan, err := LM.Scanner("input string to tokenize")
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

The grammar loader of package grammar/loader is built on this adapter.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
