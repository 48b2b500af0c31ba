/*
Package cfg models context-free grammars given in a compact textual
notation, and statically analyzes them.

Building a Grammar

Grammars are built from source text. The notation is line-oriented:

    start: S;
    A -> B c | d
    E -> E '+' T | T        // left recursion (see package lint)
    T -> 'id' | '(' E ')'

Non-terminals start with an uppercase letter. Terminals are lowercase
identifiers, punctuation, quoted literals '…' or pattern literals /…/.
Alternatives are separated by '|', the empty derivation is written 'ε' or
'epsilon', and the production arrow is '->' or '→'. Lines starting with
'//' or '#' are comments.

Parsing is best-effort and never fails: a line matching no rule shape is
skipped silently, so that a grammar being edited degrades to a smaller
grammar instead of an error. Semantic defects are the business of package
lint, not of the builder.

    g := cfg.FromString(text)
    g.Dump()   // visible with trace level Debug

Static Grammar Analysis

A Grammar may be subjected to static analysis, which determines all
epsilon-derivable non-terminals and computes FIRST- and FOLLOW-sets by
fixed-point iteration.

    ga := cfg.Analyze(g)
    for _, n := range g.Defined() {
        fmt.Printf("FIRST(%s) = %s\n", n, cfg.SetString(ga.First(n)))
    }

Analysis results are owned by the returned Analysis value; nothing is
shared between calls, so concurrent analyses of different grammars are
safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gram.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("gram.cfg")
}
