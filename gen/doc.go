/*
Package gen derives random example sentences from a grammar.

Generation walks the derivation tree from a start symbol, choosing among a
non-terminal's alternatives at random and synthesizing values for lexical
terminals. Recursion is bounded by a maximum depth; past it, tail-like
non-terminals collapse to the empty string and everything else to a minimal
token, so generation always terminates. Past a shallower threshold the
choice among alternatives is biased away from self-recursion and towards
shorter right-hand sides, shrinking the sentence as depth grows.

    sample := gen.Generate(grammarText, "start", 6)

Generation never fails: an unknown start symbol, a grammar without
productions or an exceeded depth all degrade to a best-effort (possibly
empty) string.

The symbol-name conventions involved (which rules count as atomic
expressions, tail continuations or lexical classes) live in a Policy
value and default to the naming family of the grammar-inference backend
(Factor, StmtList, AddExprTail, ID/NUM/STR, …). Grammars outside that
family simply degrade to the generic weighted choice.

Randomness is injectable: seed a rand.Rand and pass it to NewGenerator for
reproducible output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/
package gen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gram.gen'.
func tracer() tracing.Trace {
	return tracing.Select("gram.gen")
}
