/*
Package lint finds semantic defects in a grammar and reports them as
located diagnostics.

Three independent checks run per call: non-terminals which are used but
never defined (errors), defined non-terminals which are unreachable from
the start symbol (warnings), and directly left-recursive productions
(errors). All defects are reported, not just the first.

    for _, d := range lint.Check(source) {
        fmt.Printf("%s %s %s\n", d.Severity, d.Range, d.Message)
    }

A known limitation: only direct left recursion is detected, i.e. a
right-hand side beginning with its own left-hand symbol. Indirect or
mutual left recursion (A → B …, B → A …) goes unreported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/
package lint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gram.lint'.
func tracer() tracing.Trace {
	return tracing.Select("gram.lint")
}
