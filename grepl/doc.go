/*
Package grepl/main provides an interactive command line tool (G.REPL)
for context-free grammars. Users type grammar rules line by line, then
check the grammar for defects, inspect its nullable/FIRST/FOLLOW-sets
and sample random example sentences from it. G.REPL serves as a sandbox
for sketching a grammar before wiring it into a host.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gram.repl'
func tracer() tracing.Trace {
	return tracing.Select("gram.repl")
}
