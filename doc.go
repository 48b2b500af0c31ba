/*
Package gram is a toolbox for analyzing small context-free grammars.

It is built for interactive use: a host (an editor plugin, a REPL, a
linting service) hands over grammar source text on every change and
receives static properties, located diagnostics and example sentences in
return. Package structure is as follows:

■ cfg: Package cfg builds an in-memory grammar model from a compact
textual notation and computes nullability, FIRST- and FOLLOW-sets by
fixed-point iteration.

■ lint: Package lint checks a grammar for semantic defects (undefined
non-terminals, unreachable non-terminals and direct left recursion) and
reports them as located diagnostics.

■ gen: Package gen derives random example sentences from a grammar by
depth-bounded weighted expansion of the derivation tree.

The base package contains the symbol vocabulary which is used throughout
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/
package gram
