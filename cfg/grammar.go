package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/gramtools/gram"
)

// Production is a single grammar rule alternative
//
//    LHS -> RHS[0] RHS[1] … RHS[n-1]
//
// An empty RHS represents an epsilon production. Productions remember the
// 0-based source line of their declaration, which diagnostics rely on.
type Production struct {
	LHS  string
	RHS  []string
	Line int
}

// IsEpsilon checks for an empty right-hand side.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p Production) String() string {
	return fmt.Sprintf("[%s] ::= [%s]", p.LHS, strings.Join(p.RHS, " "))
}

// Grammar is an immutable grammar model, the aggregate root of this package.
// Grammars are created from source text with FromString and are not mutated
// afterwards; analysis and generation read from them only.
type Grammar struct {
	start     string             // optional start symbol, "" if none resolvable
	prods     []Production       // in declaration order
	defined   *linkedhashset.Set // LHS non-terminals, insertion-ordered
	used      *hashset.Set       // non-terminals occurring in any RHS
	terminals *hashset.Set       // terminals occurring in any RHS
}

func newGrammar() *Grammar {
	return &Grammar{
		defined:   linkedhashset.New(),
		used:      hashset.New(),
		terminals: hashset.New(),
	}
}

// Start returns the grammar's start symbol: the one declared with a
// 'start:'-line (last declaration wins), or the first defined non-terminal,
// or "" for a grammar without non-terminals.
func (g *Grammar) Start() string {
	return g.start
}

// IsEmpty checks whether the grammar has neither productions nor defined
// non-terminals.
func (g *Grammar) IsEmpty() bool {
	return len(g.prods) == 0 && g.defined.Size() == 0
}

// Size returns the number of productions (alternatives count individually).
func (g *Grammar) Size() int {
	return len(g.prods)
}

// Productions returns the grammar's productions in declaration order.
// Callers must treat the returned slice as read-only.
func (g *Grammar) Productions() []Production {
	return g.prods
}

// AlternativesOf returns all productions with the given left-hand side, in
// declaration order. The result is nil for an undefined non-terminal.
func (g *Grammar) AlternativesOf(name string) []Production {
	var alts []Production
	for _, p := range g.prods {
		if p.LHS == name {
			alts = append(alts, p)
		}
	}
	return alts
}

// FirstProductionOf returns the first-declared production for a
// non-terminal, ok=false if there is none.
func (g *Grammar) FirstProductionOf(name string) (Production, bool) {
	for _, p := range g.prods {
		if p.LHS == name {
			return p, true
		}
	}
	return Production{}, false
}

// IsDefined checks whether a non-terminal occurs as some production's
// left-hand side.
func (g *Grammar) IsDefined(name string) bool {
	return g.defined.Contains(name)
}

// Defined returns the defined non-terminals in order of first declaration.
func (g *Grammar) Defined() []string {
	values := g.defined.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.(string)
	}
	return names
}

// Used returns all non-terminals occurring in a right-hand side, sorted.
func (g *Grammar) Used() []string {
	return sortedStrings(g.used)
}

// IsUsed checks whether a non-terminal occurs in any right-hand side.
func (g *Grammar) IsUsed(name string) bool {
	return g.used.Contains(name)
}

// Terminals returns all terminals of the grammar, sorted.
func (g *Grammar) Terminals() []string {
	return sortedStrings(g.terminals)
}

// Signature returns a stable fingerprint of the grammar's shape (start
// symbol and productions). Hosts may use it to key cached per-grammar
// artifacts; two textually different sources producing the same model share
// a signature.
func (g *Grammar) Signature() string {
	shape := struct {
		Start string
		Prods []Production
	}{g.start, g.prods}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

// Dump is a debugging helper, listing all productions of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar with start = [%s]", g.start)
	for i, p := range g.prods {
		tracer().Debugf("%3d: %s", i, p)
	}
}

// define records a left-hand side. Insertion order is kept, as the first
// defined non-terminal is the default start symbol.
func (g *Grammar) define(name string) {
	g.defined.Add(name)
}

// finish derives the used- and terminal-sets and resolves the default start
// symbol. Called once by the builder after all lines are scanned.
func (g *Grammar) finish() {
	for _, p := range g.prods {
		for _, sym := range p.RHS {
			switch gram.KindOf(sym) {
			case gram.Nonterminal:
				g.used.Add(sym)
			case gram.Terminal:
				g.terminals.Add(sym)
			}
		}
	}
	if g.start == "" {
		if def := g.Defined(); len(def) > 0 {
			g.start = def[0]
		}
	}
}

func sortedStrings(set *hashset.Set) []string {
	values := set.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.(string)
	}
	sort.Strings(names)
	return names
}
