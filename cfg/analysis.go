package cfg

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/gramtools/gram"
)

// Analysis holds the results of analyzing a Grammar: the set of nullable
// non-terminals and the FIRST- and FOLLOW-sets. All state is owned by the
// Analysis value; repeated calls of Analyze for the same grammar yield
// identical, independent results.
type Analysis struct {
	g        *Grammar
	nullable map[string]bool
	first    map[string]*treeset.Set
	follow   map[string]*treeset.Set
}

// Analyze computes nullability, FIRST- and FOLLOW-sets for a grammar by
// iterating the three dataflow equations to a fixed point. Each set grows
// monotonically and is bounded by the grammar's alphabet, so the loop
// terminates.
func Analyze(g *Grammar) *Analysis {
	ga := &Analysis{
		g:        g,
		nullable: make(map[string]bool),
		first:    make(map[string]*treeset.Set),
		follow:   make(map[string]*treeset.Set),
	}
	for _, n := range g.Defined() {
		ga.first[n] = newSymbolSet()
		ga.follow[n] = newSymbolSet()
	}
	if s := g.Start(); s != "" {
		ga.followSet(s).Add(gram.EOFSymbol)
	}
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions() {
			if !ga.nullable[p.LHS] && ga.rhsNullable(p.RHS) {
				ga.nullable[p.LHS] = true
				changed = true
			}
		}
		for _, p := range g.Productions() {
			if unionInto(ga.firstSet(p.LHS), ga.FirstOfString(p.RHS), "") {
				changed = true
			}
		}
		for _, p := range g.Productions() {
			for i, sym := range p.RHS {
				if gram.KindOf(sym) != gram.Nonterminal {
					continue
				}
				beta := p.RHS[i+1:]
				firstBeta := ga.FirstOfString(beta)
				followB := ga.followSet(sym)
				if unionInto(followB, firstBeta, gram.EpsilonSymbol) {
					changed = true
				}
				if len(beta) == 0 || firstBeta.Contains(gram.EpsilonSymbol) {
					if unionInto(followB, ga.followSet(p.LHS), "") {
						changed = true
					}
				}
			}
		}
	}
	tracer().Debugf("analysis: %d nullable non-terminals", len(ga.nullable))
	return ga
}

// Grammar returns the grammar this analysis was computed for.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// IsNullable checks whether a non-terminal can derive the empty string.
func (ga *Analysis) IsNullable(name string) bool {
	return ga.nullable[name]
}

// Nullable returns all nullable non-terminals, sorted.
func (ga *Analysis) Nullable() []string {
	names := make([]string, 0, len(ga.nullable))
	for n := range ga.nullable {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// First returns FIRST(name): all terminals which can begin a derivation of
// the non-terminal, plus the epsilon marker if it is nullable. The result
// is empty (not nil) for unknown names and must be treated as read-only.
func (ga *Analysis) First(name string) *treeset.Set {
	if s, ok := ga.first[name]; ok {
		return s
	}
	return newSymbolSet()
}

// Follow returns FOLLOW(name): all terminals (and possibly the end-of-input
// marker) which can immediately follow the non-terminal in a derivation
// from the start symbol. The result is empty (not nil) for unknown names
// and must be treated as read-only.
func (ga *Analysis) Follow(name string) *treeset.Set {
	if s, ok := ga.follow[name]; ok {
		return s
	}
	return newSymbolSet()
}

// FirstOfString computes FIRST(α) for a symbol string α, reading the
// current state of the non-terminals' FIRST-sets. If the whole of α can
// derive the empty string, the result contains the epsilon marker.
func (ga *Analysis) FirstOfString(alpha []string) *treeset.Set {
	result := newSymbolSet()
	for _, sym := range alpha {
		switch gram.KindOf(sym) {
		case gram.Epsilon:
			continue // contributes nothing, derives empty
		case gram.Terminal:
			result.Add(sym)
			return result
		case gram.Nonterminal:
			f := ga.First(sym)
			nullable := f.Contains(gram.EpsilonSymbol)
			it := f.Iterator()
			for it.Next() {
				if s := it.Value().(string); s != gram.EpsilonSymbol {
					result.Add(s)
				}
			}
			if !nullable {
				return result
			}
		}
	}
	result.Add(gram.EpsilonSymbol)
	return result
}

// rhsNullable implements the nullability equation for one right-hand side:
// empty, the literal epsilon marker, or all-nullable symbols.
func (ga *Analysis) rhsNullable(rhs []string) bool {
	for _, sym := range rhs {
		switch gram.KindOf(sym) {
		case gram.Epsilon:
			// derives empty by itself
		case gram.Terminal:
			return false
		case gram.Nonterminal:
			if !ga.nullable[sym] {
				return false
			}
		}
	}
	return true
}

// firstSet returns the FIRST-set for a name, creating it on demand. Lazy
// creation covers non-terminals outside the defined set, e.g. a declared
// but never defined start symbol.
func (ga *Analysis) firstSet(name string) *treeset.Set {
	s, ok := ga.first[name]
	if !ok {
		s = newSymbolSet()
		ga.first[name] = s
	}
	return s
}

func (ga *Analysis) followSet(name string) *treeset.Set {
	s, ok := ga.follow[name]
	if !ok {
		s = newSymbolSet()
		ga.follow[name] = s
	}
	return s
}

// --- Symbol sets ------------------------------------------------------------

// newSymbolSet creates a set of symbol strings with stable iteration order:
// the epsilon marker first, then the end-of-input marker, then lexicographic.
// Renderings of analysis results are reproducible because of this order.
func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbolOrder)
}

func symbolOrder(a, b interface{}) int {
	sa, sb := a.(string), b.(string)
	if ra, rb := symbolRank(sa), symbolRank(sb); ra != rb {
		return ra - rb
	}
	return strings.Compare(sa, sb)
}

func symbolRank(s string) int {
	switch s {
	case gram.EpsilonSymbol:
		return 0
	case gram.EOFSymbol:
		return 1
	}
	return 2
}

// SetString renders a symbol set in its stable order, e.g. { ε '+' }.
func SetString(set *treeset.Set) string {
	var b strings.Builder
	b.WriteString("{")
	if set != nil {
		it := set.Iterator()
		for it.Next() {
			b.WriteString(" ")
			b.WriteString(it.Value().(string))
		}
	}
	b.WriteString(" }")
	return b.String()
}

// unionInto adds all of src to dst, leaving out the except symbol ("" for
// none). It reports whether dst grew, which drives the fixed-point loop.
func unionInto(dst, src *treeset.Set, except string) bool {
	if dst == src {
		return false
	}
	before := dst.Size()
	it := src.Iterator()
	for it.Next() {
		if s := it.Value().(string); except == "" || s != except {
			dst.Add(s)
		}
	}
	return dst.Size() != before
}
