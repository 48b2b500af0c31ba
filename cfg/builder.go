package cfg

import (
	"strings"

	"github.com/gramtools/gram"
)

// FromString builds a Grammar from source text. It never fails: blank and
// comment lines are skipped, and so is any line matching neither of the two
// recognized shapes
//
//    start : <ident> ;?
//    <ident> (-> | →) <alternative> | <alternative> | …
//
// Malformed input thus degrades to a smaller grammar. Locating and wording
// complaints about a degenerate grammar is left to package lint.
func FromString(text string) *Grammar {
	g := newGrammar()
	for n, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens := scanLine(line)
		if len(tokens) == 0 {
			continue
		}
		if name, ok := startDecl(tokens); ok {
			g.start = name // last declaration wins
			continue
		}
		if len(tokens) >= 2 && tokens[0].typ == tokIdent && tokens[1].typ == tokArrow {
			g.addProductions(tokens[0].lexeme, tokens[2:], n)
			continue
		}
		tracer().Debugf("line %d matches no grammar shape, skipped", n+1)
	}
	g.finish()
	return g
}

// startDecl matches the shape  start : <ident> ;?  ('start' is matched
// case-insensitively).
func startDecl(tokens []token) (string, bool) {
	if len(tokens) < 3 || len(tokens) > 4 {
		return "", false
	}
	if tokens[0].typ != tokIdent || !strings.EqualFold(tokens[0].lexeme, "start") {
		return "", false
	}
	if tokens[1].typ != tokColon || tokens[2].typ != tokIdent {
		return "", false
	}
	if len(tokens) == 4 && tokens[3].typ != tokSemi {
		return "", false
	}
	return tokens[2].lexeme, true
}

// addProductions splits a right-hand side on top-level '|' and records one
// production per alternative. A single trailing semicolon is tolerated, as many grammar
// notations terminate their rules with one.
func (g *Grammar) addProductions(lhs string, rhs []token, line int) {
	if n := len(rhs); n > 0 && rhs[n-1].typ == tokSemi {
		rhs = rhs[:n-1]
	}
	for _, alt := range splitAlternatives(rhs) {
		g.prods = append(g.prods, Production{LHS: lhs, RHS: symbols(alt), Line: line})
	}
	g.define(lhs)
}

func splitAlternatives(tokens []token) [][]token {
	alts := make([][]token, 0, 2)
	current := []token{}
	for _, t := range tokens {
		if t.typ == tokBar {
			alts = append(alts, current)
			current = []token{}
			continue
		}
		current = append(current, t)
	}
	return append(alts, current)
}

// symbols maps an alternative's tokens to grammar symbols. An alternative
// consisting solely of the epsilon marker becomes an empty right-hand side.
// Structural characters appearing mid-alternative (':', ';', '->') count as
// ordinary punctuation terminals.
func symbols(alt []token) []string {
	if len(alt) == 1 && isEpsilonToken(alt[0]) {
		return nil
	}
	syms := make([]string, 0, len(alt))
	for _, t := range alt {
		syms = append(syms, t.lexeme)
	}
	if len(syms) == 0 {
		return nil
	}
	return syms
}

func isEpsilonToken(t token) bool {
	return t.typ == tokEpsilon || (t.typ == tokIdent && gram.IsEpsilon(t.lexeme))
}
