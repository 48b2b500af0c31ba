package gen

import (
	"strings"

	"github.com/gramtools/gram/cfg"
)

// lexical terminal classes the generator synthesizes values for
type lexClass int8

const (
	lexNone lexClass = iota
	lexIdent
	lexNumber
	lexString
)

// Policy holds the symbol-name conventions steering generation. All
// matching is case-insensitive. A zero Policy disables every special case;
// DefaultPolicy covers the naming family of the grammar-inference backend.
type Policy struct {
	// DepthThreshold is the depth past which alternative selection starts
	// shrinking: self-recursive alternatives are avoided and the shorter
	// half of the candidates is sampled.
	DepthThreshold int

	// AtomNames are atomic-expression rules, expanded to an identifier,
	// number, string or parenthesized sub-expression with AtomWeights.
	AtomNames []string

	// AtomWeights are the relative weights for the four atomic-expression
	// shapes, in the order identifier, number, string, parenthesized.
	AtomWeights [4]int

	// ExprNames name the rule a parenthesized sub-expression recurses
	// into. The first one defined in the grammar wins, else the start rule.
	ExprNames []string

	// TailSuffixes and OptPrefixes name right-recursive continuation
	// rules, which default to the empty string once the depth bound is hit.
	TailSuffixes []string
	OptPrefixes  []string

	// EmptySuffixes additionally map to the empty string in the
	// unknown-non-terminal fallback table.
	EmptySuffixes []string

	// StmtNames and StmtListNames form the statement pair: when a grammar
	// defines both, generation produces a short multi-line program.
	StmtNames     []string
	StmtListNames []string

	// Lexical-class terminal names.
	IdentNames  []string
	NumberNames []string
	StringNames []string

	// IdentPool are the base names identifier synthesis draws from.
	IdentPool []string
}

// DefaultPolicy returns the conventions of the inference backend's grammar
// family.
func DefaultPolicy() Policy {
	return Policy{
		DepthThreshold: 3,
		AtomNames:      []string{"Factor", "Atom", "Primary"},
		AtomWeights:    [4]int{40, 30, 15, 15},
		ExprNames:      []string{"Expr", "Expression", "E"},
		TailSuffixes:   []string{"Tail", "Rest"},
		OptPrefixes:    []string{"Opt"},
		EmptySuffixes:  []string{"List"},
		StmtNames:      []string{"Stmt", "Statement"},
		StmtListNames:  []string{"StmtList", "Stmts", "StatementList"},
		IdentNames:     []string{"ID", "Ident", "Identifier"},
		NumberNames:    []string{"NUM", "Number", "Int"},
		StringNames:    []string{"STR", "String"},
		IdentPool:      []string{"x", "y", "z", "foo", "bar", "tmp", "n", "i", "acc", "val"},
	}
}

func (p Policy) isAtom(name string) bool {
	return equalFoldAny(name, p.AtomNames)
}

func (p Policy) isTail(name string) bool {
	return hasSuffixFoldAny(name, p.TailSuffixes) || hasPrefixFoldAny(name, p.OptPrefixes)
}

// emptyFallback reports whether an undefined non-terminal of this name
// defaults to the empty string.
func (p Policy) emptyFallback(name string) bool {
	return p.isTail(name) || hasSuffixFoldAny(name, p.EmptySuffixes)
}

func (p Policy) classOf(name string) lexClass {
	switch {
	case equalFoldAny(name, p.IdentNames):
		return lexIdent
	case equalFoldAny(name, p.NumberNames):
		return lexNumber
	case equalFoldAny(name, p.StringNames):
		return lexString
	}
	return lexNone
}

// statementPair returns the grammar's statement and statement-list rules,
// or empty strings when the grammar defines no such pair.
func (p Policy) statementPair(g *cfg.Grammar) (stmt string, list string) {
	for _, name := range g.Defined() {
		if stmt == "" && equalFoldAny(name, p.StmtNames) {
			stmt = name
		}
		if list == "" && equalFoldAny(name, p.StmtListNames) {
			list = name
		}
	}
	if stmt == "" || list == "" {
		return "", ""
	}
	return stmt, list
}

// exprEntry resolves the rule a parenthesized sub-expression recurses into.
func (p Policy) exprEntry(g *cfg.Grammar) string {
	for _, name := range g.Defined() {
		if equalFoldAny(name, p.ExprNames) {
			return name
		}
	}
	return g.Start()
}

func equalFoldAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(name, c) {
			return true
		}
	}
	return false
}

func hasSuffixFoldAny(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if len(name) > len(s) && strings.HasSuffix(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func hasPrefixFoldAny(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, s := range prefixes {
		if len(name) > len(s) && strings.HasPrefix(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
