package lint

import (
	"fmt"
	"strings"

	"github.com/gramtools/gram"
	"github.com/gramtools/gram/cfg"
)

// Severity grades a diagnostic.
type Severity int8

const (
	// Error marks a defect which will break consumers of the grammar.
	Error Severity = iota
	// Warning marks a defect the grammar still works with.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", s)
}

// Diagnostic is one located complaint about a grammar. Diagnostics are
// produced fresh per call and never retained.
type Diagnostic struct {
	Message  string
	Severity Severity
	Range    gram.Range
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s", d.Severity, d.Range, d.Message)
}

// declWidth is the fixed column span used for diagnostics located at a
// production's declaration line.
const declWidth = 80

// Check parses the grammar source and runs all checks. Within each check,
// diagnostics appear in production/source order; the checks themselves are
// concatenated in the order undefined, unreachable, left-recursive.
func Check(source string) []Diagnostic {
	g := cfg.FromString(source)
	lines := strings.Split(source, "\n")
	diags := make([]Diagnostic, 0, 4)
	diags = append(diags, undefined(g, lines)...)
	diags = append(diags, unreachable(g)...)
	diags = append(diags, leftRecursive(g)...)
	tracer().Debugf("%d diagnostics for grammar with %d productions", len(diags), g.Size())
	return diags
}

// undefined reports every non-terminal which occurs in a right-hand side
// but on no left-hand side. The diagnostic points at the identifier's first
// textual occurrence anywhere in the source, i.e. a plain substring scan, first
// match wins. That may hit a comment or a quoted literal; the imprecision
// is accepted.
func undefined(g *cfg.Grammar, lines []string) []Diagnostic {
	var diags []Diagnostic
	seen := map[string]struct{}{}
	for _, p := range g.Productions() {
		for _, sym := range p.RHS {
			if gram.KindOf(sym) != gram.Nonterminal || g.IsDefined(sym) {
				continue
			}
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("non-terminal '%s' is used but never defined", sym),
				Severity: Error,
				Range:    occurrenceOf(sym, lines),
			})
		}
	}
	return diags
}

// unreachable reports every defined non-terminal which no derivation from
// the start symbol can reach. Skipped for grammars without a defined
// non-terminal.
func unreachable(g *cfg.Grammar) []Diagnostic {
	defined := g.Defined()
	if len(defined) == 0 {
		return nil
	}
	visited := reach(g, g.Start())
	var diags []Diagnostic
	for _, name := range defined {
		if _, ok := visited[name]; ok {
			continue
		}
		p, ok := g.FirstProductionOf(name)
		if !ok {
			continue
		}
		diags = append(diags, Diagnostic{
			Message:  fmt.Sprintf("non-terminal '%s' is unreachable from the start symbol", name),
			Severity: Warning,
			Range:    gram.Range{StartLine: p.Line, StartCol: 0, EndLine: p.Line, EndCol: declWidth},
		})
	}
	return diags
}

// reach computes the set of non-terminals reachable from start by walking
// the rule graph with an explicit stack and a visited guard.
func reach(g *cfg.Grammar, start string) map[string]struct{} {
	visited := map[string]struct{}{}
	if start == "" {
		return visited
	}
	stack := []string{start}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}
		for _, p := range g.AlternativesOf(name) {
			for _, sym := range p.RHS {
				if gram.KindOf(sym) == gram.Nonterminal {
					stack = append(stack, sym)
				}
			}
		}
	}
	return visited
}

// leftRecursive reports every production whose right-hand side starts with
// its own left-hand symbol. Indirect and mutual left recursion is not
// detected, see the package documentation.
func leftRecursive(g *cfg.Grammar) []Diagnostic {
	var diags []Diagnostic
	for _, p := range g.Productions() {
		if len(p.RHS) == 0 || p.RHS[0] != p.LHS {
			continue
		}
		diags = append(diags, Diagnostic{
			Message:  fmt.Sprintf("rule '%s' is directly left-recursive", p.LHS),
			Severity: Error,
			Range:    gram.Range{StartLine: p.Line, StartCol: 0, EndLine: p.Line, EndCol: declWidth},
		})
	}
	return diags
}

// occurrenceOf locates the first textual occurrence of an identifier,
// scanning line by line.
func occurrenceOf(name string, lines []string) gram.Range {
	for n, line := range lines {
		if col := strings.Index(line, name); col >= 0 {
			return gram.Range{StartLine: n, StartCol: col, EndLine: n, EndCol: col + len(name)}
		}
	}
	return gram.Range{}
}
