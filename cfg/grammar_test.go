package cfg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromStringBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString(`
// a small expression grammar
start: E;
E -> T E2
E2 -> '+' T E2 | ε
T -> 'id'
`)
	if g.Start() != "E" {
		t.Errorf("start symbol = %q, want E", g.Start())
	}
	if g.Size() != 4 {
		t.Errorf("got %d productions, want 4", g.Size())
	}
	if def := g.Defined(); len(def) != 3 || def[0] != "E" || def[1] != "E2" || def[2] != "T" {
		t.Errorf("defined = %v, want [E E2 T]", def)
	}
	alts := g.AlternativesOf("E2")
	if len(alts) != 2 {
		t.Fatalf("E2 has %d alternatives, want 2", len(alts))
	}
	if !alts[1].IsEpsilon() {
		t.Errorf("second alternative of E2 should be epsilon, is %v", alts[1])
	}
	terms := g.Terminals()
	if len(terms) != 2 || terms[0] != "'+'" || terms[1] != "'id'" {
		t.Errorf("terminals = %v, want ['+' 'id']", terms)
	}
}

func TestFromStringDefaultStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString("A -> b\nB -> c")
	if g.Start() != "A" {
		t.Errorf("default start should be the first defined non-terminal, got %q", g.Start())
	}
	g = FromString("start: B;\nA -> b\nB -> c\nstart: A;")
	if g.Start() != "A" {
		t.Errorf("later start declarations should win, got %q", g.Start())
	}
}

func TestFromStringTolerance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString(`
A -> b
this line is noise without an arrow
%% $$ complete garbage
# a comment
A b c d
B -> 'x'
`)
	if g.Size() != 2 {
		t.Errorf("noise lines should be skipped, got %d productions", g.Size())
	}
	if !g.IsDefined("A") || !g.IsDefined("B") {
		t.Errorf("defined = %v", g.Defined())
	}
}

func TestFromStringEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString("")
	if !g.IsEmpty() {
		t.Errorf("grammar from empty input should be empty")
	}
	if g.Start() != "" {
		t.Errorf("empty grammar has no start symbol, got %q", g.Start())
	}
	if diagLen := len(g.Productions()); diagLen != 0 {
		t.Errorf("empty grammar has %d productions", diagLen)
	}
}

func TestFromStringTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	// notations ending their rules with ';' are tolerated
	g := FromString("Program -> StmtList;\nStmtList -> Stmt ';' StmtList | Stmt | ε;")
	p, ok := g.FirstProductionOf("Program")
	if !ok || len(p.RHS) != 1 || p.RHS[0] != "StmtList" {
		t.Errorf("trailing semicolon should be dropped, RHS = %v", p.RHS)
	}
	alts := g.AlternativesOf("StmtList")
	if len(alts) != 3 {
		t.Fatalf("StmtList has %d alternatives, want 3", len(alts))
	}
	if rhs := alts[0].RHS; len(rhs) != 3 || rhs[1] != "';'" {
		t.Errorf("quoted semicolon must stay a terminal, RHS = %v", rhs)
	}
	if !alts[2].IsEpsilon() {
		t.Errorf("expected epsilon alternative, got %v", alts[2])
	}
}

func TestFromStringTrailingComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString("E -> E '+' T | T        // left recursion example (flagged)")
	alts := g.AlternativesOf("E")
	if len(alts) != 2 {
		t.Fatalf("E has %d alternatives, want 2", len(alts))
	}
	if rhs := alts[1].RHS; len(rhs) != 1 || rhs[0] != "T" {
		t.Errorf("trailing comment leaked into the RHS: %v", rhs)
	}
	if g.IsUsed("//") {
		t.Errorf("comment text must not register as used symbols")
	}
}

func TestProductionLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString("start: S;\nS -> a\nT -> b")
	p, _ := g.FirstProductionOf("S")
	if p.Line != 1 {
		t.Errorf("S is declared on line 1 (0-based), got %d", p.Line)
	}
	p, _ = g.FirstProductionOf("T")
	if p.Line != 2 {
		t.Errorf("T is declared on line 2 (0-based), got %d", p.Line)
	}
}

func TestSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	a := FromString("A -> b c")
	b := FromString("  A   ->   b   c  ")
	if a.Signature() == "" {
		t.Fatalf("signature should not be empty")
	}
	if a.Signature() != b.Signature() {
		t.Errorf("whitespace variants should share a signature")
	}
	c := FromString("A -> b d")
	if a.Signature() == c.Signature() {
		t.Errorf("different grammars should not share a signature")
	}
}

func TestUsedSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString("S -> A 'x' b\nA -> S")
	used := g.Used()
	if strings.Join(used, " ") != "A S" {
		t.Errorf("used = %v, want [A S]", used)
	}
	if g.IsUsed("b") {
		t.Errorf("terminals do not belong to the used set")
	}
}
