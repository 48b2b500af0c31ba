package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/gramtools/gram"
)

// The classic LL(1) textbook grammar:
//
//     E  -> T E2
//     E2 -> '+' T E2 | ε
//     T  -> 'id'
//
// nullable = {E2}, FIRST(E) = FIRST(T) = {'id'}, FIRST(E2) = {'+', ε},
// FOLLOW(E) = FOLLOW(E2) = {$}, FOLLOW(T) = {'+', $}.
const classicGrammar = `
start: E;
E -> T E2
E2 -> '+' T E2 | ε
T -> 'id'
`

func TestAnalyzeClassicGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	ga := Analyze(FromString(classicGrammar))
	if nullable := ga.Nullable(); len(nullable) != 1 || nullable[0] != "E2" {
		t.Errorf("nullable = %v, want [E2]", nullable)
	}
	first := map[string]string{
		"E":  "{ 'id' }",
		"T":  "{ 'id' }",
		"E2": "{ ε '+' }",
	}
	for n, want := range first {
		if got := SetString(ga.First(n)); got != want {
			t.Errorf("FIRST(%s) = %s, want %s", n, got, want)
		}
	}
	follow := map[string]string{
		"E":  "{ $ }",
		"E2": "{ $ }",
		"T":  "{ $ '+' }",
	}
	for n, want := range follow {
		if got := SetString(ga.Follow(n)); got != want {
			t.Errorf("FOLLOW(%s) = %s, want %s", n, got, want)
		}
	}
}

func TestAnalyzeIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	g := FromString(classicGrammar)
	ga1 := Analyze(g)
	ga2 := Analyze(g)
	for _, n := range g.Defined() {
		if SetString(ga1.First(n)) != SetString(ga2.First(n)) {
			t.Errorf("FIRST(%s) differs between runs", n)
		}
		if SetString(ga1.Follow(n)) != SetString(ga2.Follow(n)) {
			t.Errorf("FOLLOW(%s) differs between runs", n)
		}
		if ga1.IsNullable(n) != ga2.IsNullable(n) {
			t.Errorf("nullability of %s differs between runs", n)
		}
	}
}

func TestAnalyzeEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	ga := Analyze(FromString(""))
	if len(ga.Nullable()) != 0 {
		t.Errorf("empty grammar has no nullable non-terminals")
	}
	if s := ga.First("X"); s == nil || !s.Empty() {
		t.Errorf("FIRST of an unknown symbol should be an empty set")
	}
	if s := ga.Follow("X"); s == nil || !s.Empty() {
		t.Errorf("FOLLOW of an unknown symbol should be an empty set")
	}
}

func TestAnalyzeNullableChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	// A is nullable only through the chain A -> B C with both nullable
	ga := Analyze(FromString(`
A -> B C
B -> ε
C -> epsilon
D -> 'x'
`))
	for _, n := range []string{"A", "B", "C"} {
		if !ga.IsNullable(n) {
			t.Errorf("%s should be nullable", n)
		}
	}
	if ga.IsNullable("D") {
		t.Errorf("D should not be nullable")
	}
	if got := SetString(ga.First("A")); got != "{ ε }" {
		t.Errorf("FIRST(A) = %s, want { ε }", got)
	}
}

func TestFirstOfString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	ga := Analyze(FromString(classicGrammar))
	fs := ga.FirstOfString([]string{"E2", "T"})
	if !fs.Contains("'+'") || !fs.Contains("'id'") {
		t.Errorf("FIRST(E2 T) = %s, want both '+' and 'id'", SetString(fs))
	}
	if fs.Contains(gram.EpsilonSymbol) {
		t.Errorf("E2 T is not nullable, FIRST must not contain ε")
	}
	fs = ga.FirstOfString(nil)
	if !fs.Contains(gram.EpsilonSymbol) {
		t.Errorf("FIRST of the empty string is { ε }")
	}
}

func TestAnalyzeUndefinedStopsFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	// B is undefined: FIRST(B) stays empty and is not nullable, so
	// nothing past it contributes to FIRST(A).
	ga := Analyze(FromString("A -> B 'x'"))
	if got := SetString(ga.First("A")); got != "{ }" {
		t.Errorf("FIRST(A) = %s, want { }", got)
	}
}
