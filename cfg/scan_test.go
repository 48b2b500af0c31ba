package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lexemes(tokens []token) []string {
	l := make([]string, len(tokens))
	for i, t := range tokens {
		l[i] = t.lexeme
	}
	return l
}

func TestScanLineShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	cases := []struct {
		line string
		want []string
	}{
		{"A -> B c | d", []string{"A", "->", "B", "c", "|", "d"}},
		{"start: S;", []string{"start", ":", "S", ";"}},
		{"E → E '+' T", []string{"E", "→", "E", "'+'", "T"}},
		{"X -> ε", []string{"X", "->", "ε"}},
		{"N -> /0|[1-9][0-9]*/", []string{"N", "->", "/0|[1-9][0-9]*/"}},
		{"S -> '(' S ')'", []string{"S", "->", "'('", "S", "')'"}},
		{"C -> a == b", []string{"C", "->", "a", "==", "b"}},
		{"M -> a - b", []string{"M", "->", "a", "-", "b"}},
		{"D -> i -- j", []string{"D", "->", "i", "--", "j"}},
		{"E -> T // trailing note", []string{"E", "->", "T"}},
		{"P -> '//not a comment' x", []string{"P", "->", "'//not a comment'", "x"}},
	}
	for _, c := range cases {
		tokens := scanLine(c.line)
		got := lexemes(tokens)
		if len(got) != len(c.want) {
			t.Errorf("scanLine(%q) = %v, want %v", c.line, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("scanLine(%q)[%d] = %q, want %q", c.line, i, got[i], c.want[i])
			}
		}
	}
}

func TestScanLineQuoteSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	tokens := scanLine("A -> 'a|b' | 'x y'")
	got := lexemes(tokens)
	want := []string{"A", "->", "'a|b'", "|", "'x y'"}
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	if tokens[2].typ != tokQuoted || tokens[2].lexeme != "'a|b'" {
		t.Errorf("embedded '|' split a quoted literal: %v", got)
	}
	if tokens[4].lexeme != "'x y'" {
		t.Errorf("embedded blank split a quoted literal: %v", got)
	}
}

func TestScanLineStructuralBar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.cfg")
	defer teardown()
	//
	// a lone bar is structure, a doubled bar is an operator terminal
	tokens := scanLine("A -> a | b || c")
	bars, ops := 0, 0
	for _, tok := range tokens {
		switch tok.typ {
		case tokBar:
			bars++
		case tokOp:
			ops++
		}
	}
	if bars != 1 {
		t.Errorf("expected exactly 1 alternation bar, got %d", bars)
	}
	if ops != 1 {
		t.Errorf("expected '||' to scan as one operator token, got %d", ops)
	}
}
