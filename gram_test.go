package gram

import "testing"

func TestKindOf(t *testing.T) {
	cases := []struct {
		token string
		kind  SymbolKind
	}{
		{"Expr", Nonterminal},
		{"StmtList", Nonterminal},
		{"id", Terminal},
		{"+", Terminal},
		{"'if'", Terminal},
		{"'A'", Terminal}, // quoted literals are terminals regardless of case
		{"/[A-Z]+/", Terminal},
		{"ε", Epsilon},
		{"epsilon", Epsilon},
		{"EPSILON", Epsilon},
		{"Epsilon", Epsilon}, // epsilon check precedes the uppercase rule
		{"==", Terminal},
		{"_x", Terminal},
	}
	for _, c := range cases {
		if kind := KindOf(c.token); kind != c.kind {
			t.Errorf("KindOf(%q) = %v, want %v", c.token, kind, c.kind)
		}
	}
}

func TestLiteralPredicates(t *testing.T) {
	if !IsQuoted("'a|b'") {
		t.Errorf("expected 'a|b' to be a quoted literal")
	}
	if IsQuoted("'") {
		t.Errorf("a lone quote is not a quoted literal")
	}
	if !IsPattern("/0|[1-9][0-9]*/") {
		t.Errorf("expected a slash-delimited token to be a pattern literal")
	}
	if IsPattern("/") {
		t.Errorf("a lone slash is not a pattern literal")
	}
}
