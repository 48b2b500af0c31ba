package gram

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// --- Symbol classification --------------------------------------------------

// SymbolKind is the lexical category of a grammar symbol.
type SymbolKind int8

// Symbols are terminals, non-terminals or the epsilon marker. The kind of a
// symbol is determined by its lexical shape alone, see KindOf.
const (
	Terminal SymbolKind = iota
	Nonterminal
	Epsilon
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Nonterminal:
		return "non-terminal"
	case Epsilon:
		return "epsilon"
	}
	return fmt.Sprintf("SymbolKind(%d)", k)
}

// EpsilonSymbol is the canonical spelling of the empty-derivation marker.
// Grammar notation may spell it "ε" or case-insensitively "epsilon".
const EpsilonSymbol = "ε"

// EOFSymbol is the end-of-input marker, an element of FOLLOW-sets.
const EOFSymbol = "$"

// KindOf classifies a single token of grammar notation.
//
// The epsilon marker is recognized first, then delimited literals (which are
// terminals regardless of case), then the uppercase-initial rule for
// non-terminals. Everything else is a terminal: lowercase identifiers,
// punctuation, operator glyphs.
func KindOf(token string) SymbolKind {
	if IsEpsilon(token) {
		return Epsilon
	}
	if IsQuoted(token) || IsPattern(token) {
		return Terminal
	}
	r, _ := utf8.DecodeRuneInString(token)
	if unicode.IsUpper(r) {
		return Nonterminal
	}
	return Terminal
}

// IsEpsilon checks for the empty-derivation marker.
func IsEpsilon(token string) bool {
	return token == EpsilonSymbol || strings.EqualFold(token, "epsilon")
}

// IsNonterminal is a shorthand for KindOf(token) == Nonterminal.
func IsNonterminal(token string) bool {
	return KindOf(token) == Nonterminal
}

// IsTerminal is a shorthand for KindOf(token) == Terminal.
func IsTerminal(token string) bool {
	return KindOf(token) == Terminal
}

// IsQuoted checks for a quoted literal terminal, i.e. '…'.
func IsQuoted(token string) bool {
	return len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\''
}

// IsPattern checks for a slash-delimited pattern literal, i.e. /…/.
func IsPattern(token string) bool {
	return len(token) >= 2 && token[0] == '/' && token[len(token)-1] == '/'
}

// --- Source ranges ----------------------------------------------------------

// Range locates a stretch of grammar source text. Lines and columns are
// 0-based; End* are exclusive. Diagnostics carry ranges in this shape, which
// maps 1:1 onto the range convention of editor protocols.
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (r Range) String() string {
	return fmt.Sprintf("(%d.%d…%d.%d)", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}
