package cfg

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the grammar notation.
const (
	tokIdent int = iota + 1
	tokQuoted
	tokPattern
	tokArrow
	tokBar
	tokColon
	tokSemi
	tokEpsilon
	tokOp
	tokPunct
)

// token is one lexical item of a grammar line.
type token struct {
	typ    int
	lexeme string
}

func (t token) String() string {
	return fmt.Sprintf("%q:%d", t.lexeme, t.typ)
}

// notationLexer scans single lines of grammar notation. Quoted literals and
// pattern literals are one token each, which is what keeps a '|' or a blank
// inside them from being treated as structure.
var notationLexer = newNotationLexer()

func newNotationLexer() *lexmachine.Lexer {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`( |\t|\r)+`), skip)
	lexer.Add([]byte(`//[^\n]*`), skip)
	lexer.Add([]byte(`->`), match(tokArrow))
	lexer.Add([]byte(`→`), match(tokArrow))
	lexer.Add([]byte(`ε`), match(tokEpsilon))
	lexer.Add([]byte(`'[^']*'`), match(tokQuoted))
	lexer.Add([]byte(`/[^/]*/`), match(tokPattern))
	lexer.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), match(tokIdent))
	lexer.Add([]byte(`:`), match(tokColon))
	lexer.Add([]byte(`;`), match(tokSemi))
	lexer.Add([]byte(`\|`), match(tokBar))
	lexer.Add([]byte(`[-+*/%=<>!&|^~?@.]+`), match(tokOp))
	for _, lit := range []string{"(", ")", "{", "}", "[", "]", ","} {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lexer.Add([]byte(r), match(tokPunct))
	}
	if err := lexer.Compile(); err != nil {
		panic(fmt.Sprintf("cannot compile grammar notation lexer: %v", err))
	}
	return lexer
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// match is a lexer action which wraps the scanned match into a token.
func match(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// scanLine tokenizes one line of grammar notation. Lines containing input the
// lexer cannot consume yield nil: the builder skips such lines wholesale,
// which matches the tolerant-parsing policy.
func scanLine(line string) []token {
	s, err := notationLexer.Scanner([]byte(line))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return nil
	}
	var tokens []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			tracer().Debugf("unscannable grammar line skipped: %v", err)
			return nil
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, token{typ: t.Type, lexeme: string(t.Lexeme)})
	}
	return tokens
}
