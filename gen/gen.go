package gen

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/gramtools/gram"
	"github.com/gramtools/gram/cfg"
)

// DefaultMaxDepth is the expansion depth used when a caller passes a
// negative one.
const DefaultMaxDepth = 6

// DefaultStart is the start-symbol name used when a caller passes "".
const DefaultStart = "start"

// Generate parses the grammar source and derives one example sentence from
// it, expanding from the named start symbol down to at most maxDepth
// nested expansions. start == "" means DefaultStart, maxDepth < 0 means
// DefaultMaxDepth. The randomness is time-seeded; use a Generator for
// reproducible output.
//
// Generate returns a best-effort string for every input, including an
// empty or unparseable grammar.
func Generate(grammarText string, start string, maxDepth int) string {
	g := NewGenerator(cfg.FromString(grammarText), DefaultPolicy(), nil)
	return g.Sentence(start, maxDepth)
}

// Generator derives sentences from a single grammar. It is not safe for
// concurrent use (the random source is stateful); create one per goroutine.
type Generator struct {
	g      *cfg.Grammar
	policy Policy
	rng    *rand.Rand
}

// NewGenerator creates a Generator over a grammar. A nil rng is replaced by
// a time-seeded one; pass rand.New(rand.NewSource(seed)) for reproducible
// sentences.
func NewGenerator(g *cfg.Grammar, policy Policy, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Generator{g: g, policy: policy, rng: rng}
}

// Sentence derives one example sentence. If the grammar defines a
// statement/statement-list pair, the result is a short program of 2–4
// statement lines; otherwise a single expansion of the resolved start
// symbol.
func (gen *Generator) Sentence(start string, maxDepth int) string {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	if start == "" {
		start = DefaultStart
	}
	if stmt, list := gen.policy.statementPair(gen.g); stmt != "" && list != "" {
		tracer().Debugf("grammar has statement pair %s/%s, sampling a program", stmt, list)
		return gen.program(stmt, maxDepth)
	}
	return postprocess(gen.expand(gen.resolveStart(start), 0, maxDepth))
}

// program samples 2–4 statements, each on its own line and each closed by
// a statement terminator.
func (gen *Generator) program(stmt string, maxDepth int) string {
	n := 2 + gen.rng.Intn(3)
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s := postprocess(gen.expand(stmt, 0, maxDepth))
		if s == "" {
			s = postprocess(gen.synthStatement())
		}
		if !strings.HasSuffix(s, ";") {
			s += ";"
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// resolveStart maps a requested start-symbol name onto the grammar:
// a case-insensitive match among the defined non-terminals wins, then the
// grammar's own start symbol, then the name itself as a fallback literal.
func (gen *Generator) resolveStart(name string) string {
	for _, d := range gen.g.Defined() {
		if strings.EqualFold(d, name) {
			return d
		}
	}
	if s := gen.g.Start(); s != "" {
		return s
	}
	return name
}

// expand recursively derives a string for one symbol. Every path through
// this function terminates: terminals and epsilon return immediately, and
// non-terminals stop expanding once depth exceeds maxDepth.
func (gen *Generator) expand(sym string, depth, maxDepth int) string {
	switch gram.KindOf(sym) {
	case gram.Epsilon:
		return ""
	case gram.Terminal:
		return gen.terminal(sym)
	}
	if cls := gen.policy.classOf(sym); cls != lexNone {
		return gen.synthClass(cls)
	}
	if gen.policy.isAtom(sym) {
		return gen.atom(depth, maxDepth)
	}
	alts := gen.g.AlternativesOf(sym)
	if len(alts) == 0 {
		return gen.fallbackToken(sym)
	}
	if depth > maxDepth {
		if gen.policy.isTail(sym) {
			return ""
		}
		return gen.fallbackToken(sym)
	}
	alt := gen.choose(sym, alts, depth)
	parts := make([]string, 0, len(alt.RHS))
	for _, s := range alt.RHS {
		parts = append(parts, gen.expand(s, depth+1, maxDepth))
	}
	return strings.Join(parts, " ")
}

// terminal spells out a terminal symbol: quoted literals lose their quotes
// unconditionally, pattern literals get a representative token, bare
// lexical-class names get a synthesized value, anything else stands for
// itself.
func (gen *Generator) terminal(sym string) string {
	if gram.IsQuoted(sym) {
		return sym[1 : len(sym)-1]
	}
	if gram.IsPattern(sym) {
		return gen.synthPattern(sym[1 : len(sym)-1])
	}
	if cls := gen.policy.classOf(sym); cls != lexNone {
		return gen.synthClass(cls)
	}
	return sym
}

// atom expands an atomic-expression rule: identifier, number, string or a
// parenthesized sub-expression, weighted per the policy. A parenthesized
// result that turns out trivial (a bare identifier, number or string) is
// discarded in favor of a plain identifier or number, since "(x)" carries no
// structure worth keeping.
func (gen *Generator) atom(depth, maxDepth int) string {
	w := gen.policy.AtomWeights
	total := w[0] + w[1] + w[2] + w[3]
	if total <= 0 {
		return gen.synthIdent()
	}
	r := gen.rng.Intn(total)
	switch {
	case r < w[0]:
		return gen.synthIdent()
	case r < w[0]+w[1]:
		return gen.synthNumber()
	case r < w[0]+w[1]+w[2]:
		return gen.synthString()
	}
	entry := gen.policy.exprEntry(gen.g)
	if entry == "" || depth >= maxDepth {
		return gen.identOrNumber()
	}
	inner := strings.TrimSpace(gen.expand(entry, depth+1, maxDepth))
	if inner == "" || isTrivial(inner) {
		return gen.identOrNumber()
	}
	return "( " + inner + " )"
}

// choose picks one alternative for a non-terminal. Non-epsilon
// alternatives are preferred whenever any exist. Below the depth threshold
// the pick is uniform; past it, alternatives that immediately recurse into
// the same non-terminal are avoided and the pick is made uniformly among
// the shorter half of the remaining candidates, biasing generation towards
// quick termination.
func (gen *Generator) choose(name string, alts []cfg.Production, depth int) cfg.Production {
	cands := make([]cfg.Production, 0, len(alts))
	for _, a := range alts {
		if !a.IsEpsilon() {
			cands = append(cands, a)
		}
	}
	if len(cands) == 0 {
		cands = append(cands, alts...)
	}
	if depth <= gen.policy.DepthThreshold {
		return cands[gen.rng.Intn(len(cands))]
	}
	nonrec := make([]cfg.Production, 0, len(cands))
	for _, a := range cands {
		if len(a.RHS) == 0 || a.RHS[0] != name {
			nonrec = append(nonrec, a)
		}
	}
	if len(nonrec) > 0 {
		cands = nonrec
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return len(cands[i].RHS) < len(cands[j].RHS)
	})
	half := (len(cands) + 1) / 2
	return cands[gen.rng.Intn(half)]
}

// fallbackToken synthesizes a minimal stand-in for a non-terminal that has
// no usable alternatives (undefined, or depth exceeded). The mapping is
// name-sensitive: continuation-like names vanish, statement-like names get
// a statement shape, expression-like names a number, everything else an
// identifier.
func (gen *Generator) fallbackToken(name string) string {
	p := gen.policy
	switch {
	case p.emptyFallback(name):
		return ""
	case containsFold(name, "stmt") || containsFold(name, "statement"):
		return gen.synthStatement()
	case containsFold(name, "expr") || containsFold(name, "term") ||
		containsFold(name, "num") || containsFold(name, "int"):
		return gen.synthNumber()
	}
	return gen.synthIdent()
}

// --- Terminal-value synthesis ----------------------------------------------

func (gen *Generator) synthClass(cls lexClass) string {
	switch cls {
	case lexIdent:
		return gen.synthIdent()
	case lexNumber:
		return gen.synthNumber()
	case lexString:
		return gen.synthString()
	}
	return "x"
}

func (gen *Generator) synthIdent() string {
	pool := gen.policy.IdentPool
	if len(pool) == 0 {
		return "x"
	}
	name := pool[gen.rng.Intn(len(pool))]
	if gen.rng.Intn(4) == 0 {
		name += strconv.Itoa(gen.rng.Intn(10))
	}
	return name
}

func (gen *Generator) synthNumber() string {
	return strconv.Itoa(gen.rng.Intn(100))
}

func (gen *Generator) synthString() string {
	return fmt.Sprintf("%q", "s"+strconv.Itoa(gen.rng.Intn(10)))
}

func (gen *Generator) synthStatement() string {
	return gen.synthIdent() + " = " + gen.synthNumber() + " ;"
}

func (gen *Generator) identOrNumber() string {
	if gen.rng.Intn(2) == 0 {
		return gen.synthIdent()
	}
	return gen.synthNumber()
}

// synthPattern derives a representative token from a pattern literal's
// body by peeking at its character classes.
func (gen *Generator) synthPattern(body string) string {
	switch {
	case strings.ContainsAny(body, `"'`):
		return gen.synthString()
	case strings.Contains(body, "A-Z") || strings.Contains(body, "a-z"):
		return gen.synthIdent()
	case strings.Contains(body, "0-9") || strings.Contains(body, `\d`) ||
		strings.ContainsAny(body, "0123456789"):
		return gen.synthNumber()
	}
	return "x"
}

// --- Output post-processing -------------------------------------------------

var (
	wsRun       = regexp.MustCompile(`\s+`)
	beforeClose = regexp.MustCompile(` +([)\]}.,;:])`)
	afterOpen   = regexp.MustCompile(`([(\[{]) +`)
	parenAtom   = regexp.MustCompile(`\(\s*([A-Za-z_][A-Za-z0-9_]*|[0-9]+|"[^"]*"|'[^']*')\s*\)`)
)

// postprocess normalizes an expanded sentence: whitespace runs collapse,
// spaces hugging brackets and punctuation disappear, and parentheses left
// around a single atomic token by lower-level expansions are stripped.
// Parentheses directly following an identifier are kept, as they read like
// a call rather than redundant grouping.
func postprocess(s string) string {
	s = wsRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = beforeClose.ReplaceAllString(s, "$1")
	s = afterOpen.ReplaceAllString(s, "$1")
	return stripAtomParens(s)
}

// stripAtomParens removes "(atom)" groups, innermost first, skipping
// call-like ones.
func stripAtomParens(s string) string {
	for {
		changed := false
		var b strings.Builder
		last := 0
		for _, m := range parenAtom.FindAllStringSubmatchIndex(s, -1) {
			if callLike(s, m[0]) {
				continue
			}
			b.WriteString(s[last:m[0]])
			b.WriteString(s[m[2]:m[3]])
			last = m[1]
			changed = true
		}
		if !changed {
			return s
		}
		b.WriteString(s[last:])
		s = b.String()
	}
}

// callLike reports whether an identifier or number immediately precedes
// position i, ignoring blanks, as in "f (x)".
func callLike(s string, i int) bool {
	j := i - 1
	for j >= 0 && s[j] == ' ' {
		j--
	}
	if j < 0 {
		return false
	}
	c := s[j]
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isTrivial(s string) bool {
	if strings.ContainsAny(s, " ()") {
		return false
	}
	return parenAtom.MatchString("(" + s + ")")
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
