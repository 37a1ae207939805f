// Package rexa compiles a regex source string into a finite automaton
// and answers membership queries against it.
//
// Compilation threads the pipeline source → token stream → AST → NFA
// (with ε-transitions) → DFA (subset construction) → minimized DFA, and
// is pure: it has no global state and no external effects.
//
// Basic usage:
//
//	m, err := rexa.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Accepts("123-4567")) // true
//
// Limitations: no capture groups, backreferences, lookaround, or
// anchors; no Unicode property classes beyond \d and \w; no
// streaming/incremental matching; equivalence is obtained only by
// automaton minimization, never by regex-to-regex rewriting.
package rexa

import (
	"github.com/go-rexa/rexa/ast"
	"github.com/go-rexa/rexa/dfa"
	"github.com/go-rexa/rexa/nfa"
	"github.com/go-rexa/rexa/parser"
)

// Matcher wraps a minimized DFA compiled from a regex source string.
// Matching is read-only, so a *Matcher may be shared and called
// concurrently from multiple goroutines with no coordination.
type Matcher struct {
	source string
	ast    ast.Node
	dfa    *dfa.DFA
}

// Compile runs the full pipeline — lex, parse, Thompson-construct,
// determinize, minimize — and returns a Matcher wrapping the minimized
// DFA. Minimization uses Hopcroft's algorithm by default; see
// CompileMoore to select the Moore-style refinement instead (the two are
// verified against each other in this package's tests).
//
// Compile returns the first *parser.Error (SyntaxError) or *lexer.Error
// (LexError) encountered.
func Compile(source string) (*Matcher, error) {
	return compile(source, true)
}

// CompileMoore is Compile, but minimizes with the Moore-style
// equivalence-class refinement instead of Hopcroft's algorithm. Both
// minimizers are correct and produce isomorphic results; this variant
// exists so callers (and this package's tests) can pick either one
// explicitly and cross-check them against each other.
func CompileMoore(source string) (*Matcher, error) {
	return compile(source, false)
}

func compile(source string, hopcroft bool) (*Matcher, error) {
	root, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	n, err := nfa.Compile(root)
	if err != nil {
		return nil, err
	}

	d, err := n.Determinize()
	if err != nil {
		return nil, err
	}

	var min *dfa.DFA
	if hopcroft {
		min = d.MinimizeHopcroft()
	} else {
		min = d.Minimize()
	}

	return &Matcher{source: source, ast: root, dfa: min}, nil
}

// MustCompile is like Compile but panics if source is not a valid
// pattern. Intended for patterns known to be valid at compile time, e.g.
// package-level variables.
func MustCompile(source string) *Matcher {
	m, err := Compile(source)
	if err != nil {
		panic("rexa: Compile(" + source + "): " + err.Error())
	}
	return m
}

// Accepts decides membership of word in the language denoted by the
// compiled pattern, in time linear in len(word).
func (m *Matcher) Accepts(word string) bool {
	return m.dfa.Accepts(word)
}

// NaiveMatch re-decides membership by direct recursive evaluation of the
// AST, bypassing the DFA entirely. It exists so tests can assert the two
// pipelines agree; it is not meant for production use, since it can take
// exponential time in len(word).
func (m *Matcher) NaiveMatch(word string) bool {
	return m.ast.NaiveMatch(word)
}

// String returns the source text used to compile the Matcher.
func (m *Matcher) String() string {
	return m.source
}

// DebugDFA renders the minimized DFA's transition table, used by the CLI
// --debug flag.
func (m *Matcher) DebugDFA() string {
	return m.dfa.String()
}

// DebugAST renders the parsed AST, used by the CLI --debug flag.
func (m *Matcher) DebugAST() string {
	return m.ast.String()
}
