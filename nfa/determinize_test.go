package nfa

import (
	"testing"

	"github.com/go-rexa/rexa/ast"
)

func compileAndDeterminize(t *testing.T, n ast.Node) interface {
	Accepts(string) bool
} {
	t.Helper()
	built, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile error = %v", err)
	}
	d, err := built.Determinize()
	if err != nil {
		t.Fatalf("Determinize error = %v", err)
	}
	return d
}

func TestDeterminizeUnionOfChars(t *testing.T) {
	// a|b
	n := ast.Union{A: ast.Char{C: 'a'}, B: ast.Char{C: 'b'}}
	d := compileAndDeterminize(t, n)

	for _, w := range []string{"a", "b"} {
		if !d.Accepts(w) {
			t.Errorf("Accepts(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"", "ab", "c"} {
		if d.Accepts(w) {
			t.Errorf("Accepts(%q) = true, want false", w)
		}
	}
}

func TestDeterminizeStar(t *testing.T) {
	// a*
	n := ast.Star{A: ast.Char{C: 'a'}}
	d := compileAndDeterminize(t, n)

	for _, w := range []string{"", "a", "aaaa"} {
		if !d.Accepts(w) {
			t.Errorf("Accepts(%q) = false, want true", w)
		}
	}
	if d.Accepts("b") || d.Accepts("ab") {
		t.Error("a* should reject any word containing a non-'a' character")
	}
}

func TestDeterminizeRequiresInitialState(t *testing.T) {
	n := New()
	n.AddState(false)
	if _, err := n.Determinize(); err == nil {
		t.Fatal("Determinize() error = nil, want InvalidAutomaton")
	}
}

func TestDeterminizeIsDeterministic(t *testing.T) {
	// Compiling the same pattern twice must produce a DFA with the same
	// shape: every state has at most one transition per symbol, which is
	// automatic for a *dfa.DFA, so this test asserts agreement on
	// acceptance instead.
	n := ast.Concat{A: ast.Star{A: ast.Char{C: 'a'}}, B: ast.Char{C: 'b'}}
	d1 := compileAndDeterminize(t, n)
	d2 := compileAndDeterminize(t, n)

	words := []string{"", "b", "ab", "aab", "aaab", "ba"}
	for _, w := range words {
		if d1.Accepts(w) != d2.Accepts(w) {
			t.Errorf("Accepts(%q) disagreed between two independent determinizations", w)
		}
	}
}
