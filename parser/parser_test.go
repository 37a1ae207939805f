package parser

import (
	"testing"

	"github.com/go-rexa/rexa/ast"
)

func TestParseBasics(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"ab", "ab"},
		{"a|b", "a|b"},
		{"a*", "a*"},
		{"a+", "a+"},
		{"a?", "a|λ"},
		{"(a|b)c", "(a|b)c"},
		{"", "λ"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			n, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseCharClasses(t *testing.T) {
	n, err := Parse(`\d`)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	cc, ok := n.(ast.CharClass)
	if !ok {
		t.Fatalf("got %T, want ast.CharClass", n)
	}
	if len(cc.Set) != 10 {
		t.Errorf("\\d has %d members, want 10", len(cc.Set))
	}

	n, err = Parse(`\w`)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	cc, ok = n.(ast.CharClass)
	if !ok {
		t.Fatalf("got %T, want ast.CharClass", n)
	}
	if len(cc.Set) != 63 {
		t.Errorf("\\w has %d members, want 63", len(cc.Set))
	}
}

func TestParseBracketClass(t *testing.T) {
	n, err := Parse("[a-c]")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	cc, ok := n.(ast.CharClass)
	if !ok {
		t.Fatalf("got %T, want ast.CharClass", n)
	}
	for _, c := range []rune{'a', 'b', 'c'} {
		if !cc.Set[c] {
			t.Errorf("[a-c] missing %q", c)
		}
	}
	if len(cc.Set) != 3 {
		t.Errorf("[a-c] has %d members, want 3", len(cc.Set))
	}
}

func TestParseEmptyBracketClassIsEmpty(t *testing.T) {
	n, err := Parse("[]")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if _, ok := n.(ast.Empty); !ok {
		t.Errorf("Parse(\"[]\") = %T, want ast.Empty", n)
	}
}

func TestParseInvertedIntervalIsSyntaxError(t *testing.T) {
	_, err := Parse("[z-a]")
	if err == nil {
		t.Fatal("Parse(\"[z-a]\") error = nil, want a SyntaxError")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("error type = %T, want *parser.Error", err)
	}
}

func TestParseRangeOperator(t *testing.T) {
	tests := []struct {
		src    string
		accept []string
		reject []string
	}{
		{"a{0,0}", []string{""}, []string{"a"}},
		{"a{2}", []string{"aa"}, []string{"", "a", "aaa"}},
		{"a{0,2}", []string{"", "a", "aa"}, []string{"aaa"}},
		{"a{1,3}", []string{"a", "aa", "aaa"}, []string{"", "aaaa"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			n, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			for _, w := range tt.accept {
				if !n.NaiveMatch(w) {
					t.Errorf("Parse(%q).NaiveMatch(%q) = false, want true", tt.src, w)
				}
			}
			for _, w := range tt.reject {
				if n.NaiveMatch(w) {
					t.Errorf("Parse(%q).NaiveMatch(%q) = true, want false", tt.src, w)
				}
			}
		})
	}
}

func TestParseOutsideBracketIntervalIsLiteralConcat(t *testing.T) {
	// Outside [...], "a-z" is three literal characters, not an interval.
	n, err := Parse("a-z")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if !n.NaiveMatch("a-z") {
		t.Errorf("Parse(\"a-z\").NaiveMatch(\"a-z\") = false, want true")
	}
	if n.NaiveMatch("a") || n.NaiveMatch("z") {
		t.Error("a-z outside brackets must not denote a character class")
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []string{
		"(a",
		"a)",
		"[a",
		"*a",
	}
	for _, src := range tests {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q) error = nil, want a SyntaxError", src)
		}
	}
}
