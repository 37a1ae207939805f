package ast

import "testing"

func TestNaiveMatch(t *testing.T) {
	// (a|b)*c
	n := Concat{
		A: Star{A: Union{A: Char{C: 'a'}, B: Char{C: 'b'}}},
		B: Char{C: 'c'},
	}

	tests := []struct {
		word string
		want bool
	}{
		{"c", true},
		{"ac", true},
		{"bc", true},
		{"abababc", true},
		{"", false},
		{"ab", false},
		{"cc", false},
	}
	for _, tt := range tests {
		if got := n.NaiveMatch(tt.word); got != tt.want {
			t.Errorf("NaiveMatch(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestNaiveMatchEmptyAndLambda(t *testing.T) {
	if (Empty{}).NaiveMatch("") {
		t.Error("Empty should reject every word, including the empty one")
	}
	if !(Lambda{}).NaiveMatch("") {
		t.Error("Lambda should accept the empty word")
	}
	if (Lambda{}).NaiveMatch("x") {
		t.Error("Lambda should reject any non-empty word")
	}
}

func TestNaiveMatchPlusRequiresAtLeastOne(t *testing.T) {
	n := Plus{A: Char{C: 'a'}}
	if n.NaiveMatch("") {
		t.Error("Plus should reject the empty word")
	}
	if !n.NaiveMatch("a") || !n.NaiveMatch("aaa") {
		t.Error("Plus should accept one or more repetitions")
	}
}

func TestCharClassNaiveMatch(t *testing.T) {
	cc := NewCharClass([]rune{'x', 'y', 'z'})
	for _, c := range []string{"x", "y", "z"} {
		if !cc.NaiveMatch(c) {
			t.Errorf("NaiveMatch(%q) = false, want true", c)
		}
	}
	if cc.NaiveMatch("w") {
		t.Error("NaiveMatch(\"w\") = true, want false")
	}
	if cc.NaiveMatch("xy") {
		t.Error("NaiveMatch(\"xy\") = true, want false (single character only)")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		n    Node
		want string
	}{
		{"empty", Empty{}, "∅"},
		{"lambda", Lambda{}, "λ"},
		{"char", Char{C: 'a'}, "a"},
		{"concat atomic", Concat{A: Char{C: 'a'}, B: Char{C: 'b'}}, "ab"},
		{"union parenthesizes operands", Union{A: Concat{A: Char{C: 'a'}, B: Char{C: 'b'}}, B: Char{C: 'c'}}, "(ab)|c"},
		{"star parenthesizes non-atomic operand", Star{A: Union{A: Char{C: 'a'}, B: Char{C: 'b'}}}, "(a|b)*"},
		{"star of atomic operand is bare", Star{A: Char{C: 'a'}}, "a*"},
		{"plus", Plus{A: Char{C: 'a'}}, "a+"},
		{"char class renders sorted", NewCharClass([]rune{'c', 'a', 'b'}), "[abc]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
