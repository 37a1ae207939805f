package nfa

import (
	"fmt"

	"github.com/go-rexa/rexa/ast"
)

// Compile performs Thompson construction on a regex AST, returning an
// NFA with exactly one initial state. It is a straightforward fold over
// ast.Node's fixed set of variants.
func Compile(n ast.Node) (*NFA, error) {
	switch v := n.(type) {
	case ast.Empty:
		return compileEmpty(), nil
	case ast.Lambda:
		return compileLambda(), nil
	case ast.Char:
		return compileChar(v.C), nil
	case ast.CharClass:
		return compileCharClass(v.Set), nil
	case ast.Concat:
		a, err := Compile(v.A)
		if err != nil {
			return nil, err
		}
		b, err := Compile(v.B)
		if err != nil {
			return nil, err
		}
		return Concat(a, b), nil
	case ast.Union:
		a, err := Compile(v.A)
		if err != nil {
			return nil, err
		}
		b, err := Compile(v.B)
		if err != nil {
			return nil, err
		}
		return Union(a, b), nil
	case ast.Star:
		a, err := Compile(v.A)
		if err != nil {
			return nil, err
		}
		return Star(a), nil
	case ast.Plus:
		a, err := Compile(v.A)
		if err != nil {
			return nil, err
		}
		return Plus(a), nil
	default:
		return nil, fmt.Errorf("nfa: unrecognized AST node %T", n)
	}
}

// compileEmpty builds the one-state, no-final NFA denoting ∅.
func compileEmpty() *NFA {
	n := New()
	s := n.AddState(false)
	n.SetInitial(s)
	return n
}

// compileLambda builds the one-state NFA, both initial and final,
// denoting {ε}.
func compileLambda() *NFA {
	n := New()
	s := n.AddState(true)
	n.SetInitial(s)
	return n
}

// compileChar builds the two-state NFA denoting {c}.
func compileChar(c rune) *NFA {
	n := New()
	q0 := n.AddState(false)
	q1 := n.AddState(true)
	n.SetInitial(q0)
	n.AddTransition(q0, c, q1)
	return n
}

// compileCharClass builds the two-state NFA with one transition per
// member of set, denoting the character class's language.
func compileCharClass(set map[rune]bool) *NFA {
	n := New()
	q0 := n.AddState(false)
	q1 := n.AddState(true)
	n.SetInitial(q0)
	for c := range set {
		n.AddTransition(q0, c, q1)
	}
	return n
}
