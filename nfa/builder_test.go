package nfa

import "testing"

// buildChar is a standalone helper mirroring compileChar, used so these
// tests don't depend on the ast/compile wiring.
func buildChar(c rune) *NFA {
	n := New()
	q0 := n.AddState(false)
	q1 := n.AddState(true)
	n.SetInitial(q0)
	n.AddTransition(q0, c, q1)
	return n
}

func TestConcatKeepsOnlyBsFinals(t *testing.T) {
	a := buildChar('a')
	b := buildChar('b')
	res := Concat(a, b)

	if len(res.Finals()) != 1 {
		t.Fatalf("Concat has %d finals, want 1", len(res.Finals()))
	}
	init, _ := res.Initial()
	if res.IsFinal(init) {
		t.Error("Concat's initial state must not be final")
	}
	if res.NumStates() != 4 {
		t.Errorf("NumStates() = %d, want 4 (a's 2 + b's 2, no shared states)", res.NumStates())
	}
}

func TestUnionKeepsBothFinals(t *testing.T) {
	a := buildChar('a')
	b := buildChar('b')
	res := Union(a, b)

	if len(res.Finals()) != 2 {
		t.Errorf("Union has %d finals, want 2", len(res.Finals()))
	}
	if res.NumStates() != 5 {
		t.Errorf("NumStates() = %d, want 5 (a's 2 + b's 2 + fresh initial)", res.NumStates())
	}
}

func TestPlusLoopsFinalsBackToInitial(t *testing.T) {
	a := buildChar('a')
	aInit, _ := a.Initial()
	res := Plus(a)

	for f := range res.Finals() {
		found := false
		for _, dst := range res.Transitions(f, Epsilon) {
			if dst == aInit {
				found = true
			}
		}
		if !found {
			t.Errorf("final state %d has no epsilon transition back to initial", f)
		}
	}
}

func TestStarMakesInitialFinal(t *testing.T) {
	a := buildChar('a')
	res := Star(a)
	init, _ := res.Initial()
	if !res.IsFinal(init) {
		t.Error("Star's initial state must be final (accepts the empty word)")
	}
}

func TestMergeDisjointPreservesStateCount(t *testing.T) {
	a := buildChar('a')
	b := buildChar('b')
	res, aMap, bMap := mergeDisjoint(a, b)

	if res.NumStates() != a.NumStates()+b.NumStates() {
		t.Errorf("merged NumStates() = %d, want %d", res.NumStates(), a.NumStates()+b.NumStates())
	}
	seen := make(map[int]bool)
	for _, id := range aMap {
		seen[int(id)] = true
	}
	for _, id := range bMap {
		if seen[int(id)] {
			t.Errorf("bMap and aMap collide on state %d", id)
		}
	}
}
