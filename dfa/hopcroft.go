package dfa

import "github.com/go-rexa/rexa/internal/automaton"

// stateSet is a set of DFA states. Hopcroft's algorithm needs to tell
// apart two sets with identical contents but distinct identity (a
// partition block currently in the worklist vs. one that was just split
// off it), so partitions and the worklist below are tracked as slices of
// *stateSet and compared by pointer, not by content.
type stateSet map[automaton.StateID]bool

// MinimizeHopcroft runs Hopcroft's partition-refinement algorithm. It
// must produce a DFA isomorphic (up to state naming) to Minimize's
// result for the same input.
func (d *DFA) MinimizeHopcroft() *DFA {
	alphabet := d.Alphabet()
	states := d.States()

	final := stateSet{}
	nonFinal := stateSet{}
	for _, s := range states {
		if d.IsFinal(s) {
			final[s] = true
		} else {
			nonFinal[s] = true
		}
	}

	var P []*stateSet
	if len(final) > 0 {
		P = append(P, &final)
	}
	if len(nonFinal) > 0 {
		P = append(P, &nonFinal)
	}

	W := append([]*stateSet{}, P...)

	for len(W) > 0 {
		A := W[len(W)-1]
		W = W[:len(W)-1]

		for _, c := range alphabet {
			X := stateSet{}
			for _, s := range states {
				if next, ok := d.Step(s, c); ok && (*A)[next] {
					X[s] = true
				}
			}
			if len(X) == 0 {
				continue
			}

			var newP []*stateSet
			for _, Y := range P {
				inter := intersectSets(*Y, X)
				diff := differenceSets(*Y, X)
				if len(inter) == 0 || len(diff) == 0 {
					newP = append(newP, Y)
					continue
				}

				interSet, diffSet := inter, diff
				newP = append(newP, &interSet, &diffSet)

				if idx := indexOfSet(W, Y); idx >= 0 {
					W[idx] = &interSet
					W = append(W, &diffSet)
				} else if len(interSet) <= len(diffSet) {
					W = append(W, &interSet)
				} else {
					W = append(W, &diffSet)
				}
			}
			P = newP
		}
	}

	return buildFromPartition(d, P, alphabet)
}

func intersectSets(a, b stateSet) stateSet {
	out := stateSet{}
	for s := range a {
		if b[s] {
			out[s] = true
		}
	}
	return out
}

func differenceSets(a, b stateSet) stateSet {
	out := stateSet{}
	for s := range a {
		if !b[s] {
			out[s] = true
		}
	}
	return out
}

func indexOfSet(list []*stateSet, target *stateSet) int {
	for i, s := range list {
		if s == target {
			return i
		}
	}
	return -1
}

// buildFromPartition collapses each partition block to one state,
// picking a deterministic representative (the block member that appears
// earliest in the original DFA's state order).
func buildFromPartition(d *DFA, P []*stateSet, alphabet []rune) *DFA {
	owner := make(map[automaton.StateID]*stateSet, d.NumStates())
	for _, part := range P {
		for s := range *part {
			owner[s] = part
		}
	}

	var order []*stateSet
	rep := make(map[*stateSet]automaton.StateID)
	for _, s := range d.States() {
		part := owner[s]
		if _, ok := rep[part]; !ok {
			rep[part] = s
			order = append(order, part)
		}
	}

	res := New()
	partID := make(map[*stateSet]automaton.StateID, len(order))
	for _, part := range order {
		partID[part] = res.AddState(d.IsFinal(rep[part]))
	}

	initID, _ := d.Initial()
	res.SetInitial(partID[owner[initID]])

	for _, part := range order {
		s := rep[part]
		for _, c := range alphabet {
			if next, ok := d.Step(s, c); ok {
				if err := res.AddTransition(partID[part], c, partID[owner[next]]); err != nil {
					panic(err)
				}
			}
		}
	}

	return res.Normalize()
}
