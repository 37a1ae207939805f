package dfa

import "github.com/go-rexa/rexa/internal/automaton"

// Normalize renames states to q0, q1, ... in deterministic order: the
// initial state first, then BFS order over the transition graph (ties
// broken by the fixed, sorted alphabet order), so that the minimized DFA
// for a given regex is structurally identical across runs.
func (d *DFA) Normalize() *DFA {
	initID, ok := d.Initial()
	if !ok {
		return New()
	}

	alphabet := d.Alphabet()
	visited := map[automaton.StateID]bool{initID: true}
	order := []automaton.StateID{initID}
	queue := []automaton.StateID{initID}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, c := range alphabet {
			next, ok := d.Step(s, c)
			if ok && !visited[next] {
				visited[next] = true
				order = append(order, next)
				queue = append(queue, next)
			}
		}
	}
	// Append any state unreachable from initial, in its original
	// insertion order, so Normalize never silently drops a state.
	for _, s := range d.States() {
		if !visited[s] {
			visited[s] = true
			order = append(order, s)
		}
	}

	res := New()
	idMap := make(map[automaton.StateID]automaton.StateID, len(order))
	for _, s := range order {
		idMap[s] = res.AddState(d.IsFinal(s))
	}
	res.SetInitial(idMap[initID])
	for _, s := range order {
		for _, c := range alphabet {
			if next, ok := d.Step(s, c); ok {
				if err := res.AddTransition(idMap[s], c, idMap[next]); err != nil {
					panic(err)
				}
			}
		}
	}
	return res
}
