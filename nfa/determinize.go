package nfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-rexa/rexa/dfa"
	"github.com/go-rexa/rexa/internal/automaton"
)

// Determinize runs the subset construction: ε-closure and move over sets
// of NFA states, producing a total DFA with an explicit dead state for
// the empty subset. It requires the NFA's initial state to be set;
// otherwise it returns an *Error (InvalidAutomaton).
func (n *NFA) Determinize() (*dfa.DFA, error) {
	initID, ok := n.Initial()
	if !ok {
		return nil, &Error{Message: "determinize requires an initial state"}
	}

	d := dfa.New()
	alphabet := n.Alphabet()

	type subset = map[automaton.StateID]bool
	known := make(map[string]automaton.StateID)

	start := n.closure(subset{initID: true})
	startKey := subsetKey(start)
	startID := d.AddState(n.accepting(start))
	known[startKey] = startID
	d.SetInitial(startID)

	type pending struct {
		set subset
		id  automaton.StateID
	}
	worklist := []pending{{start, startID}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, c := range alphabet {
			next := n.move(cur.set, c)
			key := subsetKey(next)
			id, seen := known[key]
			if !seen {
				id = d.AddState(n.accepting(next))
				known[key] = id
				worklist = append(worklist, pending{next, id})
			}
			if err := d.AddTransition(cur.id, c, id); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// closure computes the ε-closure of a set of NFA states via BFS.
func (n *NFA) closure(states map[automaton.StateID]bool) map[automaton.StateID]bool {
	visited := make(map[automaton.StateID]bool, len(states))
	queue := make([]automaton.StateID, 0, len(states))
	for s := range states {
		visited[s] = true
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range n.trans[s][Epsilon] {
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}
	return visited
}

// move computes ε-closure(⋃ δ(s, c)) for s in states.
func (n *NFA) move(states map[automaton.StateID]bool, c rune) map[automaton.StateID]bool {
	union := make(map[automaton.StateID]bool)
	for s := range states {
		for _, t := range n.trans[s][c] {
			union[t] = true
		}
	}
	return n.closure(union)
}

// accepting reports whether a subset of NFA states intersects the NFA's
// finals, i.e. whether the corresponding DFA state should be final.
func (n *NFA) accepting(states map[automaton.StateID]bool) bool {
	for s := range states {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}

// subsetKey builds a stable, content-based identity for a set of NFA
// states — the sorted state IDs joined into a string — so that the
// worklist in Determinize terminates instead of re-exploring the same
// subset.
func subsetKey(states map[automaton.StateID]bool) string {
	ids := make([]automaton.StateID, 0, len(states))
	for s := range states {
		ids = append(ids, s)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "%d,", id)
	}
	return sb.String()
}
