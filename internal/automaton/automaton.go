// Package automaton holds the state/transition bookkeeping shared by the
// nfa and dfa packages: a set of states, an optional initial state, a set
// of final states, and an alphabet. NFA and DFA differ only in how they
// shape their transition tables, so that part lives in each package.
package automaton

import "sort"

// StateID uniquely identifies a state within a single automaton. IDs are
// never reused and are not meaningful across automata — see the
// disjoint-merge protocol in the nfa package for combining automata.
type StateID uint32

// InvalidState is the sentinel StateID returned alongside a false ok
// result, e.g. by Base.Initial on an automaton that has not had its
// initial state set yet.
const InvalidState StateID = ^StateID(0)

// Base is the common shape of an NFA or a DFA: states, an initial state,
// final states, and an alphabet. It owns no transitions — each embedding
// type tracks those in the representation that suits it (an NFA needs a
// symbol-or-epsilon keyed multimap, a DFA a single-valued map).
type Base struct {
	next    StateID
	order   []StateID // insertion order; normalization walks states in this order
	finals  map[StateID]bool
	initial StateID
	hasInit bool
	alpha   map[rune]bool
}

// NewBase returns an empty automaton base with no states.
func NewBase() Base {
	return Base{
		finals: make(map[StateID]bool),
		alpha:  make(map[rune]bool),
	}
}

// AddState allocates a fresh state, optionally marking it final, and
// returns its ID.
func (b *Base) AddState(final bool) StateID {
	id := b.next
	b.next++
	b.order = append(b.order, id)
	if final {
		b.finals[id] = true
	}
	return id
}

// SetInitial marks id as the automaton's initial state. Per the data
// model, this must happen at most once per automaton lifetime; calling it
// twice is a programmer error and panics rather than returning an error,
// since it can only be triggered by a bug in a combinator, not by user
// input.
func (b *Base) SetInitial(id StateID) {
	if b.hasInit {
		panic("automaton: initial state already set")
	}
	b.initial = id
	b.hasInit = true
}

// Initial returns the initial state and whether one has been set. If
// none has been set it returns InvalidState, false.
func (b *Base) Initial() (StateID, bool) {
	if !b.hasInit {
		return InvalidState, false
	}
	return b.initial, true
}

// MarkFinal adds id to the set of final states.
func (b *Base) MarkFinal(id StateID) {
	b.finals[id] = true
}

// IsFinal reports whether id is a final state.
func (b *Base) IsFinal(id StateID) bool {
	return b.finals[id]
}

// Finals returns the set of final states.
func (b *Base) Finals() map[StateID]bool {
	return b.finals
}

// States returns every state ID in insertion order. The returned slice is
// owned by the caller.
func (b *Base) States() []StateID {
	out := make([]StateID, len(b.order))
	copy(out, b.order)
	return out
}

// NumStates returns the number of states.
func (b *Base) NumStates() int {
	return len(b.order)
}

// ExtendAlphabet records c as a member of the automaton's alphabet.
// Epsilon transitions must never be passed here — the nfa package tracks
// epsilon moves outside the alphabet, extending it only for real symbols.
func (b *Base) ExtendAlphabet(c rune) {
	b.alpha[c] = true
}

// Alphabet returns the automaton's alphabet, sorted for deterministic
// iteration order (used by minimization, which must process symbols in a
// fixed order to get deterministic class labels).
func (b *Base) Alphabet() []rune {
	out := make([]rune, 0, len(b.alpha))
	for c := range b.alpha {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasState reports whether id names a state that has actually been
// allocated by AddState. IDs are handed out sequentially starting at 0
// and never reused, so this holds for exactly the allocated prefix.
func (b *Base) HasState(id StateID) bool {
	return id < b.next
}
