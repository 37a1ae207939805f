package nfa

import (
	"github.com/go-rexa/rexa/internal/automaton"
)

// Epsilon is the sentinel symbol for an ε-transition. It is negative so
// it can never collide with a valid rune, and it is never added to the
// automaton's alphabet: AddTransition only calls ExtendAlphabet for real
// symbols.
const Epsilon rune = -1

// NFA is a nondeterministic finite automaton with ε-transitions. It
// shares the state/final/alphabet bookkeeping in automaton.Base and adds
// its own multi-valued, epsilon-aware transition table.
type NFA struct {
	automaton.Base
	trans map[automaton.StateID]map[rune][]automaton.StateID
}

// New returns an NFA with no states.
func New() *NFA {
	return &NFA{
		Base:  automaton.NewBase(),
		trans: make(map[automaton.StateID]map[rune][]automaton.StateID),
	}
}

// AddTransition records a transition from -> to on symbol, which may be
// Epsilon. Adding a transition on a real symbol extends the alphabet
// automatically; Epsilon never does.
func (n *NFA) AddTransition(from automaton.StateID, symbol rune, to automaton.StateID) {
	if n.trans[from] == nil {
		n.trans[from] = make(map[rune][]automaton.StateID)
	}
	n.trans[from][symbol] = append(n.trans[from][symbol], to)
	if symbol != Epsilon {
		n.ExtendAlphabet(symbol)
	}
}

// Transitions returns the states reachable from `from` directly on
// symbol (no closure applied).
func (n *NFA) Transitions(from automaton.StateID, symbol rune) []automaton.StateID {
	return n.trans[from][symbol]
}
