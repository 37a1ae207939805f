// Package dfa implements deterministic finite automata: construction,
// acceptance, state normalization, and two independent minimizers —
// Moore-style equivalence refinement and Hopcroft's algorithm — that
// always agree on the resulting language.
package dfa

import "fmt"

// Error represents an InvalidAutomaton condition raised by this package,
// e.g. a transition inserted against a state the automaton does not
// know about. Like nfa.Error, this is always a programmer error, never a
// user-facing one.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid automaton: %s", e.Message)
}
