// Package nfa builds Thompson-style NFAs with ε-transitions from a regex
// AST and determinizes them into DFAs via the subset construction.
package nfa

import "fmt"

// Error represents an InvalidAutomaton condition: a request the NFA
// cannot satisfy because of a missing invariant, e.g. determinizing an
// NFA with no initial state set. This is always a programmer error, not
// a user-facing one, since Compile always produces an NFA with its
// initial state set.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid automaton: %s", e.Message)
}
