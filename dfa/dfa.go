package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-rexa/rexa/internal/automaton"
)

// DFA is a (total, after the subset construction's dead-state policy)
// deterministic finite automaton: at most one successor per (state,
// symbol). It shares state/final/alphabet bookkeeping with nfa.NFA
// through automaton.Base but keeps a single-valued transition table.
type DFA struct {
	automaton.Base
	trans map[automaton.StateID]map[rune]automaton.StateID
}

// New returns a DFA with no states.
func New() *DFA {
	return &DFA{
		Base:  automaton.NewBase(),
		trans: make(map[automaton.StateID]map[rune]automaton.StateID),
	}
}

// AddTransition records the (only) transition out of from on symbol.
// Adding a transition on a new symbol extends the alphabet automatically.
// It returns an *Error (InvalidAutomaton) if from or to name a state that
// was never allocated by AddState.
func (d *DFA) AddTransition(from automaton.StateID, symbol rune, to automaton.StateID) error {
	if !d.HasState(from) {
		return &Error{Message: fmt.Sprintf("AddTransition: unknown source state %d", from)}
	}
	if !d.HasState(to) {
		return &Error{Message: fmt.Sprintf("AddTransition: unknown destination state %d", to)}
	}
	if d.trans[from] == nil {
		d.trans[from] = make(map[rune]automaton.StateID)
	}
	d.trans[from][symbol] = to
	d.ExtendAlphabet(symbol)
	return nil
}

// Step returns the state reached from `from` on symbol, and whether a
// transition was defined at all. It is false for a missing transition in
// a partial DFA and for any symbol outside the alphabet; a DFA from the
// subset construction has a transition for every alphabet symbol.
func (d *DFA) Step(from automaton.StateID, symbol rune) (automaton.StateID, bool) {
	to, ok := d.trans[from][symbol]
	return to, ok
}

// Name renders a state's normalized display name, q<id>. It is only
// meaningful after Normalize, which allocates IDs 0, 1, 2, ... in
// deterministic BFS order.
func Name(id automaton.StateID) string {
	return fmt.Sprintf("q%d", id)
}

// String dumps the DFA's transition table, one line per state, in
// normalized-name order — used by the CLI's --debug flag.
func (d *DFA) String() string {
	var sb strings.Builder
	alphabet := d.Alphabet()
	states := d.States()
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	initID, _ := d.Initial()
	for _, s := range states {
		marker := " "
		if s == initID {
			marker = ">"
		}
		if d.IsFinal(s) {
			marker += "*"
		} else {
			marker += " "
		}
		fmt.Fprintf(&sb, "%s%s:", marker, Name(s))
		for _, c := range alphabet {
			if next, ok := d.Step(s, c); ok {
				fmt.Fprintf(&sb, " %q->%s", c, Name(next))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
