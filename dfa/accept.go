package dfa

// Accepts decides membership in linear time: walk the DFA one character
// at a time from the initial state; an undefined transition rejects
// immediately. That happens in a partial DFA and, even in a DFA made
// total by the subset construction's dead-state policy, for any
// character outside the DFA's alphabet. Acceptance never fails: every
// well-formed DFA returns a boolean for any string.
func (d *DFA) Accepts(word string) bool {
	state, ok := d.Initial()
	if !ok {
		return false
	}
	for _, c := range word {
		next, ok := d.Step(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}
