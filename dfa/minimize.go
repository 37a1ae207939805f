package dfa

import "github.com/go-rexa/rexa/internal/automaton"

// Minimize runs the Moore-style equivalence refinement: each state's
// label starts as "F" or "N", then every round a state's label is
// extended with the current labels of its successors (in fixed alphabet
// order), all simultaneously. Refinement stops once the number of
// distinct labels stops growing between rounds — the round-over-round
// class count is the correct termination condition, not a strict
// equality check on the label strings themselves.
func (d *DFA) Minimize() *DFA {
	alphabet := d.Alphabet()
	states := d.States()

	label := make(map[automaton.StateID]string, len(states))
	for _, s := range states {
		if d.IsFinal(s) {
			label[s] = "F"
		} else {
			label[s] = "N"
		}
	}

	numClasses := 0
	for {
		next := make(map[automaton.StateID]string, len(states))
		for _, s := range states {
			row := label[s]
			for _, c := range alphabet {
				if succ, ok := d.Step(s, c); ok {
					row += label[succ]
				} else {
					row += "-"
				}
			}
			next[s] = row
		}

		classes := make(map[string]bool)
		for _, s := range states {
			classes[next[s]] = true
		}
		label = next

		if len(classes) == numClasses {
			break
		}
		numClasses = len(classes)
	}

	return buildFromLabels(d, label, alphabet)
}

// buildFromLabels collapses each equivalence class (a distinct label) to
// one state, using a fixed representative per class for determinism.
func buildFromLabels(d *DFA, label map[automaton.StateID]string, alphabet []rune) *DFA {
	var order []string
	rep := make(map[string]automaton.StateID)
	for _, s := range d.States() {
		l := label[s]
		if _, ok := rep[l]; !ok {
			rep[l] = s
			order = append(order, l)
		}
	}

	res := New()
	classID := make(map[string]automaton.StateID, len(order))
	for _, l := range order {
		classID[l] = res.AddState(d.IsFinal(rep[l]))
	}

	initID, _ := d.Initial()
	res.SetInitial(classID[label[initID]])

	for _, l := range order {
		s := rep[l]
		for _, c := range alphabet {
			if next, ok := d.Step(s, c); ok {
				if err := res.AddTransition(classID[l], c, classID[label[next]]); err != nil {
					panic(err)
				}
			}
		}
	}

	return res.Normalize()
}
