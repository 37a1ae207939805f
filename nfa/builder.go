package nfa

import "github.com/go-rexa/rexa/internal/automaton"

// mergeDisjoint copies every state and transition of a and b into a
// fresh NFA under disjoint state IDs, by shifting integer IDs rather
// than prefixing string names. Copied states are never marked final;
// callers reconstruct finality from the combinator's own semantics using
// the returned ID maps, since e.g. Concat's result must NOT keep a's
// original finals as final states.
func mergeDisjoint(a, b *NFA) (res *NFA, aMap, bMap map[automaton.StateID]automaton.StateID) {
	res = New()
	aMap = make(map[automaton.StateID]automaton.StateID, a.NumStates())
	bMap = make(map[automaton.StateID]automaton.StateID, b.NumStates())

	for _, s := range a.States() {
		aMap[s] = res.AddState(false)
	}
	for _, s := range b.States() {
		bMap[s] = res.AddState(false)
	}

	copyTransitions(res, a, aMap)
	copyTransitions(res, b, bMap)
	return res, aMap, bMap
}

func copyTransitions(dst *NFA, src *NFA, idMap map[automaton.StateID]automaton.StateID) {
	for from, bySymbol := range src.trans {
		nf := idMap[from]
		for symbol, tos := range bySymbol {
			for _, to := range tos {
				dst.AddTransition(nf, symbol, idMap[to])
			}
		}
	}
}

// Concat builds the NFA for a followed by b: merge under disjoint
// names, route every final of a to b's initial via ε, and keep only
// b's finals as final. a and b must not be reused by the caller
// afterward.
func Concat(a, b *NFA) *NFA {
	res, aMap, bMap := mergeDisjoint(a, b)

	aInit, _ := a.Initial()
	bInit, _ := b.Initial()
	res.SetInitial(aMap[aInit])

	for f := range a.Finals() {
		res.AddTransition(aMap[f], Epsilon, bMap[bInit])
	}
	for f := range b.Finals() {
		res.MarkFinal(bMap[f])
	}
	return res
}

// Union builds the NFA for a or b: a fresh initial state ε-branches to
// both operands' initial states; finals are the union of both operands'
// finals.
func Union(a, b *NFA) *NFA {
	res, aMap, bMap := mergeDisjoint(a, b)

	aInit, _ := a.Initial()
	bInit, _ := b.Initial()
	ini := res.AddState(false)
	res.AddTransition(ini, Epsilon, aMap[aInit])
	res.AddTransition(ini, Epsilon, bMap[bInit])
	res.SetInitial(ini)

	for f := range a.Finals() {
		res.MarkFinal(aMap[f])
	}
	for f := range b.Finals() {
		res.MarkFinal(bMap[f])
	}
	return res
}

// Plus mutates a in place into the NFA for one-or-more repetitions: an
// ε-transition is added from every final back to the initial state. The
// caller must not reuse a as a standalone NFA after this call; a itself
// is returned for chaining.
func Plus(a *NFA) *NFA {
	aInit, _ := a.Initial()
	for f := range a.Finals() {
		a.AddTransition(f, Epsilon, aInit)
	}
	return a
}

// Star mutates a in place into the NFA for zero-or-more repetitions:
// Plus(a), then the initial state is also made final so the empty word
// is accepted.
func Star(a *NFA) *NFA {
	res := Plus(a)
	aInit, _ := res.Initial()
	res.MarkFinal(aInit)
	return res
}
