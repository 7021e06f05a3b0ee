package fst

// CompileChain builds a single linear-path FST over the given symbol
// indices: start is state 0, one arc per symbol with identical input and
// output labels, and the state after the last symbol is final. An empty
// symbol slice yields the single-state FST that accepts only the empty
// string.
func CompileChain(symbols []int) *FST {
	f := &FST{}
	state := f.addState()
	f.Start = state
	for _, sym := range symbols {
		next := f.addState()
		f.addArc(state, Arc{To: next, ILabel: sym, OLabel: sym})
		state = next
	}
	f.Final[state] = true
	return f
}
