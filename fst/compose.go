package fst

import "sort"

// ArcSortByOutput sorts every state's outgoing arcs by OLabel in place.
// Compose below matches arcs by scanning every pair, so it gives the same
// paths whether or not its inputs are sorted; sorting only changes the
// order of arcs in the result. Analyze sorts the byte chain it builds
// before composing; Generate composes with the shared model, which
// LoadFiles sorts once at load, and leaves its token chain unsorted.
func ArcSortByOutput(f *FST) {
	for _, arcs := range f.Arcs {
		sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].OLabel < arcs[j].OLabel })
	}
}

// Compose produces the standard FST composition of a and b: a's output
// tape is matched against b's input tape, and the result's input/output
// tapes are a's input tape and b's output tape respectively. Epsilon arcs
// on either side advance that side alone. The inputs to this system are
// acyclic by construction, so the naive (unfiltered) epsilon handling
// below cannot loop; it can occasionally reach the same product state by
// more than one epsilon path, which is harmless here since every caller
// deduplicates or only needs one representative output.
//
// If no path from the composed start state to an accepting state exists,
// the result has Start == -1, matching an OpenFst compose that connects
// and trims its result down to nothing.
func Compose(a, b *FST) *FST {
	if a.Empty() || b.Empty() {
		return &FST{Start: -1}
	}

	type pair struct{ a, b int }

	result := &FST{}
	indexOf := make(map[pair]int)
	var order []pair

	stateFor := func(p pair) int {
		if idx, ok := indexOf[p]; ok {
			return idx
		}
		idx := result.addState()
		indexOf[p] = idx
		order = append(order, p)
		result.Final[idx] = a.Final[p.a] && b.Final[p.b]
		return idx
	}

	start := pair{a.Start, b.Start}
	result.Start = stateFor(start)

	for i := 0; i < len(order); i++ {
		p := order[i]
		from := indexOf[p]

		for _, arcA := range a.Arcs[p.a] {
			if arcA.OLabel == Epsilon {
				to := stateFor(pair{arcA.To, p.b})
				result.addArc(from, Arc{To: to, ILabel: arcA.ILabel, OLabel: Epsilon})
			}
		}

		for _, arcB := range b.Arcs[p.b] {
			if arcB.ILabel == Epsilon {
				to := stateFor(pair{p.a, arcB.To})
				result.addArc(from, Arc{To: to, ILabel: Epsilon, OLabel: arcB.OLabel})
			}
		}

		for _, arcA := range a.Arcs[p.a] {
			if arcA.OLabel == Epsilon {
				continue
			}
			for _, arcB := range b.Arcs[p.b] {
				if arcB.ILabel != arcA.OLabel {
					continue
				}
				to := stateFor(pair{arcA.To, arcB.To})
				result.addArc(from, Arc{To: to, ILabel: arcA.ILabel, OLabel: arcB.OLabel})
			}
		}
	}

	return trim(result)
}

// trim keeps only states that are both reachable from the start state and
// coaccessible (able to reach some final state), renumbering what remains.
// A start state that fails either test yields the empty FST (Start: -1).
func trim(f *FST) *FST {
	n := f.NumStates()
	reachable := reachableFrom(f, f.Start)

	reverse := make([][]int, n)
	for s := 0; s < n; s++ {
		for _, a := range f.Arcs[s] {
			reverse[a.To] = append(reverse[a.To], s)
		}
	}

	coaccessible := make([]bool, n)
	var stack []int
	for s := 0; s < n; s++ {
		if f.Final[s] {
			coaccessible[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !coaccessible[p] {
				coaccessible[p] = true
				stack = append(stack, p)
			}
		}
	}

	if f.Start < 0 || !reachable[f.Start] || !coaccessible[f.Start] {
		return &FST{Start: -1}
	}

	keep := make([]bool, n)
	newIndex := make([]int, n)
	for i := range newIndex {
		newIndex[i] = -1
	}

	out := &FST{}
	for s := 0; s < n; s++ {
		keep[s] = reachable[s] && coaccessible[s]
		if keep[s] {
			newIndex[s] = out.addState()
			out.Final[newIndex[s]] = f.Final[s]
		}
	}
	for s := 0; s < n; s++ {
		if !keep[s] {
			continue
		}
		for _, a := range f.Arcs[s] {
			if keep[a.To] {
				out.addArc(newIndex[s], Arc{To: newIndex[a.To], ILabel: a.ILabel, OLabel: a.OLabel})
			}
		}
	}
	out.Start = newIndex[f.Start]
	return out
}

func reachableFrom(f *FST, start int) []bool {
	seen := make([]bool, f.NumStates())
	if start < 0 {
		return seen
	}
	stack := []int{start}
	seen[start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.Arcs[s] {
			if !seen[a.To] {
				seen[a.To] = true
				stack = append(stack, a.To)
			}
		}
	}
	return seen
}
