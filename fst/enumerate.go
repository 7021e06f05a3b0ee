package fst

import (
	"fmt"
	"strings"
)

// EnumeratePaths performs a DFS from f's start state to every accepting
// state, yielding the joined symbol string of each distinct path on the
// chosen tape. Epsilon arcs contribute nothing. Order among
// siblings follows f's own arc order (output-label order for a loaded
// model, which LoadFiles arc-sorts, or construction order for a
// chain/composed FST); the public analyze/
// generate APIs are responsible for any further sorting or dedup.
func EnumeratePaths(f *FST, tape Tape, symtab *SymbolTable) ([]string, error) {
	if f.Empty() {
		return nil, nil
	}

	var out []string
	var walkErr error

	var walk func(state int, labels []int)
	walk = func(state int, labels []int) {
		if walkErr != nil {
			return
		}
		if f.Final[state] {
			s, err := renderLabels(tape, symtab, labels)
			if err != nil {
				walkErr = err
				return
			}
			out = append(out, s)
		}
		for _, a := range f.Arcs[state] {
			label := a.ILabel
			if tape == OutputTape {
				label = a.OLabel
			}
			next := labels
			if label != Epsilon {
				next = make([]int, len(labels)+1)
				copy(next, labels)
				next[len(labels)] = label
			}
			walk(a.To, next)
		}
	}

	walk(f.Start, nil)
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

func renderLabels(tape Tape, symtab *SymbolTable, labels []int) (string, error) {
	if tape == InputTape {
		buf := make([]byte, 0, len(labels))
		for _, l := range labels {
			if l < 1 || l > 255 {
				return "", fmt.Errorf("fst: invalid input-tape byte label %d", l)
			}
			buf = append(buf, byte(l))
		}
		return string(buf), nil
	}

	var b strings.Builder
	for _, l := range labels {
		sym, ok := symtab.Label(l)
		if !ok {
			return "", fmt.Errorf("fst: unknown output-tape symbol index %d", l)
		}
		b.WriteString(sym)
	}
	return b.String(), nil
}
