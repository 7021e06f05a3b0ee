// Package fst is the FST runtime: a small operational layer over a loaded
// transducer exposing chain compilation from a symbol sequence,
// arc-sorting, composition, and DFS enumeration of label sequences on a
// chosen tape.
//
// Label convention. A rewrite rule's input_label (the analysis string,
// tokenized by the complex "symbols regex" into multi-rune tokens) and its
// output_label (the surface spelling, tokenized rune-by-rune) are emitted
// by fstcompile as the third and fourth columns of every text-FST arc line,
// in that literal order ("FROM TO INPUT OUTPUT"). The compiled machine
// runs over byte-level input symbols and a mixed alphabet of byte and
// complex-token output symbols — the only tape assignment under which
// analyze (compose a byte chain with the model and read the model's
// output tape) and generate (compose the model with a complex-token chain
// and read the model's input tape) both typecheck. So Load assigns the
// fourth column (the surface spelling) to this package's ILabel (the
// model's input/byte tape) and the third column (the analysis string) to
// OLabel (the model's output/complex tape) — the reverse of the text
// format's column order. See DESIGN.md's "Tape-direction resolution".
package fst

// Epsilon is the symbol table index of the empty symbol.
const Epsilon = 0

// Arc is one state transition: an (ilabel, olabel) symbol pair leading to
// state To. Weight is always 0, so it is not represented.
type Arc struct {
	To     int
	ILabel int
	OLabel int
}

// FST is a runtime transducer: a start state, a per-state final flag, and a
// per-state adjacency list of outgoing arcs. Start is -1 for the empty
// (no-accepting-path) transducer, the sentinel Compose returns when no path
// from start to an accepting state exists.
type FST struct {
	Start int
	Final []bool
	Arcs  [][]Arc
}

// NumStates reports the number of states in f.
func (f *FST) NumStates() int {
	return len(f.Arcs)
}

// Empty reports whether f has no accepting path from its start state.
func (f *FST) Empty() bool {
	return f.Start < 0
}

// addState appends a fresh state and returns its index.
func (f *FST) addState() int {
	f.Arcs = append(f.Arcs, nil)
	f.Final = append(f.Final, false)
	return len(f.Arcs) - 1
}

// addArc appends an outgoing arc from state `from`.
func (f *FST) addArc(from int, a Arc) {
	f.Arcs[from] = append(f.Arcs[from], a)
}

// Tape selects which side of a transducer's arcs EnumeratePaths reads.
type Tape int

const (
	// InputTape reads each arc's ILabel (the byte/surface tape).
	InputTape Tape = iota
	// OutputTape reads each arc's OLabel (the complex/analysis tape).
	OutputTape
)
