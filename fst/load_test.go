package fst

import (
	"reflect"
	"testing"
)

func TestParseSymbolsTable(t *testing.T) {
	data := []byte("(ev[NN]\t983040\n(iyi[JJ]\t983041\n")
	symtab, err := parseSymbolsTable(data)
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := symtab.Index("(ev[NN]")
	if !ok || idx != 983040 {
		t.Errorf("Index((ev[NN]) = %d, %v, want 983040, true", idx, ok)
	}
	label, ok := symtab.Label(983041)
	if !ok || label != "(iyi[JJ]" {
		t.Errorf("Label(983041) = %q, %v, want (iyi[JJ], true", label, ok)
	}
}

func TestParseTextFSTSimpleChain(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.Add("(ev[NN]", ComplexSymbolStart)

	// Mirrors fstcompile.BuildTextFST's arcs for a single rule
	// START -> NN labeled ((ev[NN], ev): the input side is padded with one
	// epsilon so each surface byte gets its own arc (0 -> 1 -> 2), then an
	// epsilon/epsilon arc into NN (3). NN is made the final state here, since
	// this one-rule fixture has no ACCEPT.
	text := "0\t1\t(ev[NN]\te\n" +
		"1\t2\t<eps>\tv\n" +
		"2\t3\t<eps>\t<eps>\n" +
		"3\n"
	model, err := parseTextFST([]byte(text), symtab)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Final[3] {
		t.Errorf("expected state 3 final")
	}

	chain := bytesChain("ev")
	ArcSortByOutput(chain)
	composed := Compose(chain, model)
	if composed.Empty() {
		t.Fatal("expected 'ev' to be accepted")
	}
	out, err := EnumeratePaths(composed, OutputTape, symtab)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"(ev[NN]"}) {
		t.Errorf("output = %v, want [(ev[NN]]", out)
	}
}

func TestParseTextFSTMultiByteRuneExpansion(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.Add("(şey[NN]", ComplexSymbolStart)

	// A single arc line whose surface column is the two-byte rune "ş"
	// must expand into two single-byte ILabel arcs.
	text := "0\t1\t(şey[NN]\tş\n1\n"
	model, err := parseTextFST([]byte(text), symtab)
	if err != nil {
		t.Fatal(err)
	}
	if model.NumStates() < 3 {
		t.Fatalf("expected an intermediate state for the 2-byte rune, got %d states", model.NumStates())
	}

	chain := bytesChain("ş")
	ArcSortByOutput(chain)
	composed := Compose(chain, model)
	if composed.Empty() {
		t.Fatal("expected 'ş' to be accepted")
	}
	out, err := EnumeratePaths(composed, OutputTape, symtab)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"(şey[NN]"}) {
		t.Errorf("output = %v, want [(şey[NN]]", out)
	}
}
