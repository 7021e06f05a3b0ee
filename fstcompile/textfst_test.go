package fstcompile

import (
	"testing"

	"github.com/anlamtek/turkmorph/rule"
)

func TestBuildTextFSTStartsAtZero(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "ev", Output: "ev"},
	}
	fst := BuildTextFST(rules)
	if len(fst.Arcs) == 0 {
		t.Fatal("expected arcs")
	}
	if fst.Arcs[0].From != 0 {
		t.Errorf("first arc From = %d, want 0 (START)", fst.Arcs[0].From)
	}
}

func TestBuildTextFSTPadsShorterSide(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "(ev[NN]+[PersonNumber=A3sg]", Output: "ev"},
	}
	fst := BuildTextFST(rules)

	inputSymbols := SymbolsOfInput(rules[0].Input)
	outputSymbols := SymbolsOfOutput(rules[0].Output)
	maxLen := len(inputSymbols)
	if len(outputSymbols) > maxLen {
		maxLen = len(outputSymbols)
	}
	// one arc per padded symbol pair plus the final epsilon arc into ToState.
	if len(fst.Arcs) != maxLen+1 {
		t.Errorf("len(Arcs) = %d, want %d", len(fst.Arcs), maxLen+1)
	}

	last := fst.Arcs[len(fst.Arcs)-1]
	if last.Input != Epsilon || last.Output != Epsilon {
		t.Errorf("final arc = %+v, want epsilon/epsilon", last)
	}
}

func TestBuildTextFSTDeterministic(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "ev", Output: "ev"},
		{FromState: "START", ToState: "JJ", Input: "iyi", Output: "iyi"},
	}
	a := BuildTextFST(rules)
	b := BuildTextFST(rules)
	if a.Format() != b.Format() {
		t.Errorf("compilation is not deterministic for identical inputs")
	}
}

func TestBuildTextFSTAcceptIsFinalLine(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "ACCEPT", Input: "<eps>", Output: "<eps>"},
	}
	fst := BuildTextFST(rules)
	formatted := fst.Format()
	if formatted == "" {
		t.Fatal("empty FST output")
	}
	// the accept index must equal ToState's resolved index for the only rule.
	if fst.Arcs[len(fst.Arcs)-1].To != fst.Accept {
		t.Errorf("accept state %d does not match final arc's To %d", fst.Accept, fst.Arcs[len(fst.Arcs)-1].To)
	}
}
