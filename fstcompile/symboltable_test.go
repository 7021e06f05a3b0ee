package fstcompile

import (
	"sort"
	"testing"

	"github.com/anlamtek/turkmorph/rule"
)

func TestComplexSymbolsTableDenseAndSorted(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "(ev[NN]+[PersonNumber=A3sg]", Output: "ev"},
		{FromState: "START", ToState: "NN", Input: "(araba[NN]", Output: "araba"},
	}
	table := ComplexSymbolsTable(rules)

	if len(table) == 0 {
		t.Fatal("expected at least one complex symbol")
	}
	labels := make([]string, len(table))
	for i, s := range table {
		labels[i] = s.Label
		if s.Index != ComplexSymbolStart+i {
			t.Errorf("table[%d].Index = %d, want %d", i, s.Index, ComplexSymbolStart+i)
		}
	}
	if !sort.StringsAreSorted(labels) {
		t.Errorf("labels not sorted: %v", labels)
	}

	for _, l := range labels {
		if len([]rune(l)) <= 1 {
			t.Errorf("single-rune symbol %q leaked into complex table", l)
		}
		if l == Epsilon {
			t.Errorf("epsilon leaked into complex table")
		}
	}
}

func TestComplexSymbolsTableNoDuplicateIndices(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "(ev[NN]+[PersonNumber=A3sg]", Output: "ev"},
		{FromState: "START", ToState: "NN", Input: "(ev[NN]+[PersonNumber=A3sg]", Output: "ev"},
	}
	table := ComplexSymbolsTable(rules)
	seen := make(map[int]bool)
	for _, s := range table {
		if seen[s.Index] {
			t.Errorf("duplicate index %d", s.Index)
		}
		seen[s.Index] = true
	}
}
