package fstcompile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anlamtek/turkmorph/rule"
)

// ComplexSymbolStart is the first index assigned to a complex (multi-rune)
// symbol: the start of Unicode's Supplementary Private Use Area-A.
const ComplexSymbolStart = 0xF0000

// Symbol is one row of the complex symbols table.
type Symbol struct {
	Label string
	Index int
}

// ComplexSymbolsTable collects the union of every rule's input and output
// symbols, drops epsilon, keeps only multi-rune labels, sorts them
// lexicographically, and assigns dense indices starting at
// ComplexSymbolStart.
func ComplexSymbolsTable(rules []rule.Rule) []Symbol {
	unique := make(map[string]struct{})
	for _, r := range rules {
		for _, s := range SymbolsOfInput(r.Input) {
			unique[s] = struct{}{}
		}
		for _, s := range SymbolsOfOutput(r.Output) {
			unique[s] = struct{}{}
		}
	}

	var complex []string
	for s := range unique {
		if s == Epsilon {
			continue
		}
		if len([]rune(s)) > 1 {
			complex = append(complex, s)
		}
	}
	sort.Strings(complex)

	table := make([]Symbol, len(complex))
	for i, s := range complex {
		table[i] = Symbol{Label: s, Index: ComplexSymbolStart + i}
	}
	return table
}

// FormatSymbolsTable renders a complex symbols table as TSV lines
// ("SYMBOL\tINDEX\n").
func FormatSymbolsTable(table []Symbol) string {
	var b strings.Builder
	for _, s := range table {
		fmt.Fprintf(&b, "%s\t%d\n", s.Label, s.Index)
	}
	return b.String()
}
