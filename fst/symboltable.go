package fst

import (
	"fmt"
	"unicode/utf8"
)

// ComplexSymbolStart mirrors fstcompile.ComplexSymbolStart: the first
// index assigned to a multi-rune complex symbol, the start of Unicode's
// Supplementary Private Use Area-A.
const ComplexSymbolStart = 0xF0000

// SymbolTable is the runtime lookup for complex (multi-rune) output-tape
// symbols, loaded from the compiler's complex-symbols-table artifact.
// Single-rune and epsilon symbols never appear here: their index is the
// symbol's own code point (for single runes) or 0 (epsilon), computed
// directly without a table lookup — see Label.
type SymbolTable struct {
	indexToLabel map[int]string
	labelToIndex map[string]int
}

// NewSymbolTable builds an empty table; Add populates it.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		indexToLabel: make(map[int]string),
		labelToIndex: make(map[string]int),
	}
}

// Add records a complex symbol's index, as read from the complex symbols
// table file.
func (t *SymbolTable) Add(label string, index int) {
	t.indexToLabel[index] = label
	t.labelToIndex[label] = index
}

// Index returns the index of a complex (len(label) > 1) label.
func (t *SymbolTable) Index(label string) (int, bool) {
	idx, ok := t.labelToIndex[label]
	return idx, ok
}

// Label renders the output-tape symbol at idx: a single-rune literal for
// idx in [1, ComplexSymbolStart), or a complex-symbols-table lookup for
// idx >= ComplexSymbolStart. Returns false for epsilon or an unknown index.
func (t *SymbolTable) Label(idx int) (string, bool) {
	if idx == Epsilon {
		return "", false
	}
	if idx < ComplexSymbolStart {
		return string(rune(idx)), true
	}
	label, ok := t.indexToLabel[idx]
	return label, ok
}

// Resolve looks up an analysis-side token as generate needs it: a
// single-rune literal resolves to its own code point (RuneIndex), and a
// multi-rune token resolves through the complex symbols table. Returns
// false if a multi-rune token has no entry in the table.
func (t *SymbolTable) Resolve(label string) (int, bool) {
	if utf8.RuneCountInString(label) == 1 {
		r, _ := utf8.DecodeRuneInString(label)
		return RuneIndex(r), true
	}
	return t.Index(label)
}

// RuneIndex is the output-tape symbol index of a single-rune literal token
// (a bare digit or a punctuation symbol like '(' , '.', ',') that never
// makes it into the complex symbols table because its label length is 1.
func RuneIndex(r rune) int {
	return int(r)
}

func (t *SymbolTable) String() string {
	return fmt.Sprintf("SymbolTable{%d complex symbols}", len(t.indexToLabel))
}
