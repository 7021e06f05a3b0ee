// Package fstcompile implements the FST compiler: it merges lexicon and
// morphotactics rewrite rules, deduplicates them, tokenizes every rule's
// labels into FST symbols, and emits a complex-symbols table plus an
// AT&T-format text FST.
package fstcompile

import (
	"regexp"

	"github.com/anlamtek/turkmorph/morphotactics"
)

// Epsilon is the empty-symbol token used on both tapes.
const Epsilon = morphotactics.Epsilon

// symbolsPattern tokenizes a rule's complex input label into FST symbols.
// Transcribed from model_compile.py's _SYMBOLS_REGEX: the character classes
// written [A-z] in the source are intentionally wider than [A-Za-z] (they
// also match '[', '\', ']', '^', '_', '`') and are preserved verbatim per
// the design note on regex dependence; [^\W\d_]-style Unicode word-letter
// classes are translated to \p{L} since these labels carry Turkish letters
// and Go's \w is ASCII-only.
var symbolsPattern = `\(.+?\[[A-Z.,:()'\-"` + "`" + `$]+?\]|` +
	`\)\(\[[A-Z]+?\]|` +
	`-(?:\p{L}|')+?\[[A-z]+?=[A-z]+?\]|` +
	`\+(?:\p{L}|['.])*?\[[A-z]+?=[A-z0-9]+?\]|` +
	`\)\+\[Proper=(?:True|False)\]|` +
	`\d+(?:\[[A-Z]+?\])?|` +
	`[(.,]`

var symbolsRegexp = regexp.MustCompile(symbolsPattern)

// SymbolsOfInput tokenizes a rule's input label into FST symbols: [label]
// for epsilon, one symbol per digit for bare multi-digit numbers, else the
// symbols-regex tokenization.
func SymbolsOfInput(label string) []string {
	if label == Epsilon {
		return []string{label}
	}
	if !containsBracket(label) {
		return splitChars(label)
	}
	return symbolsRegexp.FindAllString(label, -1)
}

// SymbolsOfOutput tokenizes a rule's output label into FST symbols: [label]
// for epsilon, else one symbol per character.
func SymbolsOfOutput(label string) []string {
	if label == Epsilon {
		return []string{label}
	}
	return splitChars(label)
}

func containsBracket(s string) bool {
	for _, r := range s {
		if r == '[' {
			return true
		}
	}
	return false
}

func splitChars(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
