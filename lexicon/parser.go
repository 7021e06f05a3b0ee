package lexicon

import (
	"strings"

	"github.com/anlamtek/turkmorph/rule"
	"github.com/anlamtek/turkmorph/tagcatalog"
	"github.com/anlamtek/turkmorph/turkcase"
)

// normalized is an Entry after Tag/IsCompound/Root/Morphophonemics/Features
// have all been normalized, plus the boolean form of IsCompound.
type normalized struct {
	Tag             string
	Root            string
	Morphophonemics string
	Features        string
	IsCompound      bool
}

func formatRoot(root, tag string) string {
	switch tagcatalog.Formattings[tag] {
	case tagcatalog.Upper:
		return turkcase.Upper(root)
	case tagcatalog.Capitals:
		return turkcase.Capitalize(root)
	default:
		return turkcase.Lower(root)
	}
}

func normalizeEntry(e Entry) normalized {
	tag := strings.ToUpper(e.Tag)
	n := normalized{
		Tag:        tag,
		IsCompound: strings.ToLower(e.IsCompound) == "true",
	}
	n.Root = formatRoot(e.Root, tag)
	n.Morphophonemics = e.Morphophonemics
	if n.Morphophonemics == "~" {
		n.Morphophonemics = ""
	}
	n.Features = e.Features
	if n.Features == "~" {
		n.Features = ""
	}
	return n
}

var circumflexPlain = map[rune]rune{'â': 'a', 'î': 'i', 'û': 'u'}

func hasCircumflex(s string) bool {
	for _, r := range s {
		if _, ok := circumflexPlain[r]; ok {
			return true
		}
	}
	return false
}

func stripCircumflex(s string) string {
	var b strings.Builder
	for _, r := range s {
		if plain, ok := circumflexPlain[r]; ok {
			b.WriteRune(plain)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeAll normalizes every entry and appends a plain-letter duplicate
// for every entry whose root contains a circumflex vowel. Duplicates are
// appended after every original has been normalized, mirroring the order the
// source iterates in.
func normalizeAll(entries []Entry) []normalized {
	normalizedEntries := make([]normalized, 0, len(entries))
	for _, e := range entries {
		normalizedEntries = append(normalizedEntries, normalizeEntry(e))
	}
	original := append([]normalized(nil), normalizedEntries...)
	for _, n := range original {
		if hasCircumflex(n.Root) {
			dup := n
			dup.Root = stripCircumflex(n.Root)
			dup.Morphophonemics = stripCircumflex(n.Morphophonemics)
			normalizedEntries = append(normalizedEntries, dup)
		}
	}
	return normalizedEntries
}

// newFeatures computes the features a cross-classified copy should carry,
// per the sentinel/schema-equality rules in the tag catalog.
func newFeatures(oldFeatures, oldTag, newTag string) string {
	if newTag == tagcatalog.NompCaseBare {
		return tagcatalog.NompCaseBareFeatures
	}

	oldRequired := tagcatalog.RequiredFeatures[oldTag]
	newRequired := tagcatalog.RequiredFeatures[newTag]
	if len(oldRequired) > 0 && oldRequired.Equal(newRequired) {
		return oldFeatures
	}

	oldOptional := tagcatalog.OptionalFeatures[oldTag]
	newOptional := tagcatalog.OptionalFeatures[newTag]
	if len(oldOptional) > 0 && oldOptional.Equal(newOptional) {
		return oldFeatures
	}

	return ""
}

// crossClassify appends, for every entry whose tag has cross-classification
// targets, one copy per target with the tag rewritten, the root reformatted
// for the target tag, and features recomputed.
func crossClassify(entries []normalized) []normalized {
	classified := append([]normalized(nil), entries...)
	for _, e := range entries {
		for _, target := range tagcatalog.CrossClassifyAs[e.Tag] {
			dup := normalized{
				Tag:             target,
				Root:            formatRoot(e.Root, target),
				Morphophonemics: e.Morphophonemics,
				Features:        newFeatures(e.Features, e.Tag, target),
				IsCompound:      e.IsCompound,
			}
			classified = append(classified, dup)
		}
	}
	return classified
}

func ruleInput(n normalized) string {
	return "(" + n.Root + "[" + tagcatalog.OutputAs[n.Tag] + "]" + n.Features
}

func ruleOutput(n normalized) string {
	if n.Morphophonemics != "" {
		return n.Morphophonemics
	}
	return turkcase.Lower(n.Root)
}

// Parse turns validated lexicon entries into the rewrite rules they
// contribute to the morphotactics FST: one rule per normalized,
// cross-classified entry whose tag names an FST state.
//
// Callers must validate every entry with Validate first; Parse assumes
// well-formed input.
func Parse(entries []Entry) []rule.Rule {
	normalizedEntries := normalizeAll(entries)
	classified := crossClassify(normalizedEntries)

	rules := make([]rule.Rule, 0, len(classified))
	for _, n := range classified {
		if _, ok := tagcatalog.FSTStates[n.Tag]; !ok {
			continue
		}
		rules = append(rules, rule.Rule{
			FromState: rule.Start,
			ToState:   n.Tag,
			Input:     ruleInput(n),
			Output:    ruleOutput(n),
		})
	}
	return rules
}
