// Package parse implements the structured-parse data model: the in-memory
// shape of a morphological analysis, its pretty-printer and decomposer
// (string ⇌ structure conversions), and its structural validator.
// Grounded on original_source/turkish_morphology/{pretty_print,decompose,
// validate}.py, transcribed from the protobuf-oriented source into plain
// Go structs.
package parse

// Feature is a (category, value) pair, e.g. (Case, Loc). HasCategory and
// HasValue distinguish a genuinely absent field from one explicitly set to
// the empty string, matching the proto HasField checks the validator
// (validate.go) depends on.
type Feature struct {
	Category    string
	HasCategory bool
	Value       string
	HasValue    bool
}

// Affix is an inflectional or derivational morpheme: a feature, plus an
// optional meta-morpheme (the capitalized placeholder spelling, e.g.
// "DA" for locative). MetaMorpheme is "" for a null (inflectional-only)
// morpheme; HasMetaMorpheme distinguishes an explicitly-empty morpheme
// from a genuinely absent one. HasFeature mirrors the same distinction
// for the feature field itself.
type Affix struct {
	Feature         Feature
	HasFeature      bool
	MetaMorpheme    string
	HasMetaMorpheme bool
}

// Root is the first inflectional group's morpheme, e.g. "araba".
type Root struct {
	Morpheme    string
	HasMorpheme bool
}

// InflectionalGroup is one segment of a structured parse: a POS tag, a
// root (first IG only) or a derivation affix (every other IG), an ordered
// sequence of inflection affixes, and an optional Proper flag.
type InflectionalGroup struct {
	POS           string
	HasPOS        bool
	Root          Root
	HasRoot       bool
	Derivation    Affix
	HasDerivation bool
	Inflection    []Affix
	Proper        bool
	HasProper     bool
}

// Analysis is an ordered, non-empty sequence of inflectional groups — a
// full structured morphological parse.
type Analysis struct {
	IG []InflectionalGroup
}
