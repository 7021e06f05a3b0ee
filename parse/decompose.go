package parse

import (
	"fmt"
	"regexp"
)

// igPattern bounds one inflectional group's text plus its optional trailing
// Proper-feature suffix. Transcribed from
// original_source/turkish_morphology/decompose.py's _IG_REGEX; the POS
// character class is kept verbatim (it also matches punctuation tags like
// '(' and '.'), and Python's non-ASCII `[^\W\d_]` (a letter, not a digit or
// underscore) becomes Go's \p{L}, since RE2's \w is ASCII-only.
const igPattern = `\(` +
	`(?:` +
	`(?P<root>.+?)\[(?P<root_pos>[A-Z.,:()'\-"` + "`" + `$]+?)\]` +
	`|` +
	`\[(?P<derivation_pos>[A-Z.,:()'\-"` + "`" + `$]+?)\](?P<derivation>-(?:\p{L}|')+?\[[A-z]+?=[A-z]+?\])?` +
	`)` +
	`(?P<inflections>(?:\+(?:\p{L}|['.])*?\[[A-z]+?=[A-z0-9]+?\])*)` +
	`\)` +
	`(?:\+\[Proper=(?P<proper>True|False)\])?`

var igRegexp = regexp.MustCompile(igPattern)

// affixPattern extracts a single affix's meta-morpheme and feature from a
// derivation or inflections substring. Transcribed from decompose.py's
// _AFFIX_REGEX (periods are allowed in the meta-morpheme here, unlike the
// igPattern's derivation-boundary detector above).
const affixPattern = `[+-](?P<meta>(?:\p{L}|['.])*?)\[(?P<category>[A-z]+?)=(?P<value>[A-z0-9]+?)\]`

var affixRegexp = regexp.MustCompile(affixPattern)

// Decompose parses a human-readable analysis string into a structured
// Analysis. Grounded on decompose.py's human_readable_analysis: the IG
// regex tiles the whole input with no gaps, the first IG has a root and a
// root POS tag, and every later IG has a derivation with a derivation POS
// tag.
func Decompose(humanReadable string) (Analysis, error) {
	if humanReadable == "" {
		return Analysis{}, &IllformedAnalysisError{Message: "Human-readable analysis is empty."}
	}

	matches := igRegexp.FindAllStringSubmatch(humanReadable, -1)
	indices := igRegexp.FindAllStringSubmatchIndex(humanReadable, -1)
	if len(matches) == 0 {
		return Analysis{}, illformedHumanReadable(humanReadable)
	}

	names := igRegexp.SubexpNames()
	pos := 0
	for _, idx := range indices {
		if idx[0] != pos {
			return Analysis{}, illformedHumanReadable(humanReadable)
		}
		pos = idx[1]
	}
	if pos != len(humanReadable) {
		return Analysis{}, illformedHumanReadable(humanReadable)
	}

	groups := make([]map[string]string, len(matches))
	for i, m := range matches {
		g := make(map[string]string, len(names))
		for j, name := range names {
			if name != "" {
				g[name] = m[j]
			}
		}
		groups[i] = g
	}

	if groups[0]["root"] == "" || groups[0]["root_pos"] == "" {
		return Analysis{}, illformedHumanReadable(humanReadable)
	}
	for _, g := range groups[1:] {
		if g["derivation"] == "" || g["derivation_pos"] == "" {
			return Analysis{}, illformedHumanReadable(humanReadable)
		}
	}

	a := Analysis{IG: make([]InflectionalGroup, len(groups))}
	for position, g := range groups {
		ig := InflectionalGroup{}
		if position == 0 {
			ig.HasPOS = true
			ig.POS = g["root_pos"]
			ig.HasRoot = true
			ig.Root = Root{Morpheme: g["root"], HasMorpheme: true}
		} else {
			ig.HasPOS = true
			ig.POS = g["derivation_pos"]
			ig.HasDerivation = true
			ig.Derivation = parseSingleAffix(g["derivation"])
		}
		ig.Inflection = parseAffixes(g["inflections"])
		if g["proper"] != "" {
			ig.HasProper = true
			ig.Proper = g["proper"] == "True"
		}
		a.IG[position] = ig
	}
	return a, nil
}

func illformedHumanReadable(humanReadable string) error {
	return &IllformedAnalysisError{
		Message: fmt.Sprintf("Human-readable analysis is ill-formed: '%s'", humanReadable),
	}
}

// parseAffixes extracts every affix encoded in an inflections (or
// derivation) substring using affixRegexp.
func parseAffixes(s string) []Affix {
	matches := affixRegexp.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	names := affixRegexp.SubexpNames()
	affixes := make([]Affix, len(matches))
	for i, m := range matches {
		g := make(map[string]string, len(names))
		for j, name := range names {
			if name != "" {
				g[name] = m[j]
			}
		}
		affixes[i] = Affix{
			HasFeature: true,
			Feature: Feature{
				Category:    g["category"],
				HasCategory: true,
				Value:       g["value"],
				HasValue:    true,
			},
			MetaMorpheme:    g["meta"],
			HasMetaMorpheme: g["meta"] != "",
		}
	}
	return affixes
}

// parseSingleAffix extracts the one affix encoded in a derivation
// substring (e.g. "-DHk[Derivation=PastNom]").
func parseSingleAffix(s string) Affix {
	affixes := parseAffixes(s)
	if len(affixes) == 0 {
		return Affix{}
	}
	return affixes[0]
}
