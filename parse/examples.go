package parse

import "strings"

// Stems returns the lowercased root morpheme of every analysis, in input
// order, duplicates included. Grounded on
// original_source/examples/word_stems.py, which collects
// `a.ig[0].root.morpheme.lower()` across a batch of decomposed analyses;
// callers that want a unique, sorted set can wrap the result themselves.
func Stems(analyses []Analysis) []string {
	stems := make([]string, 0, len(analyses))
	for _, a := range analyses {
		if len(a.IG) == 0 {
			continue
		}
		stems = append(stems, strings.ToLower(a.IG[0].Root.Morpheme))
	}
	return stems
}

// InflectionTagCounts counts how many times each (category, value)
// inflectional feature pair appears across every inflectional group of
// every analysis. Grounded on
// original_source/examples/inflection_distribution.py's Counter over
// `(i.feature.category, i.feature.value)` pairs; this returns the raw
// counts rather than the original's percentage-formatted print lines,
// leaving presentation to the caller.
func InflectionTagCounts(analyses []Analysis) map[Feature]int {
	counts := make(map[Feature]int)
	for _, a := range analyses {
		for _, ig := range a.IG {
			for _, infl := range ig.Inflection {
				key := Feature{Category: infl.Feature.Category, Value: infl.Feature.Value}
				counts[key]++
			}
		}
	}
	return counts
}
