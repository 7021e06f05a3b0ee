// Package lexicon reads, validates, and parses lexicon rows into rewrite
// rules. A lexicon row annotates a root morpheme with a part-of-speech tag
// and optional morphophonemic/feature information; the parser normalizes,
// circumflex-duplicates, and cross-classifies rows before emitting one
// rewrite rule per state-bearing tag.
package lexicon

// RawEntry is one lexicon row as read off disk: a map from the header's
// column names to that row's raw string values. Columns absent from the
// header never appear as keys, which is how the validator distinguishes a
// missing field from a present-but-empty one.
type RawEntry map[string]string

// RequiredFields lists the five annotation fields every lexicon row must
// carry.
var RequiredFields = []string{"tag", "root", "morphophonemics", "features", "is_compound"}

// Entry is a validated, not-yet-normalized lexicon row materialized from a
// RawEntry that is known to carry all five required fields.
type Entry struct {
	Tag             string
	Root            string
	Morphophonemics string
	Features        string
	IsCompound      string
}

// toEntry materializes r into an Entry. Callers must validate r first.
func (r RawEntry) toEntry() Entry {
	return Entry{
		Tag:             r["tag"],
		Root:            r["root"],
		Morphophonemics: r["morphophonemics"],
		Features:        r["features"],
		IsCompound:      r["is_compound"],
	}
}
