package fstcompile

import (
	"testing"

	"github.com/anlamtek/turkmorph/rule"
)

func TestDedupeKeepsFirstPositionOfDuplicate(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "a", Output: "1"},
		{FromState: "START", ToState: "JJ", Input: "b", Output: "2"},
		{FromState: "START", ToState: "NN", Input: "a", Output: "1"},
	}
	deduped := Dedupe(rules)
	if len(deduped) != 2 {
		t.Fatalf("len(deduped) = %d, want 2", len(deduped))
	}
	if deduped[0].ToState != "NN" || deduped[1].ToState != "JJ" {
		t.Errorf("deduped order = %+v, want the duplicate kept at its first position", deduped)
	}

	// Rules differing in any tuple component are not duplicates.
	distinct := Dedupe([]rule.Rule{
		{FromState: "START", ToState: "NN", Input: "a", Output: "1"},
		{FromState: "START", ToState: "NN", Input: "a", Output: "2"},
	})
	if len(distinct) != 2 {
		t.Errorf("len(distinct) = %d, want 2 (key is the full 4-tuple)", len(distinct))
	}
}

func TestDedupeIdempotent(t *testing.T) {
	rules := []rule.Rule{
		{FromState: "START", ToState: "NN", Input: "a", Output: "1"},
		{FromState: "START", ToState: "NN", Input: "a", Output: "1"},
	}
	once := Dedupe(rules)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("Dedupe is not idempotent: %v vs %v", once, twice)
	}
}

func TestMergeOrdersLexiconBeforeMorphotactics(t *testing.T) {
	lex := []rule.Rule{{FromState: "START", ToState: "NN", Input: "a", Output: "1"}}
	morph := []rule.Rule{{FromState: "NN", ToState: "ACCEPT", Input: "<eps>", Output: "<eps>"}}
	merged := Merge(lex, morph)
	if merged[0].ToState != "NN" || merged[1].ToState != "ACCEPT" {
		t.Errorf("Merge order = %+v, want lexicon rules before morphotactics rules", merged)
	}
}
