package lexicon

import (
	"testing"

	"github.com/anlamtek/turkmorph/rule"
)

func TestParseEmitsOneRulePerFSTStateTag(t *testing.T) {
	entries := []Entry{
		{Tag: "NN", Root: "ev", Morphophonemics: "~", Features: "~", IsCompound: "false"},
	}
	rules := Parse(entries)

	var sawNN, sawNOMP bool
	for _, r := range rules {
		if r.FromState != rule.Start {
			t.Errorf("rule.FromState = %q, want %q", r.FromState, rule.Start)
		}
		switch r.ToState {
		case "NN":
			sawNN = true
			if r.Input != "(ev[NN]" {
				t.Errorf("NN rule input = %q, want (ev[NN]", r.Input)
			}
			if r.Output != "ev" {
				t.Errorf("NN rule output = %q, want ev", r.Output)
			}
		case "NOMP":
			sawNOMP = true
		}
	}
	if !sawNN {
		t.Errorf("expected a rule for NN, rules = %+v", rules)
	}
	if !sawNOMP {
		t.Errorf("expected a cross-classified rule for NOMP, rules = %+v", rules)
	}
}

func TestParseCircumflexDuplication(t *testing.T) {
	entries := []Entry{
		{Tag: "NN", Root: "â", Morphophonemics: "~", Features: "~", IsCompound: "false"},
	}
	rules := Parse(entries)

	var sawCircumflex, sawPlain bool
	for _, r := range rules {
		if r.ToState != "NN" {
			continue
		}
		switch r.Input {
		case "(â[NN]":
			sawCircumflex = true
		case "(a[NN]":
			sawPlain = true
		}
	}
	if !sawCircumflex || !sawPlain {
		t.Errorf("expected both â and a variants, rules = %+v", rules)
	}
}

func TestParseUsesMorphophonemicsWhenPresent(t *testing.T) {
	entries := []Entry{
		{Tag: "NN", Root: "kitap", Morphophonemics: "kitab", Features: "~", IsCompound: "false"},
	}
	rules := Parse(entries)
	for _, r := range rules {
		if r.ToState == "NN" && r.Output != "kitab" {
			t.Errorf("NN rule output = %q, want kitab", r.Output)
		}
	}
}

func TestParseNompCaseBareSentinel(t *testing.T) {
	entries := []Entry{
		{Tag: "EX", Root: "var", Morphophonemics: "~", Features: "~", IsCompound: "false"},
	}
	rules := Parse(entries)
	found := false
	for _, r := range rules {
		if r.ToState == "NOMP-CASE-BARE" {
			found = true
			want := "+[PersonNumber=A3sg]+[Possessive=Pnon]+[Case=Bare]"
			if r.Input != "(var[NOMP]"+want {
				t.Errorf("NOMP-CASE-BARE rule input = %q, want suffix %q", r.Input, want)
			}
		}
	}
	if !found {
		t.Errorf("expected EX to cross-classify to NOMP-CASE-BARE, rules = %+v", rules)
	}
}

func TestParseSkipsNonFSTStateTags(t *testing.T) {
	entries := []Entry{
		{Tag: "JJN", Root: "foo", Morphophonemics: "~", Features: "~", IsCompound: "false"},
	}
	rules := Parse(entries)
	for _, r := range rules {
		if r.ToState == "JJN" {
			t.Errorf("JJN is not an FST state, should not emit a direct rule: %+v", r)
		}
	}
}
