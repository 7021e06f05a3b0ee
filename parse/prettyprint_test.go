package parse

import "testing"

func affix(meta, category, value string) Affix {
	return Affix{
		HasFeature: true,
		Feature: Feature{
			Category:    category,
			HasCategory: true,
			Value:       value,
			HasValue:    true,
		},
		MetaMorpheme:    meta,
		HasMetaMorpheme: meta != "",
	}
}

func TestPrettyPrintMultiIG(t *testing.T) {
	a := Analysis{IG: []InflectionalGroup{
		{
			HasPOS: true, POS: "NN",
			HasRoot: true, Root: Root{HasMorpheme: true, Morpheme: "ev"},
			Inflection: []Affix{
				affix("", "PersonNumber", "A3sg"),
				affix("", "Possessive", "Pnon"),
				affix("DA", "Case", "Loc"),
			},
		},
		{
			HasPOS: true, POS: "JJ",
			HasDerivation: true, Derivation: affix("ki", "Derivation", "Rel"),
			HasProper: true, Proper: false,
		},
	}}
	want := "(ev[NN]+[PersonNumber=A3sg]+[Possessive=Pnon]+DA[Case=Loc])([JJ]-ki[Derivation=Rel])+[Proper=False]"
	if got := PrettyPrint(a); got != want {
		t.Errorf("PrettyPrint = %q, want %q", got, want)
	}
}

func TestPrettyPrintProperTrue(t *testing.T) {
	a := Analysis{IG: []InflectionalGroup{{
		HasPOS: true, POS: "NNP",
		HasRoot: true, Root: Root{HasMorpheme: true, Morpheme: "Ankara"},
		HasProper: true, Proper: true,
	}}}
	if got, want := PrettyPrint(a), "(Ankara[NNP])+[Proper=True]"; got != want {
		t.Errorf("PrettyPrint = %q, want %q", got, want)
	}
}

// Pretty-print composed with decompose is the identity on pretty-print's
// image: re-decomposing and re-printing any printed analysis reproduces it
// byte for byte.
func TestPrettyPrintDecomposeIdempotent(t *testing.T) {
	texts := []string{
		"(ev[NN]+[PersonNumber=A3sg]+[Possessive=Pnon]+DA[Case=Loc])([JJ]-ki[Derivation=Rel])+[Proper=False]",
		"(yaşa[VB]+[Polarity=Pos])([VN]-DHk[Derivation=PastNom]+lAr[PersonNumber=A3pl]+Hm[Possessive=P1sg]+NDAn[Case=Abl])",
		"(araba[NN]+lAr[PersonNumber=A3pl]+[Possessive=Pnon]+DA[Case=Loc])+[Proper=True]",
	}
	for _, text := range texts {
		a, err := Decompose(text)
		if err != nil {
			t.Fatalf("Decompose(%q): %v", text, err)
		}
		printed := PrettyPrint(a)
		if printed != text {
			t.Errorf("PrettyPrint(Decompose(%q)) = %q", text, printed)
			continue
		}
		again, err := Decompose(printed)
		if err != nil {
			t.Fatalf("Decompose(%q): %v", printed, err)
		}
		if PrettyPrint(again) != printed {
			t.Errorf("pretty-print is not idempotent over decompose for %q", text)
		}
	}
}
