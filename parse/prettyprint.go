package parse

import "strings"

// PrettyPrint renders a structured Analysis into the analyzer's
// human-readable form, e.g. "(araba[NN]+lAr[PersonNumber=A3pl]
// +[Possessive=Pnon]+DA[Case=Loc])+[Proper=True]". Grounded on
// original_source/turkish_morphology/pretty_print.py's
// analysis/_inflectional_group/_affix/_feature/_root.
func PrettyPrint(a Analysis) string {
	var b strings.Builder
	for i, ig := range a.IG {
		writeIG(&b, ig, i)
	}
	return b.String()
}

func writeIG(b *strings.Builder, ig InflectionalGroup, position int) {
	b.WriteByte('(')
	pos := "[" + ig.POS + "]"
	if position == 0 {
		b.WriteString(ig.Root.Morpheme)
		b.WriteString(pos)
	} else {
		b.WriteString(pos)
		writeAffix(b, ig.Derivation, true)
	}
	for _, infl := range ig.Inflection {
		writeAffix(b, infl, false)
	}
	b.WriteByte(')')
	if ig.HasProper {
		if ig.Proper {
			b.WriteString("+[Proper=True]")
		} else {
			b.WriteString("+[Proper=False]")
		}
	}
}

func writeAffix(b *strings.Builder, affix Affix, derivational bool) {
	if derivational {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString(affix.MetaMorpheme)
	b.WriteByte('[')
	b.WriteString(affix.Feature.Category)
	b.WriteByte('=')
	b.WriteString(affix.Feature.Value)
	b.WriteByte(']')
}
