// Package tagcatalog holds the static table of part-of-speech tags and the
// metadata the lexicon validator/parser need to check and cross-classify
// entries: surface casing policy, output-tag rewrite, FST-state membership,
// cross-classification targets, and required/optional feature schemas.
package tagcatalog

// Formatting is the surface casing policy applied to a lexicon entry's root
// before it is written into a rewrite rule's input label.
type Formatting string

const (
	Lower    Formatting = "lower"
	Upper    Formatting = "upper"
	Capitals Formatting = "capitals"
)

// FeatureSchema is an ordered list of (category, allowed values) pairs. Order
// matters for required-feature schemas: a lexicon entry's features must name
// its categories in exactly this order.
type FeatureSchema []FeatureCategory

// FeatureCategory is one category of a feature schema together with the set
// of values that category may take.
type FeatureCategory struct {
	Category string
	Values   map[string]struct{}
}

// Categories returns the ordered list of category names in s.
func (s FeatureSchema) Categories() []string {
	cats := make([]string, len(s))
	for i, c := range s {
		cats[i] = c.Category
	}
	return cats
}

// Allowed reports whether value is allowed for category in s.
func (s FeatureSchema) Allowed(category, value string) bool {
	for _, c := range s {
		if c.Category == category {
			_, ok := c.Values[value]
			return ok
		}
	}
	return false
}

// Equal reports whether s and other describe the same ordered categories
// with the same allowed-value sets, as used by cross-classification to
// decide whether a source tag's features survive onto a target tag.
func (s FeatureSchema) Equal(other FeatureSchema) bool {
	if len(s) != len(other) {
		return false
	}
	for i, c := range s {
		o := other[i]
		if c.Category != o.Category || len(c.Values) != len(o.Values) {
			return false
		}
		for v := range c.Values {
			if _, ok := o.Values[v]; !ok {
				return false
			}
		}
	}
	return true
}

func values(vs ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return m
}

func schema(pairs ...FeatureCategory) FeatureSchema {
	return FeatureSchema(pairs)
}

// Item is one entry of the tag catalog.
type Item struct {
	Tag              string
	OutputAs         string
	Formatting       Formatting
	IsFSTState       bool
	CrossClassifyAs  []string
	RequiredFeatures FeatureSchema
	OptionalFeatures FeatureSchema
}

var personNumbers = values("A1sg", "A2sg", "A3sg", "A1pl", "A2pl", "A3pl")

// catalog is the static tag table. It mirrors the source project's own
// tags.py table entry for entry, including its grouping comments.
var catalog = []Item{
	// ADJ: Adjective.
	{Tag: "JJ", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NN", "NOMP", "PRI", "RB"},
		OptionalFeatures: schema(
			FeatureCategory{"Emphasis", values("True")},
		)},
	{Tag: "JJN", Formatting: Lower, IsFSTState: false,
		CrossClassifyAs: []string{"JJ", "NN", "NOMP"},
		OptionalFeatures: schema(
			FeatureCategory{"Emphasis", values("True")},
		)},
	// ADP: Adposition.
	{Tag: "IN", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NN", "NOMP"},
		RequiredFeatures: schema(
			FeatureCategory{"ComplementType", values("CAbl", "CAcc", "CBare", "CDat", "CFin", "CGen", "CIns", "CNum")},
		)},
	// ADV: Adverb.
	{Tag: "RB", Formatting: Lower, IsFSTState: true,
		OptionalFeatures: schema(
			FeatureCategory{"Emphasis", values("True")},
			FeatureCategory{"Temporal", values("True")},
		)},
	{Tag: "RB-TEMP", OutputAs: "RB", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NN-TEMP", "NOMP"},
		RequiredFeatures: schema(
			FeatureCategory{"Temporal", values("True")},
		)},
	{Tag: "WRB", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	// AFFIX: Affix.
	{Tag: "PFX", Formatting: Lower, IsFSTState: true},
	// CONJ: Conjunction.
	{Tag: "CC", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"ConjunctionType", values("Adv", "Coor", "Par", "Sub")},
		)},
	// DET: Determiner.
	{Tag: "DT", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP", "PRI"},
		RequiredFeatures: schema(
			FeatureCategory{"DeterminerType", values("Def", "Dem", "Dir", "Ind")},
		)},
	{Tag: "PDT", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	{Tag: "WDT", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"PRI", "NOMP"}},
	// EXS: Existential.
	{Tag: "EX", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP-CASE-BARE"}},
	// NOUN: Noun.
	{Tag: "ADD", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP-WITH-APOS"}},
	{Tag: "NN", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	{Tag: "NN-ABBR", OutputAs: "NN", Formatting: Upper, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-WITH-APOS"}},
	{Tag: "NN-ABBR-APOS", OutputAs: "NN", Formatting: Upper, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-APOS"}},
	{Tag: "NN-TEMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"Temporal", values("True")},
		)},
	{Tag: "NNP", Formatting: Capitals, IsFSTState: true, CrossClassifyAs: []string{"NOMP-WITH-APOS"}},
	{Tag: "NNP-ABBR", OutputAs: "NNP", Formatting: Upper, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-WITH-APOS"}},
	// NUM: Number.
	{Tag: "CD", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NN", "NOMP-WITH-APOS"}},
	{Tag: "CD-DIST", Formatting: Lower, IsFSTState: false, CrossClassifyAs: []string{"NN", "NOMP-WITH-APOS"}},
	{Tag: "CD-ORD", Formatting: Lower, IsFSTState: false, CrossClassifyAs: []string{"NN", "NOMP-WITH-APOS"}},
	// ONOM: Onomatopoeic.
	{Tag: "DUP", Formatting: Lower, IsFSTState: true},
	// PRON: Pronoun.
	{Tag: "PRD", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	{Tag: "PRD-PNON", OutputAs: "PRD", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-PNON"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
		)},
	{Tag: "PRD-PNPOSS", OutputAs: "PRD", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-PNPOSS"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
		)},
	{Tag: "PRI", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	{Tag: "PRP", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-PN"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
		)},
	{Tag: "PRP-CASE", OutputAs: "PRP", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-CASE-MARKED"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
			FeatureCategory{"Case", values("Acc", "Abl", "Dat", "Gen", "Ins", "Loc")},
		)},
	{Tag: "PRP-IRR", OutputAs: "PRP", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-PNON"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
		)},
	{Tag: "PRP$", Formatting: Lower, IsFSTState: true,
		CrossClassifyAs: []string{"NOMP-PNON"},
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
		)},
	{Tag: "PRR", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	{Tag: "WP", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP"}},
	// PRT: Particle.
	{Tag: "EP", Formatting: Lower, IsFSTState: true},
	{Tag: "OP", Formatting: Lower, IsFSTState: true},
	{Tag: "RPC", Formatting: Lower, IsFSTState: true},
	{Tag: "RPNEG", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP-CASE-BARE"}},
	{Tag: "RPQ", Formatting: Lower, IsFSTState: true, CrossClassifyAs: []string{"NOMP-CASE-BARE"}},
	// PUNCT: Punctuation.
	{Tag: "PUNCT-1", OutputAs: ".", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-2", OutputAs: ",", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-3", OutputAs: ":", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-4", OutputAs: "(", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-5", OutputAs: ")", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-6", OutputAs: "``", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-7", OutputAs: "'", Formatting: Lower, IsFSTState: true},
	{Tag: "PUNCT-8", OutputAs: "-", Formatting: Lower, IsFSTState: true},
	// VERB: Verb.
	{Tag: "NOMP", Formatting: Lower, IsFSTState: true},
	{Tag: "NOMP-APOS", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true},
	{Tag: "NOMP-CASE-BARE", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", values("A3sg")},
			FeatureCategory{"Possessive", values("Pnon")},
			FeatureCategory{"Case", values("Bare")},
		)},
	{Tag: "NOMP-CASE-MARKED", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
			FeatureCategory{"Case", values("Acc", "Abl", "Dat", "Gen", "Ins", "Loc")},
		)},
	{Tag: "NOMP-PN", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
		)},
	{Tag: "NOMP-PNON", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
			FeatureCategory{"Possessive", values("Pnon")},
		)},
	{Tag: "NOMP-PNPOSS", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true,
		RequiredFeatures: schema(
			FeatureCategory{"PersonNumber", personNumbers},
		)},
	{Tag: "NOMP-WITH-APOS", OutputAs: "NOMP", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-AR-DHR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-AR-HR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-AR-HT", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-AR-NO", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-AR-T", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-HR-DHR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-HR-NO", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HL-HR-T", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HN-AR-DHR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HN-HR-DHR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HN-HR-NO", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-HN-HR-T", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-ON-OR-DHR", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	{Tag: "VB-ON-OR-T", OutputAs: "VB", Formatting: Lower, IsFSTState: true},
	// X: Other.
	{Tag: "FW", Formatting: Lower, IsFSTState: true},
	{Tag: "GW", Formatting: Lower, IsFSTState: true},
	{Tag: "LS", Formatting: Lower, IsFSTState: true},
	{Tag: "NFP", Formatting: Lower, IsFSTState: true},
	{Tag: "SYM", Formatting: Lower, IsFSTState: true},
	{Tag: "UH", Formatting: Lower, IsFSTState: true},
	{Tag: "XX", Formatting: Lower, IsFSTState: true},
}

// ValidTags is the set of tags that may appear as the 'tag' field of a valid
// lexicon entry.
var ValidTags = make(map[string]struct{}, len(catalog))

// OutputAs maps an annotated tag to the tag displayed in analysis strings.
// Defaults to the tag itself when no rewrite is configured.
var OutputAs = make(map[string]string, len(catalog))

// Formattings maps a tag to its root-casing policy.
var Formattings = make(map[string]Formatting, len(catalog))

// FSTStates is the set of tags usable as a morphotactics FST state name.
// Tags in ValidTags but not in FSTStates are lexicon-annotation-only and
// are cross-classified into an FST-state tag instead.
var FSTStates = make(map[string]struct{}, len(catalog))

// CrossClassifyAs maps a tag to the additional tags a lexicon entry of that
// tag should be cross-classified into.
var CrossClassifyAs = make(map[string][]string, len(catalog))

// RequiredFeatures maps a tag to its required ordered feature schema.
var RequiredFeatures = make(map[string]FeatureSchema, len(catalog))

// OptionalFeatures maps a tag to its optional feature schema.
var OptionalFeatures = make(map[string]FeatureSchema, len(catalog))

// CatalogOrder lists tags in catalog declaration order. Cross-classification
// does not consult it: targets are taken in the order of each item's own
// CrossClassifyAs list.
var CatalogOrder []string

func init() {
	for _, item := range catalog {
		CatalogOrder = append(CatalogOrder, item.Tag)
		ValidTags[item.Tag] = struct{}{}
		if item.OutputAs != "" {
			OutputAs[item.Tag] = item.OutputAs
		} else {
			OutputAs[item.Tag] = item.Tag
		}
		Formattings[item.Tag] = item.Formatting
		if item.IsFSTState {
			FSTStates[item.Tag] = struct{}{}
		}
		CrossClassifyAs[item.Tag] = item.CrossClassifyAs
		RequiredFeatures[item.Tag] = item.RequiredFeatures
		OptionalFeatures[item.Tag] = item.OptionalFeatures
	}
}

// NompCaseBare is the sentinel cross-classification target tag whose
// features are always forced to a fixed bare-case annotation, regardless of
// the source entry's own features.
const NompCaseBare = "NOMP-CASE-BARE"

// NompCaseBareFeatures is the fixed feature string forced onto entries
// cross-classified to NompCaseBare.
const NompCaseBareFeatures = "+[PersonNumber=A3sg]+[Possessive=Pnon]+[Case=Bare]"
