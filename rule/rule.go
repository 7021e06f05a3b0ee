// Package rule defines the rewrite-rule record shared by the lexicon and
// morphotactics parsers, plus the distinguished state names used to wire
// every lexicon entry into the morphotactics graph.
package rule

// Start is the distinguished state every lexicon-derived rule originates
// from.
const Start = "START"

// Accept is the distinguished accepting state of the compiled FST.
const Accept = "ACCEPT"

// Rule is a single transition: a rewrite from FromState to ToState, labeled
// with an input (analysis-string) token and an output (surface-spelling)
// token. Equality for deduplication purposes is the full 4-tuple.
type Rule struct {
	FromState string
	ToState   string
	Input     string
	Output    string
}

// Key returns the 4-tuple used to deduplicate rules, keeping the
// last-seen occurrence when two rules collide.
func (r Rule) Key() [4]string {
	return [4]string{r.FromState, r.ToState, r.Input, r.Output}
}
