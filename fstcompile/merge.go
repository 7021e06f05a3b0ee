package fstcompile

import "github.com/anlamtek/turkmorph/rule"

// Merge concatenates lexicon then morphotactics rules (the stable input
// order) and deduplicates by the (from,to,input,output) 4-tuple, keeping
// the last-seen occurrence but the first-seen position, the way an
// insertion-ordered map overwritten in place behaves.
func Merge(lexiconRules, morphotacticsRules []rule.Rule) []rule.Rule {
	all := make([]rule.Rule, 0, len(lexiconRules)+len(morphotacticsRules))
	all = append(all, lexiconRules...)
	all = append(all, morphotacticsRules...)
	return Dedupe(all)
}

// Dedupe removes duplicate rules keyed by the 4-tuple (from,to,input,output),
// keeping the last occurrence's value at the position of its key's first
// occurrence — the observable behavior of overwriting a value in an
// insertion-ordered map and then emitting it in insertion order.
func Dedupe(rules []rule.Rule) []rule.Rule {
	order := make([][4]string, 0, len(rules))
	values := make(map[[4]string]rule.Rule, len(rules))

	for _, r := range rules {
		key := r.Key()
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = r
	}

	deduped := make([]rule.Rule, len(order))
	for i, key := range order {
		deduped[i] = values[key]
	}
	return deduped
}
