package morphotactics

import (
	"strings"

	"github.com/anlamtek/turkmorph/rule"
)

func bracketed(token string) bool {
	return strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">")
}

// normalizeTokens uppercases the from/to state tokens and lowercases any
// bracketed (<…>) input/output token, in place conceptually (returns a new
// slice; callers pass the original tokens unchanged).
func normalizeTokens(tokens []string) [4]string {
	input, output := tokens[2], tokens[3]
	if bracketed(input) {
		input = strings.ToLower(input)
	}
	if bracketed(output) {
		output = strings.ToLower(output)
	}
	return [4]string{
		strings.ToUpper(tokens[0]),
		strings.ToUpper(tokens[1]),
		input,
		output,
	}
}

// Parse turns validated, tokenized rule definition lines into rewrite rules.
//
// Callers must validate every line with Validate first; Parse assumes
// well-formed input.
func Parse(lines [][]string) []rule.Rule {
	rules := make([]rule.Rule, 0, len(lines))
	for _, tokens := range lines {
		n := normalizeTokens(tokens)
		rules = append(rules, rule.Rule{
			FromState: n[0],
			ToState:   n[1],
			Input:     n[2],
			Output:    n[3],
		})
	}
	return rules
}
