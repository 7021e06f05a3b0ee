package morphotactics

import (
	"fmt"
	"regexp"
	"strings"
)

// InvalidRuleError reports a morphotactics rule definition line that fails
// one of the validator's checks.
type InvalidRuleError struct {
	Message string
}

func (e *InvalidRuleError) Error() string {
	return e.Message
}

var (
	ruleInputRegexp = regexp.MustCompile(
		`^(?:\)?\(\[[A-Z]+?\]-(?:\p{L}|')+?\[[A-Za-z]+?=[A-Za-z]+?\]|` +
			`\+(?:\p{L}|['.])*?\[[A-Za-z]+?=[A-Za-z0-9]+?\]|` +
			`\)\+\[Proper=(?:True|False)\]|` +
			`\d+?(?:\[[A-Z]+?\])?)+$|^[(.,]$`)

	ruleOutputRegexp = regexp.MustCompile(
		`^'?\+\p{L}+$|^\d+(?:\.?\*?(?:\p{L}|['~])+\*?)?$|^['\,.]$`)
)

// Validate checks a tokenized morphotactics rule definition line. Returns an
// *InvalidRuleError describing the first failure, or nil if the line is
// well-formed.
func Validate(tokens []string) error {
	if len(tokens) != 4 {
		return &InvalidRuleError{Message: fmt.Sprintf("Expecting 4 tokens got %d.", len(tokens))}
	}
	for _, t := range tokens {
		if t == "" {
			return &InvalidRuleError{Message: "Rule definition contains empty tokens."}
		}
	}

	input := tokens[2]
	if strings.ToLower(input) != Epsilon && !ruleInputRegexp.MatchString(input) {
		return &InvalidRuleError{Message: "Invalid rule input label."}
	}

	output := tokens[3]
	if strings.ToLower(output) != Epsilon && !ruleOutputRegexp.MatchString(output) {
		return &InvalidRuleError{Message: "Invalid rule output label."}
	}
	return nil
}
