package parse

import "fmt"

// IllformedAnalysisError reports a structurally invalid Analysis, with a
// message describing exactly which structural invariant was violated.
type IllformedAnalysisError struct {
	Message string
}

func (e *IllformedAnalysisError) Error() string {
	return e.Message
}

func illformed(format string, args ...any) error {
	return &IllformedAnalysisError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks that a is structurally well-formed: at least one IG,
// every IG has a non-empty POS, the first IG has a non-empty root
// morpheme, every other IG has a derivation affix with a non-empty
// meta-morpheme, and every affix's feature has a non-empty category and
// value. Grounded on
// original_source/turkish_morphology/validate.py's
// analysis/_inflectional_group/_root/_affix/_feature, message-for-message.
func Validate(a Analysis) error {
	if len(a.IG) == 0 {
		return illformed("Analysis is missing inflectional groups")
	}
	for position, ig := range a.IG {
		if err := validateIG(ig, position); err != nil {
			return err
		}
	}
	return nil
}

func validateIG(ig InflectionalGroup, position int) error {
	n := position + 1

	if !ig.HasPOS {
		return illformed("Inflectional group %d is missing part-of-speech tag", n)
	}
	if ig.POS == "" {
		return illformed("Inflectional group %d part-of-speech tag is empty", n)
	}

	if position == 0 {
		if !ig.HasRoot {
			return illformed("Inflectional group %d is missing root", n)
		}
		if err := validateRoot(ig.Root); err != nil {
			return err
		}
	} else {
		if !ig.HasDerivation {
			return illformed("Inflectional group %d is missing derivational affix", n)
		}
		if err := validateAffix(ig.Derivation, true); err != nil {
			return err
		}
	}

	for _, infl := range ig.Inflection {
		if err := validateAffix(infl, false); err != nil {
			return err
		}
	}
	return nil
}

func validateRoot(root Root) error {
	if !root.HasMorpheme {
		return illformed("Root is missing morpheme")
	}
	if root.Morpheme == "" {
		return illformed("Root morpheme is empty")
	}
	return nil
}

func validateFeature(f Feature) error {
	if !f.HasCategory {
		return illformed("Feature is missing category")
	}
	if f.Category == "" {
		return illformed("Feature category is empty")
	}
	if !f.HasValue {
		return illformed("Feature is missing value")
	}
	if f.Value == "" {
		return illformed("Feature value is empty")
	}
	return nil
}

func validateAffix(affix Affix, derivational bool) error {
	if !affix.HasFeature {
		return illformed("Affix is missing feature")
	}
	if err := validateFeature(affix.Feature); err != nil {
		return err
	}
	if !derivational {
		return nil
	}
	if !affix.HasMetaMorpheme {
		return illformed("Derivational affix is missing meta-morpheme")
	}
	if affix.MetaMorpheme == "" {
		return illformed("Derivational affix meta-morpheme is empty")
	}
	return nil
}
