package lexicon

import "fmt"

// InvalidEntryError reports a lexicon row that fails one of the validator's
// checks. Message is one of the exact, enumerated fragments so callers can
// match on substrings.
type InvalidEntryError struct {
	Message string
}

func (e *InvalidEntryError) Error() string {
	return e.Message
}

func missingFields(fields []string) error {
	return &InvalidEntryError{Message: fmt.Sprintf("Entry is missing fields: '%s'", joinSorted(fields))}
}

func emptyFields(fields []string) error {
	return &InvalidEntryError{Message: fmt.Sprintf("Entry fields have empty values: '%s'", joinSorted(fields))}
}

func whitespaceFields(fields []string) error {
	return &InvalidEntryError{Message: fmt.Sprintf("Entry field values contain whitespace: '%s'", joinSorted(fields))}
}

var (
	errInvalidTag = &InvalidEntryError{Message: "Entry 'tag' field has invalid value. It can only be one of the valid" +
		" tags that are defined in the tag catalog."}
	errInvalidCompound = &InvalidEntryError{Message: "Entry 'is_compound' field has invalid value. It can only have the" +
		" values 'true' or 'false'."}
	errCompoundMissingMorphophonemics = &InvalidEntryError{Message: "Entry is marked as ending with compounding marker but it is missing" +
		" morphophonemics annotation."}
	errInvalidFeaturesSyntax = &InvalidEntryError{Message: "Entry features annotation is invalid. Features need to be annotated" +
		" as '+[Category_1=Value_x]...+[Category_n=Value_y]."}
	errMissingRequiredFeatures  = &InvalidEntryError{Message: "Entry is missing required features."}
	errInvalidRequiredCategory  = &InvalidEntryError{Message: "Entry has invalid required feature category."}
	errInvalidRequiredValue     = &InvalidEntryError{Message: "Entry has invalid required feature value."}
	errInvalidOptionalFeatures  = &InvalidEntryError{Message: "Entry has invalid optional features."}
	errRedundantFeatures        = &InvalidEntryError{Message: "Entry has features while it is not expected to have any."}
)
