package lexicon

import (
	"regexp"
	"strings"

	"github.com/anlamtek/turkmorph/tagcatalog"
)

var featureCategoryValueRegexp = regexp.MustCompile(`\+\[([A-Za-z0-9]+?)=([A-Za-z0-9]+?)\]`)
var featuresRegexp = regexp.MustCompile(`^(?:\+\[[A-Za-z0-9]+?=[A-Za-z0-9]+?\])+$`)

func categoryValuePairs(features string) [][2]string {
	matches := featureCategoryValueRegexp.FindAllStringSubmatch(features, -1)
	pairs := make([][2]string, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, [2]string{m[1], m[2]})
	}
	return pairs
}

// Validate checks a raw lexicon row and returns an *InvalidEntryError
// describing the first failure found, in the fixed order the checks are
// specified in. A nil return means the row is well-formed.
func Validate(raw RawEntry) error {
	var missing []string
	for _, f := range RequiredFields {
		if _, ok := raw[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return missingFields(missing)
	}

	var empty []string
	for _, f := range RequiredFields {
		if raw[f] == "" {
			empty = append(empty, f)
		}
	}
	if len(empty) > 0 {
		return emptyFields(empty)
	}

	var whitespace []string
	for _, f := range []string{"tag", "morphophonemics", "features"} {
		if len(strings.Fields(raw[f])) != 1 {
			whitespace = append(whitespace, f)
		}
	}
	if len(whitespace) > 0 {
		return whitespaceFields(whitespace)
	}

	entry := raw.toEntry()
	tag := strings.ToUpper(entry.Tag)
	if _, ok := tagcatalog.ValidTags[tag]; !ok {
		return errInvalidTag
	}

	isCompound := strings.ToLower(entry.IsCompound)
	if isCompound != "true" && isCompound != "false" {
		return errInvalidCompound
	}

	if isCompound == "true" && entry.Morphophonemics == "~" {
		return errCompoundMissingMorphophonemics
	}

	features := entry.Features
	if features != "~" && !featuresRegexp.MatchString(features) {
		return errInvalidFeaturesSyntax
	}

	required := tagcatalog.RequiredFeatures[tag]
	optional := tagcatalog.OptionalFeatures[tag]

	if len(required) > 0 {
		if features == "~" {
			return errMissingRequiredFeatures
		}
		pairs := categoryValuePairs(features)
		categories := make([]string, len(pairs))
		for i, p := range pairs {
			categories[i] = p[0]
		}
		wantCategories := required.Categories()
		if !stringsEqual(categories, wantCategories) {
			return errInvalidRequiredCategory
		}
		for i, p := range pairs {
			if !required.Allowed(wantCategories[i], p[1]) {
				return errInvalidRequiredValue
			}
		}
		return nil
	}

	if len(optional) > 0 {
		if features != "~" {
			for _, p := range categoryValuePairs(features) {
				if !optional.Allowed(p[0], p[1]) {
					return errInvalidOptionalFeatures
				}
			}
		}
		return nil
	}

	if features != "~" {
		return errRedundantFeatures
	}
	return nil
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
