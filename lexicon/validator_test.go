package lexicon

import (
	"strings"
	"testing"
)

func validRow() RawEntry {
	return RawEntry{
		"tag":             "NN",
		"root":            "ev",
		"morphophonemics": "~",
		"features":        "~",
		"is_compound":     "false",
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(validRow()); err != nil {
		t.Fatalf("Validate(valid row) = %v, want nil", err)
	}
}

func TestValidateMissingFields(t *testing.T) {
	row := validRow()
	delete(row, "features")
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry is missing fields: 'features'") {
		t.Fatalf("Validate = %v, want missing-fields error", err)
	}
}

func TestValidateEmptyFields(t *testing.T) {
	row := validRow()
	row["root"] = ""
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry fields have empty values: 'root'") {
		t.Fatalf("Validate = %v, want empty-fields error", err)
	}
}

func TestValidateWhitespaceFields(t *testing.T) {
	row := validRow()
	row["tag"] = "N N"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry field values contain whitespace: 'tag'") {
		t.Fatalf("Validate = %v, want whitespace error", err)
	}
}

func TestValidateInvalidTag(t *testing.T) {
	row := validRow()
	row["tag"] = "ZZZ"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry 'tag' field has invalid value.") {
		t.Fatalf("Validate = %v, want invalid tag error", err)
	}
}

func TestValidateInvalidCompound(t *testing.T) {
	row := validRow()
	row["is_compound"] = "maybe"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry 'is_compound' field has invalid value.") {
		t.Fatalf("Validate = %v, want invalid compound error", err)
	}
}

func TestValidateCompoundMissingMorphophonemics(t *testing.T) {
	row := validRow()
	row["is_compound"] = "true"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "morphophonemics annotation.") {
		t.Fatalf("Validate = %v, want compound-missing-morphophonemics error", err)
	}
}

func TestValidateInvalidFeaturesSyntax(t *testing.T) {
	row := validRow()
	row["features"] = "+[Case=]"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry features annotation is invalid.") {
		t.Fatalf("Validate = %v, want invalid features syntax error", err)
	}
}

func TestValidateMissingRequiredFeatures(t *testing.T) {
	row := validRow()
	row["tag"] = "IN"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry is missing required features.") {
		t.Fatalf("Validate = %v, want missing required features error", err)
	}
}

func TestValidateRequiredFeaturesOK(t *testing.T) {
	row := validRow()
	row["tag"] = "IN"
	row["features"] = "+[ComplementType=CDat]"
	if err := Validate(row); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestValidateInvalidRequiredCategory(t *testing.T) {
	row := validRow()
	row["tag"] = "CC"
	row["features"] = "+[Bogus=Coor]"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry has invalid required feature category.") {
		t.Fatalf("Validate = %v, want invalid required category error", err)
	}
}

func TestValidateInvalidRequiredValue(t *testing.T) {
	row := validRow()
	row["tag"] = "CC"
	row["features"] = "+[ConjunctionType=Bogus]"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry has invalid required feature value.") {
		t.Fatalf("Validate = %v, want invalid required value error", err)
	}
}

func TestValidateInvalidOptionalFeatures(t *testing.T) {
	row := validRow()
	row["tag"] = "JJ"
	row["features"] = "+[Bogus=True]"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry has invalid optional features.") {
		t.Fatalf("Validate = %v, want invalid optional features error", err)
	}
}

func TestValidateRedundantFeatures(t *testing.T) {
	row := validRow()
	row["features"] = "+[Case=Loc]"
	err := Validate(row)
	if err == nil || !strings.Contains(err.Error(), "Entry has features while it is not expected to have any.") {
		t.Fatalf("Validate = %v, want redundant features error", err)
	}
}
