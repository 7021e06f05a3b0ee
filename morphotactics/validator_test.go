package morphotactics

import (
	"strings"
	"testing"
)

func TestValidateOK(t *testing.T) {
	cases := [][]string{
		{"START", "NN", "<eps>", "<eps>"},
		{"NN", "ACCEPT", ")([JJ]-cA[Derivation=Ly]", "'+lAr"},
		{"NN", "NN", ".", "."},
		{"NN", "NN", ",", ","},
	}
	for _, tokens := range cases {
		if err := Validate(tokens); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", tokens, err)
		}
	}
}

func TestValidateWrongTokenCount(t *testing.T) {
	err := Validate([]string{"START", "NN", "<eps>"})
	if err == nil || !strings.Contains(err.Error(), "Expecting 4 tokens got 3.") {
		t.Fatalf("Validate = %v, want token-count error", err)
	}
}

func TestValidateEmptyToken(t *testing.T) {
	err := Validate([]string{"START", "", "<eps>", "<eps>"})
	if err == nil || !strings.Contains(err.Error(), "Rule definition contains empty tokens.") {
		t.Fatalf("Validate = %v, want empty-token error", err)
	}
}

func TestValidateInvalidInputLabel(t *testing.T) {
	err := Validate([]string{"START", "NN", "???", "<eps>"})
	if err == nil || !strings.Contains(err.Error(), "Invalid rule input label.") {
		t.Fatalf("Validate = %v, want invalid input label error", err)
	}
}

func TestValidateInvalidOutputLabel(t *testing.T) {
	err := Validate([]string{"START", "NN", "<eps>", "???"})
	if err == nil || !strings.Contains(err.Error(), "Invalid rule output label.") {
		t.Fatalf("Validate = %v, want invalid output label error", err)
	}
}
