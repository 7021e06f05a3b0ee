package lexicon

import (
	"strings"
	"testing"
)

func TestReadTSV(t *testing.T) {
	input := "tag\troot\tmorphophonemics\tfeatures\tis_compound\n" +
		"NN\tev\t~\t~\tfalse\n" +
		"\n" +
		"NN\tkitap\tkitab\t~\tfalse\n"

	rows, err := ReadTSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTSV = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (blank line skipped)", len(rows))
	}
	if rows[0].Line != 2 {
		t.Errorf("rows[0].Line = %d, want 2", rows[0].Line)
	}
	if rows[1].Line != 4 {
		t.Errorf("rows[1].Line = %d, want 4", rows[1].Line)
	}
	if rows[1].Raw["root"] != "kitap" {
		t.Errorf("rows[1].Raw[root] = %q, want kitap", rows[1].Raw["root"])
	}
}

func TestReadTSVMissingHeaderColumn(t *testing.T) {
	input := "tag\troot\tmorphophonemics\tfeatures\n" + "NN\tev\t~\t~\n"
	rows, err := ReadTSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTSV = %v", err)
	}
	if _, ok := rows[0].Raw["is_compound"]; ok {
		t.Errorf("is_compound should be absent from Raw when header omits it")
	}
}
