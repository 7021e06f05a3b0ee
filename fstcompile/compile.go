package fstcompile

// Artifact is the compiler's output: the complex symbols table and the text
// FST, both rendered as their final file contents.
type Artifact struct {
	SymbolsTable string
	TextFST      string
}

// Compile runs the full compiler pipeline: read and parse every lexicon
// file under lexiconDir and every morphotactics file under
// morphotacticsDir, merge and deduplicate the resulting rules, then emit
// the complex symbols table and the AT&T text FST.
func Compile(lexiconDir, morphotacticsDir string) (Artifact, error) {
	lexiconRules, err := ReadLexiconRules(lexiconDir)
	if err != nil {
		return Artifact{}, err
	}

	morphotacticsRules, err := ReadMorphotacticsRules(morphotacticsDir)
	if err != nil {
		return Artifact{}, err
	}

	merged := Merge(lexiconRules, morphotacticsRules)

	table := ComplexSymbolsTable(merged)
	fst := BuildTextFST(merged)

	return Artifact{
		SymbolsTable: FormatSymbolsTable(table),
		TextFST:      fst.Format(),
	}, nil
}
