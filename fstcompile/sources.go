package fstcompile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/anlamtek/turkmorph/lexicon"
	"github.com/anlamtek/turkmorph/morphotactics"
	"github.com/anlamtek/turkmorph/rule"
)

func globSorted(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadLexiconRules reads every *.tsv file in lexiconDir (sorted by path),
// validates and parses each row, and returns the concatenated rewrite
// rules in file order. Fails with a *CompilationError identifying the
// offending file and 1-based line number, or with errNoLexiconRules if the
// result is empty.
func ReadLexiconRules(lexiconDir string) ([]rule.Rule, error) {
	paths, err := globSorted(lexiconDir, "*.tsv")
	if err != nil {
		return nil, err
	}

	var rules []rule.Rule
	for _, path := range paths {
		fileRules, err := readLexiconFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, fileRules...)
	}

	if len(rules) == 0 {
		return nil, errNoLexiconRules
	}
	return rules, nil
}

func readLexiconFile(path string) ([]rule.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := lexicon.ReadTSV(f)
	if err != nil {
		return nil, err
	}

	entries := make([]lexicon.Entry, 0, len(rows))
	for _, row := range rows {
		if err := lexicon.Validate(row.Raw); err != nil {
			return nil, entryError(path, row.Line, err)
		}
		entries = append(entries, entryOf(row.Raw))
	}
	return lexicon.Parse(entries), nil
}

func entryOf(raw lexicon.RawEntry) lexicon.Entry {
	return lexicon.Entry{
		Tag:             raw["tag"],
		Root:            raw["root"],
		Morphophonemics: raw["morphophonemics"],
		Features:        raw["features"],
		IsCompound:      raw["is_compound"],
	}
}

// ReadMorphotacticsRules reads every *.txt file in morphotacticsDir (sorted
// by path), validates and parses each line, and returns the concatenated
// rewrite rules in file order. Fails with a *CompilationError identifying
// the offending file and 1-based line number, or with
// errNoMorphotacticsRules if the result is empty.
func ReadMorphotacticsRules(morphotacticsDir string) ([]rule.Rule, error) {
	paths, err := globSorted(morphotacticsDir, "*.txt")
	if err != nil {
		return nil, err
	}

	var rules []rule.Rule
	for _, path := range paths {
		fileRules, err := readMorphotacticsFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, fileRules...)
	}

	if len(rules) == 0 {
		return nil, errNoMorphotacticsRules
	}
	return rules, nil
}

func readMorphotacticsFile(path string) ([]rule.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := morphotactics.ReadLines(f)
	if err != nil {
		return nil, err
	}

	tokenLines := make([][]string, 0, len(lines))
	for _, l := range lines {
		if err := morphotactics.Validate(l.Tokens); err != nil {
			return nil, ruleLineError(path, l.Line, err)
		}
		tokenLines = append(tokenLines, l.Tokens)
	}
	return morphotactics.Parse(tokenLines), nil
}
