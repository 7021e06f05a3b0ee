package fstcompile

import "fmt"

// CompilationError reports a failure of the compiler batch: an illformed
// source row/line (wrapped with its file and 1-based line number), or the
// absence of any valid rules in one of the two inputs.
type CompilationError struct {
	Message string
}

func (e *CompilationError) Error() string {
	return e.Message
}

func entryError(path string, line int, cause error) error {
	return &CompilationError{
		Message: fmt.Sprintf("Lexicon entry at line %d of '%s' is illformed. %s", line, path, cause),
	}
}

func ruleLineError(path string, line int, cause error) error {
	return &CompilationError{
		Message: fmt.Sprintf("Rewrite rule at line %d of '%s' is illformed. %s", line, path, cause),
	}
}

var errNoLexiconRules = &CompilationError{Message: "no valid lexicon rewrite rules found."}
var errNoMorphotacticsRules = &CompilationError{Message: "no valid morphotactics rewrite rules found."}
