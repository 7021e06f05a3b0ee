// Package analyzer is the top-level façade over the compiled morphological
// analyzer FST: Load (mmap the compiled artifact), Analyze, Generate, and
// batch variants of both that fan a slice of inputs out over a worker pool
// against a shared, immutable, mmap-backed model.
package analyzer

import (
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/anlamtek/turkmorph/fst"
	"github.com/anlamtek/turkmorph/parse"
	"github.com/anlamtek/turkmorph/turkcase"
)

// Analyzer wraps the loaded, immutable analyzer FST. The zero value is not
// usable; construct with Load or LoadFiles.
type Analyzer struct {
	loaded *fst.Analyzer
}

// Load resolves the compiled analyzer artifact's paths the way fst.Load
// does (TURKMORPH_FST_PATH/TURKMORPH_SYMBOLS_PATH environment variables,
// falling back to paths next to the fst package) and mmaps it.
func Load() (*Analyzer, error) {
	loaded, err := fst.Load()
	if err != nil {
		return nil, err
	}
	return &Analyzer{loaded: loaded}, nil
}

// LoadFiles mmaps the compiled analyzer artifact at the given explicit
// paths, bypassing environment/default resolution.
func LoadFiles(fstPath, symbolsPath string) (*Analyzer, error) {
	loaded, err := fst.LoadFiles(fstPath, symbolsPath)
	if err != nil {
		return nil, err
	}
	return &Analyzer{loaded: loaded}, nil
}

// Close unmaps the backing artifact files. The Analyzer must not be used
// afterward.
func (a *Analyzer) Close() error {
	return a.loaded.Close()
}

// Analyze morphologically analyzes a surface form. It returns every
// distinct human-readable analysis the compiled FST accepts the word
// under, sorted ascending by code point. Returns nil for a word the
// analyzer does not accept, including the empty string; Analyze never
// returns an error.
func (a *Analyzer) Analyze(word string, useProperFeature bool) []string {
	if word == "" {
		return nil
	}

	bytes := []byte(word)
	symbols := make([]int, len(bytes))
	for i, b := range bytes {
		symbols[i] = int(b)
	}

	chain := fst.CompileChain(symbols)
	fst.ArcSortByOutput(chain)
	composed := fst.Compose(chain, a.loaded.Model)
	if composed.Empty() {
		return nil
	}

	outputs, err := fst.EnumeratePaths(composed, fst.OutputTape, a.loaded.Symbols)
	if err != nil || len(outputs) == 0 {
		return nil
	}

	if !useProperFeature {
		for i, o := range outputs {
			outputs[i] = removeProperFeature(o)
		}
	}

	return sortedUnique(outputs)
}

func removeProperFeature(humanReadable string) string {
	humanReadable = strings.ReplaceAll(humanReadable, "+[Proper=False]", "")
	humanReadable = strings.ReplaceAll(humanReadable, "+[Proper=True]", "")
	return humanReadable
}

func sortedUnique(strs []string) []string {
	seen := make(map[string]struct{}, len(strs))
	unique := make([]string, 0, len(strs))
	for _, s := range strs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	sort.Strings(unique)
	return unique
}

// generateSymbolsPattern tokenizes a full pretty-printed, possibly
// multi-inflectional-group, analysis string into analyzer input-symbol
// tokens. Identical to fstcompile's symbols regex except its
// inflectional-group-boundary alternative also accepts an optional leading
// ")", since generate tokenizes the whole concatenated pretty-print output
// rather than one rule's input label in isolation, and the boundary
// between two inflectional groups reads "...)([JJ]...". Grounded on
// original_source/turkish_morphology/generate.py's _SYMBOLS_REGEX.
var generateSymbolsPattern = regexp.MustCompile(
	`\(.+?\[[A-Z.,:()'\-"` + "`" + `$]+?\]|` +
		`\)?\(\[[A-Z]+?\]|` +
		`-(?:\p{L}|')+?\[[A-z]+?=[A-z]+?\]|` +
		`\+(?:\p{L}|['.])*?\[[A-z]+?=[A-z0-9]+?\]|` +
		`\)\+\[Proper=(?:True|False)\]|` +
		`\d+(?:\[[A-Z]+?\])?|` +
		`[(.,]`)

// Generate produces a surface form from a structured parse. Callers are
// expected to hand Generate a structurally well-formed Analysis
// (parse.Validate); Generate itself never errors for linguistic reasons,
// returning "" when no surface form is derivable.
func (a *Analyzer) Generate(analysis parse.Analysis) string {
	if len(analysis.IG) == 0 {
		return ""
	}

	humanReadable := parse.PrettyPrint(addProperIfMissing(analysis))

	tokens := generateSymbolsPattern.FindAllString(humanReadable, -1)
	if len(tokens) == 0 {
		return ""
	}

	symbols := make([]int, len(tokens))
	for i, tok := range tokens {
		idx, ok := a.loaded.Symbols.Resolve(tok)
		if !ok {
			return ""
		}
		symbols[i] = idx
	}

	chain := fst.CompileChain(symbols)
	// a.loaded.Model was arc-sorted by output once at Load time (fst.Load's
	// doc comment explains why: sorting it here, per call, would race
	// against concurrent Generate calls on the shared model).
	composed := fst.Compose(a.loaded.Model, chain)
	if composed.Empty() {
		return ""
	}

	forms, err := fst.EnumeratePaths(composed, fst.InputTape, a.loaded.Symbols)
	if err != nil || len(forms) == 0 {
		return ""
	}

	for _, f := range forms {
		return turkcase.Lower(f)
	}
	return ""
}

// addProperIfMissing returns a copy of an with the last inflectional
// group's Proper flag set to (POS == "NNP") if it isn't already set,
// leaving an untouched otherwise.
func addProperIfMissing(an parse.Analysis) parse.Analysis {
	if len(an.IG) == 0 {
		return an
	}
	last := an.IG[len(an.IG)-1]
	if last.HasProper {
		return an
	}

	igs := append([]parse.InflectionalGroup(nil), an.IG...)
	last.HasProper = true
	last.Proper = last.POS == "NNP"
	igs[len(igs)-1] = last
	return parse.Analysis{IG: igs}
}

// batchChunkSize: each worker claims a contiguous run of this many inputs
// at a time rather than one at a time, trading a little load-balance slop
// for much lower channel overhead on large batches.
const batchChunkSize = 1000

// parallelRange calls worker(i) for every i in [0,n), fanned out across
// runtime.NumCPU() workers in chunks of batchChunkSize. Each i is handled
// by exactly one worker, so callers writing to results[i] inside worker
// need no further synchronization — this is what lets AnalyzeBatch/
// GenerateBatch return results in input order despite running concurrently.
func parallelRange(n int, worker func(i int)) {
	if n == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	type chunk struct{ start, end int }
	chunks := make(chan chunk, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for c := range chunks {
				for i := c.start; i < c.end; i++ {
					worker(i)
				}
			}
		}()
	}

	for i := 0; i < n; i += batchChunkSize {
		end := i + batchChunkSize
		if end > n {
			end = n
		}
		chunks <- chunk{start: i, end: end}
	}
	close(chunks)
	wg.Wait()
}

// AnalyzeBatch runs Analyze over every word concurrently and returns the
// results in the same order as words.
func (a *Analyzer) AnalyzeBatch(words []string, useProperFeature bool) [][]string {
	results := make([][]string, len(words))
	parallelRange(len(words), func(i int) {
		results[i] = a.Analyze(words[i], useProperFeature)
	})
	return results
}

// GenerateBatch runs Generate over every structured parse concurrently and
// returns the results in the same order as analyses.
func (a *Analyzer) GenerateBatch(analyses []parse.Analysis) []string {
	results := make([]string, len(analyses))
	parallelRange(len(analyses), func(i int) {
		results[i] = a.Generate(analyses[i])
	})
	return results
}
