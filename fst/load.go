package fst

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
)

// EnvFSTPath and EnvSymbolsPath override the default, package-relative
// locations of the compiled analyzer artifact.
const (
	EnvFSTPath     = "TURKMORPH_FST_PATH"
	EnvSymbolsPath = "TURKMORPH_SYMBOLS_PATH"
)

const (
	defaultFSTFile     = "morphotactics.fst.txt"
	defaultSymbolsFile = "complex_symbols.syms"
)

// Analyzer is the loaded, immutable analyzer FST plus its symbol table. It
// is memory-mapped at Load and safe for concurrent read-only use across
// goroutines: every per-request FST (chain, composed) is owned by its
// caller and never shared.
type Analyzer struct {
	Model   *FST
	Symbols *SymbolTable

	fstMap     mmap.MMap
	symbolsMap mmap.MMap
}

// Close unmaps the backing files. The Analyzer must not be used afterward.
func (a *Analyzer) Close() error {
	var firstErr error
	if a.fstMap != nil {
		if err := a.fstMap.Unmap(); err != nil {
			firstErr = err
		}
	}
	if a.symbolsMap != nil {
		if err := a.symbolsMap.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Load resolves the analyzer artifact paths (environment variables first,
// then paths relative to this package's own source directory, mirroring
// LoadMorphAnalyzer's runtime.Caller-based fallback) and loads them.
func Load() (*Analyzer, error) {
	fstPath := os.Getenv(EnvFSTPath)
	symbolsPath := os.Getenv(EnvSymbolsPath)

	if fstPath == "" || symbolsPath == "" {
		_, here, _, ok := runtime.Caller(0)
		if !ok {
			return nil, fmt.Errorf("fst: could not determine package directory for default artifact paths")
		}
		dir := filepath.Dir(here)
		if fstPath == "" {
			fstPath = filepath.Join(dir, defaultFSTFile)
		}
		if symbolsPath == "" {
			symbolsPath = filepath.Join(dir, defaultSymbolsFile)
		}
	}

	return LoadFiles(fstPath, symbolsPath)
}

// LoadFiles memory-maps the text FST and complex-symbols-table files at
// the given paths and builds the runtime Analyzer from their contents.
func LoadFiles(fstPath, symbolsPath string) (*Analyzer, error) {
	symbolsFile, err := os.Open(symbolsPath)
	if err != nil {
		return nil, fmt.Errorf("fst: opening symbols table %q: %w", symbolsPath, err)
	}
	defer symbolsFile.Close()

	symbolsMap, err := mmap.Map(symbolsFile, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("fst: mmap of symbols table %q: %w", symbolsPath, err)
	}

	symtab, err := parseSymbolsTable(symbolsMap)
	if err != nil {
		_ = symbolsMap.Unmap()
		return nil, fmt.Errorf("fst: parsing symbols table %q: %w", symbolsPath, err)
	}

	fstFile, err := os.Open(fstPath)
	if err != nil {
		_ = symbolsMap.Unmap()
		return nil, fmt.Errorf("fst: opening text FST %q: %w", fstPath, err)
	}
	defer fstFile.Close()

	fstMap, err := mmap.Map(fstFile, mmap.RDONLY, 0)
	if err != nil {
		_ = symbolsMap.Unmap()
		return nil, fmt.Errorf("fst: mmap of text FST %q: %w", fstPath, err)
	}

	model, err := parseTextFST(fstMap, symtab)
	if err != nil {
		_ = symbolsMap.Unmap()
		_ = fstMap.Unmap()
		return nil, fmt.Errorf("fst: parsing text FST %q: %w", fstPath, err)
	}

	// Generate composes the model with a token chain after arc-sorting the
	// model by output. Doing that sort once here, at load, rather than on
	// every Generate call, is what keeps the loaded Analyzer safe for
	// concurrent Generate calls: sorting a shared slice in place from
	// multiple goroutines would race.
	ArcSortByOutput(model)

	return &Analyzer{
		Model:      model,
		Symbols:    symtab,
		fstMap:     fstMap,
		symbolsMap: symbolsMap,
	}, nil
}

func parseSymbolsTable(data []byte) (*SymbolTable, error) {
	symtab := NewSymbolTable()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed symbols table line %q", line)
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed symbols table index in line %q: %w", line, err)
		}
		symtab.Add(fields[0], index)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return symtab, nil
}

// parseTextFST reads the AT&T-format text FST emitted by fstcompile: every
// line but the last is an arc "FROM\tTO\tINPUT\tOUTPUT\n", where INPUT is a
// complex (output-tape) symbol and OUTPUT is a single surface rune
// (input-tape symbol) or "<eps>". The last line is the bare accept state
// index.
//
// Tape assignment follows the package doc's tape-direction resolution: the
// file's OUTPUT column (a surface rune) becomes this runtime's ILabel, and
// the file's INPUT column (the analysis token) becomes OLabel. A surface
// rune whose UTF-8 encoding is more than one byte is expanded into a chain
// of single-byte ILabel arcs (the first carrying the real OLabel, the rest
// epsilon on that tape) so the model's byte tape lines up exactly with the
// literal UTF-8 byte chain analyzer.Analyze builds from a caller's word.
func parseTextFST(data []byte, symtab *SymbolTable) (*FST, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty text FST")
	}

	f := &FST{}
	ensureState := func(idx int) {
		for f.NumStates() <= idx {
			f.addState()
		}
	}

	acceptLine := lines[len(lines)-1]
	arcLines := lines[:len(lines)-1]

	// Allocate every state the file names before any multi-byte expansion,
	// so expansion states are numbered past them and never alias a state
	// that a later arc line refers to.
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) > 2 {
			fields = fields[:2]
		}
		for _, field := range fields {
			if idx, err := strconv.Atoi(strings.TrimSpace(field)); err == nil {
				ensureState(idx)
			}
		}
	}

	for lineNo, line := range arcLines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("arc line %d: expected 4 tab-separated fields, got %d", lineNo+1, len(fields))
		}

		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("arc line %d: invalid from-state %q", lineNo+1, fields[0])
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("arc line %d: invalid to-state %q", lineNo+1, fields[1])
		}
		ensureState(from)
		ensureState(to)

		olabel, err := complexSymbolIndex(fields[2], symtab)
		if err != nil {
			return nil, fmt.Errorf("arc line %d: %w", lineNo+1, err)
		}

		ilabels, err := surfaceByteLabels(fields[3])
		if err != nil {
			return nil, fmt.Errorf("arc line %d: %w", lineNo+1, err)
		}

		switch len(ilabels) {
		case 0:
			f.addArc(from, Arc{To: to, ILabel: Epsilon, OLabel: olabel})
		case 1:
			f.addArc(from, Arc{To: to, ILabel: ilabels[0], OLabel: olabel})
		default:
			state := from
			for i, ilabel := range ilabels {
				lbl := Epsilon
				if i == 0 {
					lbl = olabel
				}
				var next int
				if i == len(ilabels)-1 {
					next = to
				} else {
					next = f.addState()
				}
				f.addArc(state, Arc{To: next, ILabel: ilabel, OLabel: lbl})
				state = next
			}
		}
	}

	accept, err := strconv.Atoi(strings.TrimSpace(acceptLine))
	if err != nil {
		return nil, fmt.Errorf("invalid accept-state line %q: %w", acceptLine, err)
	}
	ensureState(accept)
	f.Final[accept] = true
	f.Start = 0

	return f, nil
}

const epsilonLabel = "<eps>"

// complexSymbolIndex resolves the analysis-side (output-tape) token of a
// single arc line: epsilon, a single-rune literal (indexed by its own code
// point), or a complex symbols table lookup.
func complexSymbolIndex(label string, symtab *SymbolTable) (int, error) {
	if label == epsilonLabel {
		return Epsilon, nil
	}
	if utf8.RuneCountInString(label) == 1 {
		r, _ := utf8.DecodeRuneInString(label)
		return RuneIndex(r), nil
	}
	idx, ok := symtab.Index(label)
	if !ok {
		return 0, fmt.Errorf("unknown complex symbol %q", label)
	}
	return idx, nil
}

// surfaceByteLabels resolves the surface-side (input-tape) token of a
// single arc line into zero or more raw UTF-8 byte values: zero for
// epsilon, or one per byte of the token's single rune.
func surfaceByteLabels(label string) ([]int, error) {
	if label == epsilonLabel {
		return nil, nil
	}
	if utf8.RuneCountInString(label) != 1 {
		return nil, fmt.Errorf("expected a single surface rune or <eps>, got %q", label)
	}
	bs := []byte(label)
	labels := make([]int, len(bs))
	for i, b := range bs {
		labels[i] = int(b)
	}
	return labels, nil
}
