// Command turkmorphctl is a thin manual-testing entry point over the
// compiler and the analyzer façade: compile a lexicon+morphotactics source
// tree into the two artifact files, then analyze a surface form or
// generate one from a human-readable analysis. It is not a treebank
// evaluation harness.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/anlamtek/turkmorph/analyzer"
	"github.com/anlamtek/turkmorph/fstcompile"
	"github.com/anlamtek/turkmorph/parse"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compile":
		err = compileCmd(os.Args[2:])
	case "analyze":
		err = analyzeCmd(os.Args[2:])
	case "generate":
		err = generateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("turkmorphctl %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: turkmorphctl <compile|analyze|generate> [flags]")
}

func compileCmd(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	lexiconDir := fs.String("lexicon", "", "directory of lexicon *.tsv files")
	morphotacticsDir := fs.String("morphotactics", "", "directory of morphotactics *.txt files")
	outDir := fs.String("out", ".", "directory to write the compiled artifact files into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	artifact, err := fstcompile.Compile(*lexiconDir, *morphotacticsDir)
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}

	fstPath := filepath.Join(*outDir, "morphotactics.fst.txt")
	if err := os.WriteFile(fstPath, []byte(artifact.TextFST), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", fstPath, err)
	}
	symbolsPath := filepath.Join(*outDir, "complex_symbols.syms")
	if err := os.WriteFile(symbolsPath, []byte(artifact.SymbolsTable), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", symbolsPath, err)
	}

	log.Printf("wrote %s and %s", fstPath, symbolsPath)
	return nil
}

func analyzeCmd(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	useProper := fs.Bool("proper", true, "include the Proper feature in results")
	fstPath := fs.String("fst", "", "path to the compiled text FST (defaults per fst.Load)")
	symbolsPath := fs.String("symbols", "", "path to the compiled complex symbols table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing surface form argument")
	}

	a, err := loadAnalyzer(*fstPath, *symbolsPath)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, result := range a.Analyze(fs.Arg(0), *useProper) {
		fmt.Println(result)
	}
	return nil
}

func generateCmd(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fstPath := fs.String("fst", "", "path to the compiled text FST (defaults per fst.Load)")
	symbolsPath := fs.String("symbols", "", "path to the compiled complex symbols table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing human-readable analysis argument")
	}

	parsed, err := parse.Decompose(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("decomposing: %w", err)
	}
	if err := parse.Validate(parsed); err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	a, err := loadAnalyzer(*fstPath, *symbolsPath)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println(a.Generate(parsed))
	return nil
}

func loadAnalyzer(fstPath, symbolsPath string) (*analyzer.Analyzer, error) {
	if fstPath == "" && symbolsPath == "" {
		return analyzer.Load()
	}
	return analyzer.LoadFiles(fstPath, symbolsPath)
}
