// Command hoonlint is the CLI front end: it reads a source file, parses it
// with pkgs/parser's demonstration frontend, walks the resulting CST with
// pkgs/lint, and prints diagnostics through pkgs/report, applying the
// suppression/inclusion filter of pkgs/suppress. Mirrors the root/no
// subcommand structure of the teacher's cmd/devcmd/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/hoonlint/pkgs/lint"
	"github.com/aledsdavies/hoonlint/pkgs/parser"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
	"github.com/aledsdavies/hoonlint/pkgs/report"
	"github.com/aledsdavies/hoonlint/pkgs/suppress"
)

var log = logrus.StandardLogger()

var (
	verbose          bool
	contextSize      int
	censusWhitespace bool
	inclusionsFile   string
	suppressionFiles []string
	policy           string
)

const defaultSuppressionsFile = "./suppressions"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoonlint [flags] file",
	Short: "Check Hoon source whitespace against the tall-form indentation rules",
	Long: `hoonlint parses a Hoon source file, classifies every construct's
indentation shape, and reports whitespace mistakes: misaligned jogs,
wrong gap-indent columns, and sequence-alignment errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "reserved; no behavioral effect")
	rootCmd.Flags().IntVarP(&contextSize, "context", "C", 2, "context window size in lines around each reported line (0 means no source shown)")
	rootCmd.Flags().BoolVar(&censusWhitespace, "census-whitespace", false, "emit a diagnostic for every inspected construct, including suppressed ones")
	rootCmd.Flags().StringVarP(&inclusionsFile, "inclusions-file", "I", "", "only report diagnostics whose tag appears in FILE")
	rootCmd.Flags().StringArrayVarP(&suppressionFiles, "suppressions_file", "S", nil, "drop diagnostics whose tag appears in FILE (repeatable)")
	rootCmd.Flags().StringVarP(&policy, "policy", "P", "Test::Whitespace", "select policy")
}

func runLint(cmd *cobra.Command, args []string) error {
	file := args[0]

	if policy != "Test::Whitespace" {
		log.WithField("file", file).Errorf("unknown policy %q", policy)
		return fmt.Errorf("unknown policy %q", policy)
	}

	src, err := os.ReadFile(file)
	if err != nil {
		log.WithField("file", file).Error(err)
		return err
	}

	gram := parser.NewGrammar()
	tree, root, perr := parser.Parse(src, gram)
	if perr != nil {
		log.WithField("file", file).Error(perr)
		return perr
	}

	idx := posidx.New(src)
	walker := lint.NewWalker(tree, idx, gram.Symbols, gram.Rules, gram.Classifier)
	walker.CensusWhitespace = censusWhitespace

	mistakes, census, werr := walker.WalkCensus(root)
	if werr != nil {
		fields := logrus.Fields{"file": file}
		if ie, ok := werr.(*lint.InternalError); ok {
			fields["component"] = ie.Component
			fields["function"] = ie.Function
		}
		log.WithFields(fields).Panic(werr)
	}

	suppressionPaths := suppressionFiles
	if len(suppressionPaths) == 0 {
		if _, statErr := os.Stat(defaultSuppressionsFile); statErr == nil {
			suppressionPaths = []string{defaultSuppressionsFile}
		}
	}

	var suppressions []suppress.Entry
	for _, path := range suppressionPaths {
		entries, loadErr := suppress.LoadEntries(path)
		if loadErr != nil {
			log.WithField("file", path).Error(loadErr)
			return loadErr
		}
		suppressions = append(suppressions, entries...)
	}

	var inclusions []suppress.Entry
	if inclusionsFile != "" {
		entries, loadErr := suppress.LoadEntries(inclusionsFile)
		if loadErr != nil {
			log.WithField("file", inclusionsFile).Error(loadErr)
			return loadErr
		}
		// A non-nil slice keeps the inclusion gate active even when the
		// file lists no entries.
		inclusions = append([]suppress.Entry{}, entries...)
	}

	filter := suppress.NewFilter(suppressions, inclusions, censusWhitespace)
	reporter := report.New(file, idx, contextSize)

	for _, m := range mistakes {
		reportCol := m.Column + 1
		emit, suppressed := filter.Decide(file, m.Line, reportCol, m.Kind)
		if !emit {
			continue
		}
		description := m.Description
		if suppressed {
			description = "SUPPRESSION " + description
		}
		reporter.Record(m, description)
	}

	for _, rec := range census {
		reporter.RecordCensus(rec)
	}

	for _, line := range reporter.DiagnosticLines() {
		fmt.Println(line)
	}
	if rendered := reporter.RenderSource(); rendered != "" {
		fmt.Print(rendered)
	}
	for _, line := range report.FormatUnusedSuppressions(filter.UnusedSuppressions()) {
		fmt.Println(line)
	}

	return nil
}
