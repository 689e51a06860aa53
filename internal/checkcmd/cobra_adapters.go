package checkcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command for executing a glossary check
func NewRunCmd() *cobra.Command {
	var glossaryPath string
	var sourcePath string
	var targetPath string
	var benchmarkPath string
	var outputDir string
	var includeAccuracy bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check glossary adherence across a document pair",
		Long: `Run a glossary-adherence check.

Counts whole-word occurrences of every glossary term in the source document
and of every approved translation in the target document, then derives the
adherence KPIs (utilization rate, coverage rate, count discrepancy, totals).

An optional benchmark document is checked against the same glossary as an
alternative to the candidate target.`,
		Example: `  # Check a translation against its source
  termcheck check run --glossary terms.xlsx --source src.pdf --target tgt.pdf

  # Include a benchmark translation and the optional accuracy rate
  termcheck check run --glossary terms.csv --source src.pdf --target tgt.pdf \
    --benchmark bench.pdf --accuracy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for flag, path := range map[string]string{"glossary": glossaryPath, "source": sourcePath, "target": targetPath} {
				if _, err := os.Stat(path); os.IsNotExist(err) {
					return fmt.Errorf("--%s file not found: %s", flag, path)
				}
			}
			if benchmarkPath != "" {
				if _, err := os.Stat(benchmarkPath); os.IsNotExist(err) {
					return fmt.Errorf("--benchmark file not found: %s", benchmarkPath)
				}
			}

			return executeRun(glossaryPath, sourcePath, targetPath, benchmarkPath, outputDir, includeAccuracy)
		},
	}

	cmd.Flags().StringVar(&glossaryPath, "glossary", "", "Path to glossary file (.xlsx, .csv, .tsv, or .parquet) (required)")
	cmd.Flags().StringVar(&sourcePath, "source", "", "Path to source-language document (.pdf or .txt) (required)")
	cmd.Flags().StringVar(&targetPath, "target", "", "Path to target-language document (.pdf or .txt) (required)")
	cmd.Flags().StringVar(&benchmarkPath, "benchmark", "", "Path to optional benchmark document (.pdf or .txt)")
	cmd.Flags().StringVar(&outputDir, "output", "checks", "Directory for saved result files")
	cmd.Flags().BoolVar(&includeAccuracy, "accuracy", false, "Also report the accuracy rate (exact count matches)")

	_ = cmd.MarkFlagRequired("glossary")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// NewReportCmd creates the report command for rendering saved results
func NewReportCmd() *cobra.Command {
	var resultsPath string
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a saved check result",
		Long: `Render a saved check result file in one of several formats.

The text format prints the KPI summary and per-term count tables; json and
csv are meant for piping into other tools.`,
		Example: `  # Human-readable report
  termcheck check report --results checks/check-2026-01-02_15-04-05.yaml

  # Machine-readable formats
  termcheck check report --results checks/check-2026-01-02_15-04-05.yaml --format json
  termcheck check report --results checks/check-2026-01-02_15-04-05.yaml --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(resultsPath); os.IsNotExist(err) {
				return fmt.Errorf("results file not found: %s", resultsPath)
			}

			return executeReport(resultsPath, format)
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to a saved check result YAML file (required)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, or csv)")

	_ = cmd.MarkFlagRequired("results")

	return cmd
}

// NewInspectCmd creates the inspect command for examining glossary files
func NewInspectCmd() *cobra.Command {
	var glossaryPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a glossary file (useful for verifying columns)",
		Long: `Inspect a glossary file before running a check.

Shows how many entries were parsed and prints the first entries, which is
useful for verifying that the word and translations columns were detected.`,
		Example: `  # Show the first 10 entries
  termcheck check inspect --glossary terms.xlsx

  # Show all entries
  termcheck check inspect --glossary terms.xlsx --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(glossaryPath); os.IsNotExist(err) {
				return fmt.Errorf("glossary file not found: %s", glossaryPath)
			}

			return executeInspect(glossaryPath, limit)
		},
	}

	cmd.Flags().StringVar(&glossaryPath, "glossary", "", "Path to glossary file (.xlsx, .csv, .tsv, or .parquet) (required)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to print (0 for all)")

	_ = cmd.MarkFlagRequired("glossary")

	return cmd
}
