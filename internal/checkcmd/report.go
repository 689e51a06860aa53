package checkcmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lehigh-university-libraries/termcheck/internal/check/metrics"
	"github.com/lehigh-university-libraries/termcheck/internal/check/results"
)

func executeReport(resultsPath, format string) error {
	// Load results
	spec, err := results.LoadFromYAML(resultsPath)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	switch format {
	case "text":
		return printTextReport(spec)
	case "json":
		return printJSONReport(spec)
	case "csv":
		return printCSVReport(spec)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printTextReport(spec *results.CheckSpec) error {
	fmt.Println("========================================")
	fmt.Printf("Glossary Adherence Report\n")
	fmt.Println("========================================")
	fmt.Printf("Glossary:  %s (%d entries)\n", spec.Config.GlossaryPath, spec.Config.Entries)
	fmt.Printf("Source:    %s\n", spec.Config.SourcePath)
	fmt.Printf("Target:    %s\n", spec.Config.TargetPath)
	if spec.Config.BenchmarkPath != "" {
		fmt.Printf("Benchmark: %s\n", spec.Config.BenchmarkPath)
	}
	fmt.Printf("Timestamp: %s\n", spec.Config.Timestamp)

	printComparison("Source & Target", spec.Config.Entries, spec.Target)
	printRowTable("Word and Translation Counts (Source & Target)", "Count in Target", spec.Target.Rows)

	if spec.Benchmark != nil {
		printComparison("Source & Benchmark", spec.Config.Entries, *spec.Benchmark)
		printRowTable("Word and Translation Counts (Source & Benchmark)", "Count in Benchmark", spec.Benchmark.Rows)
	}

	return nil
}

func printRowTable(title, countHeader string, rows []metrics.Row) {
	fmt.Printf("\n%s\n", title)
	fmt.Println("----------------------------------------")

	if len(rows) == 0 {
		fmt.Println("No glossary terms occurred in either document.")
		return
	}

	fmt.Printf("%-30s %15s   %-30s %15s\n", "Word", "Count in Source", "Translation", countHeader)
	for _, row := range rows {
		fmt.Printf("%-30s %15d   %-30s %15d\n",
			truncate(row.Word, 30),
			row.SourceCount,
			truncate(row.Translation, 30),
			row.OtherCount)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func printJSONReport(spec *results.CheckSpec) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(spec)
}

func printCSVReport(spec *results.CheckSpec) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	// Write header
	header := []string{"Comparison", "Word", "Count in Source", "Translation", "Count"}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Write rows
	for _, row := range spec.Target.Rows {
		record := []string{
			"target",
			row.Word,
			strconv.Itoa(row.SourceCount),
			row.Translation,
			strconv.Itoa(row.OtherCount),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if spec.Benchmark != nil {
		for _, row := range spec.Benchmark.Rows {
			record := []string{
				"benchmark",
				row.Word,
				strconv.Itoa(row.SourceCount),
				row.Translation,
				strconv.Itoa(row.OtherCount),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}
