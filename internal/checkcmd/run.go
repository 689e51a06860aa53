package checkcmd

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lehigh-university-libraries/termcheck/internal/check"
	"github.com/lehigh-university-libraries/termcheck/internal/check/glossary"
	"github.com/lehigh-university-libraries/termcheck/internal/check/results"
	"github.com/lehigh-university-libraries/termcheck/internal/extract"
)

// extraction is the outcome of extracting one document's text.
type extraction struct {
	role string
	text string
	err  error
}

func executeRun(glossaryPath, sourcePath, targetPath, benchmarkPath, outputDir string, includeAccuracy bool) error {
	slog.Info("Starting glossary check", "glossary", glossaryPath, "source", sourcePath, "target", targetPath, "benchmark", benchmarkPath)

	// Load glossary
	slog.Info("Loading glossary...")
	g, err := glossary.NewLoader(glossaryPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load glossary: %w", err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("failed to load glossary: %w", err)
	}

	slog.Info("Glossary loaded", "entries", g.Len())

	// Extract the documents concurrently; each extraction is independent
	documents := map[string]string{
		"source": sourcePath,
		"target": targetPath,
	}
	if benchmarkPath != "" {
		documents["benchmark"] = benchmarkPath
	}

	var wg sync.WaitGroup
	extractions := make(chan extraction, len(documents))

	for role, path := range documents {
		wg.Add(1)
		go func(role, path string) {
			defer wg.Done()

			slog.Info("Extracting document text", "role", role, "path", path)
			text, err := extract.File(path)
			extractions <- extraction{role: role, text: text, err: err}
		}(role, path)
	}

	go func() {
		wg.Wait()
		close(extractions)
	}()

	texts := make(map[string]string, len(documents))
	for e := range extractions {
		if e.err != nil {
			return fmt.Errorf("failed to extract %s document: %w", e.role, e.err)
		}
		texts[e.role] = e.text
	}

	// Run the check
	report, err := check.Run(check.Input{
		Glossary:        g,
		SourceText:      texts["source"],
		TargetText:      texts["target"],
		BenchmarkText:   texts["benchmark"],
		HasBenchmark:    benchmarkPath != "",
		IncludeAccuracy: includeAccuracy,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	// Save results
	slog.Info("Saving results", "output", outputDir)
	savedPath, err := results.SaveToYAML(results.CheckConfig{
		GlossaryPath:  glossaryPath,
		SourcePath:    sourcePath,
		TargetPath:    targetPath,
		BenchmarkPath: benchmarkPath,
	}, report, outputDir)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Print summary
	printComparison("Source & Target", report.Entries, report.Target)
	if report.Benchmark != nil {
		printComparison("Source & Benchmark", report.Entries, *report.Benchmark)
	}

	fmt.Printf("\nResults saved to: %s\n", savedPath)
	fmt.Printf("\nGenerate detailed report with:\n")
	fmt.Printf("  termcheck check report --results %s\n", savedPath)

	return nil
}

func printComparison(label string, entries int, comparison check.Comparison) {
	fmt.Println("\n========================================")
	fmt.Printf("KPIs (%s)\n", label)
	fmt.Println("========================================")
	fmt.Printf("Glossary Entries:             %d\n", entries)
	fmt.Printf("Glossary Utilization Rate:    %.2f%%\n", comparison.KPIs.UtilizationRate)
	fmt.Printf("Translation Coverage Rate:    %.2f%%\n", comparison.KPIs.CoverageRate)
	if comparison.AccuracyRate != nil {
		fmt.Printf("Accuracy Rate:                %.2f%%\n", *comparison.AccuracyRate)
	}
	fmt.Printf("Total Source Terms Count:     %d\n", comparison.KPIs.TotalSourceCount)
	fmt.Printf("Total Translated Terms Count: %d\n", comparison.KPIs.TotalTargetCount)
	fmt.Printf("Total Count Discrepancy:      %d\n", comparison.KPIs.TotalCountDiscrepancy)
	fmt.Printf("Terms With Any Occurrence:    %d\n", len(comparison.Rows))
	fmt.Println("========================================")
}
