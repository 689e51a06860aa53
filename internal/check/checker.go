// Package check runs a single glossary-adherence check: it normalizes the
// glossary and document texts, counts whole-word term occurrences, and
// derives KPIs and result rows for the target and optional benchmark
// documents. Everything here is pure computation over already-materialized
// strings; callers own all I/O.
package check

import (
	"fmt"

	"github.com/lehigh-university-libraries/termcheck/internal/check/glossary"
	"github.com/lehigh-university-libraries/termcheck/internal/check/metrics"
	"github.com/lehigh-university-libraries/termcheck/internal/check/terms"
)

// Input is everything one check needs. BenchmarkText is optional; when it is
// empty and HasBenchmark is false, no benchmark comparison is produced.
type Input struct {
	Glossary glossary.Glossary

	SourceText string
	TargetText string

	// HasBenchmark distinguishes "no benchmark supplied" from "benchmark
	// supplied but extraction produced no text" — the latter still yields a
	// (degenerate, all-zero) benchmark comparison.
	BenchmarkText string
	HasBenchmark  bool

	// IncludeAccuracy opts in to the accuracy-rate extension.
	IncludeAccuracy bool
}

// Comparison holds the result of checking the glossary against one
// translated document (target or benchmark).
type Comparison struct {
	Rows []metrics.Row     `json:"rows" yaml:"rows"`
	KPIs metrics.KPIResult `json:"kpis" yaml:"kpis"`

	// AccuracyRate is present only when the check opted in to it.
	AccuracyRate *float64 `json:"accuracy_rate,omitempty" yaml:"accuracyrate,omitempty"`
}

// Report is the full outcome of one check run.
type Report struct {
	Entries   int         `json:"entries" yaml:"entries"`
	Target    Comparison  `json:"target" yaml:"target"`
	Benchmark *Comparison `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`
}

// Run executes one check. It validates the glossary shape up front and
// builds fresh count mappings per invocation; nothing is shared or retained
// between runs.
func Run(in Input) (*Report, error) {
	if err := in.Glossary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid glossary: %w", err)
	}

	words := terms.NormalizeAll(in.Glossary.Words)
	translations := terms.NormalizeAll(in.Glossary.Translations)

	sourceCounts := terms.CountOccurrences(terms.Normalize(in.SourceText), words)
	targetCounts := terms.CountOccurrences(terms.Normalize(in.TargetText), translations)

	report := &Report{
		Entries: in.Glossary.Len(),
	}

	target, err := compare(words, translations, sourceCounts, targetCounts, in.IncludeAccuracy)
	if err != nil {
		return nil, err
	}
	report.Target = target

	if in.HasBenchmark {
		benchmarkCounts := terms.CountOccurrences(terms.Normalize(in.BenchmarkText), translations)
		benchmark, err := compare(words, translations, sourceCounts, benchmarkCounts, in.IncludeAccuracy)
		if err != nil {
			return nil, err
		}
		report.Benchmark = &benchmark
	}

	return report, nil
}

// compare builds the rows and KPIs for one (source, translated) pair. The
// benchmark path reuses this verbatim with benchmark counts in place of
// target counts.
func compare(words, translations []string, sourceCounts, otherCounts map[string]int, includeAccuracy bool) (Comparison, error) {
	kpis, err := metrics.Calculate(words, translations, sourceCounts, otherCounts)
	if err != nil {
		return Comparison{}, err
	}

	rows, err := metrics.BuildRows(words, translations, sourceCounts, otherCounts)
	if err != nil {
		return Comparison{}, err
	}

	comparison := Comparison{
		Rows: rows,
		KPIs: kpis,
	}

	if includeAccuracy {
		accuracy, err := metrics.AccuracyRate(words, translations, sourceCounts, otherCounts)
		if err != nil {
			return Comparison{}, err
		}
		comparison.AccuracyRate = &accuracy
	}

	return comparison, nil
}
