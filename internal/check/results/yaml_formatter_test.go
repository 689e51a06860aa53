package results

import (
	"testing"

	"github.com/lehigh-university-libraries/termcheck/internal/check"
	"github.com/lehigh-university-libraries/termcheck/internal/check/metrics"
)

func TestSaveAndLoadYAML(t *testing.T) {
	accuracy := 50.0
	report := &check.Report{
		Entries: 2,
		Target: check.Comparison{
			Rows: []metrics.Row{
				{Word: "cat", SourceCount: 1, Translation: "gato", OtherCount: 1},
			},
			KPIs: metrics.KPIResult{
				UtilizationRate:       50,
				CoverageRate:          100,
				TotalSourceCount:      1,
				TotalTargetCount:      1,
				TotalCountDiscrepancy: 0,
			},
			AccuracyRate: &accuracy,
		},
		Benchmark: &check.Comparison{
			KPIs: metrics.KPIResult{TotalSourceCount: 1, TotalCountDiscrepancy: 1},
		},
	}

	outputDir := t.TempDir()
	path, err := SaveToYAML(CheckConfig{
		GlossaryPath: "terms.csv",
		SourcePath:   "src.txt",
		TargetPath:   "tgt.txt",
	}, report, outputDir)
	if err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	spec, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if spec.Config.GlossaryPath != "terms.csv" {
		t.Errorf("Glossary path not preserved: %q", spec.Config.GlossaryPath)
	}
	if spec.Config.Entries != 2 {
		t.Errorf("Entries not recorded: %d", spec.Config.Entries)
	}
	if spec.Config.Timestamp == "" {
		t.Error("Expected timestamp to be filled in")
	}

	if len(spec.Target.Rows) != 1 || spec.Target.Rows[0].Word != "cat" {
		t.Errorf("Target rows not preserved: %+v", spec.Target.Rows)
	}
	if spec.Target.KPIs != report.Target.KPIs {
		t.Errorf("Target KPIs not preserved: %+v", spec.Target.KPIs)
	}
	if spec.Target.AccuracyRate == nil || *spec.Target.AccuracyRate != accuracy {
		t.Errorf("Accuracy rate not preserved: %v", spec.Target.AccuracyRate)
	}

	if spec.Benchmark == nil {
		t.Fatal("Benchmark section not preserved")
	}
	if spec.Benchmark.KPIs.TotalCountDiscrepancy != 1 {
		t.Errorf("Benchmark KPIs not preserved: %+v", spec.Benchmark.KPIs)
	}
}

func TestLoadFromYAML_Missing(t *testing.T) {
	if _, err := LoadFromYAML(t.TempDir() + "/missing.yaml"); err == nil {
		t.Error("Expected error for missing results file")
	}
}
