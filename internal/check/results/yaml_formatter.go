package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lehigh-university-libraries/termcheck/internal/check"
	"gopkg.in/yaml.v3"
)

// CheckConfig records what went into a check run.
type CheckConfig struct {
	GlossaryPath  string `yaml:"glossarypath"`
	SourcePath    string `yaml:"sourcepath"`
	TargetPath    string `yaml:"targetpath"`
	BenchmarkPath string `yaml:"benchmarkpath,omitempty"`
	Entries       int    `yaml:"entries"`
	Timestamp     string `yaml:"timestamp"`
}

// CheckSpec is the complete saved result of one check run.
type CheckSpec struct {
	Config    CheckConfig       `yaml:"config"`
	Target    check.Comparison  `yaml:"target"`
	Benchmark *check.Comparison `yaml:"benchmark,omitempty"`
}

// SaveToYAML saves a check report to a timestamped YAML file under outputDir
// and returns the path it wrote.
func SaveToYAML(config CheckConfig, report *check.Report, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if config.Timestamp == "" {
		config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}
	config.Entries = report.Entries

	spec := CheckSpec{
		Config:    config,
		Target:    report.Target,
		Benchmark: report.Benchmark,
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("check-%s.yaml", config.Timestamp))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	return filename, nil
}

// LoadFromYAML reads a saved check result back for reporting.
func LoadFromYAML(path string) (*CheckSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var spec CheckSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}

	return &spec, nil
}
