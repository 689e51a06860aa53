package models

import (
	"time"

	"github.com/lehigh-university-libraries/termcheck/internal/check"
)

// CheckSession represents one completed glossary check kept by the server.
type CheckSession struct {
	ID            string        `json:"id"`
	GlossaryName  string        `json:"glossary_name"`
	SourceName    string        `json:"source_name"`
	TargetName    string        `json:"target_name"`
	BenchmarkName string        `json:"benchmark_name,omitempty"`
	Report        *check.Report `json:"report"`
	CreatedAt     time.Time     `json:"created_at"`
}
