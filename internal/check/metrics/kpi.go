package metrics

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates the glossary's word and translation columns
// have different lengths. The engine refuses to truncate or pad.
var ErrLengthMismatch = errors.New("words and translations have different lengths")

// KPIResult holds the aggregate glossary-adherence indicators for one
// document pair. Rates are percentages in [0,100]; a zero denominator yields
// a rate of 0 so results are always displayable.
type KPIResult struct {
	// UtilizationRate is the percentage of glossary entries whose
	// translation appears at least once in the target text, over all
	// entries regardless of source-side presence.
	UtilizationRate float64 `json:"utilization_rate" yaml:"utilizationrate"`

	// CoverageRate is the percentage of entries whose translation appears
	// in the target text, among entries whose source word appears in the
	// source text. It answers "of the source terms actually used, how many
	// were translated" and is deliberately independent of UtilizationRate.
	CoverageRate float64 `json:"coverage_rate" yaml:"coveragerate"`

	// TotalSourceCount sums source occurrences over all entries; repeated
	// words accumulate once per entry.
	TotalSourceCount int `json:"total_source_count" yaml:"totalsourcecount"`

	// TotalTargetCount sums target occurrences over all translations.
	TotalTargetCount int `json:"total_target_count" yaml:"totaltargetcount"`

	// TotalCountDiscrepancy is |TotalSourceCount - TotalTargetCount|.
	TotalCountDiscrepancy int `json:"total_count_discrepancy" yaml:"totalcountdiscrepancy"`
}

// Calculate derives the KPIResult for a glossary against one pair of count
// mappings. Calling it with benchmark counts in place of target counts
// produces the benchmark comparison; there is no separate code path.
func Calculate(words, translations []string, sourceCounts, targetCounts map[string]int) (KPIResult, error) {
	if len(words) != len(translations) {
		return KPIResult{}, fmt.Errorf("%w: %d words, %d translations", ErrLengthMismatch, len(words), len(translations))
	}

	var result KPIResult

	translated := 0
	sourcePresent := 0
	covered := 0

	for i, word := range words {
		translation := translations[i]

		sourceCount := sourceCounts[word]
		targetCount := targetCounts[translation]

		result.TotalSourceCount += sourceCount
		result.TotalTargetCount += targetCount

		if targetCount > 0 {
			translated++
		}
		if sourceCount > 0 {
			sourcePresent++
			if targetCount > 0 {
				covered++
			}
		}
	}

	result.TotalCountDiscrepancy = result.TotalSourceCount - result.TotalTargetCount
	if result.TotalCountDiscrepancy < 0 {
		result.TotalCountDiscrepancy = -result.TotalCountDiscrepancy
	}

	result.UtilizationRate = percentage(translated, len(words))
	result.CoverageRate = percentage(covered, sourcePresent)

	return result, nil
}

// AccuracyRate is an opt-in extension: among entries whose source word
// appears in the source text, the percentage whose translation occurs in the
// target text exactly as many times as the word occurs in the source text.
func AccuracyRate(words, translations []string, sourceCounts, targetCounts map[string]int) (float64, error) {
	if len(words) != len(translations) {
		return 0, fmt.Errorf("%w: %d words, %d translations", ErrLengthMismatch, len(words), len(translations))
	}

	sourcePresent := 0
	exact := 0
	for i, word := range words {
		sourceCount := sourceCounts[word]
		if sourceCount == 0 {
			continue
		}
		sourcePresent++
		if targetCounts[translations[i]] == sourceCount {
			exact++
		}
	}

	return percentage(exact, sourcePresent), nil
}

func percentage(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
