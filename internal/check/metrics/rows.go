package metrics

import "fmt"

// Row is one glossary entry joined with its occurrence counts in two
// documents, ready for table rendering.
type Row struct {
	Word        string `json:"word" yaml:"word"`
	SourceCount int    `json:"source_count" yaml:"sourcecount"`
	Translation string `json:"translation" yaml:"translation"`
	OtherCount  int    `json:"other_count" yaml:"othercount"`
}

// BuildRows joins per-entry source counts with counts from a second document
// (target or benchmark). Entries absent from both documents are suppressed
// as noise; surviving rows keep glossary entry order.
func BuildRows(words, translations []string, sourceCounts, otherCounts map[string]int) ([]Row, error) {
	if len(words) != len(translations) {
		return nil, fmt.Errorf("%w: %d words, %d translations", ErrLengthMismatch, len(words), len(translations))
	}

	rows := make([]Row, 0, len(words))
	for i, word := range words {
		translation := translations[i]
		sourceCount := sourceCounts[word]
		otherCount := otherCounts[translation]

		if sourceCount == 0 && otherCount == 0 {
			continue
		}

		rows = append(rows, Row{
			Word:        word,
			SourceCount: sourceCount,
			Translation: translation,
			OtherCount:  otherCount,
		})
	}

	return rows, nil
}
