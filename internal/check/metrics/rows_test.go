package metrics

import (
	"errors"
	"testing"
)

func TestBuildRows(t *testing.T) {
	tests := []struct {
		name         string
		words        []string
		translations []string
		sourceCounts map[string]int
		otherCounts  map[string]int
		expected     []Row
	}{
		{
			name:         "all-zero entries suppressed",
			words:        []string{"cat", "dog", "bird"},
			translations: []string{"gato", "perro", "pájaro"},
			sourceCounts: map[string]int{"cat": 1, "dog": 0, "bird": 0},
			otherCounts:  map[string]int{"gato": 1, "perro": 1, "pájaro": 0},
			expected: []Row{
				{Word: "cat", SourceCount: 1, Translation: "gato", OtherCount: 1},
				{Word: "dog", SourceCount: 0, Translation: "perro", OtherCount: 1},
			},
		},
		{
			name:         "glossary order preserved regardless of counts",
			words:        []string{"zebra", "apple"},
			translations: []string{"cebra", "manzana"},
			sourceCounts: map[string]int{"zebra": 1, "apple": 9},
			otherCounts:  map[string]int{"cebra": 1, "manzana": 1},
			expected: []Row{
				{Word: "zebra", SourceCount: 1, Translation: "cebra", OtherCount: 1},
				{Word: "apple", SourceCount: 9, Translation: "manzana", OtherCount: 1},
			},
		},
		{
			name:         "source-only entry kept",
			words:        []string{"cat"},
			translations: []string{"gato"},
			sourceCounts: map[string]int{"cat": 2},
			otherCounts:  map[string]int{},
			expected: []Row{
				{Word: "cat", SourceCount: 2, Translation: "gato", OtherCount: 0},
			},
		},
		{
			name:         "empty glossary",
			words:        []string{},
			translations: []string{},
			sourceCounts: map[string]int{},
			otherCounts:  map[string]int{},
			expected:     []Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := BuildRows(tt.words, tt.translations, tt.sourceCounts, tt.otherCounts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(rows) != len(tt.expected) {
				t.Fatalf("Expected %d rows, got %d: %v", len(tt.expected), len(rows), rows)
			}

			for i, want := range tt.expected {
				if rows[i] != want {
					t.Errorf("Row %d: got %+v, want %+v", i, rows[i], want)
				}
			}
		})
	}
}

func TestBuildRows_LengthMismatch(t *testing.T) {
	_, err := BuildRows([]string{"cat"}, []string{"gato", "perro"}, nil, nil)
	if err == nil {
		t.Fatal("Expected error for mismatched column lengths")
	}
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}
