package glossary

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"
)

// Loader reads a two-column glossary file into a Glossary.
type Loader struct {
	glossaryPath string
}

// NewLoader creates a new glossary loader.
func NewLoader(glossaryPath string) *Loader {
	return &Loader{
		glossaryPath: glossaryPath,
	}
}

// Load reads the glossary file, detecting the format from its extension.
func (l *Loader) Load() (Glossary, error) {
	ext := strings.ToLower(filepath.Ext(l.glossaryPath))

	switch ext {
	case ".xlsx":
		return l.loadExcel()
	case ".csv":
		return l.loadDelimited(',')
	case ".tsv":
		return l.loadDelimited('\t')
	case ".parquet":
		return l.loadParquet()
	default:
		return Glossary{}, fmt.Errorf("unsupported glossary format: %s (supported: .xlsx, .csv, .tsv, .parquet)", ext)
	}
}

// loadExcel reads the first sheet of an .xlsx workbook.
func (l *Loader) loadExcel() (Glossary, error) {
	slog.Debug("Opening Excel glossary", "path", l.glossaryPath)

	f, err := excelize.OpenFile(l.glossaryPath)
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Glossary{}, fmt.Errorf("Excel file has no sheets: %s", l.glossaryPath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return l.fromRows(rows)
}

// loadDelimited reads a .csv or .tsv glossary.
func (l *Loader) loadDelimited(separator rune) (Glossary, error) {
	slog.Debug("Opening delimited glossary", "path", l.glossaryPath)

	file, err := os.Open(l.glossaryPath)
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator
	reader.FieldsPerRecord = -1 // rows may be ragged; cells are resolved by column index

	rows, err := reader.ReadAll()
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to parse glossary file: %w", err)
	}

	return l.fromRows(rows)
}

// glossaryRecord is the parquet row shape for two-column glossaries.
type glossaryRecord struct {
	Word         string `parquet:"word"`
	Translations string `parquet:"translations"`
}

// loadParquet reads a parquet glossary with word/translations columns.
func (l *Loader) loadParquet() (Glossary, error) {
	slog.Debug("Opening Parquet glossary", "path", l.glossaryPath)

	file, err := os.Open(l.glossaryPath)
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return Glossary{}, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[glossaryRecord](pf)
	defer reader.Close()

	var g Glossary
	records := make([]glossaryRecord, 128) // Read in batches

	for {
		n, err := reader.Read(records)
		for _, record := range records[:n] {
			if record.Word == "" && record.Translations == "" {
				continue
			}
			g.Words = append(g.Words, record.Word)
			g.Translations = append(g.Translations, record.Translations)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading Parquet glossary", "entries", g.Len())

	return g, nil
}

// fromRows converts a header row plus data rows into a Glossary. The header
// must contain word and translations columns, matched case-insensitively.
func (l *Loader) fromRows(rows [][]string) (Glossary, error) {
	if len(rows) == 0 {
		return Glossary{}, fmt.Errorf("glossary file is empty: %s", l.glossaryPath)
	}

	wordIdx, translationIdx, err := findColumns(rows[0])
	if err != nil {
		return Glossary{}, fmt.Errorf("%s: %w", l.glossaryPath, err)
	}

	var g Glossary
	for _, row := range rows[1:] {
		word := cell(row, wordIdx)
		translation := cell(row, translationIdx)
		if word == "" && translation == "" {
			continue
		}
		g.Words = append(g.Words, word)
		g.Translations = append(g.Translations, translation)
	}

	slog.Debug("Glossary loaded", "path", l.glossaryPath, "entries", g.Len())

	return g, nil
}

// findColumns locates the word and translations columns in a header row.
func findColumns(header []string) (wordIdx, translationIdx int, err error) {
	wordIdx, translationIdx = -1, -1

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "word", "words":
			if wordIdx < 0 {
				wordIdx = i
			}
		case "translation", "translations":
			if translationIdx < 0 {
				translationIdx = i
			}
		}
	}

	if wordIdx < 0 || translationIdx < 0 {
		return 0, 0, fmt.Errorf("glossary must contain 'word' and 'translations' columns, got %v", header)
	}

	return wordIdx, translationIdx, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
