// Package extract turns uploaded documents into the single normalized text
// string the check engine consumes. PDFs are read page by page; page breaks
// collapse to a single space.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/lehigh-university-libraries/termcheck/internal/check/terms"
)

// File extracts text from a document on disk, detecting the format from the
// file extension. The returned text is already normalized (lowercased)
// for the engine.
func File(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return pdfFile(path)
	case ".txt", ".text":
		return textFile(path)
	default:
		return "", fmt.Errorf("unsupported document format: %s (supported: .pdf, .txt)", ext)
	}
}

// pdfFile extracts plain text from every page of a PDF.
func pdfFile(path string) (string, error) {
	slog.Debug("Extracting PDF text", "path", path)

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	pages := reader.NumPage()

	for pageNum := 1; pageNum <= pages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d of %s: %w", pageNum, path, err)
		}

		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString(" ")
		}
	}

	slog.Debug("PDF text extracted", "path", path, "pages", pages, "chars", sb.Len())

	return terms.Normalize(sb.String()), nil
}

// textFile reads a plain-text document directly.
func textFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file %s: %w", path, err)
	}
	return terms.Normalize(string(data)), nil
}
