package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("  The CAT sat on the Mat \n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	text, err := File(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Extraction normalizes for the engine
	if text != "the cat sat on the mat" {
		t.Errorf("Got %q, want normalized text", text)
	}
}

func TestFile_EmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	text, err := File(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := File(path); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
