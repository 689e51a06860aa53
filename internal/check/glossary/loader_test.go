package glossary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFixture(t, "glossary.csv", "Word,Translations\ncat,gato\ndog,perro\n")

	g, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if g.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", g.Len())
	}
	if g.Words[0] != "cat" || g.Translations[0] != "gato" {
		t.Errorf("Entry 0: got (%q, %q)", g.Words[0], g.Translations[0])
	}
	if g.Words[1] != "dog" || g.Translations[1] != "perro" {
		t.Errorf("Entry 1: got (%q, %q)", g.Words[1], g.Translations[1])
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Expected valid glossary, got %v", err)
	}
}

func TestLoad_TSV(t *testing.T) {
	path := writeFixture(t, "glossary.tsv", "word\ttranslations\ncat\tgato\n")

	g, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if g.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", g.Len())
	}
}

func TestLoad_ColumnOrderAndExtras(t *testing.T) {
	// Extra columns are ignored and column order does not matter
	path := writeFixture(t, "glossary.csv", "id,TRANSLATIONS,notes,WORD\n1,gato,noise,cat\n")

	g, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if g.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", g.Len())
	}
	if g.Words[0] != "cat" || g.Translations[0] != "gato" {
		t.Errorf("Got (%q, %q), want (cat, gato)", g.Words[0], g.Translations[0])
	}
}

func TestLoad_SkipsFullyEmptyRows(t *testing.T) {
	path := writeFixture(t, "glossary.csv", "word,translations\ncat,gato\n,\ndog,\n")

	g, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The all-empty row is dropped; the row with only a word survives
	if g.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", g.Len())
	}
	if g.Words[1] != "dog" || g.Translations[1] != "" {
		t.Errorf("Entry 1: got (%q, %q), want (dog, )", g.Words[1], g.Translations[1])
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no translations column",
			content: "word,definition\ncat,a small animal\n",
		},
		{
			name:    "no word column",
			content: "term,translations\ncat,gato\n",
		},
		{
			name:    "header only file is empty but headers still checked",
			content: "foo,bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "glossary.csv", tt.content)

			if _, err := NewLoader(path).Load(); err == nil {
				t.Error("Expected error for missing columns")
			}
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFixture(t, "glossary.docx", "not a glossary")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFixture(t, "glossary.csv", "")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for empty glossary file")
	}
}

func TestValidate(t *testing.T) {
	g := Glossary{
		Words:        []string{"cat"},
		Translations: []string{"gato", "perro"},
	}

	if err := g.Validate(); err == nil {
		t.Error("Expected error for mismatched columns")
	}
}
