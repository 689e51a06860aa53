package checkcmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/termcheck/internal/check/glossary"
)

func executeInspect(glossaryPath string, limit int) error {
	g, err := glossary.NewLoader(glossaryPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load glossary: %w", err)
	}

	fmt.Printf("Glossary: %s\n", glossaryPath)
	fmt.Printf("Entries:  %d\n", g.Len())

	shown := g.Len()
	if limit > 0 && limit < shown {
		shown = limit
	}

	fmt.Println()
	fmt.Printf("%-6s %-34s %s\n", "#", "Word", "Translation")
	for i := 0; i < shown; i++ {
		fmt.Printf("%-6d %-34s %s\n", i+1, truncate(g.Words[i], 34), g.Translations[i])
	}

	if shown < g.Len() {
		fmt.Printf("... and %d more entries\n", g.Len()-shown)
	}

	return nil
}
