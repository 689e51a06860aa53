package glossary

import (
	"fmt"

	"github.com/lehigh-university-libraries/termcheck/internal/check/metrics"
)

// Glossary is an ordered pair of columns: Words[i] is paired with
// Translations[i]. Duplicate words or translations across entries are
// permitted; each entry counts independently.
type Glossary struct {
	Words        []string
	Translations []string
}

// Len returns the number of glossary entries.
func (g Glossary) Len() int {
	return len(g.Words)
}

// Validate fails when the two columns have different lengths. A mismatch
// means the upstream file was malformed and the engine cannot meaningfully
// pair entries.
func (g Glossary) Validate() error {
	if len(g.Words) != len(g.Translations) {
		return fmt.Errorf("%w: %d words, %d translations", metrics.ErrLengthMismatch, len(g.Words), len(g.Translations))
	}
	return nil
}
