package terms

import "strings"

// Normalize lowercases a term or document text and trims surrounding
// whitespace. Both sides of a match must pass through here, otherwise
// boundary matching is unreliable.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeAll returns a new slice with Normalize applied to every term.
func NormalizeAll(terms []string) []string {
	normalized := make([]string, len(terms))
	for i, term := range terms {
		normalized[i] = Normalize(term)
	}
	return normalized
}
