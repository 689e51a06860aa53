package terms

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountOccurrences counts whole-word occurrences of each term in the
// haystack. Both the haystack and the terms are expected to be normalized
// already (see Normalize); matching is case-sensitive on the normalized
// forms. Terms are always treated as literal text, never pattern syntax.
//
// Duplicate terms in the query list share a single map key, so re-querying
// the same term is idempotent. An empty term never matches.
func CountOccurrences(haystack string, queryTerms []string) map[string]int {
	counts := make(map[string]int, len(queryTerms))

	for _, term := range queryTerms {
		if _, seen := counts[term]; seen {
			continue
		}
		counts[term] = countTerm(haystack, term)
	}

	return counts
}

// countTerm scans the haystack for whole-word occurrences of a single term.
// A candidate match is accepted only when it is not immediately preceded or
// followed by a word rune. Multi-word terms match literally; the boundary
// check applies at the start and end of the whole phrase only.
func countTerm(haystack, term string) int {
	if term == "" {
		return 0
	}

	count := 0
	start := 0
	for start+len(term) <= len(haystack) {
		idx := strings.Index(haystack[start:], term)
		if idx < 0 {
			break
		}

		pos := start + idx
		end := pos + len(term)

		if !wordRuneBefore(haystack, pos) && !wordRuneAt(haystack, end) {
			count++
			// Whole-word matches of the same term cannot overlap.
			start = end
		} else {
			start = pos + 1
		}
	}

	return count
}

func wordRuneBefore(s string, pos int) bool {
	if pos == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return isWordRune(r)
}

func wordRuneAt(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return isWordRune(r)
}

// isWordRune reports whether r would glue a candidate match to surrounding
// text: letters, digits, and underscore count as word runes.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
