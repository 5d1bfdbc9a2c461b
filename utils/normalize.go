package utils

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Spanish base sensitivity: accents and case are ignored, so "ácido" sorts
// before "Zanahoria" the way the storefront always ordered its lists.
var (
	collatorMu sync.Mutex
	esCollator = collate.New(language.Spanish, collate.Loose)
)

// Normalize strips combining diacritical marks (NFD decomposition, drop the
// combining class, recompose) and leaves everything else untouched.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases and strips diacritics, the canonical form used for search
// matching.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}

// Compare orders two strings with Spanish-locale base sensitivity.
// Returns -1, 0 or 1. The collator is not safe for concurrent use, hence the
// mutex.
func Compare(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return esCollator.CompareString(a, b)
}

// Tokenize splits folded search text on whitespace, dropping empty tokens.
// Whitespace-only input yields no tokens.
func Tokenize(s string) []string {
	return strings.Fields(Fold(s))
}

// MatchesAllTokens reports whether the folded name contains every token as a
// substring (AND semantics, not a phrase match).
func MatchesAllTokens(name string, tokens []string) bool {
	folded := Fold(name)
	for _, token := range tokens {
		if !strings.Contains(folded, token) {
			return false
		}
	}
	return true
}
