package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for answer comparison: diacritics removed, lower case,
// punctuation and symbols dropped, whitespace collapsed.
func Normalize(s string) string {
	// Transformers carry state, so each call builds its own chain.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			return -1
		case unicode.IsSpace(r):
			return ' '
		default:
			return unicode.ToLower(r)
		}
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
