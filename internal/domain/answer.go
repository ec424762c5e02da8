package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer decomposes s, drops nonspacing marks, lowercases and trims it.
// "Hablé" and "hable" share the same normal form.
func NormalizeAnswer(s string) string {
	// transform.Chain keeps state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// IsCorrect accepts an exact case-insensitive match or a match that ignores accents.
func IsCorrect(submitted, correct string) bool {
	if strings.ToLower(strings.TrimSpace(submitted)) == strings.ToLower(correct) {
		return true
	}
	return NormalizeAnswer(submitted) == NormalizeAnswer(correct)
}
