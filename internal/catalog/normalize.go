package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes the text and removes combining marks, so
// "pec fly é" and "pec fly e" normalize identically.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the text, strips diacritics, collapses runs of
// non-alphanumeric characters to single spaces and trims the result.
func Normalize(text string) string {
	folded, _, err := transform.String(stripDiacritics, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastWasSpace := true
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastWasSpace = false
		} else if !lastWasSpace {
			b.WriteRune(' ')
			lastWasSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokenize splits a normalized query on whitespace, dropping empty tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
