package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform decomposes characters and removes combining marks so accented
// team names ("Atlético") compare equal to their ASCII OCR renderings.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// leadingArticles are stripped from the front of transcript fragments before
// venue comparison ("at the Etihad" -> "Etihad").
var leadingArticles = []string{"at", "to", "in", "from", "the", "a", "an"}

// NormalizeName lowercases a name, folds diacritics, and collapses internal
// whitespace. Returns "" for whitespace-only input.
func NormalizeName(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return ""
	}
	if folded, _, err := transform.String(foldTransform, value); err == nil {
		value = folded
	}
	return strings.Join(strings.Fields(value), " ")
}

// StripLeadingArticles removes leading prepositions and articles from text.
// Stripping is repeated so compound openings like "at the" are fully removed.
func StripLeadingArticles(value string) string {
	fields := strings.Fields(value)
	for len(fields) > 0 {
		if !isArticle(fields[0]) {
			break
		}
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

func isArticle(word string) bool {
	word = strings.ToLower(strings.Trim(word, ",."))
	for _, article := range leadingArticles {
		if word == article {
			return true
		}
	}
	return false
}
