package polarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isStripped reports whether r is punctuation or a decimal digit.
func isStripped(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsDigit(r)
}

// isDropped extends isStripped with combining marks. Decomposition can
// expose runes of any of these classes, so the final pass removes all three.
func isDropped(r rune) bool {
	return unicode.Is(unicode.Mn, r) || isStripped(r)
}

// Normalize prepares raw text for tokenization. It removes punctuation and
// decimal digits, lowercases with locale-independent rules, and strips
// diacritics by decomposing to NFD and dropping combining marks:
//
//	Normalize("Αυτό είναι ΚΑΚΟ!") // "αυτο ειναι κακο"
//
// Normalize is total and safe for concurrent use.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Step 1: Removing special characters and numbers
	text = strings.Map(func(r rune) rune {
		if isStripped(r) {
			return -1
		}
		return r
	}, text)

	// Step 2: Converting to lowercase
	text = cases.Lower(language.Und).String(text)

	// Step 3: Removing accents
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isDropped)))
	out, _, err := transform.String(stripper, text)
	if err != nil {
		return text
	}
	return out
}
