package polarity

import (
	"iter"
	"unicode"
)

// isWordRune reports whether r belongs inside a word: letters, numbers and
// connector punctuation such as '_'. Marks are boundaries.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Pc, r)
}

// Tokenize splits text into words, where a word is a maximal run of word
// runes and everything else is a boundary. Tokens are yielded left to right
// and are not deduplicated.
//
// The returned sequence is lazy and restartable: each range over it scans
// text again from the start.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// Process runs the full text preparation chain: Normalize, Tokenize and
// stopword removal. Sets that match on the original spelling clean the raw
// text first.
func Process(text string, stopwords StopwordSet) iter.Seq[string] {
	if c, ok := stopwords.(rawTextCleaner); ok {
		text = c.cleanRaw(text)
	}
	return Filter(Tokenize(Normalize(text)), stopwords)
}
