package polarity

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopwordSet answers whether a token is a stop word for one language.
// Implementations are immutable once constructed.
type StopwordSet interface {
	Contains(token string) bool
	Language() Language
}

// Filter yields the tokens that are not stop words, in their original order.
func Filter(tokens iter.Seq[string], set StopwordSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range tokens {
			if set.Contains(token) {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// WordSet is a StopwordSet backed by an explicit word list.
type WordSet struct {
	language Language
	words    map[string]struct{}
}

// NewWordSet builds a stop word set from words. Every entry is normalized
// the same way as document text, so "Είναι" and "ειναι" are the same stop
// word. An empty result is an error: it would silently disable filtering.
func NewWordSet(lang Language, words []string) (*WordSet, error) {
	set := &WordSet{
		language: lang,
		words:    make(map[string]struct{}, len(words)),
	}
	for _, word := range words {
		for token := range Tokenize(Normalize(word)) {
			set.words[token] = struct{}{}
		}
	}
	if len(set.words) == 0 {
		return nil, resourceError("stopwords/"+string(lang), errors.New("no stop words"))
	}
	return set, nil
}

// Contains reports whether token is a stop word.
func (s *WordSet) Contains(token string) bool {
	_, found := s.words[token]
	return found
}

// Language returns the language of the set.
func (s *WordSet) Language() Language {
	return s.language
}

// Len returns the number of distinct stop words.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Words returns the stop words in sorted order.
func (s *WordSet) Words() []string {
	return sortedKeys(s.words)
}

// LoadStopwords loads the embedded stop word list for lang.
func LoadStopwords(lang Language) (*WordSet, error) {
	data, err := dataFS.ReadFile("data/stopwords/" + string(lang) + ".txt")
	if err != nil {
		return nil, resourceError("stopwords/"+string(lang), FormatLanguageError(lang))
	}
	return NewWordSet(lang, parseWordList(data))
}

// LoadStopwordsFile loads a stop word list from a file with one word per
// line. Blank lines and lines starting with '#' are ignored.
func LoadStopwordsFile(lang Language, path string) (*WordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, resourceError(path, err)
	}
	return NewWordSet(lang, parseWordList(data))
}

// parseWordList splits a newline separated word list.
func parseWordList(data []byte) []string {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// rawTextCleaner is implemented by stop word sets whose lists keep
// diacritics. Their stop words must be removed from the raw text, before
// Normalize strips the marks the lists are keyed on.
type rawTextCleaner interface {
	cleanRaw(text string) string
}

// libraryStopwords answers membership from the stop word lists compiled
// into github.com/bbalet/stopwords.
type libraryStopwords struct {
	language Language
}

// cleanRaw removes the library's stop words from text in its original
// spelling. Words come back lowercased and separated by single spaces.
func (s libraryStopwords) cleanRaw(text string) string {
	return stopwords.CleanString(text, string(s.language), false)
}

// libraryLanguages lists the ISO 639-1 codes bbalet/stopwords ships lists for.
var libraryLanguages = []Language{
	"ar", "bg", "cs", "da", German, English, Spanish, "fa", "fi", French,
	"hu", "it", Japanese, "km", "lv", "nl", "no", "pl", "pt", "ro", "ru",
	"sk", "sv", "th", "tr",
}

// NewLibraryStopwords returns a StopwordSet using the built-in lists of the
// bbalet/stopwords library.
func NewLibraryStopwords(lang Language) (StopwordSet, error) {
	if !slices.Contains(libraryLanguages, lang) {
		return nil, resourceError("stopwords library",
			fmt.Errorf("no built-in stop word list for %s", string(lang)))
	}
	return libraryStopwords{language: lang}, nil
}

// Contains reports whether the library removes token as a stop word.
// The library cleans whole strings, so a single token that comes back empty
// was a stop word. Tokens are already normalized here, so accented entries
// only match through cleanRaw.
func (s libraryStopwords) Contains(token string) bool {
	if token == "" {
		return false
	}
	cleaned := stopwords.CleanString(token, string(s.language), false)
	return strings.TrimSpace(cleaned) == ""
}

// Language returns the language of the set.
func (s libraryStopwords) Language() Language {
	return s.language
}

// IsSupported reports whether lang has an embedded stop word list and
// lexicon.
func IsSupported(lang Language) bool {
	return slices.Contains(GetSupportedLanguages(), lang)
}

// GetSupportedLanguages returns the languages with embedded resources.
func GetSupportedLanguages() []Language {
	return []Language{Greek}
}

// FormatLanguageError creates a formatted error for unsupported languages
func FormatLanguageError(lang Language) error {
	return fmt.Errorf("language %s is not supported. Supported languages: %v",
		string(lang), GetSupportedLanguages())
}
