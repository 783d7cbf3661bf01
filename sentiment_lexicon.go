package polarity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the positive and negative marker words. Matching is exact:
// inflected forms of a marker word do not match unless listed themselves.
type Lexicon struct {
	language Language
	positive map[string]struct{}
	negative map[string]struct{}
}

// LexiconFile represents the on-disk structure of a lexicon, in either YAML
// or JSON.
type LexiconFile struct {
	Languages map[string]LanguageLexicon `json:"languages" yaml:"languages"`
}

// LanguageLexicon contains the marker words for a specific language.
type LanguageLexicon struct {
	Positive []string `json:"positive,omitempty" yaml:"positive,omitempty"`
	Negative []string `json:"negative,omitempty" yaml:"negative,omitempty"`
}

// NewLexicon builds a lexicon from positive and negative word lists.
//
// Each entry is normalized like document text and must come out as exactly
// one token. A word present in both lists is rejected with a *LexiconError
// wrapping ErrLexiconOverlap.
func NewLexicon(lang Language, positive, negative []string) (*Lexicon, error) {
	pos, err := normalizeEntries(positive)
	if err != nil {
		return nil, err
	}
	neg, err := normalizeEntries(negative)
	if err != nil {
		return nil, err
	}

	if len(pos) == 0 && len(neg) == 0 {
		return nil, resourceError("lexicon/"+string(lang), errors.New("no marker words"))
	}

	var overlap []string
	for word := range pos {
		if _, found := neg[word]; found {
			overlap = append(overlap, word)
		}
	}
	if len(overlap) > 0 {
		slices.Sort(overlap)
		return nil, &LexiconError{Words: overlap, Err: ErrLexiconOverlap}
	}

	return &Lexicon{
		language: lang,
		positive: pos,
		negative: neg,
	}, nil
}

// normalizeEntries normalizes every word and rejects the ones that do not
// form a single token.
func normalizeEntries(words []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(words))
	var invalid []string
	for _, word := range words {
		tokens := slices.Collect(Tokenize(Normalize(word)))
		if len(tokens) != 1 {
			invalid = append(invalid, word)
			continue
		}
		set[tokens[0]] = struct{}{}
	}
	if len(invalid) > 0 {
		return nil, &LexiconError{Words: invalid, Err: ErrInvalidLexiconEntry}
	}
	return set, nil
}

// LoadLexicon loads the embedded lexicon for lang.
func LoadLexicon(lang Language) (*Lexicon, error) {
	data, err := dataFS.ReadFile("data/lexicon/" + string(lang) + ".yaml")
	if err != nil {
		return nil, resourceError("lexicon/"+string(lang), FormatLanguageError(lang))
	}
	return parseLexicon(data, "lexicon.yaml", lang)
}

// LoadLexiconFile loads the lexicon for lang from a YAML (.yaml, .yml) or
// JSON (.json) file.
func LoadLexiconFile(path string, lang Language) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, resourceError(path, err)
	}
	lexicon, err := parseLexicon(data, path, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
	}
	return lexicon, nil
}

// parseLexicon decodes a LexiconFile, choosing the format from name's
// extension, and builds the lexicon for lang.
func parseLexicon(data []byte, name string, lang Language) (*Lexicon, error) {
	var file LexiconFile
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, resourceError(name, fmt.Errorf("error parsing lexicon YAML: %w", err))
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, resourceError(name, fmt.Errorf("error parsing lexicon JSON: %w", err))
		}
	default:
		return nil, resourceError(name, fmt.Errorf("unsupported lexicon format %q", filepath.Ext(name)))
	}

	langData, exists := file.Languages[languageToKey(lang)]
	if !exists {
		return nil, resourceError(name, fmt.Errorf("no entry for language %s", languageToKey(lang)))
	}
	return NewLexicon(lang, langData.Positive, langData.Negative)
}

// languageToKey converts Language constants to lexicon file keys
func languageToKey(lang Language) string {
	switch lang {
	case Greek:
		return "greek"
	case English:
		return "english"
	case Spanish:
		return "spanish"
	case French:
		return "french"
	case German:
		return "german"
	case Japanese:
		return "japanese"
	default:
		return strings.ToLower(string(lang))
	}
}

// IsPositive reports whether token is a positive marker word.
func (l *Lexicon) IsPositive(token string) bool {
	_, found := l.positive[token]
	return found
}

// IsNegative reports whether token is a negative marker word.
func (l *Lexicon) IsNegative(token string) bool {
	_, found := l.negative[token]
	return found
}

// Language returns the lexicon's language.
func (l *Lexicon) Language() Language {
	return l.language
}

// PositiveWords returns the positive marker words in sorted order.
func (l *Lexicon) PositiveWords() []string {
	return sortedKeys(l.positive)
}

// NegativeWords returns the negative marker words in sorted order.
func (l *Lexicon) NegativeWords() []string {
	return sortedKeys(l.negative)
}

// Size returns the total number of marker words.
func (l *Lexicon) Size() int {
	return len(l.positive) + len(l.negative)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
