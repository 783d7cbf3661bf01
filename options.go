package polarity

import "fmt"

// StopwordSource selects where stop words come from.
type StopwordSource string

const (
	// EmbeddedStopwords uses the word lists compiled into this package.
	EmbeddedStopwords StopwordSource = "embedded"
	// LibraryStopwords uses the lists built into github.com/bbalet/stopwords.
	LibraryStopwords StopwordSource = "library"
)

// SentimentConfig configures sentiment analysis
type SentimentConfig struct {
	Language       Language
	LexiconPath    string // YAML or JSON lexicon file; empty uses the embedded lexicon
	StopwordsPath  string // one word per line; empty uses StopwordSource
	StopwordSource StopwordSource
}

// DefaultSentimentConfig returns standard configuration
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		Language:       Greek,
		StopwordSource: EmbeddedStopwords,
	}
}

// An AnalyzerOpt represents a setting that changes analyzer construction.
type AnalyzerOpt func(opts *analyzerOpts)

type analyzerOpts struct {
	lexicon   *Lexicon
	stopwords StopwordSet
	segmenter *Segmenter
}

// UsingLexicon supplies a prebuilt lexicon instead of loading one from the
// configuration.
func UsingLexicon(lex *Lexicon) AnalyzerOpt {
	return func(opts *analyzerOpts) {
		opts.lexicon = lex
	}
}

// UsingStopwords supplies a prebuilt stop word set instead of loading one
// from the configuration.
func UsingStopwords(set StopwordSet) AnalyzerOpt {
	return func(opts *analyzerOpts) {
		opts.stopwords = set
	}
}

// UsingSegmenter supplies the sentence segmenter used by AnalyzeSentences.
func UsingSegmenter(seg *Segmenter) AnalyzerOpt {
	return func(opts *analyzerOpts) {
		opts.segmenter = seg
	}
}

// NewSentimentAnalyzer creates a sentiment analyzer. Resources not supplied
// through opts are loaded according to config; any load failure is returned
// and no analyzer is built.
func NewSentimentAnalyzer(config SentimentConfig, opts ...AnalyzerOpt) (*SentimentAnalyzer, error) {
	var base analyzerOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	lang := config.Language
	if lang == "" {
		lang = Greek
	}

	var err error
	if base.lexicon == nil {
		if config.LexiconPath != "" {
			base.lexicon, err = LoadLexiconFile(config.LexiconPath, lang)
		} else {
			base.lexicon, err = LoadLexicon(lang)
		}
		if err != nil {
			return nil, err
		}
	}

	if base.stopwords == nil {
		base.stopwords, err = loadStopwordSet(config, lang)
		if err != nil {
			return nil, err
		}
	}

	if base.segmenter == nil {
		base.segmenter, err = NewSegmenter(lang)
		if err != nil {
			return nil, err
		}
	}

	return &SentimentAnalyzer{
		lexicon:   base.lexicon,
		stopwords: base.stopwords,
		segmenter: base.segmenter,
	}, nil
}

func loadStopwordSet(config SentimentConfig, lang Language) (StopwordSet, error) {
	if config.StopwordsPath != "" {
		return LoadStopwordsFile(lang, config.StopwordsPath)
	}
	switch config.StopwordSource {
	case "", EmbeddedStopwords:
		return LoadStopwords(lang)
	case LibraryStopwords:
		return NewLibraryStopwords(lang)
	default:
		return nil, resourceError("stopwords",
			fmt.Errorf("unknown stop word source %q", string(config.StopwordSource)))
	}
}
