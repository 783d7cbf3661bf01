package cfg

import (
	"cmp"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/tsawler/polarity"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Options are the settings shared by every subcommand. Each can also be set
// through its environment variable.
type Options struct {
	// Analysis resources
	Language       string `long:"language" short:"l" env:"POLARITY_LANGUAGE" default:"el" description:"Language of the lexicon and stop word list (ISO 639-1)"`
	Lexicon        string `long:"lexicon" env:"POLARITY_LEXICON" description:"YAML or JSON lexicon file to use instead of the built-in one"`
	Stopwords      string `long:"stopwords" env:"POLARITY_STOPWORDS" description:"Stop word file, one word per line, to use instead of the built-in list"`
	StopwordSource string `long:"stopword-source" env:"POLARITY_STOPWORD_SOURCE" default:"embedded" choice:"embedded" choice:"library" description:"Where built-in stop words come from"`

	// Fetching
	Extractor string        `long:"extractor" env:"POLARITY_EXTRACTOR" default:"paragraphs" choice:"paragraphs" choice:"readability" description:"How article text is extracted from HTML"`
	UserAgent string        `long:"user-agent" env:"POLARITY_USER_AGENT" description:"User agent string for HTTP requests (default: desktop browser)"`
	Timeout   time.Duration `long:"timeout" env:"POLARITY_TIMEOUT" default:"30s" description:"Timeout for a single HTTP request"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// NewParser creates the command line parser for opts. Subcommands are added
// by the caller.
func NewParser(opts *Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)
	parser.Name = "polarity"
	parser.ShortDescription = "Lexicon based sentiment classification of web articles"
	return parser
}

// IsHelp reports whether err is the go-flags signal that help was shown.
func IsHelp(err error) bool {
	if flagsErr, ok := err.(*flags.Error); ok {
		return flagsErr.Type == flags.ErrHelp
	}
	return false
}

// SentimentConfig converts the options to the analyzer configuration.
func (o *Options) SentimentConfig() polarity.SentimentConfig {
	config := polarity.DefaultSentimentConfig()
	if o.Language != "" {
		config.Language = polarity.Language(o.Language)
	}
	config.LexiconPath = o.Lexicon
	config.StopwordsPath = o.Stopwords
	if o.StopwordSource != "" {
		config.StopwordSource = polarity.StopwordSource(o.StopwordSource)
	}
	return config
}

// LogLevel returns the slog level selected by the options.
func (o *Options) LogLevel() slog.Level {
	if o.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
