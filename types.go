package polarity

// Language represents supported languages, as ISO 639-1 codes.
type Language string

const (
	Greek    Language = "el"
	English  Language = "en"
	Spanish  Language = "es"
	French   Language = "fr"
	German   Language = "de"
	Japanese Language = "ja"
)

// SentimentClass represents the final sentiment categories.
type SentimentClass string

const (
	Positive SentimentClass = "POSITIVE"
	Negative SentimentClass = "NEGATIVE"
	Neutral  SentimentClass = "NEUTRAL"
)

// Explanations attached to each verdict.
const (
	ExplainPositive = "more positive words than negative"
	ExplainNegative = "more negative words than positive"
	ExplainNeutral  = "counts equal, or no sentiment words found"
)

// Verdict is the terminal output of classification.
type Verdict struct {
	Class       SentimentClass
	Explanation string
}

// String returns the sentiment class name.
func (v Verdict) String() string {
	return string(v.Class)
}

// MatchResult tracks the lexicon matches found in a token sequence. Words
// are kept in order of occurrence, duplicates included.
type MatchResult struct {
	PositiveCount int
	NegativeCount int
	PositiveWords []string
	NegativeWords []string
}

// NetScore returns positive matches minus negative matches.
func (m MatchResult) NetScore() int {
	return m.PositiveCount - m.NegativeCount
}

// Analysis is the result of running the pipeline over one text.
type Analysis struct {
	Tokens  []string // Processed tokens, after stopword removal
	Matches MatchResult
	Verdict Verdict
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text string
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// SentenceAnalysis pairs a sentence with its own classification.
type SentenceAnalysis struct {
	Sentence Sentence
	Analysis *Analysis // nil when the sentence holds no text
}
