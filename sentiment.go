package polarity

import (
	"iter"
	"slices"
)

// Score scans tokens once and collects the positive and negative marker
// words they contain. Membership tests against the two sets are
// independent; a valid Lexicon guarantees no token matches both.
func Score(tokens iter.Seq[string], lex *Lexicon) MatchResult {
	var m MatchResult
	for token := range tokens {
		if lex.IsPositive(token) {
			m.PositiveWords = append(m.PositiveWords, token)
		}
		if lex.IsNegative(token) {
			m.NegativeWords = append(m.NegativeWords, token)
		}
	}
	m.PositiveCount = len(m.PositiveWords)
	m.NegativeCount = len(m.NegativeWords)
	return m
}

// Decide derives the verdict from the match counts. Equal counts, including
// no matches at all, are neutral.
func Decide(m MatchResult) Verdict {
	switch {
	case m.PositiveCount > m.NegativeCount:
		return Verdict{Class: Positive, Explanation: ExplainPositive}
	case m.NegativeCount > m.PositiveCount:
		return Verdict{Class: Negative, Explanation: ExplainNegative}
	default:
		return Verdict{Class: Neutral, Explanation: ExplainNeutral}
	}
}

// Classify scores tokens against lex and decides the verdict.
func Classify(tokens iter.Seq[string], lex *Lexicon) (Verdict, MatchResult) {
	m := Score(tokens, lex)
	return Decide(m), m
}

// SentimentAnalyzer runs the normalize, tokenize, filter and classify
// pipeline over raw article text. It holds only immutable state and is
// safe for concurrent use.
type SentimentAnalyzer struct {
	lexicon   *Lexicon
	stopwords StopwordSet
	segmenter *Segmenter
}

// Run analyzes raw text. Empty text means the upstream fetch produced
// nothing: Run then returns false and no analysis, which callers must keep
// distinct from a Neutral verdict.
func (sa *SentimentAnalyzer) Run(text string) (*Analysis, bool) {
	if text == "" {
		return nil, false
	}

	tokens := slices.Collect(Process(text, sa.stopwords))
	verdict, matches := Classify(slices.Values(tokens), sa.lexicon)

	return &Analysis{
		Tokens:  tokens,
		Matches: matches,
		Verdict: verdict,
	}, true
}

// AnalyzeSentences segments text into sentences and analyzes each one on
// its own.
func (sa *SentimentAnalyzer) AnalyzeSentences(text string) []SentenceAnalysis {
	sentences := sa.segmenter.Segment(text)
	results := make([]SentenceAnalysis, 0, len(sentences))
	for _, sent := range sentences {
		analysis, _ := sa.Run(sent.Text)
		results = append(results, SentenceAnalysis{
			Sentence: sent,
			Analysis: analysis,
		})
	}
	return results
}

// Lexicon returns the analyzer's lexicon.
func (sa *SentimentAnalyzer) Lexicon() *Lexicon {
	return sa.lexicon
}

// Stopwords returns the analyzer's stop word set.
func (sa *SentimentAnalyzer) Stopwords() StopwordSet {
	return sa.stopwords
}
