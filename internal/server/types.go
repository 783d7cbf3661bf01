package server

import (
	"context"

	"github.com/tsawler/polarity"
)

// ArticleSource returns the text of the article at url, or "" when none
// could be retrieved.
type ArticleSource interface {
	Text(ctx context.Context, url string) string
}

// ClassifyRequest is the body of POST /api/classify. Exactly one of Text and
// URL must be set; a present but empty Text is classified as no verdict.
type ClassifyRequest struct {
	Text      *string `json:"text"`
	URL       string  `json:"url"`
	Sentences bool    `json:"sentences"`
}

// WordMatches lists the marker words found for one polarity.
type WordMatches struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// SentenceResult is the verdict for one sentence.
type SentenceResult struct {
	Text     string `json:"text"`
	Verdict  string `json:"verdict"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
}

// ClassifyResponse is the body returned for a classified text.
type ClassifyResponse struct {
	RequestID   string           `json:"request_id"`
	Source      string           `json:"source"`
	Verdict     string           `json:"verdict"`
	Explanation string           `json:"explanation"`
	Positive    WordMatches      `json:"positive"`
	Negative    WordMatches      `json:"negative"`
	Tokens      []string         `json:"tokens"`
	Sentences   []SentenceResult `json:"sentences,omitempty"`
}

func newClassifyResponse(requestID, source string, a *polarity.Analysis) ClassifyResponse {
	return ClassifyResponse{
		RequestID:   requestID,
		Source:      source,
		Verdict:     string(a.Verdict.Class),
		Explanation: a.Verdict.Explanation,
		Positive:    WordMatches{Count: a.Matches.PositiveCount, Words: orEmpty(a.Matches.PositiveWords)},
		Negative:    WordMatches{Count: a.Matches.NegativeCount, Words: orEmpty(a.Matches.NegativeWords)},
		Tokens:      orEmpty(a.Tokens),
	}
}

func newSentenceResults(results []polarity.SentenceAnalysis) []SentenceResult {
	out := make([]SentenceResult, 0, len(results))
	for _, r := range results {
		if r.Analysis == nil {
			continue
		}
		out = append(out, SentenceResult{
			Text:     r.Sentence.Text,
			Verdict:  string(r.Analysis.Verdict.Class),
			Positive: r.Analysis.Matches.PositiveCount,
			Negative: r.Analysis.Matches.NegativeCount,
		})
	}
	return out
}

func orEmpty(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
