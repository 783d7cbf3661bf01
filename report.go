package polarity

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the human readable report for a.
func WriteReport(w io.Writer, a *Analysis) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed Text: %s\n", strings.Join(a.Tokens, " "))
	fmt.Fprintf(&b, "Positive words count: %d | Words: %s\n",
		a.Matches.PositiveCount, strings.Join(a.Matches.PositiveWords, ", "))
	fmt.Fprintf(&b, "Negative words count: %d | Words: %s\n",
		a.Matches.NegativeCount, strings.Join(a.Matches.NegativeWords, ", "))
	fmt.Fprintf(&b, "Final Sentiment: %s\n", a.Verdict.Class)
	fmt.Fprintf(&b, "Explanation: %s\n", a.Verdict.Explanation)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteNoVerdict writes the line reported when no article text could be
// retrieved from source.
func WriteNoVerdict(w io.Writer, source string) error {
	_, err := fmt.Fprintf(w, "No verdict: no article text retrieved from %s\n", source)
	return err
}

// WriteSentences writes one line per analyzed sentence.
func WriteSentences(w io.Writer, results []SentenceAnalysis) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Sentences: %d\n", len(results))
	for i, r := range results {
		if r.Analysis == nil {
			fmt.Fprintf(&b, "  [%d] -\n", i+1)
			continue
		}
		fmt.Fprintf(&b, "  [%d] %s (+%d/-%d) %s\n", i+1, r.Analysis.Verdict.Class,
			r.Analysis.Matches.PositiveCount, r.Analysis.Matches.NegativeCount, r.Sentence.Text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary writes the aggregate lines for a batch run.
func WriteSummary(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Articles: %d | Positive: %d | Negative: %d | Neutral: %d | No verdict: %d\n",
		s.Total, s.Positive, s.Negative, s.Neutral, s.NoVerdict)
	fmt.Fprintf(&b, "Net score mean: %.2f | stddev: %.2f\n", s.MeanNetScore, s.StdDevNetScore)

	_, err := io.WriteString(w, b.String())
	return err
}
