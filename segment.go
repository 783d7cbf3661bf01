package polarity

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
)

// Segmenter splits text into sentences with a punkt tokenizer trained for
// one language.
type Segmenter struct {
	mu        sync.Mutex
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSegmenter loads the embedded punkt parameters for lang. Languages
// without parameters get an untrained tokenizer, which still splits on
// sentence-final punctuation but knows no abbreviations.
func NewSegmenter(lang Language) (*Segmenter, error) {
	data, err := dataFS.ReadFile("data/punkt/" + string(lang) + ".json")
	if err != nil {
		data = []byte("{}")
	}

	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, resourceError("punkt/"+string(lang), err)
	}

	return &Segmenter{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// Segment returns the non-blank sentences of text in order.
func (s *Segmenter) Segment(text string) []Sentence {
	s.mu.Lock()
	sents := s.tokenizer.Tokenize(text)
	s.mu.Unlock()

	result := make([]Sentence, 0, len(sents))
	for _, sent := range sents {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		result = append(result, Sentence{Text: trimmed})
	}
	return result
}
