package polarity

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func newTestAnalyzer(t *testing.T) *SentimentAnalyzer {
	t.Helper()
	analyzer, err := NewSentimentAnalyzer(DefaultSentimentConfig())
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	return analyzer
}

func TestSentimentAnalyzerRun(t *testing.T) {
	tests := []struct {
		desc          string
		text          string
		tokens        []string
		positiveWords []string
		negativeWords []string
		class         SentimentClass
		explanation   string
	}{
		{
			desc:        "Inflected forms do not match",
			text:        "Αυτό είναι κακό και αρνητικό.",
			tokens:      []string{"κακο", "αρνητικο"},
			class:       Neutral,
			explanation: ExplainNeutral,
		},
		{
			desc:          "Positive words",
			text:          "καλος και αγαπη",
			tokens:        []string{"καλος", "αγαπη"},
			positiveWords: []string{"καλος", "αγαπη"},
			class:         Positive,
			explanation:   ExplainPositive,
		},
		{
			desc:          "Tie is neutral",
			text:          "καλος κακος",
			tokens:        []string{"καλος", "κακος"},
			positiveWords: []string{"καλος"},
			negativeWords: []string{"κακος"},
			class:         Neutral,
			explanation:   ExplainNeutral,
		},
		{
			desc:          "Negative with accents and case",
			text:          "ΌΧΙ! Μεγάλο πρόβλημα, θλίψη και αποτυχία.",
			tokens:        []string{"οχι", "μεγαλο", "προβλημα", "θλιψη", "αποτυχια"},
			negativeWords: []string{"οχι", "προβλημα", "θλιψη", "αποτυχια"},
			class:         Negative,
			explanation:   ExplainNegative,
		},
		{
			desc:          "Duplicates counted in order",
			text:          "οχι, καλος, οχι",
			tokens:        []string{"οχι", "καλος", "οχι"},
			positiveWords: []string{"καλος"},
			negativeWords: []string{"οχι", "οχι"},
			class:         Negative,
			explanation:   ExplainNegative,
		},
		{
			desc:        "Whitespace only",
			text:        "   ",
			class:       Neutral,
			explanation: ExplainNeutral,
		},
		{
			desc:        "Punctuation and digits only",
			text:        "2024 ... 42!",
			class:       Neutral,
			explanation: ExplainNeutral,
		},
	}

	analyzer := newTestAnalyzer(t)

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			analysis, ok := analyzer.Run(tt.text)
			if !ok || analysis == nil {
				t.Fatalf("Run(%q) produced no verdict", tt.text)
			}
			if !slices.Equal(analysis.Tokens, tt.tokens) {
				t.Errorf("Tokens = %q, want %q", analysis.Tokens, tt.tokens)
			}
			m := analysis.Matches
			if !slices.Equal(m.PositiveWords, tt.positiveWords) {
				t.Errorf("PositiveWords = %q, want %q", m.PositiveWords, tt.positiveWords)
			}
			if !slices.Equal(m.NegativeWords, tt.negativeWords) {
				t.Errorf("NegativeWords = %q, want %q", m.NegativeWords, tt.negativeWords)
			}
			if m.PositiveCount != len(tt.positiveWords) || m.NegativeCount != len(tt.negativeWords) {
				t.Errorf("Counts = %d/%d, want %d/%d", m.PositiveCount, m.NegativeCount,
					len(tt.positiveWords), len(tt.negativeWords))
			}
			if analysis.Verdict.Class != tt.class {
				t.Errorf("Class = %s, want %s", analysis.Verdict.Class, tt.class)
			}
			if analysis.Verdict.Explanation != tt.explanation {
				t.Errorf("Explanation = %q, want %q", analysis.Verdict.Explanation, tt.explanation)
			}
		})
	}
}

func TestSentimentAnalyzerEmptyText(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	analysis, ok := analyzer.Run("")
	if ok {
		t.Error("Run(\"\") reported a verdict")
	}
	if analysis != nil {
		t.Errorf("Run(\"\") = %+v, want nil", analysis)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		pos, neg int
		class    SentimentClass
	}{
		{0, 0, Neutral},
		{1, 0, Positive},
		{0, 1, Negative},
		{3, 3, Neutral},
		{5, 4, Positive},
		{4, 5, Negative},
	}

	for _, tt := range tests {
		v := Decide(MatchResult{PositiveCount: tt.pos, NegativeCount: tt.neg})
		if v.Class != tt.class {
			t.Errorf("Decide(%d, %d) = %s, want %s", tt.pos, tt.neg, v.Class, tt.class)
		}
	}
}

func TestClassifyIndependentSets(t *testing.T) {
	lexicon, err := NewLexicon(Greek, []string{"α"}, []string{"β"})
	if err != nil {
		t.Fatal(err)
	}

	verdict, m := Classify(slices.Values([]string{"β", "α", "γ", "α"}), lexicon)
	if m.PositiveCount != 2 || m.NegativeCount != 1 {
		t.Errorf("Counts = %d/%d, want 2/1", m.PositiveCount, m.NegativeCount)
	}
	if m.NetScore() != 1 {
		t.Errorf("NetScore() = %d, want 1", m.NetScore())
	}
	if verdict.Class != Positive {
		t.Errorf("Class = %s, want %s", verdict.Class, Positive)
	}
	if verdict.String() != "POSITIVE" {
		t.Errorf("String() = %q, want POSITIVE", verdict.String())
	}
}

func TestNewSentimentAnalyzerOptions(t *testing.T) {
	lexicon, err := NewLexicon(Greek, []string{"ηλιος"}, []string{"βροχη"})
	if err != nil {
		t.Fatal(err)
	}
	stopwords, err := NewWordSet(Greek, []string{"ο"})
	if err != nil {
		t.Fatal(err)
	}

	analyzer, err := NewSentimentAnalyzer(DefaultSentimentConfig(),
		UsingLexicon(lexicon), UsingStopwords(stopwords))
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	if analyzer.Lexicon() != lexicon {
		t.Error("Lexicon() did not return the supplied lexicon")
	}
	if analyzer.Stopwords() != StopwordSet(stopwords) {
		t.Error("Stopwords() did not return the supplied set")
	}

	analysis, ok := analyzer.Run("Ο ήλιος και η βροχή, ο ήλιος.")
	if !ok {
		t.Fatal("Run produced no verdict")
	}
	want := []string{"ηλιος", "και", "η", "βροχη", "ηλιος"}
	if !slices.Equal(analysis.Tokens, want) {
		t.Errorf("Tokens = %q, want %q", analysis.Tokens, want)
	}
	if analysis.Verdict.Class != Positive {
		t.Errorf("Class = %s, want %s", analysis.Verdict.Class, Positive)
	}
}

func TestNewSentimentAnalyzerErrors(t *testing.T) {
	tests := []struct {
		name   string
		config SentimentConfig
	}{
		{"Unsupported language", SentimentConfig{Language: Language("xx")}},
		{"Missing lexicon file", SentimentConfig{Language: Greek, LexiconPath: "/nonexistent/lexicon.yaml"}},
		{"Missing stopwords file", SentimentConfig{Language: Greek, StopwordsPath: "/nonexistent/stopwords.txt"}},
		{"Library without Greek", SentimentConfig{Language: Greek, StopwordSource: LibraryStopwords}},
		{"Unknown source", SentimentConfig{Language: Greek, StopwordSource: StopwordSource("remote")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer, err := NewSentimentAnalyzer(tt.config)
			if err == nil {
				t.Fatal("Expected error")
			}
			if analyzer != nil {
				t.Error("Expected no analyzer on error")
			}
			if !errors.Is(err, ErrResourceLoad) {
				t.Errorf("Expected resource load error, got %v", err)
			}
		})
	}
}

func TestAnalyzeSentences(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	results := analyzer.AnalyzeSentences("Η μέρα ήταν υπέροχη και καλός. Όχι, μεγάλο πρόβλημα!")
	if len(results) == 0 {
		t.Fatal("Expected at least one sentence")
	}

	var pos, neg int
	for _, r := range results {
		if r.Analysis == nil {
			t.Fatalf("Sentence %q has no analysis", r.Sentence.Text)
		}
		pos += r.Analysis.Matches.PositiveCount
		neg += r.Analysis.Matches.NegativeCount
	}
	if pos != 1 || neg != 2 {
		t.Errorf("Sentence totals = %d/%d, want 1/2", pos, neg)
	}

	if got := analyzer.AnalyzeSentences(""); len(got) != 0 {
		t.Errorf("AnalyzeSentences(\"\") = %v, want none", got)
	}
}

func TestSentimentAnalyzerConcurrent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			analysis, ok := analyzer.Run("καλος και αγαπη")
			if !ok || analysis.Verdict.Class != Positive {
				t.Errorf("Concurrent run returned %+v", analysis)
			}
			analyzer.AnalyzeSentences("Καλός. Κακός.")
		}()
	}
	wg.Wait()
}
