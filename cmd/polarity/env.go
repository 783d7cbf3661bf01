package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tsawler/polarity"
	"github.com/tsawler/polarity/internal/cfg"
	"github.com/tsawler/polarity/internal/fetch"
)

// env carries what every subcommand shares: the global options and the
// standard streams.
type env struct {
	opts *cfg.Options
	in   io.Reader
	out  io.Writer
}

func setupLogging(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (e *env) analyzer() (*polarity.SentimentAnalyzer, error) {
	analyzer, err := polarity.NewSentimentAnalyzer(e.opts.SentimentConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis resources: %w", err)
	}
	slog.Debug("Analyzer ready",
		"language", analyzer.Lexicon().Language(),
		"lexicon_size", analyzer.Lexicon().Size())
	return analyzer, nil
}

func (e *env) client() (*fetch.Client, error) {
	extractor, err := fetch.NewExtractor(e.opts.Extractor)
	if err != nil {
		return nil, err
	}
	return fetch.NewClient(
		fetch.WithUserAgent(e.opts.UserAgent),
		fetch.WithTimeout(e.opts.Timeout),
		fetch.WithExtractor(extractor),
	), nil
}

// report classifies text and writes the report, or the no-verdict line
// naming source when text is empty.
func (e *env) report(analyzer *polarity.SentimentAnalyzer, text, source string, sentences bool) (*polarity.Analysis, error) {
	analysis, ok := analyzer.Run(text)
	if !ok {
		return nil, polarity.WriteNoVerdict(e.out, source)
	}
	if err := polarity.WriteReport(e.out, analysis); err != nil {
		return nil, err
	}
	if sentences {
		if err := polarity.WriteSentences(e.out, analyzer.AnalyzeSentences(text)); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

// prompt writes label and reads one trimmed line from the input.
func (e *env) prompt(label string) (string, error) {
	fmt.Fprint(e.out, label)
	line, err := bufio.NewReader(e.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readLines returns the non-blank lines of r that are not '#' comments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}
