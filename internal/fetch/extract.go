package fetch

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Extractor pulls article text out of an HTML document.
type Extractor interface {
	Extract(r io.Reader, pageURL *url.URL) (string, error)
}

// Extractor names accepted by NewExtractor.
const (
	Paragraphs  = "paragraphs"
	Readability = "readability"
)

// NewExtractor returns the extractor registered under name.
func NewExtractor(name string) (Extractor, error) {
	switch name {
	case "", Paragraphs:
		return ParagraphExtractor{}, nil
	case Readability:
		return ReadabilityExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
}

// ParagraphExtractor joins the text of every <p> element with single
// spaces. A page without paragraphs yields empty text.
type ParagraphExtractor struct{}

func (ParagraphExtractor) Extract(r io.Reader, _ *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return paragraphText(doc.Selection), nil
}

func paragraphText(sel *goquery.Selection) string {
	var parts []string
	sel.Find("p").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, " ")
}

// ReadabilityExtractor keeps only the main content of the page, dropping
// navigation, asides and footers.
type ReadabilityExtractor struct{}

func (ReadabilityExtractor) Extract(r io.Reader, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(r, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	return strings.TrimSpace(article.TextContent), nil
}

// HTMLText returns the visible text of an HTML fragment. Fragments with
// paragraphs contribute only their paragraph text.
func HTMLText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	if doc.Find("p").Length() > 0 {
		return paragraphText(doc.Selection)
	}
	return strings.TrimSpace(doc.Text())
}
