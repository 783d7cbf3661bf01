package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultUserAgent mimics a desktop browser; some news sites refuse
// requests from unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout bounds a single article request.
const DefaultTimeout = 30 * time.Second

// StatusError reports a response other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch %s: status code %d", e.URL, e.StatusCode)
}

// Client retrieves web articles and extracts their natural language text.
type Client struct {
	httpClient *http.Client
	userAgent  string
	extractor  Extractor
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d, Transport: c.httpClient.Transport}
		}
	}
}

// WithExtractor sets how article text is pulled out of the page.
func WithExtractor(e Extractor) Option {
	return func(c *Client) {
		if e != nil {
			c.extractor = e
		}
	}
}

// NewClient creates a client that extracts <p> text by default.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
		extractor:  ParagraphExtractor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request for rawURL and returns the response body. Any
// status other than 200 OK is a *StatusError.
func (c *Client) Get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}

// Article fetches rawURL and returns its extracted text.
func (c *Client) Article(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid article URL %q: %w", rawURL, err)
	}

	body, err := c.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	text, err := c.extractor.Extract(body, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", rawURL, err)
	}

	slog.Debug("Article fetched", "url", rawURL, "text_length", len(text))
	return text, nil
}

// Text is Article with failures logged and reported as empty text, which
// the classifier treats as "no verdict".
func (c *Client) Text(ctx context.Context, rawURL string) string {
	text, err := c.Article(ctx, rawURL)
	if err != nil {
		slog.Error("Failed to fetch the article", "url", rawURL, "error", err)
		return ""
	}
	return text
}
