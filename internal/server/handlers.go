package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/tsawler/polarity"
)

// FetchTimeout bounds a shared article fetch once it no longer follows the
// request that started it.
const FetchTimeout = 60 * time.Second

// Handler serves the classification API.
type Handler struct {
	analyzer  *polarity.SentimentAnalyzer
	articles  ArticleSource
	cache     *ArticleCache
	fetches   singleflight.Group
	version   string
	startedAt time.Time
}

// NewHandler creates the API handler. cache may be nil to disable caching.
func NewHandler(analyzer *polarity.SentimentAnalyzer, articles ArticleSource, cache *ArticleCache, version string) *Handler {
	return &Handler{
		analyzer:  analyzer,
		articles:  articles,
		cache:     cache,
		version:   version,
		startedAt: time.Now(),
	}
}

// Classify handles POST /api/classify.
func (h *Handler) Classify(c *gin.Context) {
	requestID := c.GetString(requestIDKey)

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"request_id": requestID, "error": "invalid request body"})
		return
	}
	if (req.Text == nil) == (req.URL == "") {
		c.JSON(http.StatusBadRequest, gin.H{"request_id": requestID, "error": "exactly one of text or url is required"})
		return
	}

	source, text := "text", ""
	if req.Text != nil {
		text = *req.Text
	} else {
		if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			c.JSON(http.StatusBadRequest, gin.H{"request_id": requestID, "error": "url must be an absolute http(s) URL"})
			return
		}
		source = req.URL
		text = h.articleText(c, req.URL)
	}

	analysis, ok := h.analyzer.Run(text)
	if !ok {
		slog.Warn("No verdict", "request_id", requestID, "source", source)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"request_id": requestID,
			"source":     source,
			"verdict":    nil,
			"error":      "no article text retrieved",
		})
		return
	}

	resp := newClassifyResponse(requestID, source, analysis)
	if req.Sentences {
		resp.Sentences = newSentenceResults(h.analyzer.AnalyzeSentences(text))
	}

	slog.Debug("Classified", "request_id", requestID, "source", source,
		"verdict", resp.Verdict, "positive", resp.Positive.Count, "negative", resp.Negative.Count)
	c.JSON(http.StatusOK, resp)
}

// articleText returns the text for rawURL, from the cache when possible.
// Concurrent requests for the same URL share a single fetch. The fetch is
// detached from the first caller's cancellation so that a client going away
// does not fail every request waiting on it.
func (h *Handler) articleText(c *gin.Context, rawURL string) string {
	if h.cache != nil {
		if text, ok := h.cache.Get(rawURL); ok {
			return text
		}
	}

	v, _, _ := h.fetches.Do(rawURL, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), FetchTimeout)
		defer cancel()

		text := h.articles.Text(ctx, rawURL)
		if h.cache != nil {
			h.cache.Set(rawURL, text)
		}
		return text, nil
	})
	return v.(string)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	health := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"language":  string(h.analyzer.Lexicon().Language()),
		"lexicon":   h.analyzer.Lexicon().Size(),
	}
	if h.cache != nil {
		health["cached_articles"] = h.cache.Len()
	}
	c.JSON(http.StatusOK, health)
}

// Info handles GET /.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "polarity",
		"version":     h.version,
		"description": "Lexicon based sentiment classification of web articles",
		"endpoints": map[string]string{
			"classify": "/api/classify (POST, {\"text\": ...} or {\"url\": ...})",
			"health":   "/health",
		},
	})
}
