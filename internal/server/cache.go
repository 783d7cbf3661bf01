package server

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ArticleCache keeps fetched article text for a fixed time so repeated
// requests for the same URL do not refetch it.
type ArticleCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

// NewArticleCache creates a cache whose entries live for ttl.
func NewArticleCache(ttl time.Duration, clock clockwork.Clock) *ArticleCache {
	return &ArticleCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached text for url if present and not expired.
func (c *ArticleCache) Get(url string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[url]
	if !ok || c.clock.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.text, true
}

// Set stores text for url. Empty text is not cached so a failed fetch is
// retried on the next request.
func (c *ArticleCache) Set(url, text string) {
	if text == "" || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.entries[url] = cacheEntry{text: text, expiresAt: now.Add(c.ttl)}

	// Sweep expired entries while holding the write lock anyway.
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *ArticleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
