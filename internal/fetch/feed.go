package fetch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/gofeed"
)

// FeedItem is one feed entry with its text ready for classification.
type FeedItem struct {
	Title string
	Link  string
	Text  string
}

// Feed fetches an RSS or Atom feed and returns its items. Item text comes
// from the full content when present, otherwise from the description.
func (c *Client) Feed(ctx context.Context, feedURL string) ([]FeedItem, error) {
	body, err := c.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		source := item.Content
		if source == "" {
			source = item.Description
		}
		items = append(items, FeedItem{
			Title: item.Title,
			Link:  item.Link,
			Text:  HTMLText(source),
		})
	}

	slog.Debug("Parsed feed", "title", feed.Title, "items", len(items))
	return items, nil
}
