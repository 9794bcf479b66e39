// Package rss adapts a parsed RSS/Atom document into article records.
//
// Retrieval is the caller's concern: this package takes an io.Reader over an
// already-fetched document and never touches the network.
package rss

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/riffline/riffline/internal/feeds"
)

// DefaultImageURL is used when a story carries no usable image.
const DefaultImageURL = "/static/default-music.png"

// Parse converts an RSS/Atom document into articles. sourceName labels where
// the batch came from ("Blabbermouth.net").
func Parse(r io.Reader, sourceName string) ([]feeds.Article, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]feeds.Article, 0, len(feed.Items))
	for _, entry := range feed.Items {
		// Prefer published, fall back to updated; leave zero when the
		// feed has neither so dedup treats it as "latest".
		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}

		articles = append(articles, feeds.Article{
			Title:       entry.Title,
			Description: entry.Description,
			URL:         entry.Link,
			Source:      sourceName,
			ImageURL:    extractImage(entry),
			Published:   published,
		})
	}

	return articles, nil
}

// extractImage tries the common RSS media fields in order: media:content /
// media:thumbnail extensions, the feed-level item image, then image
// enclosures, then the default placeholder.
func extractImage(entry *gofeed.Item) string {
	if media, ok := entry.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, ext := range media[key] {
				if url := ext.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}

	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}

	for _, enc := range entry.Enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	return DefaultImageURL
}
