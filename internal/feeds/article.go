package feeds

import (
	"strings"
	"time"
)

// Article represents a single music-news story flowing through the
// enrichment pipeline.
//
// Title, Description, URL, Source, ImageURL, and Published come from the
// upstream feed; Genres and Artist start empty and are attached by the
// tagging step.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source,omitempty"`
	ImageURL    string    `json:"image,omitempty"`
	Published   time.Time `json:"published_at,omitzero"`
	Genres      []string  `json:"genres,omitempty"`
	Artist      string    `json:"artist,omitempty"`
}

// HasDescription reports whether the article carries a non-empty description
// after trimming. Used as the primary tie-break signal during deduplication.
func (a Article) HasDescription() bool {
	return strings.TrimSpace(a.Description) != ""
}

// MatchesQuery reports whether query appears in the article's title or
// description, case-insensitively. An empty query matches every article.
func (a Article) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(a.Title + " " + a.Description)
	return strings.Contains(haystack, q)
}

// FilterQuery returns the articles matching query, capped at limit entries.
// A limit <= 0 means no cap. Input order is preserved.
func FilterQuery(articles []Article, query string, limit int) []Article {
	result := make([]Article, 0, len(articles))
	for _, a := range articles {
		if !a.MatchesQuery(query) {
			continue
		}
		result = append(result, a)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}
