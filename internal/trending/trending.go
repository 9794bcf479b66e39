// Package trending tracks per-article view counts for "trending" displays.
//
// The counter is owned by the caller: when to reset it (per day, per deploy,
// never) is a presentation decision, not something this package decides.
package trending

import (
	"sort"
	"sync"
)

// Entry is a single article's view count.
type Entry struct {
	URL   string
	Views int
}

// Counter is a concurrent-safe mapping from article identity (URL) to view
// count.
type Counter struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Record increments the view count for url and returns the new count.
// Empty URLs are ignored and return 0.
func (c *Counter) Record(url string) int {
	if url == "" {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[url]++
	return c.counts[url]
}

// Count returns the current view count for url.
func (c *Counter) Count(url string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[url]
}

// Len returns the number of distinct articles seen.
func (c *Counter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// Top returns the n most-viewed articles, most views first. Ties break by
// URL so the order is deterministic. n <= 0 returns everything.
func (c *Counter) Top(n int) []Entry {
	c.mu.RLock()
	entries := make([]Entry, 0, len(c.counts))
	for url, views := range c.counts {
		entries = append(entries, Entry{URL: url, Views: views})
	}
	c.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Views != entries[j].Views {
			return entries[i].Views > entries[j].Views
		}
		return entries[i].URL < entries[j].URL
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Reset clears all counts.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[string]int)
}
