// Package dedup collapses near-duplicate stories in a feed batch.
//
// Wire services and music sites routinely republish the same story under
// slightly tweaked headlines ("Metallica Announces New Album" vs
// "Metallica Announces New Album - Loudwire"). The deduplicator normalizes
// titles, scores them with a character-level similarity ratio, and keeps one
// representative per story while preserving first-seen order.
//
// The deduplicator holds no cross-batch state and is safe for concurrent use
// with different batches.
package dedup

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/riffline/riffline/internal/feeds"
)

// DefaultThreshold is the similarity score above which two normalized titles
// are treated as the same story.
const DefaultThreshold = 0.85

// TieBreak selects which of two near-duplicate articles survives.
type TieBreak string

const (
	// TieBreakDescription prefers the article with a non-empty description,
	// falling back to the earlier published time.
	TieBreakDescription TieBreak = "description-first"

	// TieBreakRecency prefers the earlier published article, falling back
	// to description presence.
	TieBreakRecency TieBreak = "recency-first"
)

// defaultSuffixes are site brandings commonly appended to headlines after a
// hyphen. Matching is case-insensitive against the normalized (lowercased)
// tail of the title.
var defaultSuffixes = []string{
	"blabbermouth.net",
	"blabbermouth",
	"loudwire",
	"billboard",
	"rolling stone",
	"pitchfork",
	"stereogum",
	"consequence",
	"consequence of sound",
	"nme",
	"kerrang!",
	"kerrang",
	"metal hammer",
	"metal injection",
	"revolver",
	"ultimate classic rock",
	"the prp",
}

// Deduplicator removes near-duplicate articles from a batch.
type Deduplicator struct {
	threshold float64
	tieBreak  TieBreak
	suffixes  []string
}

// New creates a deduplicator with the given similarity threshold.
// A threshold <= 0 uses DefaultThreshold.
func New(threshold float64) *Deduplicator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Deduplicator{
		threshold: threshold,
		tieBreak:  TieBreakDescription,
		suffixes:  defaultSuffixes,
	}
}

// SetTieBreak changes the duplicate-resolution policy. Unknown values keep
// the current policy.
func (d *Deduplicator) SetTieBreak(tb TieBreak) {
	if tb == TieBreakDescription || tb == TieBreakRecency {
		d.tieBreak = tb
	}
}

// AddSuffixes registers extra site brandings to strip during normalization.
func (d *Deduplicator) AddSuffixes(names ...string) {
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			d.suffixes = append(d.suffixes, n)
		}
	}
}

// Normalize reduces a headline to a comparison key so cosmetic differences
// (case, punctuation, trailing site brandings) don't matter.
func (d *Deduplicator) Normalize(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return ""
	}

	// Sites often append their brand after a pipe ("... | Billboard").
	if i := strings.Index(t, "|"); i >= 0 {
		t = t[:i]
	}

	// Same trick with a hyphen, but hyphens legitimately appear inside
	// headlines, so only cut when the tail is a known site name.
	if i := strings.LastIndex(t, " - "); i >= 0 {
		tail := strings.TrimSpace(t[i+3:])
		for _, s := range d.suffixes {
			if tail == s {
				t = t[:i]
				break
			}
		}
	}

	// Strip everything that isn't alphanumeric, then collapse whitespace.
	t = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, t)

	return strings.Join(strings.Fields(t), " ")
}

// Similarity returns a 0-1 score for two normalized titles; 1 means
// identical. Empty strings never match anything.
func (d *Deduplicator) Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 1 - float64(dist)/float64(longest)
}

type keptEntry struct {
	article feeds.Article
	norm    string
}

// Deduplicate collapses near-duplicate articles to a single representative
// each, preserving first-seen order. It never merges content across records:
// every output article is one of the inputs. Articles whose titles normalize
// to the empty string are always kept and never used as match targets.
func (d *Deduplicator) Deduplicate(articles []feeds.Article) []feeds.Article {
	kept := make([]keptEntry, 0, len(articles))

	for _, art := range articles {
		norm := d.Normalize(art.Title)
		if norm == "" {
			kept = append(kept, keptEntry{article: art})
			continue
		}

		matched := false
		for i := range kept {
			if kept[i].norm == "" {
				continue
			}
			if d.Similarity(norm, kept[i].norm) < d.threshold {
				continue
			}
			// Same story. The richer record wins but the position of
			// whichever was kept first never changes.
			if d.prefer(art, kept[i].article) {
				kept[i] = keptEntry{article: art, norm: norm}
			}
			matched = true
			break
		}
		if !matched {
			kept = append(kept, keptEntry{article: art, norm: norm})
		}
	}

	out := make([]feeds.Article, len(kept))
	for i, k := range kept {
		out[i] = k.article
	}
	return out
}

// prefer reports whether the incoming duplicate should replace the already
// kept article. On an exact tie the kept (earlier-position) article wins.
func (d *Deduplicator) prefer(incoming, kept feeds.Article) bool {
	switch d.tieBreak {
	case TieBreakRecency:
		if c := comparePublished(incoming, kept); c != 0 {
			return c < 0
		}
		return incoming.HasDescription() && !kept.HasDescription()
	default:
		if incoming.HasDescription() != kept.HasDescription() {
			return incoming.HasDescription()
		}
		return comparePublished(incoming, kept) < 0
	}
}

// comparePublished orders two articles by published time, earlier first.
// A missing timestamp counts as "latest" so it loses ties.
func comparePublished(a, b feeds.Article) int {
	switch {
	case a.Published.IsZero() && b.Published.IsZero():
		return 0
	case a.Published.IsZero():
		return 1
	case b.Published.IsZero():
		return -1
	case a.Published.Before(b.Published):
		return -1
	case b.Published.Before(a.Published):
		return 1
	}
	return 0
}
