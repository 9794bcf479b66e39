// Package pipeline composes the enrichment steps: deduplicate a batch, then
// tag each survivor with genres and an artist.
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/riffline/riffline/internal/dedup"
	"github.com/riffline/riffline/internal/feeds"
	"github.com/riffline/riffline/internal/logging"
	"github.com/riffline/riffline/internal/tagging"
)

// Pipeline runs raw article batches through dedup and tagging. Batches are
// independent; a single Pipeline may be used concurrently.
type Pipeline struct {
	dedup   *dedup.Deduplicator
	workers int
}

// New creates a pipeline. If workers <= 0, uses runtime.NumCPU().
func New(d *dedup.Deduplicator, workers int) *Pipeline {
	if d == nil {
		d = dedup.New(0)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pipeline{dedup: d, workers: workers}
}

// Run deduplicates the batch and annotates each surviving article with genre
// tags and a primary artist. Tagging fans out across the worker limit; each
// article's tags depend only on its own text, so order of execution doesn't
// affect the result.
func (p *Pipeline) Run(ctx context.Context, articles []feeds.Article) ([]feeds.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := p.dedup.Deduplicate(articles)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range out {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			art := &out[i]
			art.Genres = tagging.DetectGenres(art.Title, art.Description)
			if name, ok := tagging.ExtractArtist(art.Title); ok {
				art.Artist = name
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Debug("batch enriched",
		"in", len(articles),
		"out", len(out),
		"collapsed", len(articles)-len(out))
	return out, nil
}
