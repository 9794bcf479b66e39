package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/riffline/riffline/internal/dedup"
	"github.com/riffline/riffline/internal/feeds"
)

func TestRunEnrichesBatch(t *testing.T) {
	p := New(dedup.New(0), 4)

	in := []feeds.Article{
		{Title: "Metallica Announces New Album", URL: "u1"},
		{Title: "Metallica Announces New Album - Loudwire", URL: "u2", Description: "Full story."},
		{Title: "Slipknot Drops Single", URL: "u3"},
	}

	out, err := p.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d articles, want 2", len(out))
	}

	if out[0].Artist != "Metallica" {
		t.Errorf("out[0].Artist = %q, want Metallica", out[0].Artist)
	}
	if len(out[0].Genres) == 0 || out[0].Genres[0] != "metal" {
		t.Errorf("out[0].Genres = %v, want metal first", out[0].Genres)
	}
	if out[1].Artist != "Slipknot" {
		t.Errorf("out[1].Artist = %q, want Slipknot", out[1].Artist)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	p := New(nil, 0)

	out, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d articles, want 0", len(out))
	}
}

func TestRunCancelledContext(t *testing.T) {
	p := New(nil, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Run(ctx, []feeds.Article{{Title: "Korn Signs New Deal", URL: "u1"}}); err == nil {
		t.Error("Run with cancelled context should fail")
	}
}

func TestRunResultIndependentOfWorkerCount(t *testing.T) {
	in := make([]feeds.Article, 0, 50)
	for i := 0; i < 50; i++ {
		in = append(in, feeds.Article{
			Title: fmt.Sprintf("Band%02d Announces Album %d", i, i),
			URL:   fmt.Sprintf("u%d", i),
		})
	}

	serial, err := New(dedup.New(0), 1).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("serial run failed: %v", err)
	}
	parallel, err := New(dedup.New(0), 8).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("parallel run failed: %v", err)
	}

	if len(serial) != len(parallel) {
		t.Fatalf("lengths differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i].URL != parallel[i].URL || serial[i].Artist != parallel[i].Artist {
			t.Errorf("position %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	p := New(dedup.New(0), 2)

	in := []feeds.Article{{Title: "Gojira Announces Tour", URL: "u1"}}
	if _, err := p.Run(context.Background(), in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if in[0].Artist != "" || in[0].Genres != nil {
		t.Errorf("input mutated: %+v", in[0])
	}
}
