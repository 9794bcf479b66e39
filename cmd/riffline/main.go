// Command riffline runs the music-news enrichment pipeline over a saved
// RSS/Atom document and prints the deduplicated, tagged articles.
//
// Usage:
//
//	riffline -in feed.xml              Styled listing to stdout
//	riffline -in feed.xml -json        JSON array to stdout
//	riffline -in - -q metallica        Read stdin, filter by query
//
// Fetching the feed is out of scope; pair it with curl:
//
//	curl -s https://blabbermouth.net/feed | riffline -in -
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riffline/riffline/internal/config"
	"github.com/riffline/riffline/internal/dedup"
	"github.com/riffline/riffline/internal/feeds"
	"github.com/riffline/riffline/internal/feeds/rss"
	"github.com/riffline/riffline/internal/logging"
	"github.com/riffline/riffline/internal/pipeline"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Faint(true)
	genreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func main() {
	var (
		inPath     = flag.String("in", "", "feed document to read ('-' for stdin)")
		configPath = flag.String("config", "", "config file (JSON)")
		source     = flag.String("source", "Blabbermouth.net", "source name to attach to articles")
		query      = flag.String("q", "", "filter articles by query before deduplication")
		threshold  = flag.Float64("threshold", 0, "similarity threshold override (0 = from config)")
		asJSON     = flag.Bool("json", false, "print articles as JSON")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logging.Init(os.Stderr, level)

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "riffline: -in is required (path to a saved feed, or '-' for stdin)")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("Failed to load config", "path", *configPath, "error", err)
	}
	if *threshold > 0 {
		cfg.SimilarityThreshold = *threshold
	}

	articles, err := readFeed(*inPath, *source)
	if err != nil {
		logging.Fatal("Failed to read feed", "path", *inPath, "error", err)
	}
	logging.Debug("Feed parsed", "articles", len(articles))

	articles = feeds.FilterQuery(articles, *query, cfg.BatchLimit)

	d := dedup.New(cfg.SimilarityThreshold)
	d.SetTieBreak(dedup.TieBreak(cfg.TieBreak))
	d.AddSuffixes(cfg.ExtraSuffixes...)

	enriched, err := pipeline.New(d, cfg.Workers).Run(context.Background(), articles)
	if err != nil {
		logging.Fatal("Pipeline failed", "error", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(enriched); err != nil {
			logging.Fatal("Failed to encode output", "error", err)
		}
		return
	}

	printListing(enriched)
}

func readFeed(path, source string) ([]feeds.Article, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return rss.Parse(r, source)
}

func printListing(articles []feeds.Article) {
	if len(articles) == 0 {
		fmt.Println("no articles")
		return
	}

	for _, a := range articles {
		fmt.Println(titleStyle.Render(a.Title))

		var tags []string
		if a.Artist != "" {
			tags = append(tags, artistStyle.Render(a.Artist))
		}
		if len(a.Genres) > 0 {
			tags = append(tags, genreStyle.Render(strings.Join(a.Genres, ", ")))
		}
		if len(tags) > 0 {
			fmt.Println("  " + strings.Join(tags, "  ·  "))
		}

		meta := a.URL
		if !a.Published.IsZero() {
			meta = a.Published.Format("Jan 02, 2006 03:04 PM") + "  " + meta
		}
		fmt.Println("  " + metaStyle.Render(meta))
		fmt.Println()
	}
}
