package scraper

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"SignalTracker/internal/scanner"
)

// RSSScanner pulls records from any RSS or Atom feed, so publishers beyond
// the two scraped pages can join a batch through configuration alone.
type RSSScanner struct {
	parser *gofeed.Parser
}

var _ scanner.Scanner = (*RSSScanner)(nil)

// NewRSSScanner builds a scanner with a fresh feed parser.
func NewRSSScanner() *RSSScanner {
	return &RSSScanner{parser: gofeed.NewParser()}
}

// Name identifies the strategy inside the registry.
func (r *RSSScanner) Name() string {
	return "rss"
}

// Scan parses the configured feed URL into raw records. The configured site
// name becomes the record source, so credibility weighting keys off the
// publisher, not the transport.
func (r *RSSScanner) Scan(ctx context.Context, req scanner.Request) ([]scanner.Record, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("rss: source %s has no feed url", req.SourceName)
	}

	feed, err := r.parser.ParseURLWithContext(req.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss %s: %w", req.SourceName, err)
	}

	records := make([]scanner.Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, scanner.Record{
			Source:      req.SourceName,
			Title:       item.Title,
			Description: item.Description,
		})
	}

	return records, nil
}
