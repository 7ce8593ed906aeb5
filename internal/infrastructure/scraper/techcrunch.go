package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scanner"
)

const techCrunchURL = "https://techcrunch.com/category/startups/"

// TechCrunchScanner scrapes the TechCrunch Startups category listing.
type TechCrunchScanner struct {
	client *http.Client
}

var _ scanner.Scanner = (*TechCrunchScanner)(nil)

// NewTechCrunchScanner wires an HTTP client; nil gets a 20s-timeout default.
func NewTechCrunchScanner(client *http.Client) *TechCrunchScanner {
	if client == nil {
		client = defaultClient()
	}
	return &TechCrunchScanner{client: client}
}

// Name identifies the strategy inside the registry.
func (t *TechCrunchScanner) Name() string {
	return "techcrunch"
}

// Scan extracts article titles from the category page. The listing exposes no
// reliable description, so it is left for the normalizer to default.
func (t *TechCrunchScanner) Scan(ctx context.Context, req scanner.Request) ([]scanner.Record, error) {
	pageURL := req.URL
	if pageURL == "" {
		pageURL = techCrunchURL
	}

	doc, err := fetchDocument(ctx, t.client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("techcrunch: %w", err)
	}

	var records []scanner.Record
	doc.Find("li[class^='wp-block-post']").Each(func(_ int, sel *goquery.Selection) {
		title := sel.Find("h3.loop-card__title").First()
		if title.Find("a").Length() == 0 {
			return
		}
		text := strings.TrimSpace(title.Text())
		if text == "" {
			return
		}
		records = append(records, scanner.Record{
			Source: string(domain.SourceTechCrunch),
			Title:  text,
		})
	})

	return records, nil
}
