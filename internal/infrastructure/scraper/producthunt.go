package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scanner"
)

const productHuntURL = "https://www.producthunt.com/"

// Listing names arrive as "3. Acme"; the rank prefix is noise.
var rankPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ProductHuntScanner scrapes the Product Hunt homepage for the day's
// launches.
type ProductHuntScanner struct {
	client *http.Client
}

var _ scanner.Scanner = (*ProductHuntScanner)(nil)

// NewProductHuntScanner wires an HTTP client; nil gets a 20s-timeout default.
func NewProductHuntScanner(client *http.Client) *ProductHuntScanner {
	if client == nil {
		client = defaultClient()
	}
	return &ProductHuntScanner{client: client}
}

// Name identifies the strategy inside the registry.
func (p *ProductHuntScanner) Name() string {
	return "producthunt"
}

// Scan extracts product names and taglines from the homepage post sections.
func (p *ProductHuntScanner) Scan(ctx context.Context, req scanner.Request) ([]scanner.Record, error) {
	pageURL := req.URL
	if pageURL == "" {
		pageURL = productHuntURL
	}

	doc, err := fetchDocument(ctx, p.client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("producthunt: %w", err)
	}

	var records []scanner.Record
	doc.Find("section[data-test^='post-item-']").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a[data-test^='post-name-']").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}
		title = rankPrefix.ReplaceAllString(title, "")

		// The tagline is the next anchor sibling of the name link.
		desc := strings.TrimSpace(link.NextAllFiltered("a").First().Text())

		records = append(records, scanner.Record{
			Source:      string(domain.SourceProductHunt),
			Title:       title,
			Description: desc,
		})
	})

	return records, nil
}
