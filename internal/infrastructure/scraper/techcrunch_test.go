package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SignalTracker/internal/scanner"
)

func TestTechCrunchScan(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<ul>
		  <li class="wp-block-post post-1">
		    <h3 class="loop-card__title"><a href="/a">Acme raises $10M to automate widget QA</a></h3>
		  </li>
		  <li class="wp-block-post post-2">
		    <h3 class="loop-card__title"><a href="/b">Beta launches an llm sidekick</a></h3>
		  </li>
		  <li class="wp-block-post post-3">
		    <h3 class="loop-card__title"></h3>
		  </li>
		</ul>`))
	}))
	defer server.Close()

	sc := NewTechCrunchScanner(server.Client())
	records, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Title != "Acme raises $10M to automate widget QA" {
		t.Fatalf("title = %q", records[0].Title)
	}
	if records[0].Source != "TechCrunch" {
		t.Fatalf("source = %q", records[0].Source)
	}
	if records[0].Description != "" {
		t.Fatalf("description = %q, want empty (normalizer defaults it)", records[0].Description)
	}
}

func TestTechCrunchScanBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sc := NewTechCrunchScanner(server.Client())
	if _, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
