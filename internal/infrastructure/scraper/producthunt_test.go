package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SignalTracker/internal/scanner"
)

func TestProductHuntScan(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<main>
		  <section data-test="post-item-1">
		    <a data-test="post-name-1">1. NeuroKit</a>
		    <a href="/posts/neurokit">An AI-powered notebook for researchers</a>
		  </section>
		  <section data-test="post-item-2">
		    <a data-test="post-name-2">2. PlainDesk</a>
		    <a href="/posts/plaindesk">Customer support without the bloat</a>
		  </section>
		</main>`))
	}))
	defer server.Close()

	sc := NewProductHuntScanner(server.Client())
	records, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Title != "NeuroKit" {
		t.Fatalf("title = %q, want rank prefix stripped", records[0].Title)
	}
	if records[0].Description != "An AI-powered notebook for researchers" {
		t.Fatalf("description = %q", records[0].Description)
	}
	if records[1].Source != "Product Hunt" {
		t.Fatalf("source = %q", records[1].Source)
	}
}
