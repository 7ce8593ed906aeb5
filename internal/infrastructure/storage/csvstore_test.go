package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SignalTracker/internal/domain"
)

func TestCSVStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	store := NewCSVStore(path)

	want := []domain.HistoricalRecord{
		{
			Item: domain.NewsItem{
				Source:      domain.SourceTechCrunch,
				Title:       "Acme raises $10M in Series A funding",
				Description: "llm ops, with a comma",
				PublishedAt: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
			},
			Company:      "Acme",
			Outcome:      "Acquired for $50M",
			ROIPotential: 5,
		},
		{
			Item: domain.NewsItem{
				Source:      domain.SourceProductHunt,
				Title:       "Beta launches gadget",
				Description: "Beta ships",
				PublishedAt: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			Company:      "Beta",
			Outcome:      "N/A",
			ROIPotential: 0,
		},
	}

	ctx := context.Background()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("records = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Company != want[i].Company ||
			got[i].Outcome != want[i].Outcome ||
			got[i].ROIPotential != want[i].ROIPotential ||
			got[i].Item.Title != want[i].Item.Title ||
			got[i].Item.Description != want[i].Item.Description ||
			!got[i].Item.PublishedAt.Equal(want[i].Item.PublishedAt) {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCSVStoreLoadRejectsMissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	raw := "date,source,title\n2023-06-10,TechCrunch,Acme raises funding\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	if _, err := NewCSVStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for a corpus missing required columns")
	}
}

func TestCSVStoreLoadRejectsBadDate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	raw := "date,source,title,description,company_name,outcome,roi_potential\n" +
		"soon,TechCrunch,Acme raises funding,desc,Acme,N/A,0\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	if _, err := NewCSVStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for an unparseable date")
	}
}

func TestCSVStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected error for a missing corpus file")
	}
}
