package usecase

import (
	"reflect"
	"testing"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scoring"
)

// mapExtractor is the deterministic stub behind the extraction port: a fixed
// mapping from text to organization sets.
type mapExtractor map[string][]string

func (m mapExtractor) Organizations(text string) []string {
	return m[text]
}

func TestExplodeOnePairPerOrganization(t *testing.T) {
	t.Parallel()

	items := []domain.NewsItem{
		{Source: domain.SourceTechCrunch, Title: "Acme and Beta announce partnership", Description: "joint effort"},
		{Source: domain.SourceProductHunt, Title: "A quiet day", Description: "nothing here"},
	}
	extractor := mapExtractor{
		"Acme and Beta announce partnership": {"Acme", "Beta"},
	}

	agg := NewAggregator(extractor, scoring.DefaultPolicy())
	mentions := agg.Explode(items)

	if len(mentions) != 2 {
		t.Fatalf("mentions = %d, want 2", len(mentions))
	}
	if mentions[0].Company != "Acme" || mentions[1].Company != "Beta" {
		t.Fatalf("companies = %q, %q", mentions[0].Company, mentions[1].Company)
	}
	if mentions[0].Score != mentions[1].Score {
		t.Fatalf("sibling mentions diverged: %v vs %v", mentions[0].Score, mentions[1].Score)
	}
	if mentions[0].Item.Source != mentions[1].Item.Source {
		t.Fatal("sibling mentions lost shared source provenance")
	}
}

func TestRankGroupsByCompany(t *testing.T) {
	t.Parallel()

	funding := domain.NewsItem{Source: domain.SourceTechCrunch, Title: "Acme raises $5M in seed round", Description: "llm tooling"}
	launch := domain.NewsItem{Source: domain.SourceProductHunt, Title: "Acme launches tool", Description: "Acme ships"}
	other := domain.NewsItem{Source: domain.SourceProductHunt, Title: "Beta launches gadget", Description: ""}

	extractor := mapExtractor{
		funding.Title: {"Acme"},
		launch.Title:  {"Acme"},
		other.Title:   {"Beta"},
	}

	policy := scoring.DefaultPolicy()
	agg := NewAggregator(extractor, policy)
	board := agg.Aggregate([]domain.NewsItem{launch, funding, other})

	if len(board) != 2 {
		t.Fatalf("rows = %d, want 2", len(board))
	}

	acme := board[0]
	if acme.Company != "Acme" {
		t.Fatalf("top row = %q, want Acme", acme.Company)
	}
	wantMax := policy.Score(funding)
	if acme.MaxScore != wantMax {
		t.Fatalf("max score = %v, want %v", acme.MaxScore, wantMax)
	}
	if acme.Tier != policy.TierFor(wantMax) {
		t.Fatalf("tier = %q, want tier of the max-scoring mention", acme.Tier)
	}
	if acme.Mentions != 2 {
		t.Fatalf("mentions = %d, want 2", acme.Mentions)
	}
	wantSources := []string{"Product Hunt", "TechCrunch"}
	if !reflect.DeepEqual(acme.Sources, wantSources) {
		t.Fatalf("sources = %v, want %v", acme.Sources, wantSources)
	}
}

func TestRankTiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	first := domain.NewsItem{Source: domain.SourceTechCrunch, Title: "Acme raises funding", Description: ""}
	second := domain.NewsItem{Source: domain.SourceTechCrunch, Title: "Beta raises funding", Description: ""}

	extractor := mapExtractor{
		first.Title:  {"Acme"},
		second.Title: {"Beta"},
	}

	agg := NewAggregator(extractor, scoring.DefaultPolicy())
	board := agg.Aggregate([]domain.NewsItem{first, second})

	if len(board) != 2 {
		t.Fatalf("rows = %d, want 2", len(board))
	}
	if board[0].MaxScore != board[1].MaxScore {
		t.Fatalf("expected a tie, got %v and %v", board[0].MaxScore, board[1].MaxScore)
	}
	if board[0].Company != "Acme" || board[1].Company != "Beta" {
		t.Fatalf("tie order = %q, %q; want first-seen order", board[0].Company, board[1].Company)
	}
}

func TestAggregateExcludesItemsWithoutOrganizations(t *testing.T) {
	t.Parallel()

	items := []domain.NewsItem{
		{Source: domain.SourceTechCrunch, Title: "Untagged market musings", Description: ""},
	}

	agg := NewAggregator(mapExtractor{}, scoring.DefaultPolicy())
	if board := agg.Aggregate(items); len(board) != 0 {
		t.Fatalf("rows = %d, want 0", len(board))
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	t.Parallel()

	items := []domain.NewsItem{
		{Source: domain.SourceTechCrunch, Title: "Acme raises $5M in seed round", Description: "llm"},
		{Source: domain.SourceProductHunt, Title: "Beta launches gadget", Description: ""},
		{Source: domain.SourceProductHunt, Title: "Acme launches tool", Description: ""},
	}
	extractor := mapExtractor{
		items[0].Title: {"Acme"},
		items[1].Title: {"Beta"},
		items[2].Title: {"Acme"},
	}

	agg := NewAggregator(extractor, scoring.DefaultPolicy())
	first := agg.Aggregate(items)
	second := agg.Aggregate(items)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}
