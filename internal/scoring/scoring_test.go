package scoring

import (
	"testing"

	"SignalTracker/internal/domain"
)

func TestScoreFundingItemMaxesOut(t *testing.T) {
	t.Parallel()

	item := domain.NewsItem{
		Source:      domain.SourceTechCrunch,
		Title:       "Acme raises $10M in Series A funding",
		Description: "Acme builds a foundational model for logistics.",
	}

	p := DefaultPolicy()
	b := p.ScoreWithBreakdown(item)

	if b.AIConfidence != 1.0 {
		t.Fatalf("ai confidence = %v, want 1.0", b.AIConfidence)
	}
	if b.SourceCred != 1.0 {
		t.Fatalf("source credibility = %v, want 1.0", b.SourceCred)
	}
	if b.Content != 1.0 {
		t.Fatalf("content weight = %v, want 1.0", b.Content)
	}
	if b.Final != 100.0 {
		t.Fatalf("score = %v, want 100.0", b.Final)
	}
	if got := p.TierFor(b.Final); got != domain.TierPriorityReview {
		t.Fatalf("tier = %q, want %q", got, domain.TierPriorityReview)
	}
}

func TestScoreLaunchWithoutAISignal(t *testing.T) {
	t.Parallel()

	item := domain.NewsItem{
		Source: domain.SourceProductHunt,
		Title:  "Acme launches widget",
	}

	p := DefaultPolicy()
	got := p.Score(item)
	if got != 46.0 {
		t.Fatalf("score = %v, want 46.0", got)
	}
	if tier := p.TierFor(got); tier != domain.TierLowSignal {
		t.Fatalf("tier = %q, want %q", tier, domain.TierLowSignal)
	}
}

func TestTierBoundaries(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	cases := []struct {
		score float64
		want  domain.Tier
	}{
		{85.1, domain.TierPriorityReview},
		{85.0, domain.TierEmergingTrend},
		{70.0, domain.TierEmergingTrend},
		{69.9, domain.TierMonitor},
		{50.0, domain.TierMonitor},
		{49.9, domain.TierLowSignal},
		{0, domain.TierLowSignal},
		{100, domain.TierPriorityReview},
	}

	for _, tc := range cases {
		if got := p.TierFor(tc.score); got != tc.want {
			t.Errorf("TierFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestScoreRangeAndDeterminism(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	items := []domain.NewsItem{
		{},
		{Source: "Hacker News", Title: "Quiet infrastructure update"},
		{Source: domain.SourceTechCrunch, Title: "Startup announces partnership with BigCo"},
		{Source: domain.SourceProductHunt, Title: "NeuroKit", Description: "An AI-powered notebook with machine learning inside"},
		{Source: domain.SourceTechCrunch, Title: "Vision startup raises seed round", Description: "computer vision for farms"},
	}

	for _, item := range items {
		first := p.Score(item)
		if first < 0 || first > 100 {
			t.Errorf("score %v out of [0,100] for %+v", first, item)
		}
		if second := p.Score(item); second != first {
			t.Errorf("score not deterministic: %v then %v for %+v", first, second, item)
		}
	}
}

func TestScoreKeywordTiersDoNotStack(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	// Contains core, applied, and general terms at once; only core counts.
	item := domain.NewsItem{
		Source:      domain.SourceTechCrunch,
		Title:       "Lab ships an LLM with machine learning and ai everywhere",
		Description: "",
	}

	b := p.ScoreWithBreakdown(item)
	if b.AIConfidence != 1.0 {
		t.Fatalf("ai confidence = %v, want core tier 1.0", b.AIConfidence)
	}
}

func TestScoreUnknownSourceFlaggedNotFatal(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	b := p.ScoreWithBreakdown(domain.NewsItem{Source: "Hacker News", Title: "Acme secures funding"})

	if b.SourceKnown {
		t.Fatal("expected SourceKnown=false for a source outside the credibility table")
	}
	if b.SourceCred != 0 {
		t.Fatalf("source credibility = %v, want 0", b.SourceCred)
	}
	// ai 0 * 30 + source 0 * 30 + content 1.0 * 40
	if b.Final != 40.0 {
		t.Fatalf("score = %v, want 40.0", b.Final)
	}
}

func TestScoreSubstringMatchInsideWords(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	b := p.ScoreWithBreakdown(domain.NewsItem{Source: "Hacker News", Title: "Acme raises funding"})

	// "raises" contains "ai", so the general tier fires even without a
	// standalone keyword.
	if b.AIConfidence != 0.3 {
		t.Fatalf("ai confidence = %v, want general tier 0.3", b.AIConfidence)
	}
	if b.Final != 49.0 {
		t.Fatalf("score = %v, want 49.0", b.Final)
	}
}

func TestContentRuleOrder(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	cases := []struct {
		title string
		want  float64
	}{
		{"Acme raises a glass as it launches", 1.0}, // funding rule wins over launches
		{"Acme launches partnership program", 0.7},  // launches wins over partnership
		{"Acme announces partnership", 0.5},
		{"Acme does something else", 0.5}, // baseline
	}

	for _, tc := range cases {
		b := p.ScoreWithBreakdown(domain.NewsItem{Source: domain.SourceTechCrunch, Title: tc.title})
		if b.Content != tc.want {
			t.Errorf("content weight for %q = %v, want %v", tc.title, b.Content, tc.want)
		}
	}
}
