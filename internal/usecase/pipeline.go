package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/ports"
	"SignalTracker/internal/scoring"
)

const commentaryTimeout = 30 * time.Second

const commentaryPlaceholder = "Analyst commentary is unavailable for this batch."

// PipelineDeps wires all driven adapters into the live tracker pipeline.
type PipelineDeps struct {
	Source        ports.RecordSource
	Extractor     ports.OrganizationExtractor
	Commentary    ports.CommentaryClient
	Policy        scoring.Policy
	Normalizer    *Normalizer
	StrictIngest  bool
	TrendKeywords []string
	Logger        *slog.Logger
}

// Report is everything one live run produces for the display layer.
type Report struct {
	Items       []domain.NewsItem          // raw view, always populated
	Leaderboard []domain.CompanyAggregate  // empty when extraction is unavailable
	Trends      []KeywordCount
	Commentary  string
}

// Pipeline implements the live tracker workflow: fetch, normalize, extract,
// score, aggregate, commentate.
type Pipeline struct {
	source        ports.RecordSource
	extractor     ports.OrganizationExtractor
	commentary    ports.CommentaryClient
	policy        scoring.Policy
	normalizer    *Normalizer
	strict        bool
	trendKeywords []string
	logger        *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:        deps.Source,
		extractor:     deps.Extractor,
		commentary:    deps.Commentary,
		policy:        deps.Policy,
		normalizer:    deps.Normalizer,
		strict:        deps.StrictIngest,
		trendKeywords: deps.TrendKeywords,
		logger:        logger,
	}
}

// RunLive fetches, normalizes, scores and aggregates one batch. A missing
// extraction capability degrades to the raw item view and returns
// domain.ErrExtractionUnavailable alongside it. Commentary failures degrade
// to a placeholder and are never fatal.
func (p *Pipeline) RunLive(ctx context.Context) (Report, error) {
	records, err := p.source.Fetch(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch sources: %w", err)
	}

	items, malformed := p.normalizer.NormalizeBatch(records, p.strict)
	if p.strict && len(malformed) > 0 {
		return Report{}, malformed[0]
	}
	for _, mErr := range malformed {
		p.logger.Warn("dropping malformed record", "error", mErr)
	}

	report := Report{Items: items}
	report.Trends = CountKeywordMentions(items, p.trendKeywords)
	p.flagUnknownSources(items)

	if p.extractor == nil {
		return report, domain.ErrExtractionUnavailable
	}

	agg := NewAggregator(p.extractor, p.policy)
	mentions := agg.Explode(items)
	report.Leaderboard = agg.Rank(mentions)
	p.logger.Info("batch scored",
		"records", len(records),
		"items", len(items),
		"mentions", len(mentions),
		"companies", len(report.Leaderboard))

	report.Commentary = p.topCommentary(ctx, report.Leaderboard, mentions)
	return report, nil
}

// flagUnknownSources logs the non-fatal warning for sources outside the
// credibility table; scoring itself stays pure and just weights them zero,
// reporting the miss through the breakdown's SourceKnown flag.
func (p *Pipeline) flagUnknownSources(items []domain.NewsItem) {
	seen := map[domain.Source]bool{}
	for _, item := range items {
		if seen[item.Source] {
			continue
		}
		seen[item.Source] = true
		if p.policy.ScoreWithBreakdown(item).SourceKnown {
			continue
		}
		p.logger.Warn("source missing from credibility table, weighting 0", "source", item.Source)
	}
}

// topCommentary fetches analyst commentary for the top company's strongest
// mention.
func (p *Pipeline) topCommentary(ctx context.Context, board []domain.CompanyAggregate, mentions []domain.ScoredMention) string {
	if p.commentary == nil || len(board) == 0 {
		return ""
	}

	top := board[0]
	for _, m := range mentions {
		if m.Company != top.Company || m.Score != top.MaxScore {
			continue
		}

		cctx, cancel := context.WithTimeout(ctx, commentaryTimeout)
		take, err := p.commentary.AnalystTake(cctx, m.Item.Title, m.Item.Description)
		cancel()
		if err != nil {
			p.logger.Warn("analyst commentary unavailable", "company", top.Company, "error", err)
			return commentaryPlaceholder
		}
		return take
	}
	return ""
}
