package ports

import (
	"context"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scanner"
)

// RecordSource pulls the latest raw records from every configured publisher.
// Transport failures stay behind this boundary; a failed publisher yields an
// empty result, not an error.
type RecordSource interface {
	Fetch(ctx context.Context) ([]scanner.Record, error)
}

// OrganizationExtractor returns the set of organization names mentioned in a
// text: deduplicated, trimmed, casing preserved, first-appearance order.
// Empty input yields an empty set, never an error.
type OrganizationExtractor interface {
	Organizations(text string) []string
}

// CorpusStore loads and persists the flat historical record corpus.
type CorpusStore interface {
	Load(ctx context.Context) ([]domain.HistoricalRecord, error)
	Save(ctx context.Context, records []domain.HistoricalRecord) error
}

// CommentaryClient generates qualitative analyst commentary for one news
// item. Failures degrade to a placeholder, never abort the pipeline.
type CommentaryClient interface {
	AnalystTake(ctx context.Context, title, description string) (string, error)
}
