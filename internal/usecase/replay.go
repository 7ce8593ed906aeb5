package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/ports"
	"SignalTracker/internal/scoring"
)

// DefaultTopSignals is how many ranked signals a replay returns when the
// configuration does not say otherwise.
const DefaultTopSignals = 10

// Replay re-scores the historical corpus as of a cutoff date and answers
// outcome lookups for the investment simulator.
type Replay struct {
	policy scoring.Policy
	topN   int
	corpus []domain.HistoricalRecord
}

// NewReplay loads the corpus once; it is read-only for the lifetime of the
// Replay.
func NewReplay(ctx context.Context, store ports.CorpusStore, policy scoring.Policy, topN int) (*Replay, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if topN <= 0 {
		topN = DefaultTopSignals
	}
	return &Replay{policy: policy, topN: topN, corpus: records}, nil
}

// AsOf scores every record published on or before the cutoff (inclusive) and
// returns the top signals, ranked descending with original corpus order
// breaking ties.
func (r *Replay) AsOf(asOf time.Time) []domain.ScoredMention {
	ranked := make([]domain.ScoredMention, 0, len(r.corpus))
	for _, rec := range r.corpus {
		if rec.Item.PublishedAt.After(asOf) {
			continue
		}
		score := r.policy.Score(rec.Item)
		ranked = append(ranked, domain.ScoredMention{
			CompanyMention: domain.CompanyMention{Company: rec.Company, Item: rec.Item},
			Score:          score,
			Tier:           r.policy.TierFor(score),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > r.topN {
		ranked = ranked[:r.topN]
	}
	return ranked
}

// OutcomeFor reveals the recorded outcome for a company over the full,
// unfiltered corpus. Revealing ground truth that postdates a replay cutoff is
// the point of the simulator, not a leak.
func (r *Replay) OutcomeFor(company string) (outcome string, roi float64, ok bool) {
	for _, rec := range r.corpus {
		if rec.Company != company {
			continue
		}
		outcome = rec.Outcome
		if outcome == "N/A" {
			outcome = ""
		}
		return outcome, rec.ROIPotential, true
	}
	return "", 0, false
}

// Bounds returns the earliest and latest publication dates in the corpus,
// which the display layer uses to frame the cutoff selector.
func (r *Replay) Bounds() (earliest, latest time.Time) {
	for _, rec := range r.corpus {
		at := rec.Item.PublishedAt
		if earliest.IsZero() || at.Before(earliest) {
			earliest = at
		}
		if at.After(latest) {
			latest = at
		}
	}
	return earliest, latest
}
