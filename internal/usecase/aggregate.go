package usecase

import (
	"sort"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/ports"
	"SignalTracker/internal/scoring"
)

// Aggregator explodes multi-company items into per-company mentions and
// builds the ranked leaderboard.
type Aggregator struct {
	extractor ports.OrganizationExtractor
	policy    scoring.Policy
}

// NewAggregator wires the extraction capability with the scoring policy.
func NewAggregator(extractor ports.OrganizationExtractor, policy scoring.Policy) *Aggregator {
	return &Aggregator{extractor: extractor, policy: policy}
}

// Explode produces one scored mention per (item, organization) pair.
// Organizations are extracted from the title, the one field every publisher
// exposes reliably. The score is computed from the mention's own item, so a
// company appearing across several items can carry several scores. Items
// with no organizations yield nothing.
func (a *Aggregator) Explode(items []domain.NewsItem) []domain.ScoredMention {
	var mentions []domain.ScoredMention
	for _, item := range items {
		orgs := a.extractor.Organizations(item.Title)
		if len(orgs) == 0 {
			continue
		}

		score := a.policy.Score(item)
		tier := a.policy.TierFor(score)
		for _, org := range orgs {
			mentions = append(mentions, domain.ScoredMention{
				CompanyMention: domain.CompanyMention{Company: org, Item: item},
				Score:          score,
				Tier:           tier,
			})
		}
	}
	return mentions
}

// Rank groups mentions by company and ranks companies by their strongest
// mention, descending, with first-seen order breaking ties. Re-running on
// the same mentions yields identical output.
func (a *Aggregator) Rank(mentions []domain.ScoredMention) []domain.CompanyAggregate {
	index := make(map[string]int, len(mentions))
	var groups []domain.CompanyAggregate
	var sourceSets []map[string]struct{}

	for _, m := range mentions {
		i, ok := index[m.Company]
		if !ok {
			i = len(groups)
			index[m.Company] = i
			groups = append(groups, domain.CompanyAggregate{
				Company:  m.Company,
				MaxScore: m.Score,
				Tier:     m.Tier,
			})
			sourceSets = append(sourceSets, map[string]struct{}{})
		}

		g := &groups[i]
		g.Mentions++
		if m.Score > g.MaxScore {
			g.MaxScore = m.Score
			g.Tier = m.Tier
		}
		sourceSets[i][string(m.Item.Source)] = struct{}{}
	}

	for i := range groups {
		groups[i].Sources = sortedKeys(sourceSets[i])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].MaxScore > groups[j].MaxScore
	})
	return groups
}

// Aggregate runs the full explode-then-rank transform for one batch.
func (a *Aggregator) Aggregate(items []domain.NewsItem) []domain.CompanyAggregate {
	return a.Rank(a.Explode(items))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
