package scoring

import (
	"math"
	"strings"

	"SignalTracker/internal/domain"
)

// Breakdown shows how each component contributed to the final score.
// SourceKnown is false when the item's source is absent from the credibility
// table; the source then contributes zero credibility and the caller decides
// whether to log it.
type Breakdown struct {
	AIConfidence float64
	SourceCred   float64
	Content      float64
	Final        float64
	SourceKnown  bool
}

// Score computes the 0-100 signal score for one item. It never fails: a
// blank description scores as empty text and an unknown source contributes
// zero credibility.
func (p Policy) Score(item domain.NewsItem) float64 {
	return p.ScoreWithBreakdown(item).Final
}

// ScoreWithBreakdown computes the score together with its components.
func (p Policy) ScoreWithBreakdown(item domain.NewsItem) Breakdown {
	var b Breakdown
	b.AIConfidence = p.aiConfidence(strings.ToLower(item.Text()))
	b.SourceCred, b.SourceKnown = p.SourceWeights[item.Source]
	b.Content = p.contentWeight(strings.ToLower(item.Title))

	raw := b.AIConfidence*p.Weights.AI + b.SourceCred*p.Weights.Source + b.Content*p.Weights.Content
	b.Final = round1(raw)
	return b
}

func (p Policy) aiConfidence(textLower string) float64 {
	for _, tier := range p.KeywordTiers {
		for _, term := range tier.Terms {
			if strings.Contains(textLower, term) {
				return tier.Weight
			}
		}
	}
	return 0
}

func (p Policy) contentWeight(titleLower string) float64 {
	for _, rule := range p.ContentRules {
		for _, term := range rule.Terms {
			if strings.Contains(titleLower, term) {
				return rule.Weight
			}
		}
	}
	return p.ContentBaseline
}

// TierFor buckets a score. 85 itself stays Emerging Trend; 70 and 50 are
// inclusive lower bounds of their tiers.
func (p Policy) TierFor(score float64) domain.Tier {
	switch {
	case score > p.Bounds.Priority:
		return domain.TierPriorityReview
	case score >= p.Bounds.Emerging:
		return domain.TierEmergingTrend
	case score >= p.Bounds.Monitor:
		return domain.TierMonitor
	default:
		return domain.TierLowSignal
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
