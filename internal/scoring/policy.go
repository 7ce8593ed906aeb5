package scoring

import "SignalTracker/internal/domain"

// KeywordTier groups AI-relevance terms sharing one weight. Tiers are
// checked in order and the first matching tier wins; matches never stack.
type KeywordTier struct {
	Name   string
	Terms  []string
	Weight float64
}

// ContentRule maps title keywords to a content weight. Rules are checked in
// their listed order.
type ContentRule struct {
	Terms  []string
	Weight float64
}

// Weights are the component multipliers of the composite score. The 30/30/40
// split is policy, not a derived quantity.
type Weights struct {
	AI      float64
	Source  float64
	Content float64
}

// TierBounds are the score cutoffs between tiers. The priority bound is
// exclusive (a score of exactly 85 stays Emerging Trend); the lower two
// bounds are inclusive.
type TierBounds struct {
	Priority float64
	Emerging float64
	Monitor  float64
}

// Policy carries every table the scoring engine consults. It is passed in
// explicitly so the engine has no hidden global state and can be tested with
// alternate tables.
type Policy struct {
	KeywordTiers    []KeywordTier
	SourceWeights   map[domain.Source]float64
	ContentRules    []ContentRule
	ContentBaseline float64
	Weights         Weights
	Bounds          TierBounds
}

// DefaultPolicy returns the shipped policy tables. Terms are stored
// lowercase; matching is case-insensitive substring.
func DefaultPolicy() Policy {
	return Policy{
		KeywordTiers: []KeywordTier{
			{
				Name: "core_ai",
				Terms: []string{
					"llm", "foundational model", "neural network", "generative ai",
					"computer vision", "agi", "transformer architecture",
				},
				Weight: 1.0,
			},
			{
				Name: "applied_ai",
				Terms: []string{
					"ai-powered", "machine learning", "intelligent automation",
					"predictive analytics", "nlp",
				},
				Weight: 0.6,
			},
			{
				Name:   "general_ai",
				Terms:  []string{"ai"},
				Weight: 0.3,
			},
		},
		SourceWeights: map[domain.Source]float64{
			domain.SourceTechCrunch:  1.0,
			domain.SourceProductHunt: 0.6,
		},
		ContentRules: []ContentRule{
			{Terms: []string{"raises", "funding", "series", "seed round"}, Weight: 1.0},
			{Terms: []string{"launches"}, Weight: 0.7},
			{Terms: []string{"partnership"}, Weight: 0.5},
		},
		ContentBaseline: 0.5,
		Weights:         Weights{AI: 30, Source: 30, Content: 40},
		Bounds:          TierBounds{Priority: 85, Emerging: 70, Monitor: 50},
	}
}
