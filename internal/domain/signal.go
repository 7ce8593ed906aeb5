package domain

import "time"

// Source identifies the publisher class of a news item. Credibility is a
// property of the class, not free text.
type Source string

const (
	SourceTechCrunch  Source = "TechCrunch"
	SourceProductHunt Source = "Product Hunt"
)

// NewsItem is one observed piece of news or product content in canonical form.
type NewsItem struct {
	Source      Source
	Title       string
	Description string
	PublishedAt time.Time // zero in live mode
}

// Text returns the searchable text of the item.
func (n NewsItem) Text() string {
	return n.Title + " " + n.Description
}

// Tier buckets a signal score into an actionable review queue.
type Tier string

const (
	TierPriorityReview Tier = "Priority Review"
	TierEmergingTrend  Tier = "Emerging Trend"
	TierMonitor        Tier = "Monitor"
	TierLowSignal      Tier = "Low Signal"
)

// CompanyMention pairs one extracted organization with the item it appeared
// in. An item with no extracted organizations produces no mentions.
type CompanyMention struct {
	Company string
	Item    NewsItem
}

// ScoredMention is a CompanyMention with its computed signal score and tier.
// The tier is always derivable from the score; it is carried only so callers
// never re-bucket with a different policy.
type ScoredMention struct {
	CompanyMention
	Score float64
	Tier  Tier
}

// CompanyAggregate is one leaderboard row per distinct company within a
// batch. Recomputed from scratch on every batch, never updated in place.
type CompanyAggregate struct {
	Company  string
	MaxScore float64
	Tier     Tier
	Mentions int
	Sources  []string
}

// HistoricalRecord is a corpus row: a news item with the company pre-resolved
// and the eventual outcome attached.
type HistoricalRecord struct {
	Item         NewsItem
	Company      string
	Outcome      string  // "" or "N/A" when unknown
	ROIPotential float64 // >0 return multiple, <0 total loss, 0 unknown
}
