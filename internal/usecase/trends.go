package usecase

import (
	"strings"

	"SignalTracker/internal/domain"
)

// KeywordCount is one row of the market trend snapshot.
type KeywordCount struct {
	Keyword  string
	Mentions int
}

// CountKeywordMentions counts the items whose title or description contains
// each keyword, case-insensitively. Keywords keep their configured order.
func CountKeywordMentions(items []domain.NewsItem, keywords []string) []KeywordCount {
	counts := make([]KeywordCount, 0, len(keywords))
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		n := 0
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Text()), needle) {
				n++
			}
		}
		counts = append(counts, KeywordCount{Keyword: kw, Mentions: n})
	}
	return counts
}
