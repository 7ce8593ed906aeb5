package usecase

import (
	"strings"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scanner"
)

// Normalizer converts heterogeneous raw source records into canonical news
// items. It is total over well-formed input; only structural malformation
// (empty title, unknown source) produces an error.
type Normalizer struct {
	known map[domain.Source]struct{}
}

// NewNormalizer builds a normalizer accepting the given closed set of
// publishers.
func NewNormalizer(known []domain.Source) *Normalizer {
	set := make(map[domain.Source]struct{}, len(known))
	for _, src := range known {
		set[src] = struct{}{}
	}
	return &Normalizer{known: set}
}

// Normalize validates one raw record. A blank description defaults to the
// title.
func (n *Normalizer) Normalize(rec scanner.Record) (domain.NewsItem, error) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return domain.NewsItem{}, &domain.MalformedRecordError{Source: rec.Source, Field: "title", Reason: "is empty"}
	}

	src := domain.Source(strings.TrimSpace(rec.Source))
	if _, ok := n.known[src]; !ok {
		return domain.NewsItem{}, &domain.MalformedRecordError{Source: rec.Source, Field: "source", Reason: "is not a known publisher"}
	}

	desc := strings.TrimSpace(rec.Description)
	if desc == "" {
		desc = title
	}

	return domain.NewsItem{Source: src, Title: title, Description: desc}, nil
}

// NormalizeBatch converts a whole batch. In strict mode the first malformed
// record aborts the batch; otherwise malformed records are reported back and
// the well-formed subset proceeds.
func (n *Normalizer) NormalizeBatch(recs []scanner.Record, strict bool) ([]domain.NewsItem, []error) {
	items := make([]domain.NewsItem, 0, len(recs))
	var malformed []error

	for _, rec := range recs {
		item, err := n.Normalize(rec)
		if err != nil {
			if strict {
				return nil, []error{err}
			}
			malformed = append(malformed, err)
			continue
		}
		items = append(items, item)
	}

	return items, malformed
}
