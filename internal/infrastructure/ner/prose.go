package ner

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/ports"
)

// DefaultMaxNameTokens caps how long an extracted name may be before it is
// discarded as a likely mis-detection.
const DefaultMaxNameTokens = 5

// ProseExtractor backs the organization-extraction port with the prose NLP
// model. The shipped model labels only PERSON and GPE spans and has no ORG
// label, so every detected entity span is a candidate organization and the
// token threshold filters the noise.
type ProseExtractor struct {
	maxTokens int
}

var _ ports.OrganizationExtractor = (*ProseExtractor)(nil)

// NewProseExtractor warms the model up on a probe sentence so initialization
// failures surface here, before any batch runs.
func NewProseExtractor(maxTokens int) (*ProseExtractor, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxNameTokens
	}
	if _, err := prose.NewDocument("OpenAI ships a new model."); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, err)
	}
	return &ProseExtractor{maxTokens: maxTokens}, nil
}

// Organizations returns the deduplicated entity spans of the text in
// first-appearance order. Empty input yields an empty set, never an error.
func (p *ProseExtractor) Organizations(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	entities := doc.Entities()
	names := make([]string, 0, len(entities))
	for _, ent := range entities {
		names = append(names, ent.Text)
	}
	return filterNames(names, p.maxTokens)
}

// filterNames trims, drops names longer than maxTokens tokens, and dedups by
// exact string while preserving first-appearance order.
func filterNames(names []string, maxTokens int) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(strings.Fields(name)) > maxTokens {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
