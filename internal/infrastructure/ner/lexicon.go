package ner

import (
	"regexp"
	"strings"

	"SignalTracker/internal/ports"
)

// LexiconExtractor matches a configured list of organization names on word
// boundaries. It is the deterministic substitute for the NLP-backed
// extractor: same port, no model.
type LexiconExtractor struct {
	names    []string
	patterns []*regexp.Regexp
}

var _ ports.OrganizationExtractor = (*LexiconExtractor)(nil)

// NewLexiconExtractor compiles the lexicon. Blank entries and names past the
// token threshold are dropped up front.
func NewLexiconExtractor(names []string, maxTokens int) *LexiconExtractor {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxNameTokens
	}

	ex := &LexiconExtractor{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || len(strings.Fields(name)) > maxTokens {
			continue
		}
		ex.names = append(ex.names, name)
		ex.patterns = append(ex.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	}
	return ex
}

// Organizations returns every lexicon name present in the text, in lexicon
// order, with the lexicon's casing preserved.
func (l *LexiconExtractor) Organizations(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	for i, pattern := range l.patterns {
		if pattern.MatchString(text) {
			out = append(out, l.names[i])
		}
	}
	return out
}
