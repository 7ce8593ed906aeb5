package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/scoring"
)

const (
	configPathEnv   = "SIGNAL_TRACKER_CONFIG"
	corpusPathEnv   = "CORPUS_PATH"
	analystKeyEnv   = "ANALYST_API_KEY"
	analystModelEnv = "ANALYST_MODEL"

	defaultCorpusPath   = "historical_data.csv"
	defaultFetchTimeout = 20
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Sources   []SourceConfig  `yaml:"sources"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Replay    ReplayConfig    `yaml:"replay"`
	Analyst   AnalystConfig   `yaml:"analyst"`
	Trends    TrendsConfig    `yaml:"trends"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// IngestConfig controls batch normalization and source fetching.
type IngestConfig struct {
	// Strict fails the whole batch on the first malformed record instead of
	// scoring the well-formed subset.
	Strict              bool `yaml:"strict"`
	FetchTimeoutSeconds int  `yaml:"fetchTimeoutSeconds"`
}

// FetchTimeout resolves the per-source fetch budget.
func (c IngestConfig) FetchTimeout() time.Duration {
	secs := c.FetchTimeoutSeconds
	if secs <= 0 {
		secs = defaultFetchTimeout
	}
	return time.Duration(secs) * time.Second
}

// SourceConfig describes a single publisher with its scanner strategy.
type SourceConfig struct {
	Name    string            `yaml:"name"`
	Scanner string            `yaml:"scanner"`
	URL     string            `yaml:"url"`
	Options map[string]string `yaml:"options"`
}

// ExtractorConfig selects and tunes the organization-extraction capability.
type ExtractorConfig struct {
	Kind      string   `yaml:"kind"` // "prose" or "lexicon"
	MaxTokens int      `yaml:"maxTokens"`
	Lexicon   []string `yaml:"lexicon"`
}

// KeywordTierConfig is one AI-relevance tier of the scoring policy.
type KeywordTierConfig struct {
	Name   string   `yaml:"name"`
	Terms  []string `yaml:"terms"`
	Weight float64  `yaml:"weight"`
}

// ContentRuleConfig maps title keywords to a content weight.
type ContentRuleConfig struct {
	Terms  []string `yaml:"terms"`
	Weight float64  `yaml:"weight"`
}

// ScoringConfig externalizes every policy table of the scoring engine.
type ScoringConfig struct {
	KeywordTiers    []KeywordTierConfig `yaml:"keywordTiers"`
	SourceWeights   map[string]float64  `yaml:"sourceWeights"`
	ContentRules    []ContentRuleConfig `yaml:"contentRules"`
	ContentBaseline float64             `yaml:"contentBaseline"`
	AIWeight        float64             `yaml:"aiWeight"`
	SourceWeight    float64             `yaml:"sourceWeight"`
	ContentWeight   float64             `yaml:"contentWeight"`
	PriorityBound   float64             `yaml:"priorityBound"`
	EmergingBound   float64             `yaml:"emergingBound"`
	MonitorBound    float64             `yaml:"monitorBound"`
}

// ReplayConfig locates the historical corpus.
type ReplayConfig struct {
	CorpusPath string `yaml:"corpusPath"`
	TopSignals int    `yaml:"topSignals"`
}

// AnalystConfig defines how to contact the commentary API.
type AnalystConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"apiKey"`
}

// TrendsConfig lists the keywords tracked in the market trend snapshot.
type TrendsConfig struct {
	Keywords []string `yaml:"keywords"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An explicit path wins over the SIGNAL_TRACKER_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultConfig().Sources
	}

	return cfg
}

// Policy converts the externalized tables into the scoring engine's policy,
// lowercasing terms so matching stays case-insensitive regardless of how the
// file spells them.
func (c ScoringConfig) Policy() scoring.Policy {
	p := scoring.Policy{
		SourceWeights:   map[domain.Source]float64{},
		ContentBaseline: c.ContentBaseline,
		Weights:         scoring.Weights{AI: c.AIWeight, Source: c.SourceWeight, Content: c.ContentWeight},
		Bounds:          scoring.TierBounds{Priority: c.PriorityBound, Emerging: c.EmergingBound, Monitor: c.MonitorBound},
	}
	for _, tier := range c.KeywordTiers {
		p.KeywordTiers = append(p.KeywordTiers, scoring.KeywordTier{
			Name:   tier.Name,
			Terms:  lowerAll(tier.Terms),
			Weight: tier.Weight,
		})
	}
	for src, weight := range c.SourceWeights {
		p.SourceWeights[domain.Source(src)] = weight
	}
	for _, rule := range c.ContentRules {
		p.ContentRules = append(p.ContentRules, scoring.ContentRule{
			Terms:  lowerAll(rule.Terms),
			Weight: rule.Weight,
		})
	}
	return p
}

// KnownSources is the closed publisher set the normalizer accepts: every
// source with a credibility weight plus every configured scanner source.
func (c Config) KnownSources() []domain.Source {
	seen := map[domain.Source]struct{}{}
	var known []domain.Source
	add := func(src domain.Source) {
		if _, ok := seen[src]; ok || src == "" {
			return
		}
		seen[src] = struct{}{}
		known = append(known, src)
	}

	for src := range c.Scoring.SourceWeights {
		add(domain.Source(src))
	}
	for _, site := range c.Sources {
		add(domain.Source(site.Name))
	}
	return known
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, strings.ToLower(strings.TrimSpace(t)))
	}
	return out
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(corpusPathEnv); v != "" {
		c.Replay.CorpusPath = v
	}

	if v := os.Getenv(analystKeyEnv); v != "" {
		c.Analyst.APIKey = v
	}

	if v := os.Getenv(analystModelEnv); v != "" {
		c.Analyst.Model = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Ingest.Strict {
		base.Ingest.Strict = true
	}
	if override.Ingest.FetchTimeoutSeconds > 0 {
		base.Ingest.FetchTimeoutSeconds = override.Ingest.FetchTimeoutSeconds
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	if override.Extractor.Kind != "" {
		base.Extractor.Kind = override.Extractor.Kind
	}
	if override.Extractor.MaxTokens > 0 {
		base.Extractor.MaxTokens = override.Extractor.MaxTokens
	}
	if len(override.Extractor.Lexicon) > 0 {
		base.Extractor.Lexicon = override.Extractor.Lexicon
	}

	base.Scoring = mergeScoring(base.Scoring, override.Scoring)

	if override.Replay.CorpusPath != "" {
		base.Replay.CorpusPath = override.Replay.CorpusPath
	}
	if override.Replay.TopSignals > 0 {
		base.Replay.TopSignals = override.Replay.TopSignals
	}

	if override.Analyst.Endpoint != "" {
		base.Analyst.Endpoint = override.Analyst.Endpoint
	}
	if override.Analyst.Model != "" {
		base.Analyst.Model = override.Analyst.Model
	}
	if override.Analyst.APIKey != "" {
		base.Analyst.APIKey = override.Analyst.APIKey
	}

	if len(override.Trends.Keywords) > 0 {
		base.Trends = override.Trends
	}

	return base
}

func mergeScoring(base, override ScoringConfig) ScoringConfig {
	if len(override.KeywordTiers) > 0 {
		base.KeywordTiers = override.KeywordTiers
	}
	if len(override.SourceWeights) > 0 {
		base.SourceWeights = override.SourceWeights
	}
	if len(override.ContentRules) > 0 {
		base.ContentRules = override.ContentRules
	}
	if override.ContentBaseline > 0 {
		base.ContentBaseline = override.ContentBaseline
	}
	if override.AIWeight > 0 {
		base.AIWeight = override.AIWeight
	}
	if override.SourceWeight > 0 {
		base.SourceWeight = override.SourceWeight
	}
	if override.ContentWeight > 0 {
		base.ContentWeight = override.ContentWeight
	}
	if override.PriorityBound > 0 {
		base.PriorityBound = override.PriorityBound
	}
	if override.EmergingBound > 0 {
		base.EmergingBound = override.EmergingBound
	}
	if override.MonitorBound > 0 {
		base.MonitorBound = override.MonitorBound
	}
	return base
}

func defaultConfig() Config {
	policy := scoring.DefaultPolicy()

	scoringCfg := ScoringConfig{
		SourceWeights:   map[string]float64{},
		ContentBaseline: policy.ContentBaseline,
		AIWeight:        policy.Weights.AI,
		SourceWeight:    policy.Weights.Source,
		ContentWeight:   policy.Weights.Content,
		PriorityBound:   policy.Bounds.Priority,
		EmergingBound:   policy.Bounds.Emerging,
		MonitorBound:    policy.Bounds.Monitor,
	}
	for _, tier := range policy.KeywordTiers {
		scoringCfg.KeywordTiers = append(scoringCfg.KeywordTiers, KeywordTierConfig{
			Name:   tier.Name,
			Terms:  tier.Terms,
			Weight: tier.Weight,
		})
	}
	for src, weight := range policy.SourceWeights {
		scoringCfg.SourceWeights[string(src)] = weight
	}
	for _, rule := range policy.ContentRules {
		scoringCfg.ContentRules = append(scoringCfg.ContentRules, ContentRuleConfig{
			Terms:  rule.Terms,
			Weight: rule.Weight,
		})
	}

	return Config{
		Logging: LoggingConfig{Level: "info"},
		Ingest:  IngestConfig{FetchTimeoutSeconds: defaultFetchTimeout},
		Sources: []SourceConfig{
			{Name: "TechCrunch", Scanner: "techcrunch", URL: "https://techcrunch.com/category/startups/"},
			{Name: "Product Hunt", Scanner: "producthunt", URL: "https://www.producthunt.com/"},
		},
		Extractor: ExtractorConfig{Kind: "prose", MaxTokens: 5},
		Scoring:   scoringCfg,
		Replay:    ReplayConfig{CorpusPath: defaultCorpusPath, TopSignals: 10},
		Analyst: AnalystConfig{
			Endpoint: "https://api.openai.com/v1/chat/completions",
			Model:    "gpt-4o-mini",
		},
		Trends: TrendsConfig{Keywords: []string{
			"llm", "generative ai", "machine learning", "computer vision", "robotics", "fintech",
		}},
	}
}
