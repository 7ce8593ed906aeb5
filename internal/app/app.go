package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"SignalTracker/internal/config"
	"SignalTracker/internal/domain"
	"SignalTracker/internal/infrastructure/generator"
	"SignalTracker/internal/infrastructure/llm"
	"SignalTracker/internal/infrastructure/ner"
	"SignalTracker/internal/infrastructure/scraper"
	"SignalTracker/internal/infrastructure/storage"
	"SignalTracker/internal/logging"
	"SignalTracker/internal/ports"
	"SignalTracker/internal/scanner"
	"SignalTracker/internal/scoring"
	"SignalTracker/internal/ui"
	"SignalTracker/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	policy   scoring.Policy
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := scanner.NewRegistry()
	registry.Register(scraper.NewTechCrunchScanner(nil))
	registry.Register(scraper.NewProductHuntScanner(nil))
	registry.Register(scraper.NewRSSScanner())

	source := scraper.NewMultiSource(registry, cfg.Sources, cfg.Ingest.FetchTimeout(),
		baseLogger.With("component", "source"))

	extractor := buildExtractor(cfg.Extractor, baseLogger)

	var commentary ports.CommentaryClient
	if cfg.Analyst.APIKey != "" {
		commentary = llm.NewAnalystClient(cfg.Analyst)
	}

	policy := cfg.Scoring.Policy()

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:        source,
		Extractor:     extractor,
		Commentary:    commentary,
		Policy:        policy,
		Normalizer:    usecase.NewNormalizer(cfg.KnownSources()),
		StrictIngest:  cfg.Ingest.Strict,
		TrendKeywords: cfg.Trends.Keywords,
		Logger:        baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, policy: policy, pipeline: pipeline}
}

// buildExtractor picks the configured extraction backend. A prose model that
// fails to warm up degrades to no extractor; the pipeline then serves the raw
// scored view.
func buildExtractor(cfg config.ExtractorConfig, logger *slog.Logger) ports.OrganizationExtractor {
	switch cfg.Kind {
	case "lexicon":
		return ner.NewLexiconExtractor(cfg.Lexicon, cfg.MaxTokens)
	default:
		extractor, err := ner.NewProseExtractor(cfg.MaxTokens)
		if err != nil {
			logger.Warn("organization extraction unavailable", "error", err)
			return nil
		}
		return extractor
	}
}

// RunLive executes one fetch-score-aggregate cycle and prints the report.
func (a *Application) RunLive(ctx context.Context) error {
	report, err := a.pipeline.RunLive(ctx)
	if err != nil && !errors.Is(err, domain.ErrExtractionUnavailable) {
		return err
	}

	scores := make([]float64, len(report.Items))
	for i, item := range report.Items {
		scores[i] = a.policy.Score(item)
	}
	fmt.Print(ui.RenderItems(report.Items, scores))

	if errors.Is(err, domain.ErrExtractionUnavailable) {
		fmt.Print(ui.RenderWarning("company extraction is unavailable, showing the raw signal view only"))
		return nil
	}

	fmt.Print(ui.RenderLeaderboard(report.Leaderboard))
	fmt.Print(ui.RenderTrends(report.Trends))
	if len(report.Leaderboard) > 0 && report.Commentary != "" {
		fmt.Print(ui.RenderCommentary(report.Leaderboard[0].Company, report.Commentary))
	}
	return nil
}

// RunReplay re-scores the historical corpus as of a cutoff date and prints
// the ranked signals with their eventual outcomes.
func (a *Application) RunReplay(ctx context.Context, asOf time.Time, topN int) error {
	replay, err := a.newReplay(ctx, topN)
	if err != nil {
		return err
	}

	earliest, latest := replay.Bounds()
	if !earliest.IsZero() && asOf.Before(earliest) {
		fmt.Print(ui.RenderWarning(fmt.Sprintf(
			"cutoff predates the corpus (%s to %s)", earliest.Format("2006-01-02"), latest.Format("2006-01-02"))))
	}

	mentions := replay.AsOf(asOf)
	outcomes := make([]domain.HistoricalRecord, len(mentions))
	for i, m := range mentions {
		outcome, roi, ok := replay.OutcomeFor(m.Company)
		if !ok {
			continue
		}
		outcomes[i] = domain.HistoricalRecord{Company: m.Company, Outcome: outcome, ROIPotential: roi}
	}

	fmt.Print(ui.RenderReplay(asOf, mentions, outcomes))
	return nil
}

// RunSimulate prints the recorded outcome for a single company.
func (a *Application) RunSimulate(ctx context.Context, company string) error {
	replay, err := a.newReplay(ctx, 0)
	if err != nil {
		return err
	}

	outcome, roi, ok := replay.OutcomeFor(company)
	if !ok {
		fmt.Print(ui.RenderSimulation(company, nil))
		return nil
	}
	fmt.Print(ui.RenderSimulation(company, &domain.HistoricalRecord{
		Company:      company,
		Outcome:      outcome,
		ROIPotential: roi,
	}))
	return nil
}

// RunGenerate writes a synthetic corpus for replay experiments.
func (a *Application) RunGenerate(ctx context.Context, n int, out string, seed int64) error {
	if out == "" {
		out = a.cfg.Replay.CorpusPath
	}
	records := generator.New(seed).Generate(n)
	if err := storage.NewCSVStore(out).Save(ctx, records); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	a.logger.Info("corpus generated", "records", len(records), "path", out)
	return nil
}

func (a *Application) newReplay(ctx context.Context, topN int) (*usecase.Replay, error) {
	if topN <= 0 {
		topN = a.cfg.Replay.TopSignals
	}
	store := storage.NewCSVStore(a.cfg.Replay.CorpusPath)
	return usecase.NewReplay(ctx, store, a.policy, topN)
}
