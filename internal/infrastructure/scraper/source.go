package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"SignalTracker/internal/config"
	"SignalTracker/internal/ports"
	"SignalTracker/internal/scanner"
)

// MultiSource implements ports.RecordSource across all configured publishers.
// Publishers are fetched in parallel, each under its own timeout; a failing
// or timed-out publisher contributes an empty result while the others
// proceed. Results merge in configuration order so batches stay
// deterministic.
type MultiSource struct {
	registry *scanner.Registry
	sites    []config.SourceConfig
	timeout  time.Duration
	logger   *slog.Logger
}

var _ ports.RecordSource = (*MultiSource)(nil)

// NewMultiSource wires the scanner registry with config-defined publishers.
func NewMultiSource(reg *scanner.Registry, sites []config.SourceConfig, timeout time.Duration, log *slog.Logger) *MultiSource {
	return &MultiSource{
		registry: reg,
		sites:    sites,
		timeout:  timeout,
		logger:   log,
	}
}

// Fetch executes every configured scanner and merges their records.
func (s *MultiSource) Fetch(ctx context.Context) ([]scanner.Record, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	results := make([][]scanner.Record, len(s.sites))
	g, gctx := errgroup.WithContext(ctx)

	for i, site := range s.sites {
		i, site := i, site
		g.Go(func() error {
			strategy, err := s.registry.Resolve(site.Scanner)
			if err != nil {
				s.warn("skipping source with unknown scanner", "source", site.Name, "error", err)
				return nil
			}

			fctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()

			records, err := strategy.Scan(fctx, scanner.Request{
				SourceName: site.Name,
				URL:        site.URL,
				Options:    site.Options,
			})
			if err != nil {
				s.warn("source fetch failed, continuing without it", "source", site.Name, "error", err)
				return nil
			}

			for j := range records {
				if records[j].Source == "" {
					records[j].Source = site.Name
				}
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []scanner.Record
	for _, records := range results {
		merged = append(merged, records...)
	}
	s.debug("sources merged", "sites", len(s.sites), "records", len(merged))
	return merged, nil
}

func (s *MultiSource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *MultiSource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
