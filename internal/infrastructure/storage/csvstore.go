package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/ports"
)

const dateLayout = "2006-01-02"

var corpusColumns = []string{
	"date", "source", "title", "description", "company_name", "outcome", "roi_potential",
}

// CSVStore reads and writes the flat historical corpus file.
type CSVStore struct {
	path string
}

var _ ports.CorpusStore = (*CSVStore)(nil)

// NewCSVStore wires a corpus file path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load parses the corpus. The header row is required and may carry extra
// columns, which are ignored. Structural problems fail immediately rather
// than producing a silently partial corpus.
func (s *CSVStore) Load(ctx context.Context) ([]domain.HistoricalRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range corpusColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("corpus is missing column %q", name)
		}
	}

	var records []domain.HistoricalRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, cols map[string]int) (domain.HistoricalRecord, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	published, err := time.Parse(dateLayout, field("date"))
	if err != nil {
		return domain.HistoricalRecord{}, fmt.Errorf("parse date: %w", err)
	}

	var roi float64
	if raw := field("roi_potential"); raw != "" {
		roi, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.HistoricalRecord{}, fmt.Errorf("parse roi_potential: %w", err)
		}
	}

	return domain.HistoricalRecord{
		Item: domain.NewsItem{
			Source:      domain.Source(field("source")),
			Title:       field("title"),
			Description: field("description"),
			PublishedAt: published,
		},
		Company:      field("company_name"),
		Outcome:      field("outcome"),
		ROIPotential: roi,
	}, nil
}

// Save writes the corpus with the canonical column order.
func (s *CSVStore) Save(ctx context.Context, records []domain.HistoricalRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(corpusColumns); err != nil {
		_ = f.Close()
		return fmt.Errorf("write corpus header: %w", err)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			_ = f.Close()
			return err
		}

		row := []string{
			rec.Item.PublishedAt.Format(dateLayout),
			string(rec.Item.Source),
			rec.Item.Title,
			rec.Item.Description,
			rec.Company,
			rec.Outcome,
			strconv.FormatFloat(rec.ROIPotential, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("write corpus row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush corpus: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close corpus: %w", err)
	}
	return nil
}
