package scanner

import (
	"context"
	"fmt"
)

// Record is the raw shape every source adapter produces. Normalization into a
// canonical NewsItem happens downstream; adapters only promise source, title
// and (possibly empty) description.
type Record struct {
	Source      string
	Title       string
	Description string
}

// Request carries all parameters required to execute one fetch.
type Request struct {
	SourceName string
	URL        string
	Options    map[string]string
}

// Scanner captures a single fetch strategy (TechCrunch page, Product Hunt
// page, RSS feed, etc.).
type Scanner interface {
	Name() string
	Scan(ctx context.Context, req Request) ([]Record, error)
}

// Registry keeps a mapping from scanner names to their implementations.
type Registry struct {
	scanners map[string]Scanner
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{scanners: map[string]Scanner{}}
}

// Register adds or replaces a scanner implementation.
func (r *Registry) Register(scanner Scanner) {
	if r.scanners == nil {
		r.scanners = map[string]Scanner{}
	}
	r.scanners[scanner.Name()] = scanner
}

// Resolve returns a scanner by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Scanner, error) {
	if scanner, ok := r.scanners[name]; ok {
		return scanner, nil
	}
	return nil, fmt.Errorf("scanner %s is not registered", name)
}
