package generator

import (
	"fmt"
	"math/rand"
	"time"

	"SignalTracker/internal/domain"
)

// Generator produces a synthetic historical corpus so the replay mode and
// simulator have data to chew on without waiting two years for real
// outcomes.
type Generator struct {
	rng *rand.Rand
}

// New seeds the generator; equal seeds produce equal corpora.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	companyHeads = []string{
		"Quant", "Nova", "Deep", "Hyper", "Vertex", "Aero", "Flux",
		"Lumen", "Arc", "Synth", "Orbit", "Pulse", "Cipher", "Terra",
	}
	companyTails = []string{
		"mind", "grid", "flow", "loop", "stack", "forge", "scale",
		"sense", "base", "layer", "works",
	}
	companySuffixes = []string{"", "", " AI", " Labs", " Systems", " Technologies"}

	marketNiches = []string{
		"supply-chain analytics", "clinical documentation", "fraud detection",
		"developer tooling", "customer support automation", "energy forecasting",
		"legal discovery", "logistics routing",
	}

	fundingSeries = []string{"Seed", "Series A", "Series B"}
)

// Generate builds n records spread across two years from the corpus epoch,
// mixing funding and launch events with outcome odds that keep the simulator
// interesting: funded companies mostly exit, some fold, launches sometimes
// earn a follow-on round.
func (g *Generator) Generate(n int) []domain.HistoricalRecord {
	epoch := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	records := make([]domain.HistoricalRecord, 0, n)
	for i := 0; i < n; i++ {
		company := g.companyName()
		niche := g.pick(marketNiches)

		source := domain.SourceTechCrunch
		if g.rng.Intn(2) == 0 {
			source = domain.SourceProductHunt
		}

		rec := domain.HistoricalRecord{Company: company, Outcome: "N/A"}
		var title, desc string

		if g.rng.Intn(2) == 0 {
			series := g.pick(fundingSeries)
			amount := 1 + g.rng.Intn(50)
			title = fmt.Sprintf("%s raises $%dM in %s funding", company, amount, series)
			desc = fmt.Sprintf("The company, operating in the %s space, secured funding to expand its team.", niche)

			switch r := g.rng.Float64(); {
			case r < 0.6:
				multiple := 5 + g.rng.Intn(16)
				rec.Outcome = fmt.Sprintf("Acquired for $%dM", amount*multiple)
				rec.ROIPotential = float64(multiple)
			case r < 0.8:
				rec.Outcome = "Shut down"
				rec.ROIPotential = -1
			}
		} else {
			title = fmt.Sprintf("%s launches new platform for %s", company, niche)
			desc = fmt.Sprintf("A new product launch from %s aims to disrupt the market.", company)

			if g.rng.Float64() < 0.5 {
				series := g.pick(fundingSeries[:2])
				rec.Outcome = fmt.Sprintf("Raised %s funding 12 months post-launch", series)
				rec.ROIPotential = 2 + g.rng.Float64()*3
			}
		}

		rec.Item = domain.NewsItem{
			Source:      source,
			Title:       title,
			Description: desc,
			PublishedAt: epoch.AddDate(0, 0, g.rng.Intn(730)),
		}
		records = append(records, rec)
	}

	return records
}

func (g *Generator) companyName() string {
	return g.pick(companyHeads) + g.pick(companyTails) + g.pick(companySuffixes)
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
