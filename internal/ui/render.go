package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"SignalTracker/internal/domain"
	"SignalTracker/internal/usecase"
)

var (
	primaryColor = lipgloss.Color("#0969DA")
	accentColor  = lipgloss.Color("#2DA44E")
	warningColor = lipgloss.Color("#D29922")
	errorColor   = lipgloss.Color("#CF222E")
	dimColor     = lipgloss.Color("#6E7681")
	scoreColor   = lipgloss.Color("#F778BA")
	titleColor   = lipgloss.Color("#39D353")
	dateColor    = lipgloss.Color("#A371F7")
	sourceColor  = lipgloss.Color("#FFA657")

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	titleStyle   = lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(scoreColor).Bold(true)
	sourceStyle  = lipgloss.NewStyle().Foreground(sourceColor)
	dateStyle    = lipgloss.NewStyle().Foreground(dateColor).Italic(true)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	lossStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	gainStyle    = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	tierStyles = map[domain.Tier]lipgloss.Style{
		domain.TierPriorityReview: lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		domain.TierEmergingTrend:  lipgloss.NewStyle().Foreground(warningColor).Bold(true),
		domain.TierMonitor:        lipgloss.NewStyle().Foreground(primaryColor),
		domain.TierLowSignal:      lipgloss.NewStyle().Foreground(dimColor),
	}
)

func tierStyle(tier domain.Tier) lipgloss.Style {
	if style, ok := tierStyles[tier]; ok {
		return style
	}
	return dimStyle
}

// RenderItems prints the raw scored feed, one line per item.
func RenderItems(items []domain.NewsItem, scores []float64) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Scored Signals"))
	b.WriteString("\n")
	for i, item := range items {
		score := 0.0
		if i < len(scores) {
			score = scores[i]
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			scoreStyle.Render(fmt.Sprintf("%5.1f", score)),
			sourceStyle.Render(fmt.Sprintf("%-12s", string(item.Source))),
			titleStyle.Render(item.Title),
		)
	}
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("no signals collected") + "\n")
	}
	return b.String()
}

// RenderLeaderboard prints the per-company aggregate table, already ranked.
func RenderLeaderboard(aggregates []domain.CompanyAggregate) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Company Leaderboard"))
	b.WriteString("\n")
	for i, agg := range aggregates {
		fmt.Fprintf(&b, "%s %s  %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			titleStyle.Render(fmt.Sprintf("%-28s", agg.Company)),
			scoreStyle.Render(fmt.Sprintf("%5.1f", agg.MaxScore)),
			tierStyle(agg.Tier).Render(fmt.Sprintf("%-16s", string(agg.Tier))),
			dimStyle.Render(fmt.Sprintf("%d mention(s) via %s", agg.Mentions, strings.Join(agg.Sources, ", "))),
		)
	}
	if len(aggregates) == 0 {
		b.WriteString(dimStyle.Render("no companies identified") + "\n")
	}
	return b.String()
}

// RenderReplay prints the as-of leaderboard of scored mentions with the
// eventual outcome revealed next to each.
func RenderReplay(asOf time.Time, mentions []domain.ScoredMention, outcomes []domain.HistoricalRecord) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Replay as of %s", asOf.Format("2006-01-02"))))
	b.WriteString("\n")
	for i, m := range mentions {
		outcome := "N/A"
		roi := 0.0
		if i < len(outcomes) {
			if outcomes[i].Outcome != "" {
				outcome = outcomes[i].Outcome
			}
			roi = outcomes[i].ROIPotential
		}
		fmt.Fprintf(&b, "%s %s  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			titleStyle.Render(fmt.Sprintf("%-24s", m.Company)),
			scoreStyle.Render(fmt.Sprintf("%5.1f", m.Score)),
			tierStyle(m.Tier).Render(fmt.Sprintf("%-16s", string(m.Tier))),
			renderOutcomeLine(outcome, roi),
		)
		fmt.Fprintf(&b, "      %s %s\n",
			dateStyle.Render(m.Item.PublishedAt.Format("2006-01-02")),
			dimStyle.Render(m.Item.Title),
		)
	}
	if len(mentions) == 0 {
		b.WriteString(dimStyle.Render("no signals on record before this date") + "\n")
	}
	return b.String()
}

func renderOutcomeLine(outcome string, roi float64) string {
	if outcome == "N/A" || outcome == "" {
		return dimStyle.Render("outcome still unknown")
	}
	return fmt.Sprintf("%s (%s)", outcome, RenderOutcome(roi))
}

// RenderOutcome formats an ROI figure: multiples for gains, a total loss
// marker for folded companies, N/A otherwise.
func RenderOutcome(roi float64) string {
	switch {
	case roi > 0:
		return gainStyle.Render(fmt.Sprintf("%.2fx", roi))
	case roi < 0:
		return lossStyle.Render("-100%")
	default:
		return dimStyle.Render("N/A")
	}
}

// RenderSimulation prints the simulator verdict for a single company.
func RenderSimulation(company string, record *domain.HistoricalRecord) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Simulation: %s", company)))
	b.WriteString("\n")
	if record == nil || record.Outcome == "" {
		b.WriteString(dimStyle.Render("No recorded outcome for this company.") + "\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Outcome:"), record.Outcome)
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Return:"), RenderOutcome(record.ROIPotential))
	return b.String()
}

// RenderTrends prints keyword mention counts.
func RenderTrends(trends []usecase.KeywordCount) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Trend Keywords"))
	b.WriteString("\n")
	for _, t := range trends {
		fmt.Fprintf(&b, "%s %s\n",
			scoreStyle.Render(fmt.Sprintf("%4d", t.Mentions)),
			titleStyle.Render(t.Keyword),
		)
	}
	if len(trends) == 0 {
		b.WriteString(dimStyle.Render("no trend keywords configured") + "\n")
	}
	return b.String()
}

// RenderCommentary prints the analyst take for the top-ranked company.
func RenderCommentary(company, commentary string) string {
	if commentary == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Analyst Take: %s", company)))
	b.WriteString("\n")
	b.WriteString(commentary)
	b.WriteString("\n")
	return b.String()
}

// RenderWarning prints a highlighted advisory line.
func RenderWarning(msg string) string {
	return warningStyle.Render("! "+msg) + "\n"
}
