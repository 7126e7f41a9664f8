// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrei/stealth-scout/internal/rank"
	"github.com/andrei/stealth-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes.
	boxWidth = 60
	// maxLeadsToShow caps the per-tier lead listing.
	maxLeadsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQueries outputs the built collection queries.
func (p *Printer) PrintQueries(queries []types.SearchQuery) {
	var sb strings.Builder
	for _, q := range queries {
		sb.WriteString(fmt.Sprintf("%-20s %s\n", q.Type, q.Query))
	}
	p.printBox("Collection Queries", strings.TrimRight(sb.String(), "\n"))
}

// PrintTierCounts outputs the confidence tier summary.
func (p *Printer) PrintTierCounts(counts rank.TierCounts) {
	content := fmt.Sprintf("High:    %d\nMedium:  %d\nLow:     %d\nTotal:   %d",
		counts.High, counts.Medium, counts.Low, counts.Total())
	p.printBox("Confidence Tiers", content)
}

// PrintTopLeads outputs the highest-ranked leads, already sorted.
func (p *Printer) PrintTopLeads(leads []types.Lead) {
	var sb strings.Builder
	n := len(leads)
	if n > maxLeadsToShow {
		n = maxLeadsToShow
	}
	for i := 0; i < n; i++ {
		l := leads[i]
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, l.Classification.Confidence, l.Profile.FullName()))
		sb.WriteString(fmt.Sprintf("   %s\n", l.Profile.SubTitle))
	}
	p.printBox(fmt.Sprintf("Top Leads (%d of %d)", n, len(leads)), strings.TrimRight(sb.String(), "\n"))
}

// PrintStealthFounders outputs the final filtered set.
func (p *Printer) PrintStealthFounders(resolved []types.ResolvedLead) {
	var sb strings.Builder
	for i, rl := range resolved {
		company := "(unresolved)"
		if rl.Company.CurrentCompany != nil {
			company = *rl.Company.CurrentCompany
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, rl.Profile.FullName(), company))
	}
	p.printBox(fmt.Sprintf("Stealth Founders (%d)", len(resolved)), strings.TrimRight(sb.String(), "\n"))
}
