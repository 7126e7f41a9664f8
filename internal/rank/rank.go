// Package rank orders classified leads by confidence tier.
package rank

import (
	"sort"

	"github.com/andrei/stealth-scout/internal/types"
)

// TierCounts summarizes how many leads landed in each tier.
type TierCounts struct {
	High   int
	Medium int
	Low    int
}

// Total returns the number of leads across all tiers.
func (t TierCounts) Total() int {
	return t.High + t.Medium + t.Low
}

// Rank stable-sorts leads High, Medium, Low. Leads within the same tier keep
// their relative order. The input slice is not modified.
func Rank(leads []types.Lead) []types.Lead {
	out := make([]types.Lead, len(leads))
	copy(out, leads)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Classification.Confidence.SortPriority() < out[j].Classification.Confidence.SortPriority()
	})
	return out
}

// Count tallies leads per confidence tier for reporting.
func Count(leads []types.Lead) TierCounts {
	var counts TierCounts
	for _, l := range leads {
		switch l.Classification.Confidence {
		case types.ConfidenceHigh:
			counts.High++
		case types.ConfidenceMedium:
			counts.Medium++
		case types.ConfidenceLow:
			counts.Low++
		}
	}
	return counts
}
