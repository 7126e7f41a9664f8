package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrei/stealth-scout/internal/types"
)

func lead(id string, conf types.Confidence) types.Lead {
	return types.Lead{
		Profile:        types.Profile{ProfileID: id},
		Classification: types.ClassificationResult{Confidence: conf},
	}
}

func TestRank(t *testing.T) {
	leads := []types.Lead{
		lead("a", types.ConfidenceLow),
		lead("b", types.ConfidenceHigh),
		lead("c", types.ConfidenceMedium),
		lead("d", types.ConfidenceHigh),
	}

	ranked := Rank(leads)

	ids := make([]string, 0, len(ranked))
	for _, l := range ranked {
		ids = append(ids, l.Profile.ProfileID)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids, "High before Medium before Low, stable within tiers")
}

func TestRankDoesNotModifyInput(t *testing.T) {
	leads := []types.Lead{
		lead("a", types.ConfidenceLow),
		lead("b", types.ConfidenceHigh),
	}

	_ = Rank(leads)
	assert.Equal(t, "a", leads[0].Profile.ProfileID, "input slice should be untouched")
}

func TestRankUnknownTierSortsLast(t *testing.T) {
	leads := []types.Lead{
		lead("a", types.Confidence("Unranked")),
		lead("b", types.ConfidenceLow),
	}

	ranked := Rank(leads)
	assert.Equal(t, "b", ranked[0].Profile.ProfileID)
	assert.Equal(t, "a", ranked[1].Profile.ProfileID)
}

func TestCount(t *testing.T) {
	leads := []types.Lead{
		lead("a", types.ConfidenceHigh),
		lead("b", types.ConfidenceHigh),
		lead("c", types.ConfidenceMedium),
		lead("d", types.ConfidenceLow),
	}

	counts := Count(leads)
	assert.Equal(t, 2, counts.High)
	assert.Equal(t, 1, counts.Medium)
	assert.Equal(t, 1, counts.Low)
	assert.Equal(t, 4, counts.Total())
}

func TestCountEmpty(t *testing.T) {
	counts := Count(nil)
	assert.Equal(t, 0, counts.Total())
}
