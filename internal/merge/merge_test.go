package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrei/stealth-scout/internal/types"
)

func profile(id, subTitle string) types.Profile {
	return types.Profile{ProfileID: id, SubTitle: subTitle}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name         string
		sources      [][]types.Profile
		excludeRoles []string
		expectedIDs  []string
	}{
		{
			name: "overlapping sources dedupe on profile_id",
			sources: [][]types.Profile{
				{profile("1", "a"), profile("2", "b")},
				{profile("2", "b"), profile("3", "c")},
			},
			expectedIDs: []string{"1", "2", "3"},
		},
		{
			name: "first occurrence wins across sources",
			sources: [][]types.Profile{
				{profile("1", "from first query")},
				{profile("1", "from second query")},
			},
			expectedIDs: []string{"1"},
		},
		{
			name: "exclusion matches case-insensitively",
			sources: [][]types.Profile{
				{profile("1", "Founder"), profile("2", "Senior Recruiter"), profile("3", "CEO")},
			},
			excludeRoles: []string{"recruiter"},
			expectedIDs:  []string{"1", "3"},
		},
		{
			name: "space-anchored term spares substrings inside other words",
			sources: [][]types.Profile{
				{profile("1", "Thrive founder"), profile("2", "Head of HR at Acme")},
			},
			excludeRoles: []string{" hr "},
			expectedIDs:  []string{"1"},
		},
		{
			name: "space-anchored term matches when padded",
			sources: [][]types.Profile{
				{profile("1", "Global hr business partner")},
			},
			excludeRoles: []string{" hr "},
			expectedIDs:  nil,
		},
		{
			name:        "empty sources produce empty output",
			sources:     [][]types.Profile{{}, nil},
			expectedIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Merge(tt.sources, tt.excludeRoles)
			ids := make([]string, 0, len(out))
			for _, p := range out {
				ids = append(ids, p.ProfileID)
			}
			if tt.expectedIDs == nil {
				assert.Empty(t, out)
			} else {
				assert.Equal(t, tt.expectedIDs, ids)
			}
		})
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	sources := [][]types.Profile{
		{profile("1", "Founder"), profile("2", "CEO")},
		{profile("2", "CEO"), profile("3", "Building something")},
	}

	once := Merge(sources, nil)
	twice := Merge([][]types.Profile{once}, nil)
	assert.Equal(t, once, twice, "merging an already merged set should be a no-op")
}

func TestMergeKeepsRecordFromFirstQuery(t *testing.T) {
	first := profile("1", "headline")
	first.QueryType = types.QueryPastRoles
	second := profile("1", "headline")
	second.QueryType = types.QueryFounders

	out := Merge([][]types.Profile{{first}, {second}}, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, types.QueryPastRoles, out[0].QueryType)
}
