// Package merge combines collector outputs into one deduplicated profile set.
package merge

import (
	"strings"

	"github.com/andrei/stealth-scout/internal/types"
)

// Merge concatenates the sources in order, drops records whose profile_id has
// already been seen (first occurrence wins), then removes records whose
// sub_title contains any exclusion substring, case-insensitively.
//
// Exclusion is plain substring matching, not tokenized: a short term like
// "hr" must carry anchoring spaces in its exclusion entry or it will match
// inside unrelated words.
func Merge(sources [][]types.Profile, excludeRoles []string) []types.Profile {
	seen := make(map[string]bool)
	var out []types.Profile

	for _, src := range sources {
		for _, p := range src {
			if seen[p.ProfileID] {
				continue
			}
			seen[p.ProfileID] = true
			if excluded(p.SubTitle, excludeRoles) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

func excluded(subTitle string, excludeRoles []string) bool {
	lowered := strings.ToLower(subTitle)
	for _, role := range excludeRoles {
		if role == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(role)) {
			return true
		}
	}
	return false
}
