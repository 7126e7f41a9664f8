package classify

import (
	"context"
	"fmt"

	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/types"
)

// llmSignal is the indicator recorded when a flag came from the delegated
// evaluator rather than a local rule match.
const llmSignal = "llm_classifier"

// Classifier combines the heuristic evaluator with the delegated LLM
// evaluator. Stateless across profiles; each classification is independent.
type Classifier struct {
	client llm.Client
}

// New returns a Classifier. A nil client disables the delegated evaluator
// and classification runs on heuristics alone.
func New(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify scores one profile. The returned bool reports whether the
// profile meets the retention bar: at least one of is_stealth, is_founder,
// or two bonus indicators.
func (c *Classifier) Classify(ctx context.Context, p types.Profile) (types.ClassificationResult, bool) {
	h := evaluateHeuristics(p.SubTitle)

	result := types.ClassificationResult{
		IsFounder:         h.isFounder,
		IsStealth:         h.isStealth,
		FounderIndicators: h.founderIndicators,
		StealthIndicators: h.stealthIndicators,
		BonusIndicators:   h.bonusIndicators,
	}

	if c.client != nil {
		outcome := evaluateWithModel(ctx, c.client, p.SubTitle, p.Skills)
		if outcome.Degraded {
			fmt.Printf("Warning: delegated classification degraded for %s: %s\n", p.ProfileID, outcome.Failure)
		}
		if outcome.Verdict.IsFounder && !result.IsFounder {
			result.IsFounder = true
			result.FounderIndicators = append(result.FounderIndicators, llmSignal)
		}
		if outcome.Verdict.IsStealth && !result.IsStealth {
			result.IsStealth = true
			result.StealthIndicators = append(result.StealthIndicators, llmSignal)
		}
		result.Reason = outcome.Verdict.Reason
	}

	result.Confidence = scoreConfidence(result)

	retained := result.IsStealth || result.IsFounder || len(result.BonusIndicators) >= 2
	return result, retained
}

// ClassifyAll runs Classify over a profile set and keeps only retained
// profiles, preserving input order. Profiles below the retention bar are
// dropped silently; the caller reports counts.
func (c *Classifier) ClassifyAll(ctx context.Context, profiles []types.Profile) []types.Lead {
	var leads []types.Lead
	for _, p := range profiles {
		result, retained := c.Classify(ctx, p)
		if !retained {
			continue
		}
		leads = append(leads, types.Lead{Profile: p, Classification: result})
	}
	return leads
}

// scoreConfidence derives the confidence tier purely from the flags and
// indicator counts. Nothing else assigns confidence.
func scoreConfidence(r types.ClassificationResult) types.Confidence {
	switch {
	case r.IsFounder && r.IsStealth:
		return types.ConfidenceHigh
	case r.IsFounder,
		r.IsStealth && len(r.StealthIndicators) > 1,
		len(r.BonusIndicators) >= 2:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
