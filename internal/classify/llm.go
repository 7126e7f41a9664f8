package classify

import (
	"context"
	"encoding/json"

	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/prompts"
	"github.com/andrei/stealth-scout/internal/schemas"
)

// fallbackReason is the verdict reason recorded when the delegated call
// degrades. Downstream consumers key off this literal.
const fallbackReason = "API Error"

// Verdict is the delegated evaluator's structured output.
type Verdict struct {
	IsStealth bool   `json:"is_stealth"`
	IsFounder bool   `json:"is_founder"`
	Reason    string `json:"reason"`
}

// Outcome carries either a usable verdict or the classified failure that
// degraded it to the fallback. The delegated evaluator never returns an
// error; one failed call must not abort a batch.
type Outcome struct {
	Verdict  Verdict
	Degraded bool
	Failure  string
}

// evaluateWithModel asks the LLM for a stealth/founder verdict on one
// profile. Every failure class (call error, non-conforming payload) degrades
// to the documented fallback verdict.
func evaluateWithModel(ctx context.Context, client llm.Client, subTitle, skills string) Outcome {
	prompt := prompts.Format(prompts.MustGet("classify.json", "stealth-founder"), map[string]string{
		"SubTitle": subTitle,
		"Skills":   skills,
	})

	text, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return degradedOutcome("model call failed: " + err.Error())
	}

	doc := []byte(text)
	if err := schemas.Validate(schemas.StealthFounderSchema, doc); err != nil {
		return degradedOutcome("malformed verdict: " + err.Error())
	}

	var v Verdict
	if err := json.Unmarshal(doc, &v); err != nil {
		return degradedOutcome("verdict decode failed: " + err.Error())
	}
	return Outcome{Verdict: v}
}

func degradedOutcome(failure string) Outcome {
	return Outcome{
		Verdict:  Verdict{Reason: fallbackReason},
		Degraded: true,
		Failure:  failure,
	}
}
