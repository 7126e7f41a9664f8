// Package resolve enriches founder-flagged leads with their current employer
// by querying the profile-detail API, then applies the final stealth-company
// filter.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/prompts"
	"github.com/andrei/stealth-scout/internal/schemas"
	"github.com/andrei/stealth-scout/internal/search"
	"github.com/andrei/stealth-scout/internal/types"
)

// fallbackReason mirrors the classifier's degraded-call marker.
const fallbackReason = "API Error"

// DetailFetcher is the slice of the search client the resolver needs.
type DetailFetcher interface {
	ProfileDetails(ctx context.Context, profileID string) (*search.ProfileDetail, []byte, error)
}

// DetailWriter persists raw detail responses for auditability.
type DetailWriter interface {
	WriteDetail(profileID string, raw []byte) error
}

// Options configures a Resolver.
type Options struct {
	// RequestDelay is slept after every detail API call.
	RequestDelay time.Duration
	// Details receives every raw detail body; nil disables persistence.
	Details DetailWriter
}

// Resolver runs the detail-enrichment stage. Calls are sequential; one
// failed profile is skipped, never the batch.
type Resolver struct {
	fetcher DetailFetcher
	client  llm.Client
	details DetailWriter
	delay   time.Duration
	sleep   func(time.Duration)
}

// New returns a Resolver. A nil LLM client skips the current-company check
// and treats every founder lead as company-less.
func New(fetcher DetailFetcher, client llm.Client, opts Options) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		client:  client,
		details: opts.Details,
		delay:   opts.RequestDelay,
		sleep:   time.Sleep,
	}
}

// CompanyCheck is the current-company verdict for one headline.
type CompanyCheck struct {
	HasCurrentCompany bool   `json:"has_current_company"`
	Reason            string `json:"reason"`
}

// CheckOutcome carries the verdict or its degraded fallback. The fallback
// says no current company, which keeps the profile in the recall path.
type CheckOutcome struct {
	Check    CompanyCheck
	Degraded bool
	Failure  string
}

// Resolve selects founder-flagged leads whose headline names no current
// company and fetches their extended detail records. A lead whose company
// cannot be resolved is preserved with null fields, not dropped.
func (r *Resolver) Resolve(ctx context.Context, leads []types.Lead) []types.ResolvedLead {
	var out []types.ResolvedLead

	for _, lead := range leads {
		if !lead.Classification.IsFounder {
			continue
		}

		if r.client != nil {
			outcome := r.checkCurrentCompany(ctx, lead.Profile.SubTitle)
			if outcome.Degraded {
				fmt.Printf("Warning: current-company check degraded for %s: %s\n", lead.Profile.ProfileID, outcome.Failure)
			}
			if outcome.Check.HasCurrentCompany {
				continue
			}
		}

		detail, raw, err := r.fetcher.ProfileDetails(ctx, lead.Profile.ProfileID)
		if err != nil {
			fmt.Printf("Warning: skipping profile %s: %v\n", lead.Profile.ProfileID, err)
			r.sleep(r.delay)
			continue
		}
		if r.details != nil {
			if werr := r.details.WriteDetail(lead.Profile.ProfileID, raw); werr != nil {
				fmt.Printf("Warning: failed to persist detail for %s: %v\n", lead.Profile.ProfileID, werr)
			}
		}

		out = append(out, types.ResolvedLead{
			Lead:        lead,
			APISubTitle: detail.SubTitle,
			Company:     extractAssociation(detail),
		})
		r.sleep(r.delay)
	}

	return out
}

// checkCurrentCompany asks the LLM whether the headline names a current
// employer. Failures degrade to "no current company" so the profile still
// reaches the detail fetch.
func (r *Resolver) checkCurrentCompany(ctx context.Context, subTitle string) CheckOutcome {
	prompt := prompts.Format(prompts.MustGet("classify.json", "current-company"), map[string]string{
		"SubTitle": subTitle,
	})

	text, err := r.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return degradedCheck("model call failed: " + err.Error())
	}

	doc := []byte(text)
	if err := schemas.Validate(schemas.CurrentCompanySchema, doc); err != nil {
		return degradedCheck("malformed verdict: " + err.Error())
	}

	var check CompanyCheck
	if err := json.Unmarshal(doc, &check); err != nil {
		return degradedCheck("verdict decode failed: " + err.Error())
	}
	return CheckOutcome{Check: check}
}

func degradedCheck(failure string) CheckOutcome {
	return CheckOutcome{
		Check:    CompanyCheck{Reason: fallbackReason},
		Degraded: true,
		Failure:  failure,
	}
}

// FilterStealth retains only leads whose resolved company name contains the
// literal term "stealth", case-insensitively. This is the narrowest,
// highest-precision signal in the pipeline and runs last by design of the
// stage ordering. Leads with no resolved company are excluded.
func FilterStealth(resolved []types.ResolvedLead) []types.ResolvedLead {
	var out []types.ResolvedLead
	for _, rl := range resolved {
		if rl.Company.CurrentCompany == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*rl.Company.CurrentCompany), "stealth") {
			out = append(out, rl)
		}
	}
	return out
}
