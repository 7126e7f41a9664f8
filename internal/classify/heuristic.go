package classify

import "strings"

// stealthNoCompany is the indicator recorded when a founder headline names
// no company at all, the primary recall mechanism for stealth founders.
const stealthNoCompany = "no_company_name"

// heuristicResult holds the deterministic evaluator's flags and the matched
// signal labels kept for explainability.
type heuristicResult struct {
	isFounder         bool
	isStealth         bool
	founderIndicators []string
	stealthIndicators []string
	bonusIndicators   []string
}

// evaluateHeuristics scans one headline against the rule tables. It is pure:
// same headline, same result.
func evaluateHeuristics(subTitle string) heuristicResult {
	var res heuristicResult
	lowered := strings.ToLower(subTitle)

	for _, kw := range founderKeywords {
		if !strings.Contains(lowered, kw) {
			continue
		}
		// "Head of Payments" and "Director of Sales" are department roles.
		if (kw == "head" || kw == "director") && strings.Contains(lowered, kw+" of") {
			continue
		}
		res.isFounder = true
		res.founderIndicators = append(res.founderIndicators, kw)
	}

	for _, kw := range stealthKeywords {
		if strings.Contains(lowered, kw) {
			res.isStealth = true
			res.stealthIndicators = append(res.stealthIndicators, kw)
		}
	}

	for _, bp := range boostPatterns {
		if bp.re.MatchString(lowered) {
			res.bonusIndicators = append(res.bonusIndicators, bp.label)
		}
	}
	for _, industry := range relevantIndustries {
		if strings.Contains(lowered, industry) {
			res.bonusIndicators = append(res.bonusIndicators, industry)
		}
	}

	if res.isFounder {
		if m := companyNamePattern.FindStringSubmatch(subTitle); m != nil {
			// A named company is not stealth evidence, but it is worth
			// keeping for the resolver stage.
			res.bonusIndicators = append(res.bonusIndicators, "company_name: "+m[1])
		} else if !namesCurrentEmployer(lowered) {
			res.isStealth = true
			res.stealthIndicators = append(res.stealthIndicators, stealthNoCompany)
		}
	}

	return res
}

// namesCurrentEmployer reports whether the headline appears to name a
// current employer without an ex-/former style qualifier.
func namesCurrentEmployer(lowered string) bool {
	for _, ref := range allowedCompanyReferences {
		if strings.Contains(lowered, ref) {
			return false
		}
	}
	for _, re := range excludePatterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}
