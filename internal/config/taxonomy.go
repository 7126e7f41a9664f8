package config

import "time"

// DefaultSearchBaseURL is the hosted search API endpoint root.
const DefaultSearchBaseURL = "https://api.proapis.com/iscraper/v4"

// DefaultPageSize is the per-page record count; the API caps it at 20.
const DefaultPageSize = 20

// DefaultRequestDelay is the cooperative rate-limit pause applied after
// every successful search request.
const DefaultRequestDelay = time.Second

// DefaultPastRoles returns the past-job-title terms used to find former
// employees in roles likely to go on to found something.
func DefaultPastRoles() []string {
	return []string{
		"head", "senior", "lead", "general", "chief",
		"director", "vp", "manager", "executive",
		"product", "strategy", "owner", "consultant",
		"advisor", "account", "engineer", "developer",
		"tech", "architect", "research", "data",
	}
}

// DefaultFounderRoles returns the current-job-title terms indicating a
// founder or C-level role.
func DefaultFounderRoles() []string {
	return []string{
		"founder", "co-founder", "ceo", "chief",
		"entrepreneur", "owner", "cto",
	}
}

// DefaultStealthKeywords returns the headline terms suggesting an
// undisclosed venture. Multi-word terms are quoted by the query builder.
func DefaultStealthKeywords() []string {
	return []string{
		"stealth", "building", "new venture",
		"startup", "new company", "secretive",
		"something", "thing", "other", "pre-product", "pre-revenue", "pre-launch", "0 to 1", "incubation",
		"undisclosed", "confidential", "unannounced", "unrevealed", "hidden", "pre-seed",
		"working on", "co-founding", "building quietly", "under the radar",
		"heads down", "secret project", "early stage", "early venture", "tbd",
		"next thing", "not public", "0→1", "zero to one", "private company",
		"stealth mode", "non-public", "incubating", "exploring", "in stealth",
		"coming soon", "soft launch", "low profile", "covert", "redacted",
	}
}

// DefaultTargetCompanyIDs returns search IDs of known stealth companies to
// check for current employment.
func DefaultTargetCompanyIDs() []string {
	return []string{"18583501", "18016269"}
}

// DefaultExcludeRoles returns sub_title substrings whose matches are removed
// after merging. Matching is plain substring, so short terms carry their own
// anchoring spaces.
func DefaultExcludeRoles() []string {
	return []string{" hr ", "recruiter", "accountant", "legal", "lawyer"}
}
