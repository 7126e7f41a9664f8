// Package classify scores profiles for founder and stealth likelihood by
// combining local keyword/regex heuristics with a delegated LLM verdict.
package classify

import "regexp"

// The rule tables below are data, kept apart from the matching control flow
// so they can be extended without touching the evaluator.

// founderKeywords are headline substrings suggesting a founder or C-level
// role. "head" and "director" are suppressed when followed by "of", which
// usually names a department rather than a venture.
var founderKeywords = []string{
	"founder", "co-founder", "ceo", "chief executive", "head", "director", "chairman",
}

// stealthKeywords are headline substrings suggesting an undisclosed venture.
var stealthKeywords = []string{
	"stealth", "building", "something new", "coming soon",
	"in development", "new venture", "working on", "secret",
	"early stage", "pre-launch", "building something", "new project",
	"undisclosed", "confidential", "in stealth", "working on something",
	"metamorphosing", "heads down", "new in", "learning and building",
	"next big thing", "new chapter", "stay tuned", "watch this space",
}

// allowedCompanyReferences are qualifiers that mark a named company as a past
// employer; their presence disables the exclusion patterns.
var allowedCompanyReferences = []string{
	"ex-", "former", "previously at", "alumni", "alum",
}

// excludePatterns match headlines that name a specific current employer.
// They run against the lower-cased headline and only when no allowed
// reference qualifier is present.
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`@\s*[a-z][a-z.]*`),
	regexp.MustCompile(`\bat\s+[a-z][a-z.]*`),
	regexp.MustCompile(`building .* at`),
}

// boostPatterns raise stealth-founder likelihood without being direct
// evidence on their own. Each match records its label as a bonus indicator.
var boostPatterns = []struct {
	label string
	re    *regexp.Regexp
}{
	{"yc_batch", regexp.MustCompile(`yc\s+[ws]\d+`)},
	{"y_combinator", regexp.MustCompile(`y\s*combinator`)},
	{"angel", regexp.MustCompile(`angel`)},
	{"heads_down", regexp.MustCompile(`heads down`)},
	{"coming_soon", regexp.MustCompile(`coming soon`)},
	{"payment", regexp.MustCompile(`payment`)},
	{"crypto", regexp.MustCompile(`crypto`)},
	{"web3", regexp.MustCompile(`web3`)},
	{"fintech", regexp.MustCompile(`fintech`)},
}

// relevantIndustries are sectors where alumni of the anchor organization
// tend to found companies; matches count as bonus indicators.
var relevantIndustries = []string{
	"payments", "fintech", "finance", "banking", "crypto", "blockchain", "web3",
	"ai", "artificial intelligence", "machine learning", "data science",
	"cybersecurity", "security",
}

// companyNamePattern detects a founder title that names a specific company,
// e.g. "Founder at Acme". The company token must be capitalized, so it runs
// against the original headline, not the lower-cased copy.
var companyNamePattern = regexp.MustCompile(`(?i:\b(?:ceo|founder|co-founder)\s+(?:of|at)\s+)([A-Z][A-Za-z]*)`)
