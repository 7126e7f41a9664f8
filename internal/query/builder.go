// Package query builds search API query expressions from keyword taxonomies.
package query

import (
	"fmt"
	"strings"

	"github.com/andrei/stealth-scout/internal/types"
)

// Field names accepted by the hosted people-search API.
const (
	FieldPastJobTitles    = "past_job_titles"
	FieldCurrentJobTitles = "current_job_titles"
	FieldSubTitle         = "sub_title"
	FieldCurrentCompanies = "current_companies"
	fieldPastCompanies    = "past_companies"
)

// Builder constructs query strings anchored on a fixed past employer.
// Builders are cheap and stateless; one per collection run is typical.
type Builder struct {
	anchorCompanyID string
}

// NewBuilder returns a Builder whose every query restricts results to former
// employees of the anchor organization.
func NewBuilder(anchorCompanyID string) *Builder {
	return &Builder{anchorCompanyID: anchorCompanyID}
}

// Build produces `base_filter AND (field:t1 OR field:"t 2" OR ...)`.
// Terms keep their input order so the same term set always yields the same
// query string. Multi-word terms are quoted to preserve phrase semantics.
// Callers supply lower-case terms; no case normalization happens here.
func (b *Builder) Build(field string, terms []string, qt types.QueryType) types.SearchQuery {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(term, " ") {
			parts = append(parts, fmt.Sprintf("%s:%q", field, term))
		} else {
			parts = append(parts, fmt.Sprintf("%s:%s", field, term))
		}
	}

	q := fmt.Sprintf("%s:%s AND (%s)", fieldPastCompanies, b.anchorCompanyID, strings.Join(parts, " OR "))
	return types.SearchQuery{Query: q, Type: qt}
}

// BuildAll returns the standard four collection queries for one run: past key
// roles, current founder titles, stealth headline keywords, and specific
// current-company IDs.
func (b *Builder) BuildAll(pastRoles, founderRoles, stealthKeywords, targetCompanyIDs []string) []types.SearchQuery {
	return []types.SearchQuery{
		b.Build(FieldPastJobTitles, pastRoles, types.QueryPastRoles),
		b.Build(FieldCurrentJobTitles, founderRoles, types.QueryFounders),
		b.Build(FieldSubTitle, stealthKeywords, types.QueryStealthTitles),
		b.Build(FieldCurrentCompanies, targetCompanyIDs, types.QuerySpecificCompanies),
	}
}
