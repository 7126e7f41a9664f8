// Package types defines the shared data structures passed between pipeline stages.
package types

import "strings"

// QueryType tags a profile with the collection query that produced it.
type QueryType string

// Query type constants identify the four collection strategies.
const (
	// QueryPastRoles searches former employees by their past job titles.
	QueryPastRoles QueryType = "past_roles"
	// QueryFounders searches former employees holding founder-style current titles.
	QueryFounders QueryType = "founder"
	// QueryStealthTitles searches headlines for stealth-indicator keywords.
	QueryStealthTitles QueryType = "stealth_title"
	// QuerySpecificCompanies searches for employees now at known stealth company IDs.
	QuerySpecificCompanies QueryType = "specific_companies"
)

// SearchQuery is a built search expression plus its provenance tag.
// Constructed once per collection run and immutable afterwards.
type SearchQuery struct {
	Query string
	Type  QueryType
}

// Profile is one discovered individual, created from a single search API
// result row. Immutable once merged; classification and company data are
// attached alongside, never mutated in place.
type Profile struct {
	ProfileID       string    `json:"profile_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	SubTitle        string    `json:"sub_title"`
	LocationCity    string    `json:"location_city"`
	LocationCountry string    `json:"location_country"`
	LIURL           string    `json:"li_url"`
	Skills          string    `json:"skills"` // comma-joined, API order preserved
	QueryType       QueryType `json:"query_type"`
}

// FullName returns the profile's display name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Location returns "city, country" for display and CSV output.
func (p Profile) Location() string {
	return p.LocationCity + ", " + p.LocationCountry
}
