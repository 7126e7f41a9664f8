package resolve

import (
	"fmt"

	"github.com/andrei/stealth-scout/internal/search"
	"github.com/andrei/stealth-scout/internal/types"
)

// extractAssociation pulls the first listed current position out of a detail
// response. Every nested level is optional; missing keys degrade to nil
// fields instead of failing the profile.
func extractAssociation(detail *search.ProfileDetail) types.CompanyAssociation {
	var assoc types.CompanyAssociation
	if detail == nil || len(detail.PositionGroups) == 0 {
		return assoc
	}

	group := detail.PositionGroups[0]
	if len(group.ProfilePositions) == 0 {
		return assoc
	}
	pos := group.ProfilePositions[0]

	if group.Company != nil && group.Company.Name != "" {
		assoc.CurrentCompany = strPtr(group.Company.Name)
	}
	if pos.Title != "" {
		assoc.CurrentTitle = strPtr(pos.Title)
	}
	assoc.StartDate = formatStartDate(pos.Date)
	if pos.EmploymentType != "" {
		assoc.EmploymentType = strPtr(pos.EmploymentType)
	}
	if pos.Location != "" {
		assoc.Location = strPtr(pos.Location)
	}
	return assoc
}

// formatStartDate renders a partial date as YYYY-MM. A missing year means no
// date at all; a missing month defaults to January.
func formatStartDate(d *search.DetailDate) *string {
	if d == nil || d.Start == nil || d.Start.Year == 0 {
		return nil
	}
	month := d.Start.Month
	if month == 0 {
		month = 1
	}
	return strPtr(fmt.Sprintf("%04d-%02d", d.Start.Year, month))
}

func strPtr(s string) *string {
	return &s
}
