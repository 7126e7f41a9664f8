package types

// CompanyAssociation is the resolved current-employment record for a
// founder-flagged profile whose headline named no current company. A profile
// whose detail lookup found no position keeps nil-valued fields rather than
// being dropped.
type CompanyAssociation struct {
	CurrentCompany *string `json:"current_company"`
	CurrentTitle   *string `json:"current_title"`
	StartDate      *string `json:"start_date"` // YYYY-MM, nil when the API gave no year
	EmploymentType *string `json:"employment_type"`
	Location       *string `json:"location"`
}

// ResolvedLead is a lead enriched with its company association and the
// headline reported by the detail API.
type ResolvedLead struct {
	Lead
	APISubTitle string             `json:"api_sub_title"`
	Company     CompanyAssociation `json:"company"`
}
