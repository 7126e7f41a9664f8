package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andrei/stealth-scout/internal/types"
)

var profileHeader = []string{
	"profile_id", "first_name", "last_name", "sub_title",
	"location_city", "location_country", "li_url", "skills", "query_type",
}

var leadHeader = append(append([]string{}, profileHeader...),
	"is_founder", "is_stealth",
	"founder_indicators", "stealth_indicators", "bonus_indicators",
	"confidence", "reason",
)

var resolvedHeader = []string{
	"profile_id", "first_name", "last_name", "sub_title", "li_url",
	"api_sub_title", "current_company", "current_title",
	"start_date", "employment_type", "location",
}

// WriteProfiles writes a profile set to <root>/<name>.csv.
func (s *Store) WriteProfiles(name string, profiles []types.Profile) error {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, profileRow(p))
	}
	return s.writeCSV(name, profileHeader, rows)
}

// ReadProfiles reads a profile CSV previously written by WriteProfiles.
// The path is taken as-is, so other stages' outputs can be reloaded too.
func ReadProfiles(path string) ([]types.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile CSV %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading profile CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	profiles := make([]types.Profile, 0, len(records)-1)
	for _, row := range records[1:] {
		profiles = append(profiles, types.Profile{
			ProfileID:       field(row, "profile_id"),
			FirstName:       field(row, "first_name"),
			LastName:        field(row, "last_name"),
			SubTitle:        field(row, "sub_title"),
			LocationCity:    field(row, "location_city"),
			LocationCountry: field(row, "location_country"),
			LIURL:           field(row, "li_url"),
			Skills:          field(row, "skills"),
			QueryType:       types.QueryType(field(row, "query_type")),
		})
	}
	return profiles, nil
}

// WriteLeads writes classified leads to <root>/<name>.csv, indicators joined
// with ", " for readability.
func (s *Store) WriteLeads(name string, leads []types.Lead) error {
	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		row := profileRow(l.Profile)
		row = append(row,
			strconv.FormatBool(l.Classification.IsFounder),
			strconv.FormatBool(l.Classification.IsStealth),
			strings.Join(l.Classification.FounderIndicators, ", "),
			strings.Join(l.Classification.StealthIndicators, ", "),
			strings.Join(l.Classification.BonusIndicators, ", "),
			string(l.Classification.Confidence),
			l.Classification.Reason,
		)
		rows = append(rows, row)
	}
	return s.writeCSV(name, leadHeader, rows)
}

// WriteResolved writes detail-enriched leads to <root>/<name>.csv. Nil
// company fields render as empty cells.
func (s *Store) WriteResolved(name string, resolved []types.ResolvedLead) error {
	rows := make([][]string, 0, len(resolved))
	for _, rl := range resolved {
		rows = append(rows, []string{
			rl.Profile.ProfileID,
			rl.Profile.FirstName,
			rl.Profile.LastName,
			rl.Profile.SubTitle,
			rl.Profile.LIURL,
			rl.APISubTitle,
			deref(rl.Company.CurrentCompany),
			deref(rl.Company.CurrentTitle),
			deref(rl.Company.StartDate),
			deref(rl.Company.EmploymentType),
			deref(rl.Company.Location),
		})
	}
	return s.writeCSV(name, resolvedHeader, rows)
}

func (s *Store) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(s.root, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV %s: %w", path, err)
	}
	return nil
}

func profileRow(p types.Profile) []string {
	return []string{
		p.ProfileID, p.FirstName, p.LastName, p.SubTitle,
		p.LocationCity, p.LocationCountry, p.LIURL, p.Skills, string(p.QueryType),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
