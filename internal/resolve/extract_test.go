package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/stealth-scout/internal/search"
)

func TestExtractAssociation(t *testing.T) {
	t.Run("full detail record", func(t *testing.T) {
		detail := &search.ProfileDetail{
			PositionGroups: []search.PositionGroup{{
				Company: &search.DetailCompany{Name: "Stealth Co"},
				ProfilePositions: []search.ProfilePosition{{
					Title:          "CEO & Co-Founder",
					Date:           &search.DetailDate{Start: &search.YearMonth{Year: 2023, Month: 11}},
					EmploymentType: "Full-time",
					Location:       "London, UK",
				}},
			}},
		}

		assoc := extractAssociation(detail)
		require.NotNil(t, assoc.CurrentCompany)
		assert.Equal(t, "Stealth Co", *assoc.CurrentCompany)
		require.NotNil(t, assoc.CurrentTitle)
		assert.Equal(t, "CEO & Co-Founder", *assoc.CurrentTitle)
		require.NotNil(t, assoc.StartDate)
		assert.Equal(t, "2023-11", *assoc.StartDate)
		require.NotNil(t, assoc.EmploymentType)
		assert.Equal(t, "Full-time", *assoc.EmploymentType)
		require.NotNil(t, assoc.Location)
		assert.Equal(t, "London, UK", *assoc.Location)
	})

	t.Run("only the first position group counts", func(t *testing.T) {
		detail := &search.ProfileDetail{
			PositionGroups: []search.PositionGroup{
				{
					Company:          &search.DetailCompany{Name: "Current"},
					ProfilePositions: []search.ProfilePosition{{Title: "Founder"}},
				},
				{
					Company:          &search.DetailCompany{Name: "Previous"},
					ProfilePositions: []search.ProfilePosition{{Title: "Engineer"}},
				},
			},
		}

		assoc := extractAssociation(detail)
		require.NotNil(t, assoc.CurrentCompany)
		assert.Equal(t, "Current", *assoc.CurrentCompany)
	})

	tests := []struct {
		name   string
		detail *search.ProfileDetail
	}{
		{"nil detail", nil},
		{"no position groups", &search.ProfileDetail{}},
		{
			"group without positions",
			&search.ProfileDetail{PositionGroups: []search.PositionGroup{{
				Company: &search.DetailCompany{Name: "Orphan"},
			}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assoc := extractAssociation(tt.detail)
			assert.Nil(t, assoc.CurrentCompany)
			assert.Nil(t, assoc.CurrentTitle)
			assert.Nil(t, assoc.StartDate)
		})
	}

	t.Run("missing company leaves title intact", func(t *testing.T) {
		detail := &search.ProfileDetail{
			PositionGroups: []search.PositionGroup{{
				ProfilePositions: []search.ProfilePosition{{Title: "Founder"}},
			}},
		}

		assoc := extractAssociation(detail)
		assert.Nil(t, assoc.CurrentCompany)
		require.NotNil(t, assoc.CurrentTitle)
		assert.Equal(t, "Founder", *assoc.CurrentTitle)
	})
}

func TestFormatStartDate(t *testing.T) {
	tests := []struct {
		name     string
		date     *search.DetailDate
		expected string // empty means nil
	}{
		{"nil date", nil, ""},
		{"nil start", &search.DetailDate{}, ""},
		{"zero year", &search.DetailDate{Start: &search.YearMonth{Month: 5}}, ""},
		{"year and month", &search.DetailDate{Start: &search.YearMonth{Year: 2024, Month: 3}}, "2024-03"},
		{"missing month defaults to January", &search.DetailDate{Start: &search.YearMonth{Year: 2024}}, "2024-01"},
		{"double-digit month", &search.DetailDate{Start: &search.YearMonth{Year: 2019, Month: 12}}, "2019-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatStartDate(tt.date)
			if tt.expected == "" {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.expected, *got)
			}
		})
	}
}
