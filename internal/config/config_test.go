package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"search_api_key": "key123",
		"anchor_company_id": "1337",
		"page_size": 10,
		"request_delay_ms": 500,
		"past_roles": ["product manager"],
		"output_dir": "results",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "key123", cfg.SearchAPIKey)
	assert.Equal(t, "1337", cfg.AnchorCompanyID)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestDelay())
	assert.Equal(t, []string{"product manager"}, cfg.PastRoles)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(os.TempDir(), "does-not-exist-xyz.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeConfigFile(t, `{not json`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"page size in range", Config{PageSize: 20}, false},
		{"page size above API cap", Config{PageSize: 21}, true},
		{"negative delay", Config{RequestDelayMS: -1}, true},
		{"valid base URL", Config{SearchBaseURL: "https://api.example.com/v4"}, false},
		{"malformed base URL", Config{SearchBaseURL: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultSearchBaseURL, cfg.SearchBaseURL)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultRequestDelay, cfg.RequestDelay())
	assert.Equal(t, "out", cfg.OutputDir)
	assert.NotEmpty(t, cfg.PastRoles)
	assert.NotEmpty(t, cfg.FounderRoles)
	assert.NotEmpty(t, cfg.StealthKeywords)
	assert.NotEmpty(t, cfg.TargetCompanyIDs)
	assert.NotEmpty(t, cfg.ExcludeRoles)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		SearchBaseURL: "https://staging.example.com",
		PageSize:      5,
		PastRoles:     []string{"custom role"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "https://staging.example.com", cfg.SearchBaseURL)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, []string{"custom role"}, cfg.PastRoles)
	assert.NotEmpty(t, cfg.FounderRoles, "untouched fields still get defaults")
}

func TestDefaultTaxonomiesAreLowerCase(t *testing.T) {
	// The query builder does no case normalization, so the shipped
	// taxonomies must already be lower-case.
	for _, term := range DefaultStealthKeywords() {
		assert.Equal(t, term, strings.ToLower(term), "stealth keyword %q", term)
	}
	for _, term := range DefaultFounderRoles() {
		assert.Equal(t, term, strings.ToLower(term), "founder role %q", term)
	}
}
