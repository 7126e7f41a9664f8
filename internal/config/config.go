// Package config provides configuration loading and validation for the CLI.
// Configuration is loaded once at process start and passed explicitly into
// the pipeline stages; nothing reads it as ambient global state.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// External APIs
	SearchAPIKey  string `json:"search_api_key,omitempty"`
	SearchBaseURL string `json:"search_base_url,omitempty" validate:"omitempty,url"`
	LLMAPIKey     string `json:"llm_api_key,omitempty"`

	// Collection
	AnchorCompanyID string `json:"anchor_company_id,omitempty"`
	PageSize        int    `json:"page_size,omitempty" validate:"omitempty,gte=1,lte=20"`
	RequestDelayMS  int    `json:"request_delay_ms,omitempty" validate:"omitempty,gte=0"`

	// Keyword taxonomies. Terms are supplied lower-case; the query builder
	// does no case normalization.
	PastRoles        []string `json:"past_roles,omitempty"`
	FounderRoles     []string `json:"founder_roles,omitempty"`
	StealthKeywords  []string `json:"stealth_keywords,omitempty"`
	TargetCompanyIDs []string `json:"target_company_ids,omitempty"`
	ExcludeRoles     []string `json:"exclude_roles,omitempty"`

	// Output
	OutputDir   string `json:"output_dir,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field formats and ranges. Required-field checks are done
// per-command against the fully merged config, since not every subcommand
// needs search credentials.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyDefaults fills zero-valued fields with the built-in defaults,
// including the keyword taxonomies recovered from the reference run.
func (c *Config) ApplyDefaults() {
	if c.SearchBaseURL == "" {
		c.SearchBaseURL = DefaultSearchBaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.RequestDelayMS == 0 {
		c.RequestDelayMS = int(DefaultRequestDelay / time.Millisecond)
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if len(c.PastRoles) == 0 {
		c.PastRoles = DefaultPastRoles()
	}
	if len(c.FounderRoles) == 0 {
		c.FounderRoles = DefaultFounderRoles()
	}
	if len(c.StealthKeywords) == 0 {
		c.StealthKeywords = DefaultStealthKeywords()
	}
	if len(c.TargetCompanyIDs) == 0 {
		c.TargetCompanyIDs = DefaultTargetCompanyIDs()
	}
	if len(c.ExcludeRoles) == 0 {
		c.ExcludeRoles = DefaultExcludeRoles()
	}
}

// RequestDelay returns the configured inter-request delay.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}
