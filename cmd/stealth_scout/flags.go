package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/stealth-scout/internal/config"
)

// commonFlags holds the flags shared by every subcommand. Values are merged
// into the config in priority order: explicit flag > config file > env var >
// built-in default.
type commonFlags struct {
	configPath      string
	searchAPIKey    string
	searchBaseURL   string
	llmAPIKey       string
	anchorCompanyID string
	pageSize        int
	requestDelayMS  int
	outputDir       string
	databaseURL     string
	verbose         bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	// Config file flag (processed first)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVar(&f.searchAPIKey, "search-api-key", "", "Search API key (optional, defaults to SEARCH_API_KEY env var)")
	cmd.Flags().StringVar(&f.searchBaseURL, "search-base-url", "", "Search API base URL")
	cmd.Flags().StringVar(&f.llmAPIKey, "llm-api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	cmd.Flags().StringVarP(&f.anchorCompanyID, "company-id", "c", "", "Company ID whose alumni to search")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Results per search page (max 20)")
	cmd.Flags().IntVar(&f.requestDelayMS, "request-delay-ms", 0, "Delay between API requests in milliseconds")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for CSV and JSON output")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL for artifact persistence (optional, defaults to DATABASE_URL env var)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed progress information")
}

// buildConfig merges the config file, explicit flags, environment variables
// and defaults into a validated Config.
func (f *commonFlags) buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if f.verbose {
			fmt.Printf("Loaded config from: %s\n", f.configPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("search-api-key") {
		cfg.SearchAPIKey = f.searchAPIKey
	}
	if cmd.Flags().Changed("search-base-url") {
		cfg.SearchBaseURL = f.searchBaseURL
	}
	if cmd.Flags().Changed("llm-api-key") {
		cfg.LLMAPIKey = f.llmAPIKey
	}
	if cmd.Flags().Changed("company-id") {
		cfg.AnchorCompanyID = f.anchorCompanyID
	}
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize = f.pageSize
	}
	if cmd.Flags().Changed("request-delay-ms") {
		cfg.RequestDelayMS = f.requestDelayMS
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	// Env var fallbacks for secrets
	if cfg.SearchAPIKey == "" {
		cfg.SearchAPIKey = os.Getenv("SEARCH_API_KEY")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// requireSearchConfig verifies the fields the collection stages need.
func requireSearchConfig(cfg *config.Config) error {
	if cfg.SearchAPIKey == "" {
		return fmt.Errorf("SEARCH_API_KEY environment variable or --search-api-key flag is required")
	}
	if cfg.AnchorCompanyID == "" {
		return fmt.Errorf("--company-id is required (via flag or config)")
	}
	return nil
}
