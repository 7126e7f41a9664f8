package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/andrei/stealth-scout/internal/classify"
	"github.com/andrei/stealth-scout/internal/collect"
	"github.com/andrei/stealth-scout/internal/config"
	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/merge"
	"github.com/andrei/stealth-scout/internal/observability"
	"github.com/andrei/stealth-scout/internal/query"
	"github.com/andrei/stealth-scout/internal/rank"
	"github.com/andrei/stealth-scout/internal/search"
	"github.com/andrei/stealth-scout/internal/store"
	"github.com/andrei/stealth-scout/internal/types"
)

// RunCollect executes only the collection and merge stages, producing the
// per-query CSVs and filtered.csv. Useful for re-running classification
// later without spending API quota again.
func RunCollect(ctx context.Context, cfg *config.Config) error {
	printer := observability.NewPrinter(os.Stdout)

	st, err := store.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("preparing output dir: %w", err)
	}

	builder := query.NewBuilder(cfg.AnchorCompanyID)
	queries := builder.BuildAll(cfg.PastRoles, cfg.FounderRoles, cfg.StealthKeywords, cfg.TargetCompanyIDs)
	if cfg.Verbose {
		printer.PrintQueries(queries)
	}

	client := search.NewClient(cfg.SearchBaseURL, cfg.SearchAPIKey)
	collector := collect.New(client, collect.Options{
		PageSize:   cfg.PageSize,
		PageDelay:  cfg.RequestDelay(),
		RetryDelay: cfg.RequestDelay(),
		Pages:      st,
	})

	sources := make([][]types.Profile, 0, len(queries))
	total := 0
	for _, q := range queries {
		profiles, err := collector.Collect(ctx, q)
		if err != nil {
			fmt.Printf("Warning: query %s skipped: %v\n", q.Type, err)
		}
		fmt.Printf("  %s: %d profiles\n", q.Type, len(profiles))
		if werr := st.WriteProfiles(string(q.Type)+".csv", profiles); werr != nil {
			return werr
		}
		sources = append(sources, profiles)
		total += len(profiles)
	}

	merged := merge.Merge(sources, cfg.ExcludeRoles)
	fmt.Printf("Retained %d of %d profiles after dedup and role exclusion\n", len(merged), total)
	return st.WriteProfiles("filtered.csv", merged)
}

// RunClassify classifies an existing profile CSV and writes the ranked
// leads, without touching the search API.
func RunClassify(ctx context.Context, cfg *config.Config, inputPath string) error {
	printer := observability.NewPrinter(os.Stdout)

	st, err := store.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("preparing output dir: %w", err)
	}

	profiles, err := store.ReadProfiles(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Classifying %d profiles from %s...\n", len(profiles), inputPath)

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.LLMAPIKey)
		if err != nil {
			return fmt.Errorf("creating LLM client: %w", err)
		}
		defer func() { _ = llmClient.Close() }()
	} else {
		fmt.Printf("Warning: no LLM API key configured; classification uses heuristics only\n")
	}

	leads := classify.New(llmClient).ClassifyAll(ctx, profiles)
	ranked := rank.Rank(leads)
	counts := rank.Count(ranked)
	fmt.Printf("Retained %d leads: %d high, %d medium, %d low\n",
		counts.Total(), counts.High, counts.Medium, counts.Low)
	if cfg.Verbose {
		printer.PrintTierCounts(counts)
		printer.PrintTopLeads(ranked)
	}

	return st.WriteLeads("leads.csv", ranked)
}
