// Package pipeline provides the high-level orchestration for the stealth
// founder discovery process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/andrei/stealth-scout/internal/classify"
	"github.com/andrei/stealth-scout/internal/collect"
	"github.com/andrei/stealth-scout/internal/config"
	"github.com/andrei/stealth-scout/internal/db"
	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/merge"
	"github.com/andrei/stealth-scout/internal/observability"
	"github.com/andrei/stealth-scout/internal/query"
	"github.com/andrei/stealth-scout/internal/rank"
	"github.com/andrei/stealth-scout/internal/resolve"
	"github.com/andrei/stealth-scout/internal/search"
	"github.com/andrei/stealth-scout/internal/store"
	"github.com/andrei/stealth-scout/internal/types"
)

// RunPipeline orchestrates the full discovery run: collect -> merge ->
// classify -> rank -> resolve. Every stage writes its output before the next
// stage starts, and every stage reports processed/retained counts; a query
// that produced nothing is reported as zero, never omitted.
func RunPipeline(ctx context.Context, cfg *config.Config) error {
	printer := observability.NewPrinter(os.Stdout)

	st, err := store.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("preparing output dir: %w", err)
	}

	var database *db.DB
	var runID uuid.UUID
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without artifact persistence...\n")
			database = nil
		} else {
			defer database.Close()
		}
	}

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

	// Step 1: build queries and collect pages.
	fmt.Printf("Step 1/5: Collecting profiles from the search API...\n")
	builder := query.NewBuilder(cfg.AnchorCompanyID)
	queries := builder.BuildAll(cfg.PastRoles, cfg.FounderRoles, cfg.StealthKeywords, cfg.TargetCompanyIDs)
	if cfg.Verbose {
		printer.PrintQueries(queries)
	}

	if database != nil {
		runID, err = database.CreateRun(ctx, cfg.AnchorCompanyID, len(queries))
		if err != nil {
			fmt.Printf("Warning: failed to create database run: %v\n", err)
			database = nil
		} else {
			_ = database.SaveArtifact(ctx, runID, db.StepQueries, queries)
		}
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
	fmt.Printf("Collected %d profiles across %d queries\n", total, len(queries))
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepCollected, sources)
	}

	// Step 2: merge, dedupe, exclude.
	fmt.Printf("Step 2/5: Merging and filtering profiles...\n")
	merged := merge.Merge(sources, cfg.ExcludeRoles)
	fmt.Printf("Retained %d of %d profiles after dedup and role exclusion\n", len(merged), total)
	if err := st.WriteProfiles("filtered.csv", merged); err != nil {
		return err
	}
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepMerged, merged)
	}

	// Step 3: classify.
	fmt.Printf("Step 3/5: Classifying %d profiles...\n", len(merged))
	classifier := classify.New(llmClient)
	leads := classifier.ClassifyAll(ctx, merged)
	fmt.Printf("Retained %d leads meeting founder/stealth criteria\n", len(leads))
	if err := st.WriteLeads("classified.csv", leads); err != nil {
		return err
	}
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepClassified, leads)
	}

	// Step 4: rank by confidence.
	fmt.Printf("Step 4/5: Ranking leads by confidence...\n")
	ranked := rank.Rank(leads)
	counts := rank.Count(ranked)
	fmt.Printf("Tiers: %d high, %d medium, %d low\n", counts.High, counts.Medium, counts.Low)
	if cfg.Verbose {
		printer.PrintTierCounts(counts)
		printer.PrintTopLeads(ranked)
	}
	if err := st.WriteLeads("leads.csv", ranked); err != nil {
		return err
	}
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepRanked, ranked)
	}

	// Step 5: resolve companies and apply the stealth filter.
	fmt.Printf("Step 5/5: Resolving current companies for founder leads...\n")
	resolver := resolve.New(client, llmClient, resolve.Options{
		RequestDelay: cfg.RequestDelay(),
		Details:      st,
	})
	resolved := resolver.Resolve(ctx, ranked)
	fmt.Printf("Resolved details for %d leads\n", len(resolved))
	if err := st.WriteResolved("profiles_with_details.csv", resolved); err != nil {
		return err
	}
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepResolved, resolved)
	}

	stealth := resolve.FilterStealth(resolved)
	fmt.Printf("Found %d founders at stealth companies\n", len(stealth))
	if err := st.WriteResolved("stealth_founders.csv", stealth); err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintStealthFounders(stealth)
	}
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepStealth, stealth)
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	fmt.Printf("Done! Results written to %s\n", st.Root())
	return nil
}
