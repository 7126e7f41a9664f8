package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/andrei/stealth-scout/internal/pipeline"
)

var collectFlags commonFlags

var collectCommand = &cobra.Command{
	Use:   "collect",
	Short: "Collect and merge profiles without classifying them",
	Long:  `Runs only the collection and merge stages, writing the per-query CSVs and filtered.csv. Use the classify subcommand afterwards to classify the saved profiles without re-querying the search API.`,
	RunE:  runCollectCmd,
}

func init() {
	collectFlags.register(collectCommand)
	rootCmd.AddCommand(collectCommand)
}

func runCollectCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := collectFlags.buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireSearchConfig(cfg); err != nil {
		return err
	}
	return pipeline.RunCollect(context.Background(), cfg)
}
