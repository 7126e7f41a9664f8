package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/andrei/stealth-scout/internal/pipeline"
)

var runFlags commonFlags

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full discovery pipeline end-to-end",
	Long: `Orchestrates the entire discovery process: collect -> merge -> classify -> rank -> resolve.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

func init() {
	runFlags.register(runCommand)
	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := runFlags.buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireSearchConfig(cfg); err != nil {
		return err
	}
	return pipeline.RunPipeline(context.Background(), cfg)
}
