package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/andrei/stealth-scout/internal/pipeline"
)

var (
	classifyFlags commonFlags
	classifyInput string
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Classify a previously collected profile CSV",
	Long:  `Reads profiles from a CSV produced by the collect subcommand, runs the founder/stealth classifier and writes the ranked leads.`,
	RunE:  runClassifyCmd,
}

func init() {
	classifyFlags.register(classifyCommand)
	classifyCommand.Flags().StringVarP(&classifyInput, "input", "i", "out/filtered.csv", "Path to the profile CSV to classify")
	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := classifyFlags.buildConfig(cmd)
	if err != nil {
		return err
	}
	return pipeline.RunClassify(context.Background(), cfg, classifyInput)
}
