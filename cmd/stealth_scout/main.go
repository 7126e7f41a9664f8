// Package main provides the entry point for the stealth-scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stealth_scout",
	Short: "Discover stealth-mode startup founders among a company's alumni",
	Long:  "stealth_scout mines recruiting-data search results for former employees of a target company whose profiles carry founder and stealth-startup signals, producing a confidence-ranked lead set.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
