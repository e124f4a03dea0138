// Package main provides the entry point for the status page generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "status_page",
	Short: "Job search status page generator",
	Long:  "status_page reads local job-search tracking data (tracker, tasks, network) and builds a static HTML dashboard with per-role detail pages.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
