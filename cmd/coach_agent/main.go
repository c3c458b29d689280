// Package main provides the entry point for the program coach CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach_agent",
	Short: "Evidence-based training program generator",
	Long:  "Program coach derives volume landmarks, weak points and periodization from an intake profile, then generates and validates a structured training program.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
