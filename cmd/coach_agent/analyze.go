package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daniel/program-coach/internal/db"
	"github.com/daniel/program-coach/internal/engine"
	"github.com/daniel/program-coach/internal/observability"
	"github.com/daniel/program-coach/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive landmarks, weak points and periodization without generating a program",
	Long: `Runs the deterministic half of the pipeline and prints the derived
volume landmarks, weak-point analysis and periodization selection.
No generative backend call is made and nothing is persisted.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeProfile     string
	analyzeUserID      string
	analyzeDatabaseURL string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to intake profile JSON file (mutually exclusive with --user-id)")
	analyzeCmd.Flags().StringVarP(&analyzeUserID, "user-id", "u", "", "User UUID to load the profile from the database (mutually exclusive with --profile)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if analyzeProfile == "" && analyzeUserID == "" {
		return fmt.Errorf("either --profile or --user-id must be provided")
	}
	if analyzeProfile != "" && analyzeUserID != "" {
		return fmt.Errorf("--profile and --user-id are mutually exclusive; provide only one")
	}

	var profile *types.UserProfile
	if analyzeProfile != "" {
		loaded, err := loadProfileFile(analyzeProfile)
		if err != nil {
			return err
		}
		profile = loaded
	} else {
		databaseURL := analyzeDatabaseURL
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --user-id")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		uid, err := uuid.Parse(analyzeUserID)
		if err != nil {
			return fmt.Errorf("invalid user_id format: %w", err)
		}
		profile, err = database.GetUserProfile(ctx, uid)
		if err != nil {
			return fmt.Errorf("failed to fetch profile for user %s: %w", uid, err)
		}
		if profile == nil {
			return fmt.Errorf("no profile found for user %s", uid)
		}
	}

	analysis, err := engine.Analyze(*profile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintEnrichedProfile(&analysis.Enriched)
	printer.PrintLandmarks(analysis.Landmarks)
	printer.PrintWeakPoints(&analysis.WeakPoints)
	printer.PrintPeriodization(&analysis.Periodization)

	return nil
}
