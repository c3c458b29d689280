package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daniel/program-coach/internal/config"
	"github.com/daniel/program-coach/internal/db"
	"github.com/daniel/program-coach/internal/engine"
	"github.com/daniel/program-coach/internal/llm"
	"github.com/daniel/program-coach/internal/observability"
	"github.com/daniel/program-coach/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a validated training program",
	Long: `Runs the full pipeline: profile enrichment, volume landmarks, weak-point
analysis, exercise variation, periodization selection, program generation
and two-tier validation.

The intake profile comes from either a JSON file (--profile) or the
database (--user-id). Configuration can be loaded from a JSON file using
--config; command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath  string
	genProfile     string
	genUserID      string
	genDuration    int
	genModelTier   string
	genAPIKey      string
	genVerbose     bool
	genDatabaseURL string
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to intake profile JSON file (mutually exclusive with --user-id)")
	generateCmd.Flags().StringVarP(&genUserID, "user-id", "u", "", "User UUID to load the profile from the database (mutually exclusive with --profile)")
	generateCmd.Flags().IntVarP(&genDuration, "duration-weeks", "d", 0, "Program length in weeks (default 8)")
	generateCmd.Flags().StringVar(&genModelTier, "model-tier", "", "Provider model tier: lite, standard or advanced (default standard)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed derivation output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for profile lookup, program history and persistence
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeGenerateConfig(cmd)
	if err != nil {
		return err
	}

	// Profile source validation
	if cfg.Profile == "" && cfg.UserID == "" {
		return fmt.Errorf("either --profile or --user-id must be provided (via flag or config)")
	}
	if cfg.Profile != "" && cfg.UserID != "" {
		return fmt.Errorf("--profile and --user-id are mutually exclusive; provide only one")
	}

	// API key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Database URL handling. A database is required for --user-id runs;
	// --profile runs without one stay offline (no history, no persistence).
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.UserID != "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --user-id")
	}

	var (
		database *db.DB
		store    engine.Store
	)
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		store = database
	}

	profile, err := resolveProfile(ctx, cfg, database)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stdout)
	out, err := engine.New(client, store).Generate(ctx, *profile, engine.Options{
		DurationWeeks: cfg.DurationWeeks,
		ModelTier:     llm.ModelTier(cfg.ModelTier),
		Verbose:       cfg.Verbose,
		Printer:       printer,
	})
	if err != nil {
		return err
	}

	printer.PrintProgramSummary(out.Program)
	printer.PrintValidationReport(&out.Validation)
	if store != nil {
		fmt.Fprintf(os.Stdout, "Saved program %s\n", out.ProgramID)
	}

	return nil
}

// mergeGenerateConfig loads the optional config file and applies CLI
// overrides. Command-line args take priority over config file values.
func mergeGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = genUserID
	}
	if cmd.Flags().Changed("duration-weeks") {
		cfg.DurationWeeks = genDuration
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = genModelTier
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}

	// Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		DurationWeeks: 8,
		ModelTier:     "standard",
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// resolveProfile loads the intake profile from the configured source.
func resolveProfile(ctx context.Context, cfg config.Config, database *db.DB) (*types.UserProfile, error) {
	if cfg.Profile != "" {
		return loadProfileFile(cfg.Profile)
	}

	uid, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %w", err)
	}

	profile, err := database.GetUserProfile(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", uid, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile found for user %s", uid)
	}
	return profile, nil
}
