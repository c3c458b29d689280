// Package engine wires the derivation pipeline end to end: profile
// enrichment, the parallel scientific derivations, periodization selection,
// orchestrated generation, validation, and persistence.
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daniel/program-coach/internal/enrichment"
	"github.com/daniel/program-coach/internal/exercises"
	"github.com/daniel/program-coach/internal/llm"
	"github.com/daniel/program-coach/internal/observability"
	"github.com/daniel/program-coach/internal/orchestrator"
	"github.com/daniel/program-coach/internal/periodization"
	"github.com/daniel/program-coach/internal/prompts"
	"github.com/daniel/program-coach/internal/types"
	"github.com/daniel/program-coach/internal/validation"
	"github.com/daniel/program-coach/internal/variation"
	"github.com/daniel/program-coach/internal/volume"
	"github.com/daniel/program-coach/internal/weakpoints"
)

// defaultDurationWeeks is used when the caller does not request a duration.
const defaultDurationWeeks = 8

// Store is the persistence surface the engine needs: program history for
// the variation planner plus the write path for accepted programs. The db
// package satisfies it; a nil Store runs the engine without history or
// persistence.
type Store interface {
	variation.HistoryStore
	SaveTrainingProgram(ctx context.Context, userID uuid.UUID, program *types.TrainingProgram, metadata types.ProgramMetadata) (uuid.UUID, error)
}

// Options holds per-run configuration.
type Options struct {
	DurationWeeks int
	// ModelTier selects the provider model for every generation attempt.
	// Empty means the standard tier.
	ModelTier llm.ModelTier
	Verbose   bool
	Printer   *observability.Printer
}

// Analysis is the deterministic half of the pipeline: everything derivable
// from the profile without calling the generative backend.
type Analysis struct {
	Enriched      types.EnrichedProfile   `json:"enriched"`
	Landmarks     types.VolumeLandmarks   `json:"landmarks"`
	WeakPoints    types.WeakPointResult   `json:"weak_points"`
	Periodization types.PeriodizationPlan `json:"periodization"`
}

// Output is the full result of a generation run.
type Output struct {
	ProgramID  uuid.UUID
	Program    *types.TrainingProgram
	Metadata   types.ProgramMetadata
	Validation types.ValidationResult
	Analysis   Analysis
	Variations types.PhasicVariationAnalysis
}

// Engine runs the pipeline against one backend client and one store.
type Engine struct {
	client llm.Client
	store  Store
}

// New creates an engine. store may be nil for offline use.
func New(client llm.Client, store Store) *Engine {
	return &Engine{client: client, store: store}
}

// Analyze runs enrichment, landmarks, weak points and periodization for a
// profile. It never touches the backend or the store, so it is usable for
// offline inspection and the read-only API surface.
func Analyze(profile types.UserProfile) (*Analysis, error) {
	enriched, err := enrichment.Enrich(profile)
	if err != nil {
		return nil, err
	}

	plan, err := periodization.Select(enriched)
	if err != nil {
		return nil, fmt.Errorf("periodization selection failed: %w", err)
	}

	return &Analysis{
		Enriched:      enriched,
		Landmarks:     volume.Calculate(enriched),
		WeakPoints:    weakpoints.Analyze(weakpoints.InputFromProfile(profile)),
		Periodization: plan,
	}, nil
}

// Generate runs the full pipeline for a profile: derive, prompt, validate,
// persist. The three scientific derivations are independent of each other
// and run concurrently; everything after them is sequential.
func (e *Engine) Generate(ctx context.Context, profile types.UserProfile, opts Options) (*Output, error) {
	if opts.DurationWeeks <= 0 {
		opts.DurationWeeks = defaultDurationWeeks
	}

	enriched, err := enrichment.Enrich(profile)
	if err != nil {
		return nil, err
	}

	var (
		landmarks  types.VolumeLandmarks
		weakResult types.WeakPointResult
		variations types.PhasicVariationAnalysis
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		landmarks = volume.Calculate(enriched)
		return nil
	})
	g.Go(func() error {
		weakResult = weakpoints.Analyze(weakpoints.InputFromProfile(profile))
		return nil
	})
	g.Go(func() error {
		if e.store == nil {
			variations = types.PhasicVariationAnalysis{
				Rationale: "No program history available; exercise selection starts fresh.",
			}
			return nil
		}
		var planErr error
		variations, planErr = variation.NewPlanner(e.store).Plan(gCtx, profile.UserID, types.AllMuscleGroups())
		return planErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan, err := periodization.Select(enriched)
	if err != nil {
		return nil, fmt.Errorf("periodization selection failed: %w", err)
	}

	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintEnrichedProfile(&enriched)
		opts.Printer.PrintLandmarks(landmarks)
		opts.Printer.PrintWeakPoints(&weakResult)
		opts.Printer.PrintVariations(&variations)
		opts.Printer.PrintPeriodization(&plan)
	}

	orch := orchestrator.New(e.client)
	if opts.ModelTier != "" {
		orch = orch.WithModelTier(opts.ModelTier)
	}
	result, err := orch.Generate(ctx, prompts.Request{
		Enriched:      enriched,
		Landmarks:     landmarks,
		WeakPoints:    weakResult,
		Variations:    variations,
		Periodization: plan,
		DurationWeeks: opts.DurationWeeks,
	}, validation.Constraints{
		DaysPerWeek: profile.DaysPerWeek,
		Landmarks:   landmarks,
		WeakPoints:  &weakResult,
	})
	if err != nil {
		return nil, err
	}

	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintValidationReport(&result.Validation)
		opts.Printer.PrintProgramSummary(result.Program)
	}

	metadata := types.ProgramMetadata{
		Landmarks:          landmarks,
		WeakPoints:         weakResult,
		Variations:         variations,
		PeriodizationModel: plan.Model,
		AttemptCount:       result.AttemptCount,
		SchemaTier:         result.Validation.SchemaTier,
		CatalogVersion:     exercises.CatalogVersion,
	}

	out := &Output{
		Program:    result.Program,
		Metadata:   metadata,
		Validation: result.Validation,
		Analysis: Analysis{
			Enriched:      enriched,
			Landmarks:     landmarks,
			WeakPoints:    weakResult,
			Periodization: plan,
		},
		Variations: variations,
	}

	if e.store != nil {
		id, err := e.store.SaveTrainingProgram(ctx, profile.UserID, result.Program, metadata)
		if err != nil {
			return nil, &types.PersistenceFailure{Op: "save training program", Err: err}
		}
		out.ProgramID = id
	}
	return out, nil
}
