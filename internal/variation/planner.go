// Package variation plans phasic exercise variation: accessory exercises
// from the user's recent programs are swapped for novel-but-equivalent
// substitutes, while compound lifts are preserved for specificity.
package variation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daniel/program-coach/internal/exercises"
	"github.com/daniel/program-coach/internal/types"
)

// historyLimit caps how many prior programs feed the analysis.
const historyLimit = 2

// HistoryStore is the read-only view of prior generated programs the
// planner needs. The engine's database layer satisfies it.
type HistoryStore interface {
	// RecentPrograms returns up to limit most recent programs for the
	// user, newest first. An empty slice is not an error.
	RecentPrograms(ctx context.Context, userID uuid.UUID, limit int) ([]types.TrainingProgram, error)
}

// Planner selects accessory substitutions against the fixed tables.
type Planner struct {
	store HistoryStore
}

// NewPlanner creates a planner backed by the given history store.
func NewPlanner(store HistoryStore) *Planner {
	return &Planner{store: store}
}

// Plan fetches the user's recent programs and proposes one substitution per
// previously used accessory that targets one of the given muscle groups.
// A user with no prior programs gets an empty analysis with an explanatory
// rationale; that is not an error.
func (p *Planner) Plan(ctx context.Context, userID uuid.UUID, targets []types.MuscleGroup) (types.PhasicVariationAnalysis, error) {
	programs, err := p.store.RecentPrograms(ctx, userID, historyLimit)
	if err != nil {
		return types.PhasicVariationAnalysis{}, fmt.Errorf("failed to fetch program history: %w", err)
	}

	if len(programs) == 0 {
		return types.PhasicVariationAnalysis{
			Rationale: "No prior programs on record; the first program introduces its own exercise selection, so no variation is needed yet.",
		}, nil
	}

	previous := extractExercises(programs)
	analysis := types.PhasicVariationAnalysis{
		PreviousExercises: previous,
		Rationale: fmt.Sprintf("Accessory variations chosen against the user's last %d program(s) to provide a novel stimulus while keeping compound lifts for specificity.",
			len(programs)),
	}

	previousSet := make(map[string]bool, len(previous))
	for _, name := range previous {
		previousSet[name] = true
	}

	// chosen tracks variation targets already claimed by another original
	// in this run; no two originals may map to the same substitute.
	chosen := make(map[string]bool)
	// varied tracks originals already handled, since one accessory can
	// match several target muscle groups.
	varied := make(map[string]bool)

	for _, target := range targets {
		for _, original := range previous {
			if varied[original] || exercises.IsCompound(original) {
				continue
			}
			if !targetsMuscle(original, target) {
				continue
			}
			substitute := pickSubstitute(original, previousSet, chosen)
			if substitute == "" {
				continue
			}
			chosen[substitute] = true
			varied[original] = true
			analysis.SuggestedVariations = append(analysis.SuggestedVariations, types.ExerciseVariation{
				OriginalExercise:  original,
				VariationExercise: substitute,
				TargetedMuscles:   exercises.MuscleGroupsFor(substitute),
				Rationale:         fmt.Sprintf("Replaces %s with an equivalent movement the user has not performed recently.", original),
			})
		}
	}

	return analysis, nil
}

// pickSubstitute returns the first table candidate that is novel, unclaimed
// and not a compound lift, or empty when no candidate qualifies.
func pickSubstitute(original string, previousSet, chosen map[string]bool) string {
	for _, candidate := range exercises.SubstitutesFor(original) {
		if previousSet[candidate] || chosen[candidate] || exercises.IsCompound(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

func targetsMuscle(exercise string, target types.MuscleGroup) bool {
	for _, mg := range exercises.MuscleGroupsFor(exercise) {
		if mg == target {
			return true
		}
	}
	return false
}

// extractExercises collects every distinct exercise name across all
// non-rest days of the given programs, preserving first-seen order.
func extractExercises(programs []types.TrainingProgram) []string {
	var names []string
	seen := make(map[string]bool)
	for _, program := range programs {
		for _, name := range program.ExerciseNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
