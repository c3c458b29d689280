// Package periodization maps experience level and goal to a periodization
// model through a fixed decision table and derives autoregulation guidance
// from the enriched profile's recovery and stress parameters.
package periodization

import (
	"fmt"

	"github.com/daniel/program-coach/internal/types"
)

// decisionTable is the fixed experience-by-goal mapping. Beginners always
// run linear progression regardless of goal; the table is data so it can be
// covered exhaustively by tests.
var decisionTable = map[types.ExperienceLevel]map[types.Goal]types.PeriodizationModel{
	types.ExperienceBeginner: {
		types.GoalMuscleGain:     types.ModelLinear,
		types.GoalStrength:       types.ModelLinear,
		types.GoalFatLoss:        types.ModelLinear,
		types.GoalGeneralFitness: types.ModelLinear,
		types.GoalEndurance:      types.ModelLinear,
	},
	types.ExperienceIntermediate: {
		types.GoalMuscleGain:     types.ModelHypertrophyFocused,
		types.GoalStrength:       types.ModelStrengthFocused,
		types.GoalFatLoss:        types.ModelBalanced,
		types.GoalGeneralFitness: types.ModelBalanced,
		types.GoalEndurance:      types.ModelBalanced,
	},
	types.ExperienceAdvanced: {
		types.GoalMuscleGain:     types.ModelHypertrophyFocused,
		types.GoalStrength:       types.ModelStrengthFocused,
		types.GoalFatLoss:        types.ModelBalanced,
		types.GoalGeneralFitness: types.ModelBalanced,
		types.GoalEndurance:      types.ModelBalanced,
	},
}

// progressionStrategies describes the week-by-week loading pattern of each
// model in coach-facing prose embedded into the generation prompt.
var progressionStrategies = map[types.PeriodizationModel]string{
	types.ModelLinear: "Add a small amount of weight or one rep to each main lift every week. " +
		"Keep volume constant and technique strict; take a lighter week only if bar speed degrades.",
	types.ModelStrengthFocused: "Wave loading across the block: accumulate volume at moderate intensity " +
		"for three weeks, then intensify with heavier triples and doubles while cutting accessory volume, " +
		"closing with a deload before testing.",
	types.ModelHypertrophyFocused: "Start each phase near the minimum effective volume per muscle group and " +
		"add sets weekly toward the maximum adaptive volume, pulling back to maintenance volume in the final " +
		"deload week.",
	types.ModelBalanced: "Alternate strength-biased and volume-biased weeks. Main lifts progress on a " +
		"double-progression scheme while accessories rotate rep ranges between weeks.",
}

// Select returns the periodization plan for the given enriched profile:
// the model from the decision table plus autoregulation guidance.
func Select(enriched types.EnrichedProfile) (types.PeriodizationPlan, error) {
	byGoal, ok := decisionTable[enriched.Profile.Experience]
	if !ok {
		return types.PeriodizationPlan{}, fmt.Errorf("no periodization entry for experience level %q", enriched.Profile.Experience)
	}
	model, ok := byGoal[enriched.Profile.Goal]
	if !ok {
		// Unlisted goals run the balanced template.
		model = types.ModelBalanced
	}

	return types.PeriodizationPlan{
		Model:               model,
		ProgressionStrategy: progressionStrategies[model],
		Autoregulation:      autoregulation(enriched),
	}, nil
}
