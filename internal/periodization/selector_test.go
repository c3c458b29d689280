package periodization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/program-coach/internal/types"
)

func enriched(experience types.ExperienceLevel, goal types.Goal) types.EnrichedProfile {
	return types.EnrichedProfile{
		Profile: types.UserProfile{
			Goal:       goal,
			Experience: experience,
		},
		TrainingAgeYears: 2,
		RecoveryCapacity: 7,
		StressLevel:      5,
		VolumeTolerance:  1.0,
	}
}

func TestSelect_DecisionTableExhaustive(t *testing.T) {
	tests := []struct {
		experience types.ExperienceLevel
		goal       types.Goal
		want       types.PeriodizationModel
	}{
		{types.ExperienceBeginner, types.GoalMuscleGain, types.ModelLinear},
		{types.ExperienceBeginner, types.GoalStrength, types.ModelLinear},
		{types.ExperienceBeginner, types.GoalFatLoss, types.ModelLinear},
		{types.ExperienceBeginner, types.GoalGeneralFitness, types.ModelLinear},
		{types.ExperienceBeginner, types.GoalEndurance, types.ModelLinear},
		{types.ExperienceIntermediate, types.GoalMuscleGain, types.ModelHypertrophyFocused},
		{types.ExperienceIntermediate, types.GoalStrength, types.ModelStrengthFocused},
		{types.ExperienceIntermediate, types.GoalFatLoss, types.ModelBalanced},
		{types.ExperienceIntermediate, types.GoalGeneralFitness, types.ModelBalanced},
		{types.ExperienceIntermediate, types.GoalEndurance, types.ModelBalanced},
		{types.ExperienceAdvanced, types.GoalMuscleGain, types.ModelHypertrophyFocused},
		{types.ExperienceAdvanced, types.GoalStrength, types.ModelStrengthFocused},
		{types.ExperienceAdvanced, types.GoalFatLoss, types.ModelBalanced},
		{types.ExperienceAdvanced, types.GoalGeneralFitness, types.ModelBalanced},
		{types.ExperienceAdvanced, types.GoalEndurance, types.ModelBalanced},
	}

	for _, tt := range tests {
		t.Run(string(tt.experience)+"/"+string(tt.goal), func(t *testing.T) {
			plan, err := Select(enriched(tt.experience, tt.goal))
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Model)
			assert.NotEmpty(t, plan.ProgressionStrategy)
		})
	}
}

func TestSelect_UnknownGoalFallsBackToBalanced(t *testing.T) {
	plan, err := Select(enriched(types.ExperienceIntermediate, types.Goal("powerbuilding")))
	require.NoError(t, err)
	assert.Equal(t, types.ModelBalanced, plan.Model)
}

func TestSelect_UnknownExperienceFails(t *testing.T) {
	_, err := Select(enriched(types.ExperienceLevel("elite"), types.GoalStrength))
	assert.Error(t, err)
}

func TestSelect_AutoregulationHasAllPhaseBands(t *testing.T) {
	plan, err := Select(enriched(types.ExperienceIntermediate, types.GoalStrength))
	require.NoError(t, err)

	phaseTypes := make([]string, 0, len(plan.Autoregulation.RPETargets))
	for _, target := range plan.Autoregulation.RPETargets {
		phaseTypes = append(phaseTypes, target.PhaseType)
		assert.Less(t, target.MinRPE, target.MaxRPE)
	}
	assert.ElementsMatch(t, []string{"accumulation", "intensification", "realization", "deload"}, phaseTypes)
	assert.NotEmpty(t, plan.Autoregulation.ReadinessSignal)
	assert.Len(t, plan.Autoregulation.DailyAdjustments, 3)
}

func TestSelect_LowRecoveryShiftsRPEDown(t *testing.T) {
	normal := enriched(types.ExperienceIntermediate, types.GoalStrength)
	fragile := enriched(types.ExperienceIntermediate, types.GoalStrength)
	fragile.RecoveryCapacity = 3
	fragile.StressLevel = 9

	normalPlan, err := Select(normal)
	require.NoError(t, err)
	fragilePlan, err := Select(fragile)
	require.NoError(t, err)

	for i := range normalPlan.Autoregulation.RPETargets {
		assert.Less(t,
			fragilePlan.Autoregulation.RPETargets[i].MaxRPE,
			normalPlan.Autoregulation.RPETargets[i].MaxRPE)
	}
}
