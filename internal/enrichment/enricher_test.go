package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/program-coach/internal/types"
)

func validProfile() types.UserProfile {
	return types.UserProfile{
		Goal:           types.GoalMuscleGain,
		Experience:     types.ExperienceIntermediate,
		DaysPerWeek:    4,
		SessionMinutes: 60,
		WeightUnit:     types.UnitKilograms,
	}
}

func TestEnrich_DerivesTrainingAgeFromExperience(t *testing.T) {
	tests := []struct {
		experience types.ExperienceLevel
		wantYears  float64
	}{
		{types.ExperienceBeginner, 0.5},
		{types.ExperienceIntermediate, 2.0},
		{types.ExperienceAdvanced, 4.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.experience), func(t *testing.T) {
			profile := validProfile()
			profile.Experience = tt.experience

			enriched, err := Enrich(profile)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYears, enriched.TrainingAgeYears)
		})
	}
}

func TestEnrich_MissingGoal(t *testing.T) {
	profile := validProfile()
	profile.Goal = ""

	_, err := Enrich(profile)
	require.Error(t, err)

	var incomplete *types.ProfileIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Contains(t, incomplete.MissingFields, "goal")
}

func TestEnrich_MissingGoalAndExperience(t *testing.T) {
	_, err := Enrich(types.UserProfile{})
	require.Error(t, err)

	var incomplete *types.ProfileIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.ElementsMatch(t, []string{"goal", "experience"}, incomplete.MissingFields)
}

func TestEnrich_InjuriesReduceRecoveryCapacity(t *testing.T) {
	healthy := validProfile()
	injured := validProfile()
	injured.Injuries = "left knee pain when squatting deep"

	healthyEnriched, err := Enrich(healthy)
	require.NoError(t, err)
	injuredEnriched, err := Enrich(injured)
	require.NoError(t, err)

	assert.Greater(t, healthyEnriched.RecoveryCapacity, injuredEnriched.RecoveryCapacity)
}

func TestEnrich_VolumeToleranceMonotonicInTrainingAge(t *testing.T) {
	beginner := validProfile()
	beginner.Experience = types.ExperienceBeginner
	advanced := validProfile()
	advanced.Experience = types.ExperienceAdvanced

	b, err := Enrich(beginner)
	require.NoError(t, err)
	a, err := Enrich(advanced)
	require.NoError(t, err)

	assert.Greater(t, a.VolumeTolerance, b.VolumeTolerance)
}

func TestEnrich_VolumeToleranceWithinBounds(t *testing.T) {
	for _, exp := range []types.ExperienceLevel{types.ExperienceBeginner, types.ExperienceIntermediate, types.ExperienceAdvanced} {
		for _, injuries := range []string{"", "chronic lower back pain, shoulder impingement"} {
			profile := validProfile()
			profile.Experience = exp
			profile.Injuries = injuries

			enriched, err := Enrich(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, enriched.VolumeTolerance, 0.6)
			assert.LessOrEqual(t, enriched.VolumeTolerance, 1.4)
		}
	}
}

func TestEnrich_Deterministic(t *testing.T) {
	profile := validProfile()

	first, err := Enrich(profile)
	require.NoError(t, err)
	second, err := Enrich(profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnrich_StressLevelDefaultsConservative(t *testing.T) {
	enriched, err := Enrich(validProfile())
	require.NoError(t, err)
	assert.Equal(t, 5, enriched.StressLevel)
}
